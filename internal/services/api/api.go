// Package api provides the HTTP API for the application
package api

import (
	"searchgov/internal/platform/config"
	"searchgov/internal/platform/logger"
	phttp "searchgov/internal/platform/net/http"
	"searchgov/internal/platform/store"

	"searchgov/internal/adapters/blended"
	"searchgov/internal/modkit"
	"searchgov/internal/modkit/httpkit"
	"searchgov/internal/modkit/module"
	"searchgov/internal/modkit/swaggerkit"

	metamod "searchgov/internal/services/api/meta/module"
	searchmod "searchgov/internal/services/api/search/module"
	urlsmod "searchgov/internal/services/api/urls/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Backend        blended.Searcher
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		searchmod.New(deps, opt.Backend),
		urlsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
