// Package module wires urls into the API using modkit
package module

import (
	"context"
	"fmt"
	"net/http"
	"time"

	modkit "searchgov/internal/modkit"
	"searchgov/internal/modkit/httpkit"
	"searchgov/internal/modkit/repokit"
	str "searchgov/internal/platform/strings"
	urlshttp "searchgov/internal/services/api/urls/http"
	urlsrepo "searchgov/internal/services/api/urls/repo"
	urlssvc "searchgov/internal/services/api/urls/service"
)

// statementTimeout returns a begin hook applying SET LOCAL statement_timeout
func statementTimeout(d time.Duration) repokit.BeginHook {
	return func(ctx context.Context, q repokit.Queryer) error {
		if _, err := q.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", d.Milliseconds())); err != nil {
			return err
		}
		return nil
	}
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc urlssvc.Service
}

// New constructs a urls module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("urls"), modkit.WithPrefix("/urls")}, opts...)...)

	// bulk batches run in one tx; cap statement time so a stuck batch
	// cannot pin a pool connection
	db := repokit.WithBeginHooks(deps.PG, statementTimeout(30*time.Second))

	repo := urlsrepo.NewPG()
	svc := urlssvc.New(db, repo, logNotifier{log: deps.Log}, deps.Log)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptURLsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		urlshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
