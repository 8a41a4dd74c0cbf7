// @title         Searchgov API
// @version       0.1.0
// @description   Faceted, time-bounded search over the blended backend plus bulk URL intake

package main

import (
	"context"

	"searchgov/internal/modkit/repokit"
	"searchgov/internal/platform/config"
	"searchgov/internal/platform/logger"
	phttp "searchgov/internal/platform/net/http"
	"searchgov/internal/platform/store"

	"searchgov/internal/adapters/blended"
	"searchgov/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	blCfg := root.Prefix("BLENDED_")            // blended backend endpoint

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres for url batches, clickhouse for query analytics)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "searchgov",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			CH: store.CHConfig{
				Enabled: true,
				URL:     chCfg.MustString("DBURL"),
				Role:    "api",
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// refuse to serve until both backends answer
	repokit.MustGuard(context.Background(), st)

	// blended backend client; the only outbound search dependency
	backend := blended.NewClient(blended.Options{
		BaseURL: blCfg.MustString("BASE_URL"),
		Timeout: blCfg.MayDuration("TIMEOUT", 0),
	})

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Backend:        backend,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
