// Command hangman-api serves players, games and word banks over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hangman/internal/core/catalog"
	"hangman/internal/core/version"
	"hangman/internal/modkit/repokit"
	"hangman/internal/platform/config"
	"hangman/internal/platform/logger"
	phttp "hangman/internal/platform/net/http"
	"hangman/internal/platform/store"

	"hangman/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// postgres is required, clickhouse only when SERVICE_CLICKHOUSE_ENABLED is set
	cfg := store.FromEnv(root, version.Service, "api", version.Info().Version)
	cfg.PG.Enabled = true
	cfg.PG.URL = root.Prefix("SERVICE_PGSQL_").MustString("DBURL")

	st, err := store.Open(ctx, cfg, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// http server (reads CORE_API_PORT / CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	opts := api.FromConfig(root)
	opts.Store = st
	opts.Logger = l
	opts.Catalog = catalog.MustDefault()
	api.Mount(srv.Router(), opts)

	l.Info().
		Bool("clickhouse", st.CH != nil).
		Str("version", version.Info().Version).
		Msg("hangman api starting")

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
