// Command hangman-migrate applies the embedded schema to Postgres and, with -ch, to ClickHouse
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"hangman/internal/core/version"
	"hangman/internal/modkit/repokit"
	"hangman/internal/platform/config"
	"hangman/internal/platform/logger"
	"hangman/internal/platform/store"
	"hangman/internal/platform/store/schema"
)

func main() {
	var (
		withCH  = flag.Bool("ch", false, "also apply the ClickHouse schema")
		dryRun  = flag.Bool("dry-run", false, "print the statements instead of running them")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall deadline")
	)
	flag.Parse()

	if *dryRun {
		printPlan(*withCH)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log := logger.Named("migrate")
	if err := run(ctx, config.New(), *withCH, log); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
	log.Info().Bool("clickhouse", *withCH).Msg("schema applied")
}

func run(ctx context.Context, root config.Conf, withCH bool, log *logger.Logger) error {
	cfg := store.FromEnv(root, "hangman-migrate", "migrate", version.Info().Version)
	cfg.PG.Enabled = true
	cfg.PG.URL = root.Prefix("SERVICE_PGSQL_").MustString("DBURL")
	cfg.CH.Enabled = withCH

	st, err := store.Open(ctx, cfg, store.WithLogger(*log))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	if err := schema.ApplyPG(ctx, st.PG); err != nil {
		return err
	}
	log.Info().Int("statements", len(schema.Statements(schema.Postgres))).Msg("postgres schema applied")

	if withCH {
		if err := schema.ApplyCH(ctx, st.CH); err != nil {
			return err
		}
		log.Info().Int("statements", len(schema.Statements(schema.ClickHouse))).Msg("clickhouse schema applied")
	}
	return nil
}

func printPlan(withCH bool) {
	for _, s := range schema.Statements(schema.Postgres) {
		fmt.Printf("-- postgres\n%s;\n\n", s)
	}
	if withCH {
		for _, s := range schema.Statements(schema.ClickHouse) {
			fmt.Printf("-- clickhouse\n%s;\n\n", s)
		}
	}
}
