package module

import (
	"time"

	"hangman/internal/platform/config"
)

// Options controls history paging and transaction limits
type Options struct {
	HistoryLimit     int
	HistoryMax       int
	StatementTimeout time.Duration
}

// FromConfig reads GAMES_* and SERVICE_PGSQL_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	gc := cfg.Prefix("GAMES_")
	o := Options{
		HistoryLimit:     gc.MayInt("HISTORY_LIMIT", 20),
		HistoryMax:       gc.MayInt("HISTORY_MAX", 100),
		StatementTimeout: cfg.Prefix("SERVICE_PGSQL_").MayDuration("STATEMENT_TIMEOUT", 5*time.Second),
	}
	if o.HistoryMax < 1 {
		o.HistoryMax = 100
	}
	o.HistoryLimit = max(1, min(o.HistoryLimit, o.HistoryMax))
	return o
}
