// Package modkit provides module wiring and core deps
package modkit

import (
	"hangman/internal/core/catalog"
	"hangman/internal/modkit/repokit"
	"hangman/internal/platform/config"
	"hangman/internal/platform/logger"
	"hangman/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// CH is nil unless the analytics sink is enabled
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	PG      repokit.TxRunner
	CH      store.Clickhouse
	Catalog *catalog.Catalog
}

// Logger returns Log or the root logger
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}

// Words returns Catalog or the embedded defaults
func (d Deps) Words() *catalog.Catalog {
	if d.Catalog != nil {
		return d.Catalog
	}
	return catalog.MustDefault()
}
