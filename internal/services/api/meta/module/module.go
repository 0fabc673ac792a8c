// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"hangman/internal/core/version"
	modkit "hangman/internal/modkit"
	"hangman/internal/modkit/httpkit"

	metahttp "hangman/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)

	m := &Module{startedAt: time.Now()}
	d := metahttp.Deps{ServiceName: version.Service, StartedAt: m.startedAt}
	if deps.PG != nil {
		d.PG = deps.PG
	}
	if deps.CH != nil {
		d.CH = deps.CH
	}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) { metahttp.Register(r, d) })
	return m
}
