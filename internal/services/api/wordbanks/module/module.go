// Package module wires word banks into the API using modkit
package module

import (
	modkit "hangman/internal/modkit"
	"hangman/internal/modkit/httpkit"
	"hangman/internal/platform/net/middleware"
	wbhttp "hangman/internal/services/api/wordbanks/http"
	wbrepo "hangman/internal/services/api/wordbanks/repo"
	wbsvc "hangman/internal/services/api/wordbanks/service"
)

// Ports declares what the word bank module needs injected
type Ports struct {
	Auth middleware.AuthPort
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc wbsvc.Service
}

// New constructs a word bank module, the auth port comes in through modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("wordbanks"), modkit.WithPrefix("/wordbanks")}, opts...)
	p, _ := b.Ports.(Ports)
	if p.Auth == nil {
		panic("wordbanks module requires an Auth port")
	}

	svc := wbsvc.New(deps.PG, wbrepo.NewPG(), deps.Words())
	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		wbhttp.Register(r, m.svc, p.Auth)
	})
	m.SetPorts(svc)
	return m
}
