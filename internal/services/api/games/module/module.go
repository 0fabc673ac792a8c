// Package module wires games into the API using modkit
package module

import (
	modkit "hangman/internal/modkit"
	"hangman/internal/modkit/httpkit"
	"hangman/internal/modkit/repokit"
	"hangman/internal/platform/net/middleware"
	gamesdom "hangman/internal/services/api/games/domain"
	gameshttp "hangman/internal/services/api/games/http"
	gamesrepo "hangman/internal/services/api/games/repo"
	gamessvc "hangman/internal/services/api/games/service"
)

// Ports declares what the games module needs injected
type Ports struct {
	Auth middleware.AuthPort
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc gamessvc.Service
}

// New constructs a games module, the auth port comes in through modkit.WithPorts
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("games"), modkit.WithPrefix("/games")}, opts...)

	var sink gamesdom.EventSink
	if deps.CH != nil {
		sink = deps.CH
	}
	db := repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(o.StatementTimeout))
	svc := gamessvc.New(db, gamesrepo.NewPG(), sink, deps.Logger())

	p, _ := b.Ports.(Ports)
	if p.Auth == nil {
		panic("games module requires an Auth port")
	}
	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		gameshttp.Register(r, m.svc, p.Auth, gameshttp.Limits{Default: o.HistoryLimit, Max: o.HistoryMax})
	})
	m.SetPorts(svc)
	return m
}
