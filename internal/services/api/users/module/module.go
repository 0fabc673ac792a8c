// Package module wires players into the API using modkit
package module

import (
	"context"
	"strings"

	modkit "hangman/internal/modkit"
	"hangman/internal/modkit/httpkit"
	"hangman/internal/platform/net/middleware"
	usersdom "hangman/internal/services/api/users/domain"
	usershttp "hangman/internal/services/api/users/http"
	usersrepo "hangman/internal/services/api/users/repo"
	userssvc "hangman/internal/services/api/users/service"
)

// Ports are what other modules take from users
// Player resolves the bearer uid to a registered player id
type Ports struct {
	Resolver usersdom.Resolver
	Signup   middleware.AuthPort
	Player   middleware.AuthPort
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc userssvc.Service
}

// New constructs a users module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("users"), modkit.WithPrefix("/users")}, opts...)
	svc := userssvc.New(deps.PG, usersrepo.NewPG())

	p := Ports{
		Resolver: svc,
		Signup:   httpkit.NewPortFunc(signupToken),
		Player:   httpkit.NewPortFunc(svc.Resolve),
	}
	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		usershttp.Register(r, m.svc, p.Signup, p.Player)
	})
	m.SetPorts(p)
	return m
}

// signupToken accepts the identity provider uid as is
func signupToken(_ context.Context, token string) (string, error) {
	return strings.TrimSpace(token), nil
}
