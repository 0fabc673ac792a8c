// Package http provides http transport for players
package http

import (
	stdhttp "net/http"

	"hangman/internal/modkit/httpkit"
	"hangman/internal/platform/net/middleware"
	"hangman/internal/services/api/users/domain"
	svc "hangman/internal/services/api/users/service"
)

// Register mounts the users endpoints
// signup trusts the identity provider uid, the rest need a registered player
func Register(r httpkit.Router, s svc.Service, signup, player middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Protected(r, signup, func(pr httpkit.Router) {
		httpkit.PostJSON(pr, "/register", h.register)
	})
	httpkit.Protected(r, player, func(pr httpkit.Router) {
		httpkit.Get(pr, "/me/stats", h.stats)
		httpkit.PutJSON(pr, "/me/active-word-bank", h.setActiveBank)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /users/register Users usersRegister
// @Summary Register the signed in player
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.RegisterInput true "Profile"
// @Success 201 {object} domain.RegisterResult "created"
// @Success 200 {object} domain.RegisterResult "already registered"
// @Router /users/register [post]
func (h *handlers) register(r *stdhttp.Request, in domain.RegisterInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	res, err := h.svc.Register(r.Context(), uid, in)
	if err != nil {
		return nil, err
	}
	if res.Created {
		return httpkit.Created(res), nil
	}
	return res, nil
}

// swagger:route GET /users/me/stats Users usersStats
// @Summary Aggregate stats of the player
// @Tags Users
// @Produce json
// @Success 200 {object} domain.Stats ok
// @Router /users/me/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.Stats(r.Context(), httpkit.MustUser(r))
}

// swagger:route PUT /users/me/active-word-bank Users usersActiveBank
// @Summary Select the word bank used for new games
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.ActiveBankInput true "Bank id or default"
// @Success 200 {object} domain.Stats ok
// @Router /users/me/active-word-bank [put]
func (h *handlers) setActiveBank(r *stdhttp.Request, in domain.ActiveBankInput) (any, error) {
	return h.svc.SetActiveWordBank(r.Context(), httpkit.MustUser(r), in)
}
