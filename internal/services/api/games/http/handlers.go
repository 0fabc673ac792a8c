// Package http provides http transport for games
package http

import (
	stdhttp "net/http"

	"hangman/internal/modkit/httpkit"
	"hangman/internal/platform/net/middleware"
	"hangman/internal/services/api/games/domain"
	svc "hangman/internal/services/api/games/service"
)

// Limits bound the history page size
type Limits struct {
	Default int
	Max     int
}

// Register mounts the games endpoints behind player auth
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort, lim Limits) {
	h := &handlers{svc: s, lim: lim}
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON(pr, "/", h.record)
		httpkit.Get(pr, "/", h.history)
	})
}

type handlers struct {
	svc svc.Service
	lim Limits
}

// swagger:route POST /games Games gamesRecord
// @Summary Record a finished game
// @Tags Games
// @Accept json
// @Produce json
// @Param payload body domain.RecordInput true "Game"
// @Success 201 {object} domain.RecordResult "created"
// @Router /games [post]
func (h *handlers) record(r *stdhttp.Request, in domain.RecordInput) (any, error) {
	res, err := h.svc.Record(r.Context(), httpkit.MustUser(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(res), nil
}

// swagger:route GET /games Games gamesHistory
// @Summary Recent games, newest first
// @Tags Games
// @Produce json
// @Param limit query int false "page size"
// @Success 200 {array} domain.Game ok
// @Router /games [get]
func (h *handlers) history(r *stdhttp.Request) (any, error) {
	limit, err := httpkit.QueryInt(r, "limit", h.lim.Default)
	if err != nil {
		return nil, err
	}
	limit = min(limit, h.lim.Max)
	games, err := h.svc.History(r.Context(), httpkit.MustUser(r), limit)
	if err != nil {
		return nil, err
	}
	return httpkit.List(games, len(games), limit), nil
}
