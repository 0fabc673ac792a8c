// Package http provides http transport for word banks
package http

import (
	stdhttp "net/http"

	"hangman/internal/modkit/httpkit"
	"hangman/internal/platform/net/middleware"
	"hangman/internal/services/api/wordbanks/domain"
	svc "hangman/internal/services/api/wordbanks/service"
)

// Register mounts the word bank endpoints
// preview and defaults are public, everything else needs a player
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/preview", h.preview)
	httpkit.Get(r, "/defaults", h.defaults)

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON(pr, "/", h.create)
		httpkit.Get(pr, "/", h.list)
		httpkit.Get(pr, "/play", h.play)
		httpkit.Get(pr, "/{id}", h.get)
		pr.Delete("/{id}", httpkit.Handle(h.delete))
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /wordbanks/preview Wordbanks wordbanksPreview
// @Summary Run extraction on raw text without saving
// @Tags Wordbanks
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "Raw text"
// @Success 200 {object} domain.Preview ok
// @Router /wordbanks/preview [post]
func (h *handlers) preview(_ *stdhttp.Request, in domain.PreviewInput) (any, error) {
	return h.svc.Preview(in), nil
}

// swagger:route GET /wordbanks/defaults Wordbanks wordbanksDefaults
// @Summary Built-in categories
// @Tags Wordbanks
// @Produce json
// @Success 200 {array} catalog.Category ok
// @Router /wordbanks/defaults [get]
func (h *handlers) defaults(_ *stdhttp.Request) (any, error) {
	return h.svc.Defaults(), nil
}

// swagger:route POST /wordbanks Wordbanks wordbanksCreate
// @Summary Save a word bank extracted from raw text
// @Tags Wordbanks
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Name and raw text"
// @Success 201 {object} domain.Bank "created"
// @Router /wordbanks [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	b, err := h.svc.Create(r.Context(), httpkit.MustUser(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(b), nil
}

// swagger:route GET /wordbanks Wordbanks wordbanksList
// @Summary Word banks of the player, newest first
// @Tags Wordbanks
// @Produce json
// @Success 200 {array} domain.Bank ok
// @Router /wordbanks [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), httpkit.MustUser(r))
}

// swagger:route GET /wordbanks/{id} Wordbanks wordbanksGet
// @Summary One word bank of the player
// @Tags Wordbanks
// @Produce json
// @Param id path string true "bank id"
// @Success 200 {object} domain.Bank ok
// @Router /wordbanks/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.MustUser(r), httpkit.Param(r, "id"))
}

// swagger:route DELETE /wordbanks/{id} Wordbanks wordbanksDelete
// @Summary Delete a word bank of the player
// @Tags Wordbanks
// @Param id path string true "bank id"
// @Success 204 "deleted"
// @Router /wordbanks/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) httpkit.Response {
	if err := h.svc.Delete(r.Context(), httpkit.MustUser(r), httpkit.Param(r, "id")); err != nil {
		return httpkit.Error(err)
	}
	return httpkit.NoContent()
}

// swagger:route GET /wordbanks/play Wordbanks wordbanksPlay
// @Summary Word pool for a new game
// @Tags Wordbanks
// @Produce json
// @Param difficulty query string false "easy, medium or hard"
// @Param category query string false "built-in category key"
// @Success 200 {object} domain.Pool ok
// @Router /wordbanks/play [get]
func (h *handlers) play(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	return h.svc.Play(r.Context(), httpkit.MustUser(r), domain.PlayQuery{
		Difficulty: q.Get("difficulty"),
		Category:   q.Get("category"),
	})
}
