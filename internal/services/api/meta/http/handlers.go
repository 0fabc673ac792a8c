// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"hangman/internal/core/wordbank"
	"hangman/internal/core/version"
	"hangman/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
// a nil PG or CH reports the check as skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/extractor", h.extractor)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"hangman-api"`
	Started string `json:"started"  example:"2026-03-01T12:00:00Z"`
	Now     string `json:"now"      example:"2026-03-01T12:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-03-01T12:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"hangman-api"`
	Started string `json:"started" example:"2026-03-01T12:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// ExtractorResponse reports the limits word bank extraction runs with
type ExtractorResponse struct {
	MinWordLen        int      `json:"min_word_len"         example:"4"`
	MaxWords          int      `json:"max_words"            example:"1000"`
	MaxNameLen        int      `json:"max_name_len"         example:"255"`
	SingleTokenMaxLen int      `json:"single_token_max_len" example:"50"`
	ListMaxLen        int      `json:"list_max_len"         example:"500"`
	Rules             []string `json:"rules"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	pg := check("pg", h.deps.PG)
	ch := check("ch", h.deps.CH)

	// postgres is required, clickhouse is an optional sink
	overall := "ok"
	switch {
	case pg.Status == "fail" || pg.Status == "skipped":
		overall = "fail"
	case pg.Status != "ok" || ch.Status == "fail" || ch.Status == "unknown":
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{pg, ch},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/extractor Meta metaExtractor
// @Summary Word bank extraction limits and classifier rule order
// @Tags Meta
// @Produce json
// @Success 200 {object} ExtractorResponse ok
// @Router /meta/extractor [get]
func (h *handlers) extractor(_ *http.Request) (any, error) {
	return ExtractorResponse{
		MinWordLen:        wordbank.MinWordLen,
		MaxWords:          wordbank.MaxWords,
		MaxNameLen:        wordbank.MaxNameLen,
		SingleTokenMaxLen: wordbank.SingleTokenMaxLen,
		ListMaxLen:        wordbank.ListMaxLen,
		Rules:             wordbank.Rules(),
	}, nil
}
