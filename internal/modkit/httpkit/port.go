package httpkit

import (
	"context"
	"net/http"
	"strings"

	perrs "hangman/internal/platform/errors"
)

// TokenFunc turns a bearer token into a user id
type TokenFunc func(ctx context.Context, token string) (userID string, err error)

// Port implements middleware.AuthPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a simple parser function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// Bearer returns the raw token of an Authorization: Bearer header
// the scheme is case insensitive
func Bearer(r *http.Request) (string, error) {
	s := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer"
	if len(s) <= len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(s[len(prefix):])
	if raw == "" || raw == s[len(prefix):] {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}

// Parse returns the user id behind the bearer token
// a parser failure keeps its code when it is already a platform error
func (p *Port) Parse(r *http.Request) (string, error) {
	raw, err := Bearer(r)
	if err != nil {
		return "", err
	}
	if p == nil || p.parse == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	uid, err := p.parse(r.Context(), raw)
	if err != nil {
		if _, ok := perrs.As(err); ok {
			return "", err
		}
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	if uid == "" {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return uid, nil
}
