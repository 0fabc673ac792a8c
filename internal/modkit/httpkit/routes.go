package httpkit

import (
	"net/http"

	perr "hangman/internal/platform/errors"
	pnet "hangman/internal/platform/net"
	"hangman/internal/platform/net/middleware"
)

// APIV1 is the path every module is mounted under
const APIV1 = "/api/v1"

// MountUnder mounts a subrouter at prefix, mw wraps every route mount registers
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPIV1 mounts the versioned API tree
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, APIV1, mw, mount)
}

// Protected groups routes that resolve the bearer token through p first
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}

// User returns the player id Protected stored on the request
func User(r *http.Request) (string, error) {
	if uid := pnet.UserID(r.Context()); uid != "" {
		return uid, nil
	}
	return "", perr.Unauthorizedf("missing bearer token")
}

// MustUser is User for handlers mounted with Protected
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}
