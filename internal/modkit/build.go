package modkit

import (
	"net/http"

	"hangman/internal/modkit/httpkit"
	str "hangman/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(httpkit.Router)
}

// Build applies Option funcs over defaults and returns a plain struct
func Build(defaults []Option, opts ...Option) Built {
	var c buildCfg
	for _, o := range append(append([]Option(nil), defaults...), opts...) {
		o(&c)
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Base carries the routing half of a Module
// modules embed it and set their exported ports with SetPorts
type Base struct {
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	ports    any
	register func(httpkit.Router)
}

// NewBase mounts register followed by any extra register hook from b
func NewBase(b Built, register func(httpkit.Router)) Base {
	external := b.Register
	return Base{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		register: func(r httpkit.Router) {
			if register != nil {
				register(r)
			}
			if external != nil {
				external(r)
			}
		},
	}
}

// MountRoutes mounts the module under its prefix with its middlewares
func (m *Base) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, m.register)
}

// Name returns the module name
func (m *Base) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Base) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Base) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Base) Ports() any { return m.ports }

// SetPorts sets the ports returned by Ports
func (m *Base) SetPorts(p any) { m.ports = p }
