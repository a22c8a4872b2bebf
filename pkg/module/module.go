// Package module provides prefix-mounted HTTP modules and a top-level router
// that dispatches requests to them by their first path segment.
package module

import (
	"net/http"
	"strings"
)

// Module is an http.Handler mounted under a single-segment prefix with its own middleware.
type Module struct {
	prefix      string
	router      http.Handler
	middlewares []func(http.Handler) http.Handler
}

// New creates a module for prefix. The prefix must be a single path segment
// starting with "/" (for example "/api"); New panics otherwise.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix: prefix,
		router: router,
	}
}

// Prefix returns the module mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. Middleware runs in registration order.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middlewares = append(m.middlewares, mw)
}

// Handler returns the module router wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	h := m.router
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		h = m.middlewares[i](h)
	}
	return h
}

// Serve strips the module prefix from the request path and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	if r.URL.RawPath != "" {
		raw := strings.TrimPrefix(r.URL.RawPath, m.prefix)
		if raw == "" {
			raw = "/"
		}
		r2.URL.RawPath = raw
	}

	m.Handler().ServeHTTP(w, r2)
}

type invalidPrefixError string

func (e invalidPrefixError) Error() string {
	return "module: invalid prefix " + string(e)
}

func validatePrefix(prefix string) error {
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return invalidPrefixError(prefix)
	}
	if strings.Contains(prefix[1:], "/") || len(prefix) == 1 {
		return invalidPrefixError(prefix)
	}
	return nil
}
