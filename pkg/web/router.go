package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// Router registers handlers with httprouter using "METHOD /path" patterns.
// Paths use httprouter syntax: ":name" for a segment, "*name" for a catch-all.
type Router struct {
	hr *httprouter.Router
}

// NewRouter creates a Router. Trailing slash handling is left to the caller.
func NewRouter() *Router {
	hr := httprouter.New()
	hr.RedirectTrailingSlash = false
	hr.RedirectFixedPath = false
	return &Router{hr: hr}
}

// Handle registers h for pattern. It panics on malformed or conflicting patterns.
func (r *Router) Handle(pattern string, h http.Handler) {
	method, path, ok := strings.Cut(pattern, " ")
	if !ok || method == "" || !strings.HasPrefix(path, "/") {
		panic(fmt.Sprintf("web: invalid pattern %q", pattern))
	}
	r.hr.Handler(method, path, h)
}

// HandleFunc registers fn for pattern.
func (r *Router) HandleFunc(pattern string, fn http.HandlerFunc) {
	r.Handle(pattern, fn)
}

// SetFallback sets the handler used when no route matches.
func (r *Router) SetFallback(fn http.HandlerFunc) {
	r.hr.NotFound = fn
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

// Param returns the named route parameter captured for req.
func Param(req *http.Request, name string) string {
	return httprouter.ParamsFromContext(req.Context()).ByName(name)
}
