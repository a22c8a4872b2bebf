package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by first path segment and
// falls back to a native ServeMux for top-level endpoints such as /healthz.
type Router struct {
	native  *http.ServeMux
	modules map[string]*Module
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		native:  http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// HandleNative registers a handler on the native mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers a module under its prefix.
func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

// Modules returns the mounted module prefixes.
func (r *Router) Modules() []string {
	prefixes := make([]string, 0, len(r.modules))
	for p := range r.modules {
		prefixes = append(prefixes, p)
	}
	return prefixes
}

// ServeHTTP normalizes trailing slashes and dispatches to a module or the native mux.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
		req.URL.Path = path
		if raw := req.URL.RawPath; raw != "" {
			raw = strings.TrimRight(raw, "/")
			if raw == "" {
				raw = "/"
			}
			req.URL.RawPath = raw
		}
	}

	if m, ok := r.modules[firstSegment(path)]; ok {
		m.Serve(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	rest := path[1:]
	if i := strings.Index(rest, "/"); i >= 0 {
		return "/" + rest[:i]
	}
	return path
}
