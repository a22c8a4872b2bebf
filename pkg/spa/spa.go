// Package spa holds a client-side route table: the ordered mapping from URL
// path patterns to view components that a single-page application's router
// consumes. The server uses the same table to resolve deep links into the
// application shell and to publish a manifest for the client bundle.
package spa

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrDuplicateName  = errors.New("duplicate route name")
	ErrDuplicatePath  = errors.New("duplicate route path")
	ErrInvalidPattern = errors.New("invalid route pattern")
	ErrInvalidRoute   = errors.New("invalid route")
	ErrUnknownRoute   = errors.New("unknown route")
	ErrMissingParam   = errors.New("missing route parameter")
)

// Route maps a path pattern to a view component.
// Path segments starting with ":" are named parameters.
type Route struct {
	Path string `json:"path"`
	Name string `json:"name"`
	View string `json:"view"`
	Lazy bool   `json:"lazy"`
}

// Chunk returns the deferred bundle path for lazy routes and "" otherwise.
func (r Route) Chunk() string {
	if !r.Lazy {
		return ""
	}
	return "views/" + r.View + ".js"
}

// Match is the result of resolving a request path.
type Match struct {
	Route  Route             `json:"route"`
	Params map[string]string `json:"params"`
}

// ManifestEntry is the client-facing form of a Route.
type ManifestEntry struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	View  string `json:"view"`
	Lazy  bool   `json:"lazy"`
	Chunk string `json:"chunk,omitempty"`
}

type segment struct {
	literal string
	param   string
}

type compiled struct {
	route    Route
	segments []segment
}

// Table is an ordered, validated set of routes. It is immutable after NewTable.
type Table struct {
	routes []compiled
	byName map[string]int
}

// NewTable compiles and validates routes in declared order.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]compiled, 0, len(routes)),
		byName: make(map[string]int, len(routes)),
	}
	paths := make(map[string]string, len(routes))

	for _, r := range routes {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: route %q has no name", ErrInvalidRoute, r.Path)
		}
		if r.View == "" {
			return nil, fmt.Errorf("%w: route %q has no view", ErrInvalidRoute, r.Name)
		}

		segs, err := compile(r.Path)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Name, err)
		}

		if _, ok := t.byName[r.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}

		norm := normalize(r.Path)
		if other, ok := paths[norm]; ok {
			return nil, fmt.Errorf("%w: %s (%s, %s)", ErrDuplicatePath, norm, other, r.Name)
		}

		paths[norm] = r.Name
		t.byName[r.Name] = len(t.routes)
		t.routes = append(t.routes, compiled{route: r, segments: segs})
	}

	return t, nil
}

// MustTable is NewTable for package-level tables; it panics on error.
func MustTable(routes ...Route) *Table {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

// Routes returns the routes in declared order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	for i, c := range t.routes {
		out[i] = c.route
	}
	return out
}

// Lookup returns the route registered under name.
func (t *Table) Lookup(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i].route, true
}

// Resolve matches path against the table in declared order. The first
// matching route wins. A trailing slash on path is ignored and parameter
// values are unescaped.
func (t *Table) Resolve(path string) (Match, bool) {
	parts := split(normalize(path))

	for _, c := range t.routes {
		if params, ok := c.match(parts); ok {
			return Match{Route: c.route, Params: params}, true
		}
	}

	return Match{}, false
}

// Build produces the concrete path for the named route, escaping each parameter.
func (t *Table) Build(name string, params map[string]string) (string, error) {
	i, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	c := t.routes[i]
	if len(c.segments) == 0 {
		return "/", nil
	}

	var b strings.Builder
	for _, s := range c.segments {
		b.WriteByte('/')
		if s.param == "" {
			b.WriteString(s.literal)
			continue
		}
		v, ok := params[s.param]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %s requires %q", ErrMissingParam, name, s.param)
		}
		b.WriteString(url.PathEscape(v))
	}

	return b.String(), nil
}

// Manifest returns the table in its client-facing form.
func (t *Table) Manifest() []ManifestEntry {
	out := make([]ManifestEntry, len(t.routes))
	for i, c := range t.routes {
		out[i] = ManifestEntry{
			Path:  c.route.Path,
			Name:  c.route.Name,
			View:  c.route.View,
			Lazy:  c.route.Lazy,
			Chunk: c.route.Chunk(),
		}
	}
	return out
}

func (c compiled) match(parts []string) (map[string]string, bool) {
	if len(parts) != len(c.segments) {
		return nil, false
	}

	params := make(map[string]string)
	for i, s := range c.segments {
		if s.param == "" {
			if parts[i] != s.literal {
				return nil, false
			}
			continue
		}

		if parts[i] == "" {
			return nil, false
		}
		v, err := url.PathUnescape(parts[i])
		if err != nil {
			return nil, false
		}
		params[s.param] = v
	}

	return params, true
}

func compile(pattern string) ([]segment, error) {
	if pattern == "" || !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, pattern)
	}

	parts := split(normalize(pattern))
	segs := make([]segment, 0, len(parts))
	seen := make(map[string]bool)

	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, pattern)
		}
		if !strings.HasPrefix(p, ":") {
			segs = append(segs, segment{literal: p})
			continue
		}

		name := p[1:]
		if name == "" {
			return nil, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, pattern)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, pattern, name)
		}
		seen[name] = true
		segs = append(segs, segment{param: name})
	}

	return segs, nil
}

func normalize(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}

func split(path string) []string {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
