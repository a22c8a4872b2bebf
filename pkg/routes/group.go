// Package routes groups HTTP handlers with their OpenAPI operations so that a
// single registration populates both the ServeMux and the API document.
package routes

import (
	"net/http"

	"github.com/JaimeStill/discvault/pkg/openapi"
)

// Route binds a method and pattern to a handler and its documentation.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec adds the group's operations and schemas to spec. Paths are
// prefixed with basePath. Operations without tags inherit the group tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath+g.Prefix, spec)
}

func (g *Group) addToSpec(prefix string, spec *openapi.Spec) {
	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}

		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}

	for _, child := range g.Children {
		child.addToSpec(prefix+child.Prefix, spec)
	}
}

// Register mounts each group on mux relative to the module root and
// documents it in spec under basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		register(mux, group.Prefix, group)
		group.AddToSpec(basePath, spec)
	}
}

func register(mux *http.ServeMux, prefix string, group Group) {
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		register(mux, prefix+child.Prefix, child)
	}
}
