// Package app provides the SPA shell module with embedded templates and assets.
// Every client route is served the same shell; the bootstrap payload tells the
// client bundle which view the server resolved.
package app

import (
	"embed"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JaimeStill/discvault/pkg/module"
	"github.com/JaimeStill/discvault/pkg/spa"
	"github.com/JaimeStill/discvault/pkg/theme"
	"github.com/JaimeStill/discvault/pkg/web"
)

//go:embed dist
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"favicon.svg",
}

var (
	shellView    = web.ViewDef{Template: "shell.html", Title: "DiscVault", Bundle: "app"}
	notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}
)

// Bootstrap is embedded in the shell as JSON so the client can mount the
// resolved view without a second round trip.
type Bootstrap struct {
	Route  string            `json:"route"`
	Path   string            `json:"path"`
	View   string            `json:"view"`
	Params map[string]string `json:"params"`
	Chunk  string            `json:"chunk,omitempty"`
}

// NewModule creates the app module mounted at basePath, serving the route
// table in table and the tokens in th.
func NewModule(basePath string, table *spa.Table, th *theme.Theme) (*module.Module, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		[]web.ViewDef{shellView, notFoundView},
	)
	if err != nil {
		return nil, err
	}

	manifest, err := json.Marshal(table.Manifest())
	if err != nil {
		return nil, err
	}

	router := buildRouter(ts, table, th, manifest)
	return module.New(basePath, router), nil
}

func buildRouter(ts *web.TemplateSet, table *spa.Table, th *theme.Theme, manifest []byte) http.Handler {
	notFound := ts.ErrorHandler(layout, notFoundView, http.StatusNotFound)

	// Client routes resolve through the table rather than httprouter so
	// declaration order decides matches and overlapping patterns never conflict.
	r := web.NewRouter()
	r.SetFallback(shellHandler(ts, table, notFound))

	r.HandleFunc("GET /theme.css", web.ServeEmbeddedFile([]byte(th.CSS()), "text/css; charset=utf-8"))
	r.HandleFunc("GET /routes.json", web.ServeEmbeddedFile(manifest, "application/json"))
	r.HandleFunc("GET /dist/*filepath", web.DistServer(distFS, "dist", "/dist/"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}

func shellHandler(ts *web.TemplateSet, table *spa.Table, notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			notFound(w, r)
			return
		}

		match, ok := table.Resolve(r.URL.EscapedPath())
		if !ok {
			notFound(w, r)
			return
		}

		data := web.ViewData{
			Title:    title(match.Route),
			Bundle:   shellView.Bundle,
			BasePath: ts.BasePath(),
			Data: Bootstrap{
				Route:  match.Route.Name,
				Path:   r.URL.Path,
				View:   match.Route.View,
				Params: match.Params,
				Chunk:  match.Route.Chunk(),
			},
		}

		if err := ts.Render(w, layout, shellView.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// title derives a page title from the route name, e.g. "album-detail"
// becomes "Album Detail · DiscVault".
func title(route spa.Route) string {
	words := strings.Split(route.Name, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ") + " · " + shellView.Title
}
