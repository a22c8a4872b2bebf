package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/discvault/pkg/openapi"
	"github.com/JaimeStill/discvault/pkg/routes"
)

func noop(w http.ResponseWriter, r *http.Request) {}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/albums",
		Tags:   []string{"Albums"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "List albums"}},
			{Method: "POST", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Create album", Tags: []string{"Admin"}}},
			{Method: "DELETE", Pattern: "/{id}", Handler: noop},
		},
		Schemas: map[string]*openapi.Schema{
			"Album": {Type: "object"},
		},
	}

	group.AddToSpec("/api", spec)

	item := spec.Paths["/api/albums"]
	if item == nil {
		t.Fatal("path /api/albums not added to spec")
	}
	if item.Get == nil || item.Get.Tags[0] != "Albums" {
		t.Error("GET operation missing or did not inherit group tags")
	}
	if item.Post == nil || item.Post.Tags[0] != "Admin" {
		t.Error("POST operation missing or lost explicit tags")
	}
	if spec.Paths["/api/albums/{id}"] != nil {
		t.Error("route without OpenAPI should not be documented")
	}
	if spec.Components.Schemas["Album"] == nil {
		t.Error("group schema not added to components")
	}
}

func TestGroup_AddToSpec_Children(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/albums",
		Children: []routes.Group{
			{
				Prefix: "/{id}/tracks",
				Tags:   []string{"Tracks"},
				Routes: []routes.Route{
					{Method: "PUT", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Replace tracks"}},
				},
			},
		},
	}

	group.AddToSpec("/api", spec)

	item := spec.Paths["/api/albums/{id}/tracks"]
	if item == nil || item.Put == nil {
		t.Fatal("child path not added")
	}
	if item.Put.Tags[0] != "Tracks" {
		t.Errorf("child tags = %v, want [Tracks]", item.Put.Tags)
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test API", "1.0.0")

	albums := routes.Group{
		Prefix: "/albums",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: respond("albums"), OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "GET", Pattern: "/{id}", Handler: respond("album"), OpenAPI: &openapi.Operation{Summary: "Get"}},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/cover",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: respond("cover")},
				},
			},
		},
	}
	stats := routes.Group{
		Prefix: "/stats",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: respond("stats"), OpenAPI: &openapi.Operation{Summary: "Stats"}},
		},
	}

	routes.Register(mux, "/api", spec, albums, stats)

	tests := []struct {
		path string
		want string
	}{
		{"/albums", "albums"},
		{"/albums/12", "album"},
		{"/albums/12/cover", "cover"},
		{"/stats", "stats"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", body, tt.want)
			}
		})
	}

	for _, path := range []string{"/api/albums", "/api/albums/{id}", "/api/stats"} {
		if spec.Paths[path] == nil {
			t.Errorf("spec path %s not added", path)
		}
	}
}
