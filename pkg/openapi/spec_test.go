package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/discvault/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("DiscVault API", "0.1.0")
	spec.SetDescription("collection")
	spec.AddServer("")
	spec.AddServer("http://localhost:8080")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("OpenAPI = %q, want 3.1.0", spec.OpenAPI)
	}
	if spec.Info.Description != "collection" {
		t.Errorf("Description = %q, want collection", spec.Info.Description)
	}
	if len(spec.Servers) != 1 {
		t.Errorf("len(Servers) = %d, want 1", len(spec.Servers))
	}
	if spec.Components == nil || spec.Paths == nil {
		t.Fatal("NewSpec() left components or paths nil")
	}
}

func TestAddOperation(t *testing.T) {
	spec := openapi.NewSpec("t", "1")

	spec.AddOperation("/albums", http.MethodGet, &openapi.Operation{Summary: "List"})
	spec.AddOperation("/albums", http.MethodPost, &openapi.Operation{Summary: "Create"})
	spec.AddOperation("/albums", http.MethodPatch, &openapi.Operation{Summary: "Ignored"})

	item := spec.Paths["/albums"]
	if item.Get == nil || item.Get.Summary != "List" {
		t.Error("GET operation incorrect")
	}
	if item.Post == nil || item.Post.Summary != "Create" {
		t.Error("POST operation incorrect")
	}
}

func TestMarshalJSON(t *testing.T) {
	spec := openapi.NewSpec("DiscVault API", "0.1.0")
	spec.AddOperation("/stats", http.MethodGet, &openapi.Operation{
		Summary:   "Stats",
		Responses: map[int]*openapi.Response{200: {Description: "ok"}},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	info := result["info"].(map[string]any)
	if info["title"] != "DiscVault API" {
		t.Errorf("info.title = %v, want DiscVault API", info["title"])
	}

	paths := result["paths"].(map[string]any)
	if _, ok := paths["/stats"]; !ok {
		t.Error("paths missing /stats")
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")

	if err := openapi.WriteJSON(openapi.NewSpec("t", "1"), path); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("spec file not written: %v", err)
	}

	if err := openapi.WriteJSON(openapi.NewSpec("t", "1"), "/nonexistent/dir/openapi.json"); err == nil {
		t.Error("WriteJSON() expected error for invalid path")
	}
}

func TestServeSpec(t *testing.T) {
	handler := openapi.ServeSpec([]byte(`{"openapi":"3.1.0"}`))

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if w.Body.String() != `{"openapi":"3.1.0"}` {
		t.Errorf("body = %q", w.Body.String())
	}
}
