package web_test

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/discvault/pkg/web"
)

//go:embed testdata/static/*
var staticFS embed.FS

func TestDistServer(t *testing.T) {
	handler := web.DistServer(staticFS, "testdata/static", "/dist/")

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/dist/app.js", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "console.log") {
		t.Errorf("status = %d, body = %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/dist/missing.js", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing asset status = %d, want 404", w.Code)
	}
}

func TestPublicFile(t *testing.T) {
	w := httptest.NewRecorder()
	web.PublicFile(staticFS, "testdata/static", "test.txt")(w, httptest.NewRequest(http.MethodGet, "/test.txt", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "test content") {
		t.Errorf("status = %d, body = %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	web.PublicFile(staticFS, "testdata/static", "nope.txt")(w, httptest.NewRequest(http.MethodGet, "/nope.txt", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing file status = %d, want 404", w.Code)
	}
}

func TestPublicFileRoutes(t *testing.T) {
	routes := web.PublicFileRoutes(staticFS, "testdata/static", "test.txt", "app.js")

	want := []string{"/test.txt", "/app.js"}
	if len(routes) != len(want) {
		t.Fatalf("len(routes) = %d, want %d", len(routes), len(want))
	}
	for i, route := range routes {
		if route.Method != http.MethodGet || route.Pattern != want[i] || route.Handler == nil {
			t.Errorf("route %d = %+v", i, route)
		}
	}
}

func TestServeEmbeddedFile(t *testing.T) {
	w := httptest.NewRecorder()
	web.ServeEmbeddedFile([]byte(":root{}"), "text/css; charset=utf-8")(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Header().Get("Content-Type") != "text/css; charset=utf-8" || w.Body.String() != ":root{}" {
		t.Errorf("Content-Type = %q, body = %q", w.Header().Get("Content-Type"), w.Body.String())
	}
}
