package web_test

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/discvault/pkg/web"
)

//go:embed testdata/layouts/*
var layoutFS embed.FS

//go:embed testdata/views/*
var viewFS embed.FS

var testViews = []web.ViewDef{
	{Route: "/", Template: "home.html", Title: "Home", Bundle: "app"},
	{Route: "/about", Template: "about.html", Title: "About", Bundle: "app"},
	{Template: "404.html", Title: "Not Found", Bundle: "app"},
	{Template: "broken.html", Title: "Broken"},
}

func newTemplateSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(layoutFS, viewFS, "testdata/layouts/*.html", "testdata/views", "/app", testViews)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSet_Errors(t *testing.T) {
	tests := []struct {
		name       string
		layoutGlob string
		viewSubdir string
		views      []web.ViewDef
	}{
		{"invalid layout glob", "nonexistent/*.html", "testdata/views", testViews},
		{"missing template", "testdata/layouts/*.html", "testdata/views", []web.ViewDef{{Template: "missing.html"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := web.NewTemplateSet(layoutFS, viewFS, tt.layoutGlob, tt.viewSubdir, "/app", tt.views)
			if err == nil {
				t.Error("NewTemplateSet() expected error")
			}
		})
	}
}

func TestRender(t *testing.T) {
	ts := newTemplateSet(t)

	w := httptest.NewRecorder()
	err := ts.Render(w, "test.html", "home.html", web.ViewData{Title: "Test", Bundle: "bundle-x", BasePath: "/app"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{"<!DOCTYPE html>", "<title>Test</title>", "Home Page", "bundle-x", `data-basepath="/app"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRender_Errors(t *testing.T) {
	ts := newTemplateSet(t)

	w := httptest.NewRecorder()
	if err := ts.Render(w, "test.html", "nonexistent.html", web.ViewData{}); err == nil {
		t.Error("Render() with unknown template should return error")
	}

	w = httptest.NewRecorder()
	if err := ts.Render(w, "test.html", "broken.html", web.ViewData{}); err == nil {
		t.Error("Render() with failing template should return error")
	}
	if w.Body.Len() != 0 {
		t.Errorf("failed render wrote %d bytes", w.Body.Len())
	}
}

func TestPageHandler(t *testing.T) {
	ts := newTemplateSet(t)

	for _, view := range testViews[:2] {
		t.Run(view.Title, func(t *testing.T) {
			w := httptest.NewRecorder()
			ts.PageHandler("test.html", view)(w, httptest.NewRequest(http.MethodGet, "/app"+view.Route, nil))

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", w.Code)
			}
			if !strings.Contains(w.Body.String(), view.Title+" Page") {
				t.Errorf("body missing %q", view.Title+" Page")
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	ts := newTemplateSet(t)

	w := httptest.NewRecorder()
	ts.ErrorHandler("test.html", testViews[2], http.StatusNotFound)(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<title>Not Found</title>") || !strings.Contains(body, "404 Not Found") {
		t.Errorf("body = %q", body)
	}

	if ts.BasePath() != "/app" {
		t.Errorf("BasePath() = %q, want /app", ts.BasePath())
	}
}
