// Package web provides infrastructure for serving server-rendered pages and
// embedded assets. Templates are parsed once at startup and cloned per view.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef defines a view with its route, template file, title, and bundle name.
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Bundle   string
}

// ViewData contains the data passed to templates during rendering.
// BasePath enables portable URL generation via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed templates keyed by view template name.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts matching layoutGlob and clones them for
// each view found under viewSubdir. Any parse failure is returned immediately.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		templates[v.Template] = t
	}

	return &TemplateSet{
		views:    templates,
		basePath: basePath,
	}, nil
}

// BasePath returns the mount path the templates were built for.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// ErrorHandler returns a handler that renders view with the given status code.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{Title: view.Title, Bundle: view.Bundle, BasePath: ts.basePath}
		if err := ts.RenderStatus(w, status, layout, view.Template, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// PageHandler returns a handler that renders view with status 200.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{Title: view.Title, Bundle: view.Bundle, BasePath: ts.basePath}
		if err := ts.Render(w, layout, view.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes layoutName for the view template with status 200.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, viewTemplate string, data ViewData) error {
	return ts.RenderStatus(w, http.StatusOK, layoutName, viewTemplate, data)
}

// RenderStatus executes layoutName for the view template into a buffer and
// writes it with status. Nothing is written when execution fails.
func (ts *TemplateSet) RenderStatus(w http.ResponseWriter, status int, layoutName, viewTemplate string, data ViewData) error {
	t, ok := ts.views[viewTemplate]
	if !ok {
		return fmt.Errorf("template not found: %s", viewTemplate)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
