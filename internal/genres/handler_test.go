package genres_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/discvault/internal/genres"
	"github.com/JaimeStill/discvault/pkg/openapi"
	"github.com/JaimeStill/discvault/pkg/pagination"
	"github.com/JaimeStill/discvault/pkg/routes"
)

type stubSystem struct {
	genres.System
	created genres.CreateCommand
	err     error
}

func (s *stubSystem) Create(_ context.Context, cmd genres.CreateCommand) (*genres.Genre, error) {
	s.created = cmd
	if s.err != nil {
		return nil, s.err
	}
	return &genres.Genre{ID: 1, Name: cmd.Name, Description: cmd.Description}, nil
}

func (s *stubSystem) Delete(_ context.Context, id int64) error {
	return s.err
}

func newMux(sys genres.System) *http.ServeMux {
	h := genres.NewHandler(sys, slog.New(slog.NewTextHandler(io.Discard, nil)), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
	mux := http.NewServeMux()
	routes.Register(mux, "/api", openapi.NewSpec("test", "0.0.0"), h.Routes())
	return mux
}

func TestHandler_Create(t *testing.T) {
	sys := &stubSystem{}
	mux := newMux(sys)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/genres", strings.NewReader(`{"name":"Jazz","description":"Swing and beyond"}`)))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if sys.created.Name != "Jazz" || sys.created.Description == nil {
		t.Errorf("created = %+v", sys.created)
	}
}

func TestHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		method string
		target string
		body   string
		want   int
	}{
		{"duplicate", genres.ErrDuplicate, http.MethodPost, "/genres", `{"name":"Jazz"}`, http.StatusConflict},
		{"invalid", genres.ErrInvalid, http.MethodPost, "/genres", `{"name":""}`, http.StatusBadRequest},
		{"delete missing", genres.ErrNotFound, http.MethodDelete, "/genres/3", "", http.StatusNotFound},
		{"delete ok", nil, http.MethodDelete, "/genres/3", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newMux(&stubSystem{err: tt.err})

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, body))

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
