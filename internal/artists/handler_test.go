package artists_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/discvault/internal/artists"
	"github.com/JaimeStill/discvault/pkg/openapi"
	"github.com/JaimeStill/discvault/pkg/pagination"
	"github.com/JaimeStill/discvault/pkg/routes"
)

type memSystem struct {
	artists map[int64]artists.Artist
	next    int64
	filters artists.Filters
}

func newMemSystem() *memSystem {
	return &memSystem{artists: make(map[int64]artists.Artist), next: 1}
}

func (m *memSystem) List(_ context.Context, page pagination.PageRequest, filters artists.Filters) (*pagination.PageResult[artists.Artist], error) {
	m.filters = filters
	data := make([]artists.Artist, 0, len(m.artists))
	for _, a := range m.artists {
		data = append(data, a)
	}
	result := pagination.NewPageResult(data, len(data), page.Page, page.PageSize)
	return &result, nil
}

func (m *memSystem) Find(_ context.Context, id int64) (*artists.Artist, error) {
	a, ok := m.artists[id]
	if !ok {
		return nil, artists.ErrNotFound
	}
	return &a, nil
}

func (m *memSystem) Create(_ context.Context, cmd artists.CreateCommand) (*artists.Artist, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, artists.ErrInvalid
	}
	for _, a := range m.artists {
		if strings.EqualFold(a.Name, cmd.Name) {
			return nil, artists.ErrDuplicate
		}
	}
	a := artists.Artist{ID: m.next, Name: cmd.Name}
	m.artists[a.ID] = a
	m.next++
	return &a, nil
}

func (m *memSystem) Update(_ context.Context, id int64, cmd artists.UpdateCommand) (*artists.Artist, error) {
	a, ok := m.artists[id]
	if !ok {
		return nil, artists.ErrNotFound
	}
	a.Name = cmd.Name
	m.artists[id] = a
	return &a, nil
}

func (m *memSystem) Delete(_ context.Context, id int64) error {
	if _, ok := m.artists[id]; !ok {
		return artists.ErrNotFound
	}
	delete(m.artists, id)
	return nil
}

func newMux(sys artists.System) *http.ServeMux {
	h := artists.NewHandler(sys, slog.New(slog.NewTextHandler(io.Discard, nil)), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
	mux := http.NewServeMux()
	routes.Register(mux, "/api", openapi.NewSpec("test", "0.0.0"), h.Routes())
	return mux
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, target, r))
	return w
}

func TestHandler_CRUD(t *testing.T) {
	sys := newMemSystem()
	mux := newMux(sys)

	w := do(mux, http.MethodPost, "/artists", `{"name":"John Coltrane"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var created artists.Artist
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if w := do(mux, http.MethodGet, "/artists/1", ""); w.Code != http.StatusOK {
		t.Errorf("find status = %d, want 200", w.Code)
	}

	if w := do(mux, http.MethodPut, "/artists/1", `{"name":"Alice Coltrane"}`); w.Code != http.StatusOK {
		t.Errorf("update status = %d, want 200", w.Code)
	}
	if sys.artists[1].Name != "Alice Coltrane" {
		t.Errorf("name = %q, want Alice Coltrane", sys.artists[1].Name)
	}

	if w := do(mux, http.MethodDelete, "/artists/1", ""); w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", w.Code)
	}
	if w := do(mux, http.MethodGet, "/artists/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("find after delete status = %d, want 404", w.Code)
	}
}

func TestHandler_Errors(t *testing.T) {
	sys := newMemSystem()
	sys.artists[1] = artists.Artist{ID: 1, Name: "Nina Simone"}
	mux := newMux(sys)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"invalid id", http.MethodGet, "/artists/abc", "", http.StatusBadRequest},
		{"zero id", http.MethodGet, "/artists/0", "", http.StatusBadRequest},
		{"missing", http.MethodGet, "/artists/99", "", http.StatusNotFound},
		{"bad json", http.MethodPost, "/artists", "{", http.StatusBadRequest},
		{"empty name", http.MethodPost, "/artists", `{"name":" "}`, http.StatusBadRequest},
		{"duplicate", http.MethodPost, "/artists", `{"name":"nina simone"}`, http.StatusConflict},
		{"delete missing", http.MethodDelete, "/artists/42", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(mux, tt.method, tt.target, tt.body); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestHandler_List_Filters(t *testing.T) {
	sys := newMemSystem()
	mux := newMux(sys)

	w := do(mux, http.MethodGet, "/artists?name=davis&page=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if sys.filters.Name == nil || *sys.filters.Name != "davis" {
		t.Errorf("filters.Name = %v, want davis", sys.filters.Name)
	}

	var result pagination.PageResult[artists.Artist]
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Page != 2 || result.Data == nil {
		t.Errorf("result = %+v", result)
	}
}
