package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/discvault/pkg/web"
)

func TestRouter_Routes(t *testing.T) {
	r := web.NewRouter()

	r.HandleFunc("GET /albums/:id", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("album " + web.Param(req, "id")))
	})
	r.HandleFunc("GET /dist/*filepath", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("asset " + web.Param(req, "filepath")))
	})
	r.Handle("POST /submit", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("submitted"))
	}))

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/albums/42", "album 42"},
		{http.MethodGet, "/dist/js/app.js", "asset /js/app.js"},
		{http.MethodPost, "/submit", "submitted"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.want)
			}
		})
	}
}

func TestRouter_Fallback(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /exists", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("exists"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status without fallback = %d, want 404", w.Code)
	}

	r.SetFallback(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("custom 404"))
	})

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))
	if w.Body.String() != "custom 404" {
		t.Errorf("body = %q, want custom 404", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/exists", nil))
	if w.Body.String() != "exists" {
		t.Errorf("matched route body = %q, want exists", w.Body.String())
	}
}

func TestRouter_InvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Handle() with invalid pattern did not panic")
		}
	}()

	web.NewRouter().HandleFunc("/no-method", func(w http.ResponseWriter, req *http.Request) {})
}
