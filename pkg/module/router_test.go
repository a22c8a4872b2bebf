package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/discvault/pkg/module"
)

func echoPath() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	})
}

func TestRouter_HandleNative(t *testing.T) {
	r := module.NewRouter()

	r.HandleNative("GET /healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Mount(module.New("/api", echoPath()))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	body, _ := io.ReadAll(w.Result().Body)
	if string(body) != "ok" {
		t.Errorf("body = %q, want %q", string(body), "ok")
	}
}

func TestRouter_MultipleModules(t *testing.T) {
	r := module.NewRouter()

	r.Mount(module.New("/api", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("api"))
	})))
	r.Mount(module.New("/app", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("app"))
	})))

	tests := []struct {
		path string
		want string
	}{
		{"/api/albums", "api"},
		{"/app/collection", "app"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", string(body), tt.want)
			}
		})
	}

	if got := len(r.Modules()); got != 2 {
		t.Errorf("len(Modules()) = %d, want 2", got)
	}
}

func TestRouter_PathNormalization(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/api", echoPath()))

	tests := []struct {
		name       string
		inputPath  string
		wantPath   string
		wantStatus int
	}{
		{"strips trailing slash", "/api/albums/", "/albums", http.StatusOK},
		{"no change without slash", "/api/albums", "/albums", http.StatusOK},
		{"root path unmatched", "/", "/", http.StatusNotFound},
		{"module root with slash", "/api/", "/", http.StatusOK},
		{"deep path trailing slash", "/api/albums/42/tracks/", "/albums/42/tracks", http.StatusOK},
		{"unknown module", "/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.inputPath, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			resp := w.Result()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantPath {
					t.Errorf("path = %q, want %q", string(body), tt.wantPath)
				}
			}
		})
	}
}

func TestRouter_PathNormalizationEscaped(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/api", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(req.URL.EscapedPath()))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/genres/rock%2Fpop/", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	body, _ := io.ReadAll(w.Result().Body)
	if string(body) != "/genres/rock%2Fpop" {
		t.Errorf("escaped path = %q, want %q", string(body), "/genres/rock%2Fpop")
	}
}
