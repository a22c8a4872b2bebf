package scalar_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/discvault/pkg/module"
	"github.com/JaimeStill/discvault/web/scalar"
)

func TestServeIndex(t *testing.T) {
	m, err := scalar.NewModule("/scalar", "/api/openapi.json")
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)

	for _, path := range []string{"/scalar", "/scalar/"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
			}

			contentType := resp.Header.Get("Content-Type")
			if !strings.HasPrefix(contentType, "text/html") {
				t.Errorf("Content-Type = %q, want text/html", contentType)
			}

			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), `data-url="/api/openapi.json"`) {
				t.Error("response body does not reference the OpenAPI document")
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	m, err := scalar.NewModule("/scalar", "/api/openapi.json")
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	w := httptest.NewRecorder()
	m.Serve(w, httptest.NewRequest(http.MethodGet, "/scalar/missing.js", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
