package stats_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/discvault/internal/stats"
	"github.com/JaimeStill/discvault/pkg/openapi"
	"github.com/JaimeStill/discvault/pkg/routes"
)

type stubSystem struct {
	stats *stats.Stats
	err   error
}

func (s stubSystem) Summary(context.Context) (*stats.Stats, error) {
	return s.stats, s.err
}

func serve(sys stats.System) *httptest.ResponseRecorder {
	h := stats.NewHandler(sys, slog.New(slog.NewTextHandler(io.Discard, nil)))
	mux := http.NewServeMux()
	routes.Register(mux, "/api", openapi.NewSpec("test", "0.0.0"), h.Routes())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	return w
}

func TestHandler_Summary(t *testing.T) {
	w := serve(stubSystem{stats: &stats.Stats{
		Albums:     12,
		Artists:    7,
		Genres:     3,
		Tags:       4,
		Locations:  2,
		MediaTypes: []stats.Bucket{{Key: "CD", Count: 10}, {Key: "SACD", Count: 2}},
	}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	for key, want := range map[string]float64{"albums": 12, "artists": 7, "genres": 3, "tags": 4, "locations": 2} {
		if body[key] != want {
			t.Errorf("%s = %v, want %v", key, body[key], want)
		}
	}
	if mt, ok := body["media_types"].([]any); !ok || len(mt) != 2 {
		t.Errorf("media_types = %v", body["media_types"])
	}
}

func TestHandler_Summary_Error(t *testing.T) {
	w := serve(stubSystem{err: errors.New("db down")})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
