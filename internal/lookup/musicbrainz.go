package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/JaimeStill/discvault/internal/metrics"
	"github.com/JaimeStill/discvault/pkg/cache"
)

const (
	cacheKeyPrefix = "musicbrainz:barcode:"
	breakerName    = "musicbrainz"
)

// errNoMatch marks an upstream 404; it is a valid answer and does not trip the breaker.
var errNoMatch = errors.New("musicbrainz: no match")

type musicBrainz struct {
	cfg     *Config
	baseURL *url.URL
	client  *http.Client
	cache   cache.System
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// New creates a MusicBrainz-backed lookup system. Successful lookups are stored in store.
func New(cfg *Config, store cache.System, logger *slog.Logger) (System, error) {
	raw := cfg.BaseURL
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	logger = logger.With("system", "lookup")

	mb := &musicBrainz{
		cfg:     cfg,
		baseURL: base,
		client:  &http.Client{Timeout: cfg.TimeoutDuration()},
		cache:   store,
		limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
		logger:  logger,
	}

	mb.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeoutDuration(),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNoMatch) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(float64(gobreaker.StateClosed))

	return mb, nil
}

func (m *musicBrainz) LookupBarcode(ctx context.Context, barcode string) (*Release, error) {
	barcode, err := NormalizeBarcode(barcode)
	if err != nil {
		return nil, err
	}

	key := cacheKeyPrefix + barcode
	cached, err := cache.GetJSON[Release](ctx, m.cache, key)
	switch {
	case err == nil:
		metrics.CacheLookupsTotal.WithLabelValues(breakerName, "hit").Inc()
		return &cached, nil
	case errors.Is(err, cache.ErrMiss):
		metrics.CacheLookupsTotal.WithLabelValues(breakerName, "miss").Inc()
	default:
		metrics.CacheLookupsTotal.WithLabelValues(breakerName, "error").Inc()
		m.logger.Warn("cache read failed", "key", key, "error", err)
	}

	var search searchResponse
	params := url.Values{"query": {"barcode:" + barcode}}
	if err := m.get(ctx, "search", "release/", params, &search); err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(search.Releases) == 0 {
		return nil, ErrNotFound
	}

	found := search.Releases[0]
	var detail *mbRelease
	if found.ID != "" {
		var d mbRelease
		params := url.Values{"inc": {"recordings+media+tags+release-groups"}}
		if err := m.get(ctx, "release", "release/"+url.PathEscape(found.ID), params, &d); err != nil {
			m.logger.Warn("release detail unavailable", "mbid", found.ID, "error", err)
		} else {
			detail = &d
		}
	}

	release := toRelease(barcode, found, detail, m.cfg.CoverArtURL)

	if err := cache.SetJSON(ctx, m.cache, key, release, m.cfg.CacheTTLDuration()); err != nil {
		m.logger.Warn("cache write failed", "key", key, "error", err)
	}

	m.logger.Info("barcode resolved", "barcode", barcode, "mbid", release.MBID, "tracks", len(release.Tracks))
	return &release, nil
}

// get performs one rate limited, breaker guarded request and decodes the JSON body into out.
func (m *musicBrainz) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	start := time.Now()
	_, err := m.breaker.Execute(func() (interface{}, error) {
		return nil, m.do(ctx, path, params, out)
	})

	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, errNoMatch):
		outcome = "not_found"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	metrics.MusicBrainzRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.logger.Debug("musicbrainz request", "endpoint", endpoint, "outcome", outcome, "duration", time.Since(start))

	switch outcome {
	case "ok", "not_found":
		return err
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

func (m *musicBrainz) do(ctx context.Context, path string, params url.Values, out any) error {
	u := m.baseURL.ResolveReference(&url.URL{Path: path})
	params.Set("fmt", "json")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", m.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNoMatch
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, u.Path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", u.Path, err)
	}
	return nil
}

// NormalizeBarcode strips surrounding whitespace and checks the barcode is
// an 8 to 14 digit EAN/UPC code.
func NormalizeBarcode(barcode string) (string, error) {
	barcode = strings.TrimSpace(barcode)
	if len(barcode) < 8 || len(barcode) > 14 {
		return "", fmt.Errorf("%w: %q", ErrInvalidBarcode, barcode)
	}
	for _, r := range barcode {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidBarcode, barcode)
		}
	}
	return barcode, nil
}
