package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// HTTPRecorder receives one observation per completed request.
type HTTPRecorder interface {
	ObserveRequest(method, path string, status int, duration time.Duration)
}

// Metrics returns middleware that reports each request to rec.
// route maps a request onto a low-cardinality label; nil uses the module prefix.
func Metrics(rec HTTPRecorder, route func(*http.Request) string) func(http.Handler) http.Handler {
	if route == nil {
		route = firstSegment
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := newStatusRecorder(w)

			next.ServeHTTP(sr, r)

			rec.ObserveRequest(r.Method, route(r), sr.status, time.Since(start))
		})
	}
}

// StatusClass collapses a status code to "2xx", "4xx" and so on.
func StatusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}

func firstSegment(r *http.Request) string {
	p := r.URL.Path
	if p == "" || p == "/" {
		return "/"
	}
	for i := 1; i < len(p); i++ {
		if p[i] == '/' {
			return p[:i]
		}
	}
	return p
}
