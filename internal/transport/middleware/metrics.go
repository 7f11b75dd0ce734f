package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
}

// Metrics reports each request to rec, labelled by the matched route
// pattern rather than the raw path. It must sit between the mux and any
// middleware that copies the request.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			rec.ObserveHTTPRequest(r.Method, r.Pattern, sw.status, time.Since(start))
		})
	}
}
