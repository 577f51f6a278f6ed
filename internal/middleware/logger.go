package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"animagen/internal/infra/geoip"
)

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logger emits one access line per request. When a country resolver is
// configured the caller's country code is attached; lookups that fail are
// skipped silently.
func Logger(l zerolog.Logger, resolver geoip.CountryResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			evt := l.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Dur("duration", time.Since(start))
			if rid := RequestIDFromContext(r.Context()); rid != "" {
				evt = evt.Str("request_id", rid)
			}
			if resolver != nil {
				if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
					if country, err := resolver.CountryCode(host); err == nil && country != "" {
						evt = evt.Str("country", country)
					}
				}
			}
			evt.Msg("request")
		})
	}
}
