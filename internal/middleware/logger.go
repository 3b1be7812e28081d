package middleware

import (
	"net/http"
	"time"

	"github.com/Gergov8/runnalog/internal/logger"
	"github.com/Gergov8/runnalog/internal/metrics"
)

// LoggerMiddleware log toutes les requêtes HTTP avec durée et status code
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrapper pour capturer le status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		logger.Request(r.Method, r.URL.Path, wrapped.statusCode, duration)
		metrics.ObserveRequest(r.Method, wrapped.statusCode, duration)
	})
}

// responseWriter wrapper pour capturer le status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
