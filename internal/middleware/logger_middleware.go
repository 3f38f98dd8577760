package middleware

import (
	"bufio"
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "requestID"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack keeps websocket upgrades working behind the logger.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

func LoggerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set("X-Request-ID", requestID)

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
			next.ServeHTTP(rw, r.WithContext(ctx))

			log.Printf("[%s] %s %s - Status: %d - Duration: %v - Request: %s",
				r.Method,
				r.URL.Path,
				r.RemoteAddr,
				rw.statusCode,
				time.Since(start),
				requestID,
			)
		})
	}
}

func GetRequestID(r *http.Request) string {
	requestID, ok := r.Context().Value(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return requestID
}
