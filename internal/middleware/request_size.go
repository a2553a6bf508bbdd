package middleware

import (
	"net/http"
)

// DefaultMaxRequestSize is the body limit used by the server, quiz submissions are far below it
const DefaultMaxRequestSize = 1 << 20 // 1MB

// RequestSizeLimitMiddleware rejects bodies larger than maxRequestSize bytes.
//
// A declared Content-Length over the limit is answered with 413 right away,
// bodies of unknown length are capped with http.MaxBytesReader and fail while being decoded.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}

// writeJSONError writes the {"error": message} body used across the API
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
