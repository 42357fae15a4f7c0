package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"mercator-hq/ganymede/pkg/telemetry/logging"
)

// errorResponse is the JSON envelope for middleware-generated errors.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSONError writes an error envelope with the given status code.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// Recovery converts handler panics into 500 responses. The panic value and
// stack trace are logged for debugging; the client sees a generic message
// with no internal details.
func Recovery(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(r.Context(), "panic in handler",
						"panic", err,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					writeJSONError(w, http.StatusInternalServerError,
						"an internal error occurred")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
