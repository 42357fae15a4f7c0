package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds request processing with context.WithTimeout. A request
// that exceeds the deadline gets a 504 response; the handler goroutine
// observes ctx.Done and is expected to abandon its work.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(w, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					writeJSONError(w, http.StatusGatewayTimeout,
						"request took too long to complete")
				}
			}
		})
	}
}
