package middleware

import (
	"net/http"
	"time"

	"taskdeck/pkg/requestcontext"
)

// RequestTime pins a single timestamp per request so every row written while
// handling it carries the same time.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
