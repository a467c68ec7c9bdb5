package middleware

import (
	"net/http"

	"taskdeck/internal/device"
	"taskdeck/pkg/requestcontext"
)

// Device parses the User-Agent header into a display name and stores it in
// the request context. Activity events record it alongside login actions.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := device.ParseUserAgent(r.Header.Get("User-Agent"))
		ctx := requestcontext.WithDeviceName(r.Context(), name)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
