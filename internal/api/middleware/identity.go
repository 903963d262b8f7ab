package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const clientIDContextKey contextKey = "client_id"

// ClientIDHeader carries the opaque caller-supplied id. Authentication is
// delegated upstream; this layer only threads the id through for logging
// and tracing.
const ClientIDHeader = "X-Client-Id"

// Identity extracts the caller id header into the request context.
// Requests without the header pass through; nothing here rejects.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if clientID := r.Header.Get(ClientIDHeader); clientID != "" {
				ctx := context.WithValue(r.Context(), clientIDContextKey, clientID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetClientID returns the caller id from the request context, empty when
// the header was absent
func GetClientID(ctx context.Context) string {
	clientID, _ := ctx.Value(clientIDContextKey).(string)
	return clientID
}
