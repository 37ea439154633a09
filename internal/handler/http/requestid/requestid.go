// Package requestid generates and propagates per-request IDs so log
// lines from one request can be correlated.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey is a private type so the context key cannot collide.
type contextKey struct{}

// Header is the HTTP header carrying the request ID.
const Header = "X-Request-ID"

// FromContext retrieves the request ID, or "" when none is set.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// NewContext returns a child context carrying the request ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Middleware assigns each request an ID. An incoming X-Request-ID is
// reused so IDs survive proxies; otherwise a new UUID v4 is generated.
// The ID is echoed in the response header and stored in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), id)))
	})
}
