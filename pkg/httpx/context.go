package httpx

import (
	"context"
	"net/http"
)

type ctxKey string

const (
	CtxKeyUserID  ctxKey = "user_id"
	CtxKeyVersion ctxKey = "version"
)

// WithUserID records the authenticated user on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}

// UserIDFromContext returns the authenticated user, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	return v, ok && v != ""
}

// VersionMiddleware records the service version for error envelopes written
// by middleware further down the chain.
func VersionMiddleware(version string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), CtxKeyVersion, version)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VersionFromContext returns the version set by VersionMiddleware.
func VersionFromContext(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeyVersion).(string)
	return v
}
