package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/clients/pkg/slogx"
)

// ErrInvalidCredentials is returned by an Authenticator for a wrong
// username or password. Any other error is treated as a backend fault.
var ErrInvalidCredentials = errors.New("httpx: invalid credentials")

// Authenticator checks Basic credentials and returns the context to serve the
// request with, typically carrying a session for downstream handlers.
type Authenticator func(ctx context.Context, username, password string) (context.Context, error)

// BasicAuthMiddleware requires HTTP Basic credentials on every request. The
// username is recorded under CtxKeyUserID for rate limiting and logging.
func BasicAuthMiddleware(realm string, authn Authenticator) Middleware {
	challenge := `Basic realm="` + realm + `", charset="UTF-8"`

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || username == "" {
				w.Header().Set("WWW-Authenticate", challenge)
				writeError(w, r, http.StatusUnauthorized, "authentication required")
				return
			}

			ctx := slogx.With(r.Context(), "user", username)
			ctx, err := authn(ctx, username, password)
			if err != nil {
				log := slogx.FromContext(r.Context())
				if errors.Is(err, ErrInvalidCredentials) {
					log.Warn("basic auth rejected", "user", username)
					w.Header().Set("WWW-Authenticate", challenge)
					writeError(w, r, http.StatusUnauthorized, "invalid username/password combination")
					return
				}
				log.Error("basic auth failed", "user", username, "err", err)
				writeError(w, r, http.StatusServiceUnavailable, "unable to verify credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, username)))
		})
	}
}

// writeError writes the service's error envelope.
func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	WriteJSON(w, code, map[string]any{
		"status":  "error",
		"message": msg,
		"result":  nil,
		"version": VersionFromContext(r.Context()),
	})
}
