package http

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/pkg/httpx"
)

type sessionKey struct{}

func withSession(ctx context.Context, sess apim.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// sessionFromContext returns the API manager session of the authenticated
// caller.
func sessionFromContext(ctx context.Context) (apim.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(apim.Session)
	return sess, ok
}

// authenticator logs the caller in to the API manager with their Basic
// credentials. Every request gets a fresh session.
func authenticator(up Upstream) httpx.Authenticator {
	return func(ctx context.Context, username, password string) (context.Context, error) {
		sess, err := up.Login(ctx, username, password)
		if err != nil {
			if errors.Is(err, domain.ErrAuthenticationFailure) {
				return ctx, httpx.ErrInvalidCredentials
			}
			return ctx, err
		}
		return withSession(ctx, sess), nil
	}
}
