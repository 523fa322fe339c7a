package apim

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

// Login authenticates username against the store and returns the session
// cookies it hands out. A rejected login fails with ErrAuthenticationFailure.
func (c *Client) Login(ctx context.Context, username, password string) (sess Session, err error) {
	defer observe("login", time.Now(), &err)

	cl := call{
		op:     "Login",
		what:   "log in to the API manager",
		method: http.MethodPost,
		path:   c.endpoints.Login,
		params: url.Values{
			"action":   {"login"},
			"username": {username},
			"password": {password},
		},
	}

	r, err := c.do(ctx, nil, cl)
	if err != nil {
		return Session{}, err
	}
	if err := r.check(cl); err != nil {
		if r.status == http.StatusOK && r.json {
			// The store reports bad credentials as an embedded error.
			return Session{}, domain.Errorf(domain.ErrAuthenticationFailure, cl.op,
				"invalid username/password combination")
		}
		return Session{}, err
	}
	if len(r.cookies) == 0 {
		return Session{}, domain.Errorf(domain.ErrMalformedResponse, cl.op,
			"unable to %s: no session cookie received", cl.what)
	}

	return Session{Username: username, Cookies: r.cookies}, nil
}
