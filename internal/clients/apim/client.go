// Package apim talks to the API manager store (the jaggery "site/blocks" API)
// on behalf of a logged-in user. Every response is normalized into the
// domain error taxonomy before it reaches callers.
package apim

import (
	"crypto/tls"
	"net/http"
	"strings"
	"time"
)

// Endpoints holds the store paths relative to the base URL.
type Endpoints struct {
	Login              string
	AddApplication     string
	RemoveApplication  string
	ListApplications   string
	Subscription       string // add subscription and generate keys share this block
	RemoveSubscription string
	ListSubscriptions  string
}

// DefaultEndpoints are the paths used by the API manager 1.x store.
var DefaultEndpoints = Endpoints{
	Login:              "/site/blocks/user/login/ajax/login.jag",
	AddApplication:     "/site/blocks/application/application-add/ajax/application-add.jag",
	RemoveApplication:  "/site/blocks/application/application-remove/ajax/application-remove.jag",
	ListApplications:   "/site/blocks/application/application-list/ajax/application-list.jag",
	Subscription:       "/site/blocks/subscription/subscription-add/ajax/subscription-add.jag",
	RemoveSubscription: "/site/blocks/subscription/subscription-remove/ajax/subscription-remove.jag",
	ListSubscriptions:  "/site/blocks/subscription/subscription-list/ajax/subscription-list.jag",
}

type Config struct {
	BaseURL            string        // store services base, e.g. https://apim.example.org/store
	Timeout            time.Duration // per-request timeout (default: 30s)
	InsecureSkipVerify bool          // the store commonly runs with a self-signed certificate
	Endpoints          Endpoints     // zero value uses DefaultEndpoints
}

// Client issues store calls. It holds no per-user state; callers pass a
// Session with every call.
type Client struct {
	baseURL    string
	endpoints  Endpoints
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	endpoints := cfg.Endpoints
	if endpoints == (Endpoints{}) {
		endpoints = DefaultEndpoints
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // operator opt-in
	}

	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		endpoints: endpoints,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Session is the credential bundle obtained at login. It is opaque to the
// services: they only hand it back to the client.
type Session struct {
	Username string
	Cookies  []*http.Cookie
}

func (s Session) apply(req *http.Request) {
	for _, c := range s.Cookies {
		req.AddCookie(c)
	}
}
