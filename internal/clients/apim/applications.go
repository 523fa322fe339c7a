package apim

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

// CreateApplication creates an application. The tier is matched
// case-insensitively and sent in its canonical form. The store creates the
// application without credentials; see GenerateCredentials.
func (c *Client) CreateApplication(
	ctx context.Context,
	sess Session,
	name, tier, description, callbackURL string,
) (err error) {
	defer observe("addApplication", time.Now(), &err)

	if strings.TrimSpace(name) == "" {
		return domain.Errorf(domain.ErrInvalidArgument, "CreateApplication", "clientName is required")
	}
	canonical, err := domain.ParseTier(tier)
	if err != nil {
		return err
	}

	cl := call{
		op:     "CreateApplication",
		what:   "create application",
		method: http.MethodPost,
		path:   c.endpoints.AddApplication,
		params: url.Values{
			"action":      {"addApplication"},
			"application": {name},
			"tier":        {string(canonical)},
			"description": {description},
			"callbackUrl": {callbackURL},
		},
		query: true,
	}

	r, err := c.do(ctx, &sess, cl)
	if err != nil {
		return err
	}
	return r.check(cl)
}

// GenerateCredentials asks the store for a new PRODUCTION key pair for the
// application. The returned secret cannot be recovered later.
func (c *Client) GenerateCredentials(
	ctx context.Context,
	sess Session,
	name, callbackURL string,
) (key Key, err error) {
	defer observe("generateApplicationKey", time.Now(), &err)

	params := url.Values{
		"action":            {"generateApplicationKey"},
		"application":       {name},
		"keytype":           {domain.KeyTypeProduction},
		"authorizedDomains": {"ALL"},
		"validityTime":      {"14400"},
	}
	if callbackURL != "" {
		params.Set("callbackUrl", callbackURL)
	}

	cl := call{
		op:     "GenerateCredentials",
		what:   "generate credentials for " + name,
		method: http.MethodPost,
		path:   c.endpoints.Subscription,
		params: params,
	}

	r, err := c.do(ctx, &sess, cl)
	if err != nil {
		return Key{}, err
	}
	if err := r.check(cl); err != nil {
		return Key{}, err
	}

	var resp generateKeyResponse
	if err := r.decode(cl, &resp); err != nil {
		return Key{}, err
	}
	if resp.Data == nil || resp.Data.Key == nil {
		return Key{}, domain.Errorf(domain.ErrMalformedResponse, cl.op, "unable to %s: no key data received", cl.what)
	}
	return *resp.Data.Key, nil
}

// ListApplications returns the session user's applications as listed by the
// store. Listed records carry no key material.
func (c *Client) ListApplications(ctx context.Context, sess Session) (apps []Application, err error) {
	defer observe("getApplications", time.Now(), &err)

	cl := call{
		op:     "ListApplications",
		what:   "retrieve clients",
		method: http.MethodGet,
		path:   c.endpoints.ListApplications,
		params: url.Values{"action": {"getApplications"}},
	}

	r, err := c.do(ctx, &sess, cl)
	if err != nil {
		return nil, err
	}
	if err := r.check(cl); err != nil {
		return nil, err
	}

	var resp applicationsResponse
	if err := r.decode(cl, &resp); err != nil {
		return nil, err
	}
	if resp.Applications == nil {
		return nil, domain.Errorf(domain.ErrMalformedResponse, cl.op, "unable to %s: no applications in response", cl.what)
	}
	return *resp.Applications, nil
}

// GetApplication returns the application whose name matches exactly.
func (c *Client) GetApplication(ctx context.Context, sess Session, name string) (Application, error) {
	apps, err := c.ListApplications(ctx, sess)
	if err != nil {
		return Application{}, err
	}
	for _, app := range apps {
		if app.Name == name {
			return app, nil
		}
	}
	return Application{}, domain.Errorf(domain.ErrNotFound, "GetApplication", "application %s not found", name)
}

// GetApplicationID returns the store identifier of the named application.
func (c *Client) GetApplicationID(ctx context.Context, sess Session, name string) (int64, error) {
	app, err := c.GetApplication(ctx, sess, name)
	if err != nil {
		return 0, err
	}
	return app.ID, nil
}

// DeleteApplication removes the application. The store only removes it; the
// caller is responsible for removing subscriptions first.
func (c *Client) DeleteApplication(ctx context.Context, sess Session, name string) (err error) {
	defer observe("removeApplication", time.Now(), &err)

	cl := call{
		op:     "DeleteApplication",
		what:   "remove application " + name,
		method: http.MethodPost,
		path:   c.endpoints.RemoveApplication,
		params: url.Values{
			"action":      {"removeApplication"},
			"application": {name},
		},
		query: true,
	}

	r, err := c.do(ctx, &sess, cl)
	if err != nil {
		return err
	}
	return r.check(cl)
}
