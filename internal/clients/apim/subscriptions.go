package apim

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/pkg/slogx"
)

// subscriptionExists is the message the store returns when the subscription
// is already in place.
const subscriptionExists = "Subscription already exists"

// AddSubscription subscribes the application to api at the given tier. It is
// idempotent: an existing subscription is reported as success.
func (c *Client) AddSubscription(
	ctx context.Context,
	sess Session,
	application string,
	api domain.API,
	tier string,
) (err error) {
	defer observe("addAPISubscription", time.Now(), &err)

	cl := call{
		op:     "AddSubscription",
		what:   "subscribe to API " + api.Name,
		method: http.MethodPost,
		path:   c.endpoints.Subscription,
		params: url.Values{
			"action":          {"addAPISubscription"},
			"name":            {api.Name},
			"version":         {api.Version},
			"provider":        {api.Provider},
			"tier":            {tier},
			"applicationName": {application},
		},
	}

	r, err := c.do(ctx, &sess, cl)
	if err != nil {
		return err
	}
	if r.json && strings.Contains(r.env.Message, subscriptionExists) {
		slogx.FromContext(ctx).Debug("subscription already exists",
			"application", application, "api", api.Name, "version", api.Version)
		return nil
	}
	return r.check(cl)
}

// RemoveSubscription removes the application's subscription to api.
func (c *Client) RemoveSubscription(
	ctx context.Context,
	sess Session,
	application string,
	api domain.API,
) (err error) {
	defer observe("removeSubscription", time.Now(), &err)

	cl := call{
		op:     "RemoveSubscription",
		what:   "remove API " + api.Name,
		method: http.MethodPost,
		path:   c.endpoints.RemoveSubscription,
		params: url.Values{
			"action":          {"removeSubscription"},
			"name":            {api.Name},
			"version":         {api.Version},
			"provider":        {api.Provider},
			"applicationName": {application},
		},
	}

	r, err := c.do(ctx, &sess, cl)
	if err != nil {
		return err
	}
	return r.check(cl)
}

// ListSubscriptions returns the application's subscriptions. The store only
// offers a listing of all applications, so the application is picked out of
// it; an application missing from the listing fails with ErrNotFound.
func (c *Client) ListSubscriptions(
	ctx context.Context,
	sess Session,
	application string,
) (subs []Subscription, err error) {
	defer observe("getAllSubscriptions", time.Now(), &err)

	cl := call{
		op:     "ListSubscriptions",
		what:   "retrieve subscriptions",
		method: http.MethodGet,
		path:   c.endpoints.ListSubscriptions,
		params: url.Values{
			"action":      {"getAllSubscriptions"},
			"selectedApp": {application},
		},
	}

	r, err := c.do(ctx, &sess, cl)
	if err != nil {
		return nil, err
	}
	if err := r.check(cl); err != nil {
		return nil, err
	}

	var resp subscriptionsResponse
	if err := r.decode(cl, &resp); err != nil {
		return nil, err
	}
	if resp.Subscriptions == nil {
		return nil, domain.Errorf(domain.ErrMalformedResponse, cl.op, "unable to %s: no subscriptions in response", cl.what)
	}

	for _, app := range resp.Subscriptions.Applications {
		if app.Name == application {
			if app.Subscriptions == nil {
				return []Subscription{}, nil
			}
			return app.Subscriptions, nil
		}
	}
	return nil, domain.Errorf(domain.ErrNotFound, cl.op, "application %s not found", application)
}
