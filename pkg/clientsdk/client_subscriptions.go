package clientsdk

import (
	"context"
	"net/http"
)

// AllAPIs is the APIName selecting every API at once.
const AllAPIs = "*"

// ListSubscriptions returns the client's subscriptions.
func (c *SDKClient) ListSubscriptions(ctx context.Context, client string) ([]Subscription, error) {
	resp, err := c.doAuthRequest(ctx, http.MethodGet, clientPath(client)+"/subscriptions", nil)
	if err != nil {
		return nil, err
	}

	var subs []Subscription
	if err := decodeEnvelope(resp, &subs, http.StatusOK); err != nil {
		return nil, err
	}
	return subs, nil
}

// Subscribe adds a subscription, or every default API with AllAPIs.
func (c *SDKClient) Subscribe(ctx context.Context, client string, req SubscriptionRequest) error {
	resp, err := c.doAuthRequest(ctx, http.MethodPost, clientPath(client)+"/subscriptions", req)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil, http.StatusOK)
}

// Unsubscribe removes a subscription, or all of them with AllAPIs.
func (c *SDKClient) Unsubscribe(ctx context.Context, client string, req SubscriptionRequest) error {
	resp, err := c.doAuthRequest(ctx, http.MethodDelete, clientPath(client)+"/subscriptions", req)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil, http.StatusOK)
}
