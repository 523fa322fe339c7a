package clientsdk

import (
	"context"
	"net/http"
)

// ListClients returns the caller's clients.
func (c *SDKClient) ListClients(ctx context.Context) ([]Client, error) {
	resp, err := c.doAuthRequest(ctx, http.MethodGet, "/clients/v2", nil)
	if err != nil {
		return nil, err
	}

	var clients []Client
	if err := decodeEnvelope(resp, &clients, http.StatusOK); err != nil {
		return nil, err
	}
	return clients, nil
}

// CreateClient registers a client. The returned client carries the consumer
// secret, which no later call returns.
func (c *SDKClient) CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error) {
	resp, err := c.doAuthRequest(ctx, http.MethodPost, "/clients/v2", req)
	if err != nil {
		return nil, err
	}

	var client Client
	if err := decodeEnvelope(resp, &client, http.StatusCreated); err != nil {
		return nil, err
	}
	return &client, nil
}

// GetClient returns a single client.
func (c *SDKClient) GetClient(ctx context.Context, name string) (*Client, error) {
	resp, err := c.doAuthRequest(ctx, http.MethodGet, clientPath(name), nil)
	if err != nil {
		return nil, err
	}

	var client Client
	if err := decodeEnvelope(resp, &client, http.StatusOK); err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteClient removes a client and its subscriptions.
func (c *SDKClient) DeleteClient(ctx context.Context, name string) error {
	resp, err := c.doAuthRequest(ctx, http.MethodDelete, clientPath(name), nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil, http.StatusOK)
}
