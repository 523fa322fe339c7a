package apim

import (
	"context"
	"io"
	"net/http"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

// Ping checks that the store answers HTTP on its login block. Any status
// counts; only transport failures are reported.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.endpoints.Login, nil)
	if err != nil {
		return domain.Wrap(domain.ErrUpstreamUnavailable, "Ping", err, "unable to reach the API manager")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Wrap(domain.ErrUpstreamUnavailable, "Ping", err, "unable to reach the API manager")
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}
