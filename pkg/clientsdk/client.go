package clientsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the clients service. Every clients operation is
// authenticated with the API manager credentials given at construction.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	username string
	password string
}

// NewSDKClient creates a client for the service at baseURL acting as
// username.
func NewSDKClient(baseURL, username, password string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			// Creation subscribes to every default API upstream.
			Timeout: 60 * time.Second,
		},
		username: username,
		password: password,
	}
}

// Username returns the account the client acts as.
func (c *SDKClient) Username() string { return c.username }
