package clientsdk

import "encoding/json"

// ============================================================================
// Envelope
// ============================================================================

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every clients endpoint answers with.
type Response struct {
	// Status is "success" or "error"
	Status string `json:"status"`

	// Message is a human-readable outcome, empty on most successes
	Message string `json:"message"`

	// Result is the payload, null on errors
	Result json.RawMessage `json:"result" swaggertype:"object"`

	// Version is the service version string
	Version string `json:"version"`
}

// ============================================================================
// Client Types
// ============================================================================

// Link is a hypermedia reference.
type Link struct {
	Href string `json:"href"`
}

// Client is an OAuth client application as returned by the service.
type Client struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        string `json:"tier"`
	CallbackURL string `json:"callbackUrl"`

	// ConsumerKey is the OAuth client id
	ConsumerKey string `json:"consumerKey,omitempty"`

	// ConsumerSecret is only present in the creation response
	ConsumerSecret string `json:"consumerSecret,omitempty"`

	Links map[string]Link `json:"_links,omitempty"`
}

// CreateClientRequest is the body of POST /clients/v2.
type CreateClientRequest struct {
	ClientName  string `json:"clientName" validate:"required"`
	Description string `json:"description,omitempty"`
	Tier        string `json:"tier,omitempty"`
	CallbackURL string `json:"callbackUrl,omitempty"`
}

// ============================================================================
// Subscription Types
// ============================================================================

// Subscription is one API subscription of a client.
type Subscription struct {
	APIName     string          `json:"apiName"`
	APIVersion  string          `json:"apiVersion"`
	APIProvider string          `json:"apiProvider"`
	APIContext  string          `json:"apiContext"`
	APIStatus   string          `json:"apiStatus"`
	Tier        string          `json:"tier"`
	Links       map[string]Link `json:"_links,omitempty"`
}

// SubscriptionRequest is the body of POST and DELETE
// /clients/v2/{name}/subscriptions. An APIName of "*" selects every default
// API on POST and every current subscription on DELETE.
type SubscriptionRequest struct {
	APIName     string `json:"apiName" validate:"required"`
	APIVersion  string `json:"apiVersion,omitempty"`
	APIProvider string `json:"apiProvider,omitempty"`
	Tier        string `json:"tier,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of the service's dependencies.
type HealthChecks struct {
	// Database indicates the consumer-key database connection status
	Database string `json:"database"`

	// Upstream indicates whether the API manager store answers
	Upstream string `json:"upstream"`
}
