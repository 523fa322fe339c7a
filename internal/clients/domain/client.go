package domain

// Link is a single hypermedia reference.
type Link struct {
	Href string `json:"href"`
}

// Links maps a relation name (self, client, api, ...) to its reference.
type Links map[string]Link

// Client is a client application as shown to façade callers. It never holds
// backend-internal fields. ConsumerSecret is only set on the response to the
// creation call.
type Client struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Tier           string `json:"tier"`
	CallbackURL    string `json:"callbackUrl"`
	ConsumerKey    string `json:"consumerKey,omitempty"`
	ConsumerSecret string `json:"consumerSecret,omitempty"`
	Links          Links  `json:"_links"`
}

// Subscription is an API subscription as shown to façade callers.
type Subscription struct {
	APIName     string `json:"apiName"`
	APIVersion  string `json:"apiVersion"`
	APIProvider string `json:"apiProvider"`
	APIContext  string `json:"apiContext"`
	APIStatus   string `json:"apiStatus"`
	Tier        string `json:"tier"`
	Links       Links  `json:"_links"`
}
