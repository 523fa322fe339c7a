package apim

import "encoding/json"

// Key is the key material returned by generateApplicationKey. The secret is
// only ever observable here: later reads of the application do not carry it.
type Key struct {
	ConsumerKey        string          `json:"consumerKey"`
	ConsumerSecret     string          `json:"consumerSecret"`
	AccessToken        string          `json:"accessToken"`
	ValidityTime       json.RawMessage `json:"validityTime,omitempty"`
	KeyState           string          `json:"keyState"`
	TokenScope         json.RawMessage `json:"tokenScope,omitempty"`
	TokenDetails       json.RawMessage `json:"tokenDetails,omitempty"`
	AppDetails         json.RawMessage `json:"appDetails,omitempty"`
	AccessAllowDomains json.RawMessage `json:"accessallowdomains,omitempty"`
	EnableRegenerate   bool            `json:"enableRegenarate"`
}

// Application is an application record as listed by the store, optionally
// merged with key material.
type Application struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Tier        string `json:"tier"`
	Status      string `json:"status"`
	CallbackURL string `json:"callbackUrl"`
	Description string `json:"description"`
	GroupID     string `json:"groupId"`
	APICount    int    `json:"apiCount"`

	Key
}

// Subscription is one API subscription of an application as listed by the
// store, including the key material the store attaches to it.
type Subscription struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Provider string `json:"provider"`
	Context  string `json:"context"`
	Status   string `json:"status"`
	Tier     string `json:"tier"`

	SubStatus             string          `json:"subStatus,omitempty"`
	ThumbURL              string          `json:"thumburl,omitempty"`
	HasMultipleEndpoints  json.RawMessage `json:"hasMultipleEndpoints,omitempty"`
	ProdKey               string          `json:"prodKey,omitempty"`
	ProdConsumerKey       string          `json:"prodConsumerKey,omitempty"`
	ProdConsumerSecret    string          `json:"prodConsumerSecret,omitempty"`
	ProdAuthorizedDomains json.RawMessage `json:"prodAuthorizedDomains,omitempty"`
	ProdValidityTime      json.RawMessage `json:"prodValidityTime,omitempty"`
	SandboxKey            string          `json:"sandboxKey,omitempty"`
	SandboxConsumerKey    string          `json:"sandboxConsumerKey,omitempty"`
	SandboxConsumerSecret string          `json:"sandboxConsumerSecret,omitempty"`
	SandAuthorizedDomains json.RawMessage `json:"sandAuthorizedDomains,omitempty"`
	SandValidityTime      json.RawMessage `json:"sandValidityTime,omitempty"`
}

type applicationsResponse struct {
	Applications *[]Application `json:"applications"`
}

type generateKeyResponse struct {
	Data *struct {
		Key *Key `json:"key"`
	} `json:"data"`
}

type subscriptionsResponse struct {
	Subscriptions *struct {
		Applications []struct {
			ID            int64          `json:"id"`
			Name          string         `json:"name"`
			Subscriptions []Subscription `json:"subscriptions"`
		} `json:"applications"`
	} `json:"subscriptions"`
}
