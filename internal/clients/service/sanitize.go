package service

import (
	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

// SanitizeApplication projects a store record onto the public client shape.
// Only name, description, tier, callback URL and consumer key survive; the
// secret, tokens, ids and status flags are dropped. Callers that must
// disclose the secret once set it on the result themselves.
func SanitizeApplication(app apim.Application, links domain.Links) domain.Client {
	return domain.Client{
		Name:        app.Name,
		Description: app.Description,
		Tier:        app.Tier,
		CallbackURL: app.CallbackURL,
		ConsumerKey: app.ConsumerKey,
		Links:       links,
	}
}

// SanitizeSubscription drops the key material the store attaches to every
// subscription and renames the API fields.
func SanitizeSubscription(sub apim.Subscription, links domain.Links) domain.Subscription {
	return domain.Subscription{
		APIName:     sub.Name,
		APIVersion:  sub.Version,
		APIProvider: sub.Provider,
		APIContext:  sub.Context,
		APIStatus:   sub.Status,
		Tier:        sub.Tier,
		Links:       links,
	}
}
