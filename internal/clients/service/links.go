package service

import (
	"net/url"
	"strings"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

// Links builds the hypermedia references attached to responses.
type Links struct {
	BaseURL    string // public base of the API platform, e.g. https://api.example.org
	APIVersion string // e.g. "v2"
}

func (l Links) base() string { return strings.TrimSuffix(l.BaseURL, "/") }

func (l Links) version() string {
	if l.APIVersion == "" {
		return "v2"
	}
	return l.APIVersion
}

// ClientHref is the URL of a single client.
func (l Links) ClientHref(name string) string {
	return l.base() + "/clients/" + l.version() + "/" + url.PathEscape(name)
}

// Client returns the self, subscriber and subscriptions links of a client.
func (l Links) Client(username, name string) domain.Links {
	return domain.Links{
		"self":          {Href: l.ClientHref(name)},
		"subscriber":    {Href: l.base() + "/profiles/" + l.version() + "/" + url.PathEscape(username)},
		"subscriptions": {Href: l.ClientHref(name) + "/subscriptions"},
	}
}

// Subscription returns the self, api and client links of one subscription.
func (l Links) Subscription(clientName, apiContext string) domain.Links {
	return domain.Links{
		"self":   {Href: l.ClientHref(clientName) + "/subscriptions"},
		"api":    {Href: l.base() + apiContext + "/"},
		"client": {Href: l.ClientHref(clientName)},
	}
}
