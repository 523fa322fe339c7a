package http

import (
	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

func toLinks(l domain.Links) map[string]clientsdk.Link {
	if l == nil {
		return nil
	}
	out := make(map[string]clientsdk.Link, len(l))
	for rel, link := range l {
		out[rel] = clientsdk.Link{Href: link.Href}
	}
	return out
}

func toClient(c domain.Client) clientsdk.Client {
	return clientsdk.Client{
		Name:           c.Name,
		Description:    c.Description,
		Tier:           c.Tier,
		CallbackURL:    c.CallbackURL,
		ConsumerKey:    c.ConsumerKey,
		ConsumerSecret: c.ConsumerSecret,
		Links:          toLinks(c.Links),
	}
}

func toSubscription(s domain.Subscription) clientsdk.Subscription {
	return clientsdk.Subscription{
		APIName:     s.APIName,
		APIVersion:  s.APIVersion,
		APIProvider: s.APIProvider,
		APIContext:  s.APIContext,
		APIStatus:   s.APIStatus,
		Tier:        s.Tier,
		Links:       toLinks(s.Links),
	}
}
