package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/pkg/slogx"
)

// SubscriptionService manages the APIs a client is subscribed to.
type SubscriptionService struct {
	Manager     Manager
	APIs        domain.APISet // subscribed by the "*" wildcard and on creation
	Links       Links
	DefaultTier domain.Tier
}

// SubscribeParams selects an API. Version and provider may be left empty for
// APIs of the default set.
type SubscribeParams struct {
	APIName     string
	APIVersion  string
	APIProvider string
	Tier        string
}

// List returns the client's subscriptions.
func (s *SubscriptionService) List(ctx context.Context, sess apim.Session, client string) ([]domain.Subscription, error) {
	subs, err := s.Manager.ListSubscriptions(ctx, sess, client)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Subscription, len(subs))
	for i, sub := range subs {
		out[i] = SanitizeSubscription(sub, s.Links.Subscription(client, sub.Context))
	}
	return out, nil
}

// Subscribe adds one subscription, or every API of the default set when the
// name is the wildcard.
func (s *SubscriptionService) Subscribe(ctx context.Context, sess apim.Session, client string, p SubscribeParams) error {
	tier, err := s.tier(p.Tier)
	if err != nil {
		return err
	}

	if strings.TrimSpace(p.APIName) == domain.WildcardAPI {
		return s.SubscribeDefaults(ctx, sess, client, tier)
	}

	api, err := s.resolve(p.APIName, p.APIVersion, p.APIProvider)
	if err != nil {
		return err
	}
	return s.Manager.AddSubscription(ctx, sess, client, api, string(tier))
}

// SubscribeDefaults subscribes the client to every API of the default set,
// stopping at the first failure. Existing subscriptions count as success.
func (s *SubscriptionService) SubscribeDefaults(ctx context.Context, sess apim.Session, client string, tier domain.Tier) error {
	if tier == "" {
		tier = s.defaultTier()
	}

	for _, api := range s.APIs.All() {
		if err := s.Manager.AddSubscription(ctx, sess, client, api, string(tier)); err != nil {
			slogx.FromContext(ctx).Error("default subscription failed",
				"client", client, "api", api.Name, "version", api.Version, "error", err)
			return err
		}
	}
	return nil
}

// Unsubscribe removes one subscription, or every current subscription when
// the name is the wildcard.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, sess apim.Session, client string, p SubscribeParams) error {
	if strings.TrimSpace(p.APIName) == domain.WildcardAPI {
		return s.UnsubscribeAll(ctx, sess, client)
	}

	api, err := s.resolve(p.APIName, p.APIVersion, p.APIProvider)
	if err != nil {
		return err
	}
	return s.Manager.RemoveSubscription(ctx, sess, client, api)
}

// UnsubscribeAll removes the client's current subscriptions, stopping at the
// first failure. Client deletion uses its own best-effort loop instead.
func (s *SubscriptionService) UnsubscribeAll(ctx context.Context, sess apim.Session, client string) error {
	subs, err := s.Manager.ListSubscriptions(ctx, sess, client)
	if err != nil {
		return err
	}

	for _, sub := range subs {
		api := domain.API{Name: sub.Name, Version: sub.Version, Provider: sub.Provider}
		if err := s.Manager.RemoveSubscription(ctx, sess, client, api); err != nil {
			return err
		}
	}
	return nil
}

// resolve fills a missing version or provider from the default set entry of
// the same name.
func (s *SubscriptionService) resolve(name, version, provider string) (domain.API, error) {
	api := domain.API{
		Name:     strings.TrimSpace(name),
		Version:  strings.TrimSpace(version),
		Provider: strings.TrimSpace(provider),
	}
	if api.Name == "" {
		return domain.API{}, domain.Errorf(domain.ErrInvalidArgument, "Subscription", "apiName is required")
	}

	if def, ok := s.APIs.Lookup(api.Name); ok {
		if api.Version == "" {
			api.Version = def.Version
		}
		if api.Provider == "" {
			api.Provider = def.Provider
		}
	}

	switch {
	case api.Version == "":
		return domain.API{}, domain.Errorf(domain.ErrInvalidArgument, "Subscription", "apiVersion is required")
	case api.Provider == "":
		return domain.API{}, domain.Errorf(domain.ErrInvalidArgument, "Subscription", "apiProvider is required")
	}
	return api, nil
}

func (s *SubscriptionService) tier(raw string) (domain.Tier, error) {
	if strings.TrimSpace(raw) == "" {
		return s.defaultTier(), nil
	}
	return domain.ParseTier(raw)
}

func (s *SubscriptionService) defaultTier() domain.Tier {
	if s.DefaultTier == "" {
		return domain.TierUnlimited
	}
	return s.DefaultTier
}
