package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/pkg/slogx"
)

// ClientService manages the session user's clients on the API manager.
type ClientService struct {
	Manager       Manager
	Credentials   *CredentialService
	Subscriptions *SubscriptionService
	Links         Links
	DefaultTier   domain.Tier // used when a request names no tier
}

// CreateClientParams describes a client to register.
type CreateClientParams struct {
	Name        string
	Description string
	Tier        string
	CallbackURL string
}

// Create registers a client, generates its credentials and subscribes it to
// the default API set. The result is the only response that carries the
// consumer secret.
//
// Any failure before the callback patch is returned as is; steps already
// completed upstream are not undone.
func (s *ClientService) Create(ctx context.Context, sess apim.Session, p CreateClientParams) (domain.Client, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return domain.Client{}, domain.Errorf(domain.ErrInvalidArgument, "CreateClient", "clientName is required")
	}

	tier := s.defaultTier()
	if strings.TrimSpace(p.Tier) != "" {
		t, err := domain.ParseTier(p.Tier)
		if err != nil {
			return domain.Client{}, err
		}
		tier = t
	}

	l := slogx.FromContext(ctx).With("client", name, "user", sess.Username)

	if err := s.Manager.CreateApplication(ctx, sess, name, string(tier), p.Description, p.CallbackURL); err != nil {
		return domain.Client{}, err
	}
	l.Info("client created", "tier", tier)

	key, err := s.Manager.GenerateCredentials(ctx, sess, name, p.CallbackURL)
	if err != nil {
		return domain.Client{}, err
	}
	l.Info("client credentials generated", "consumer_key", key.ConsumerKey)

	app, err := s.Manager.GetApplication(ctx, sess, name)
	if err != nil {
		return domain.Client{}, err
	}

	if err := s.Subscriptions.SubscribeDefaults(ctx, sess, name, s.Subscriptions.defaultTier()); err != nil {
		return domain.Client{}, err
	}

	app.Key = key

	if p.CallbackURL != "" {
		if err := s.Credentials.PatchCallbackURL(ctx, key.ConsumerKey, p.CallbackURL); err != nil {
			bestEffortFailuresTotal.WithLabelValues("patch_callback_url").Inc()
			l.Error("failed to patch callback URL", "consumer_key", key.ConsumerKey, "error", err)
		}
	}

	c := SanitizeApplication(app, s.Links.Client(sess.Username, name))
	c.ConsumerSecret = key.ConsumerSecret
	return c, nil
}

// List returns the session user's clients with their consumer keys. A key
// that cannot be resolved is logged and left empty.
func (s *ClientService) List(ctx context.Context, sess apim.Session) ([]domain.Client, error) {
	apps, err := s.Manager.ListApplications(ctx, sess)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Client, 0, len(apps))
	for _, app := range apps {
		out = append(out, s.withKey(ctx, sess, app))
	}
	return out, nil
}

// Get returns a single client with its consumer key.
func (s *ClientService) Get(ctx context.Context, sess apim.Session, name string) (domain.Client, error) {
	app, err := s.Manager.GetApplication(ctx, sess, name)
	if err != nil {
		return domain.Client{}, err
	}
	return s.withKey(ctx, sess, app), nil
}

func (s *ClientService) withKey(ctx context.Context, sess apim.Session, app apim.Application) domain.Client {
	key, err := s.Credentials.ResolveConsumerKey(ctx, sess, app.ID, app.Name)
	if err != nil {
		bestEffortFailuresTotal.WithLabelValues("resolve_consumer_key").Inc()
		slogx.FromContext(ctx).Warn("unable to resolve consumer key",
			"client", app.Name, "application_id", app.ID, "error", err)
	}
	app.ConsumerKey = key
	return SanitizeApplication(app, s.Links.Client(sess.Username, app.Name))
}

// Delete removes the client's subscriptions and then the client. Failures
// while removing subscriptions are logged and do not stop the deletion.
func (s *ClientService) Delete(ctx context.Context, sess apim.Session, name string) error {
	l := slogx.FromContext(ctx).With("client", name, "user", sess.Username)

	subs, err := s.Manager.ListSubscriptions(ctx, sess, name)
	if err != nil {
		bestEffortFailuresTotal.WithLabelValues("list_subscriptions").Inc()
		l.Warn("unable to list subscriptions before delete", "error", err)
	}

	for _, sub := range subs {
		api := domain.API{Name: sub.Name, Version: sub.Version, Provider: sub.Provider}
		if err := s.Manager.RemoveSubscription(ctx, sess, name, api); err != nil {
			bestEffortFailuresTotal.WithLabelValues("remove_subscription").Inc()
			l.Warn("unable to remove subscription before delete",
				"api", sub.Name, "version", sub.Version, "error", err)
		}
	}

	if err := s.Manager.DeleteApplication(ctx, sess, name); err != nil {
		return err
	}
	l.Info("client deleted")
	return nil
}

func (s *ClientService) defaultTier() domain.Tier {
	if s.DefaultTier == "" {
		return domain.TierUnlimited
	}
	return s.DefaultTier
}
