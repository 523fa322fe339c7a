package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/internal/clients/store"
	"github.com/aussiebroadwan/clients/pkg/slogx"
)

// CredentialService reconciles applications with the consumer-key side
// tables, which the API manager does not expose through its store API.
type CredentialService struct {
	Manager Manager
	Store   store.Store
}

// ResolveConsumerKey returns the consumer key mapped to the application. An
// application with no mapping gets one through RepairCredentials.
func (s *CredentialService) ResolveConsumerKey(
	ctx context.Context,
	sess apim.Session,
	applicationID int64,
	applicationName string,
) (string, error) {
	m, err := s.Store.KeyMappings().GetKeyMapping(ctx, applicationID)
	switch {
	case err == nil:
		return m.ConsumerKey, nil
	case errors.Is(err, store.ErrNotFound):
		return s.RepairCredentials(ctx, sess, applicationID, applicationName)
	default:
		return "", fmt.Errorf("look up key mapping for application %d: %w", applicationID, err)
	}
}

// RepairCredentials generates credentials for an application that has none
// recorded and returns the key mapped afterwards. Applications created
// outside this service (the store's DefaultApplication in particular) start
// without keys.
//
// The generated secret is not returned anywhere, so the application's
// credentials are unusable until regenerated by its owner. Two concurrent
// repairs of the same application both generate; the last one wins.
func (s *CredentialService) RepairCredentials(
	ctx context.Context,
	sess apim.Session,
	applicationID int64,
	applicationName string,
) (string, error) {
	l := slogx.FromContext(ctx).With(
		"application_id", applicationID,
		"application", applicationName,
		"user", sess.Username,
	)
	l.Warn("no key mapping for application, generating credentials")

	key, err := s.Manager.GenerateCredentials(ctx, sess, applicationName, "")
	if err != nil {
		credentialRepairsTotal.WithLabelValues("generate_failed").Inc()
		l.Error("credential repair failed", "error", err)
		return "", err
	}

	m, err := s.Store.KeyMappings().GetKeyMapping(ctx, applicationID)
	if err != nil {
		credentialRepairsTotal.WithLabelValues("not_recorded").Inc()
		l.Error("credentials generated but no key mapping recorded",
			"generated_consumer_key", key.ConsumerKey, "error", err)
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.Errorf(domain.ErrNotFound, "RepairCredentials",
				"no credentials recorded for application %s", applicationName)
		}
		return "", fmt.Errorf("look up key mapping for application %d: %w", applicationID, err)
	}

	credentialRepairsTotal.WithLabelValues("repaired").Inc()
	if m.ConsumerKey != key.ConsumerKey {
		// Another repair or key generation landed in between.
		l.Warn("key mapping differs from generated credentials",
			"generated_consumer_key", key.ConsumerKey, "mapped_consumer_key", m.ConsumerKey)
	}
	l.Warn("credentials repaired", "consumer_key", m.ConsumerKey)
	return m.ConsumerKey, nil
}

// PatchCallbackURL writes the callback URL onto the consumer record, which
// the authorization-code flow reads. A missing record is logged and
// ignored; other failures are returned.
func (s *CredentialService) PatchCallbackURL(ctx context.Context, consumerKey, callbackURL string) error {
	l := slogx.FromContext(ctx)

	err := s.Store.ConsumerApps().UpdateCallbackURL(ctx, consumerKey, callbackURL)
	switch {
	case err == nil:
		l.Info("callback URL patched", "consumer_key", consumerKey)
		return nil
	case errors.Is(err, store.ErrNotFound):
		l.Warn("no consumer record to patch callback URL", "consumer_key", consumerKey)
		return nil
	default:
		return fmt.Errorf("patch callback URL for %s: %w", consumerKey, err)
	}
}
