// Package service sequences API manager calls and side-store updates into
// the client and subscription operations exposed over HTTP.
package service

import (
	"context"

	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

// Manager is the subset of *apim.Client the services depend on.
type Manager interface {
	CreateApplication(ctx context.Context, sess apim.Session, name, tier, description, callbackURL string) error
	GenerateCredentials(ctx context.Context, sess apim.Session, name, callbackURL string) (apim.Key, error)
	ListApplications(ctx context.Context, sess apim.Session) ([]apim.Application, error)
	GetApplication(ctx context.Context, sess apim.Session, name string) (apim.Application, error)
	DeleteApplication(ctx context.Context, sess apim.Session, name string) error

	AddSubscription(ctx context.Context, sess apim.Session, application string, api domain.API, tier string) error
	RemoveSubscription(ctx context.Context, sess apim.Session, application string, api domain.API) error
	ListSubscriptions(ctx context.Context, sess apim.Session, application string) ([]apim.Subscription, error)
}

var _ Manager = (*apim.Client)(nil)
