// Package store is the side store of OAuth consumer records that the API
// manager keeps outside its own API: the consumer app table holding callback
// URLs and the mapping from applications to consumer keys.
package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers.
type Store interface {
	ConsumerApps() ConsumerApps
	KeyMappings() KeyMappings

	ApplyMigrations() error

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	Close() error
	Ping(ctx context.Context) error
}

type ConsumerApps interface {
	GetConsumerApp(ctx context.Context, consumerKey string) (domain.ConsumerApp, error)

	// CreateConsumerApp fails with ErrAlreadyExists for a known consumer key.
	CreateConsumerApp(ctx context.Context, app domain.ConsumerApp) error

	// UpdateCallbackURL fails with ErrNotFound when no record carries the key.
	UpdateCallbackURL(ctx context.Context, consumerKey, callbackURL string) error

	// DeleteConsumerApp also removes key mappings pointing at the key.
	DeleteConsumerApp(ctx context.Context, consumerKey string) error
}

type KeyMappings interface {
	// GetKeyMapping returns the application's key mapping, preferring the
	// PRODUCTION key when both key types exist.
	GetKeyMapping(ctx context.Context, applicationID int64) (domain.KeyMapping, error)

	// UpsertKeyMapping replaces the mapping for (application, key type).
	UpsertKeyMapping(ctx context.Context, m domain.KeyMapping) error

	ListKeyMappings(ctx context.Context, applicationID int64) ([]domain.KeyMapping, error)
	DeleteKeyMappings(ctx context.Context, applicationID int64) error
}
