package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clients/internal/clients/store"
	"github.com/aussiebroadwan/clients/internal/clients/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) ConsumerApps() store.ConsumerApps { return &consumerAppsRepo{q: t.q} }
func (t *txStore) KeyMappings() store.KeyMappings   { return &keyMappingsRepo{q: t.q} }

// Nested transactions are not supported.
func (t *txStore) WithTx(context.Context, func(store.Store) error) error { return sql.ErrTxDone }

func (t *txStore) ApplyMigrations() error         { return nil }
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
