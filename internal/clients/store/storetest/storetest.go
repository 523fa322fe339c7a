// Package storetest holds the behavioural tests every store driver must pass.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/internal/clients/store"
)

// Run exercises st, which must be migrated and empty.
func Run(t *testing.T, st store.Store) {
	t.Run("ConsumerApps", func(t *testing.T) { testConsumerApps(t, st) })
	t.Run("KeyMappings", func(t *testing.T) { testKeyMappings(t, st) })
	t.Run("WithTx", func(t *testing.T) { testWithTx(t, st) })
}

func testConsumerApps(t *testing.T, st store.Store) {
	ctx := context.Background()
	repo := st.ConsumerApps()

	app := domain.ConsumerApp{
		ConsumerKey:    "ck-apps-1",
		ConsumerSecret: "cs-apps-1",
		Username:       "alice",
		AppName:        "alice_app1_PRODUCTION",
	}
	require.NoError(t, repo.CreateConsumerApp(ctx, app))
	require.ErrorIs(t, repo.CreateConsumerApp(ctx, app), store.ErrAlreadyExists)

	got, err := repo.GetConsumerApp(ctx, "ck-apps-1")
	require.NoError(t, err)
	require.Equal(t, "cs-apps-1", got.ConsumerSecret)
	require.Equal(t, domain.OAuthVersion2, got.OAuthVersion)
	require.Empty(t, got.CallbackURL)

	require.NoError(t, repo.UpdateCallbackURL(ctx, "ck-apps-1", "https://example.org/cb"))
	got, err = repo.GetConsumerApp(ctx, "ck-apps-1")
	require.NoError(t, err)
	require.Equal(t, "https://example.org/cb", got.CallbackURL)

	require.ErrorIs(t, repo.UpdateCallbackURL(ctx, "missing", "https://example.org/cb"), store.ErrNotFound)

	_, err = repo.GetConsumerApp(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, repo.DeleteConsumerApp(ctx, "ck-apps-1"))
	_, err = repo.GetConsumerApp(ctx, "ck-apps-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testKeyMappings(t *testing.T, st store.Store) {
	ctx := context.Background()
	apps := st.ConsumerApps()
	repo := st.KeyMappings()

	for _, ck := range []string{"ck-sandbox", "ck-prod-1", "ck-prod-2"} {
		require.NoError(t, apps.CreateConsumerApp(ctx, domain.ConsumerApp{ConsumerKey: ck}))
	}

	_, err := repo.GetKeyMapping(ctx, 42)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, repo.UpsertKeyMapping(ctx, domain.KeyMapping{
		ApplicationID: 42, ConsumerKey: "ck-sandbox", KeyType: domain.KeyTypeSandbox,
	}))
	m, err := repo.GetKeyMapping(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, "ck-sandbox", m.ConsumerKey)
	require.Equal(t, domain.KeyStateCompleted, m.State)

	t.Run("production key is preferred", func(t *testing.T) {
		require.NoError(t, repo.UpsertKeyMapping(ctx, domain.KeyMapping{
			ApplicationID: 42, ConsumerKey: "ck-prod-1", KeyType: domain.KeyTypeProduction,
		}))
		m, err := repo.GetKeyMapping(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, "ck-prod-1", m.ConsumerKey)
	})

	t.Run("upsert replaces the key of the same type", func(t *testing.T) {
		require.NoError(t, repo.UpsertKeyMapping(ctx, domain.KeyMapping{
			ApplicationID: 42, ConsumerKey: "ck-prod-2", KeyType: domain.KeyTypeProduction,
		}))
		all, err := repo.ListKeyMappings(ctx, 42)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, "ck-prod-2", all[0].ConsumerKey)
		require.Equal(t, domain.KeyTypeProduction, all[0].KeyType)
	})

	t.Run("deleting the consumer app drops its mapping", func(t *testing.T) {
		require.NoError(t, apps.DeleteConsumerApp(ctx, "ck-sandbox"))
		all, err := repo.ListKeyMappings(ctx, 42)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	require.NoError(t, repo.DeleteKeyMappings(ctx, 42))
	all, err := repo.ListKeyMappings(ctx, 42)
	require.NoError(t, err)
	require.Empty(t, all)
}

func testWithTx(t *testing.T, st store.Store) {
	ctx := context.Background()
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Store) error {
		if err := tx.ConsumerApps().CreateConsumerApp(ctx, domain.ConsumerApp{ConsumerKey: "ck-rolled-back"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	_, err = st.ConsumerApps().GetConsumerApp(ctx, "ck-rolled-back")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = st.WithTx(ctx, func(tx store.Store) error {
		if err := tx.ConsumerApps().CreateConsumerApp(ctx, domain.ConsumerApp{ConsumerKey: "ck-committed"}); err != nil {
			return err
		}
		return tx.KeyMappings().UpsertKeyMapping(ctx, domain.KeyMapping{
			ApplicationID: 7, ConsumerKey: "ck-committed", KeyType: domain.KeyTypeProduction,
		})
	})
	require.NoError(t, err)

	m, err := st.KeyMappings().GetKeyMapping(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "ck-committed", m.ConsumerKey)
}
