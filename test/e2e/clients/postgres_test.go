package clients_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

// TestPostgresBackedService runs the main flow against the PostgreSQL
// driver.
func TestPostgresBackedService(t *testing.T) {
	s := setupPostgresService(t)
	ctx := t.Context()

	health, err := s.sdk.GetReadiness(ctx)
	assertHealthy(t, health, err)

	created := s.createClient(t, clientsdk.CreateClientRequest{CallbackURL: "https://app1.example.org/cb"})
	require.NotEmpty(t, created.ConsumerSecret)

	got, err := s.sdk.GetClient(ctx, clientName)
	require.NoError(t, err)
	require.Equal(t, created.ConsumerKey, got.ConsumerKey)

	app, err := s.mirror.ConsumerApps().GetConsumerApp(ctx, created.ConsumerKey)
	require.NoError(t, err)
	require.Equal(t, "https://app1.example.org/cb", app.CallbackURL)

	require.NoError(t, s.sdk.DeleteClient(ctx, clientName))
	_, err = s.sdk.GetClient(ctx, clientName)
	require.True(t, clientsdk.IsNotFound(err))
}
