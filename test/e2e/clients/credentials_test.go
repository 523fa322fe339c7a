package clients_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

// TestConsumerKeyRepair removes the key mapping behind a client and checks
// the next read regenerates credentials and records them again.
func TestConsumerKeyRepair(t *testing.T) {
	s := setupService(t)
	ctx := t.Context()

	created := s.createClient(t, clientsdk.CreateClientRequest{})

	id, ok := s.fake.ApplicationID(username, clientName)
	require.True(t, ok)
	require.NoError(t, s.mirror.DeleteKeyMappings(ctx, id))

	got, err := s.sdk.GetClient(ctx, clientName)
	require.NoError(t, err)
	require.NotEmpty(t, got.ConsumerKey)
	require.NotEqual(t, created.ConsumerKey, got.ConsumerKey, "repair generates a new key pair")
	require.Empty(t, got.ConsumerSecret)

	again, err := s.sdk.GetClient(ctx, clientName)
	require.NoError(t, err)
	require.Equal(t, got.ConsumerKey, again.ConsumerKey, "repaired mapping is reused")
}
