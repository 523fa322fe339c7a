package clients_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check.
func TestLivezEndpoint(t *testing.T) {
	s := setupService(t)

	health, err := s.sdk.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check reaches both dependencies.
func TestReadyzEndpoint(t *testing.T) {
	s := setupService(t)

	health, err := s.sdk.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Upstream)
}

// TestSwaggerDocs verifies the API documentation is served.
func TestSwaggerDocs(t *testing.T) {
	s := setupService(t)

	resp, err := http.Get(s.url + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "/clients/v2/{name}/subscriptions")
}
