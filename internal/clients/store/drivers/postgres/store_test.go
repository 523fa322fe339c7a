package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/clients/internal/clients/store/drivers/postgres"
	"github.com/aussiebroadwan/clients/internal/clients/store/storetest"
)

// setupPostgres starts a throwaway PostgreSQL container and returns its URL.
func setupPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "apim",
				"POSTGRES_PASSWORD": "apim",
				"POSTGRES_DB":       "apimgtdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://apim:apim@%s:%s/apimgtdb?sslmode=disable", host, port.Port())
}

func TestStore(t *testing.T) {
	url := setupPostgres(t)

	st, err := postgres.NewStore(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.ApplyMigrations(), "migrations are idempotent")

	storetest.Run(t, st)

	t.Run("pool metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		require.NoError(t, st.RegisterPoolMetrics(reg))

		n, err := testutil.GatherAndCount(reg, "pgxpool_max_conns", "pgxpool_idle_conns")
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})
}
