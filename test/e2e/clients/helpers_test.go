package clients_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/clients/internal/clients/apim/apimtest"
	"github.com/aussiebroadwan/clients/internal/clients/app"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/internal/clients/store"
	"github.com/aussiebroadwan/clients/internal/clients/store/drivers/postgres"
	"github.com/aussiebroadwan/clients/internal/clients/store/drivers/sqlite"
	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

/*
 * Common constants and helpers for the clients service end-to-end tests.
 * The service runs in-process with its real wiring against a fake API
 * manager; the side tables are kept in step by the fake's store hook.
 */

const (
	username   = "alice"
	password   = "secret"
	clientName = "app1"
)

// stack is one running service with its fake upstream.
type stack struct {
	fake   *apimtest.Server
	sdk    *clientsdk.SDKClient
	url    string
	mirror store.Store
}

// setupService starts the service backed by SQLite.
func setupService(t *testing.T) *stack {
	t.Helper()

	cfg := baseConfig(t)
	cfg.DatabaseDriver = "sqlite"
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "clients.db")
	cfg.Migrate = true

	return start(t, cfg, func() store.Store {
		st, err := sqlite.NewStore(fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile))
		require.NoError(t, err)
		return st
	})
}

// setupPostgresService starts the service backed by a throwaway PostgreSQL
// container.
func setupPostgresService(t *testing.T) *stack {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	cfg := baseConfig(t)
	cfg.DatabaseDriver = "postgres"
	cfg.DatabaseURL = setupPostgres(t)
	cfg.Migrate = true

	return start(t, cfg, func() store.Store {
		st, err := postgres.NewStore(context.Background(), cfg.DatabaseURL)
		require.NoError(t, err)
		return st
	})
}

func baseConfig(t *testing.T) app.Config {
	t.Helper()

	t.Setenv("LOG_LEVEL", "error")
	cfg := app.LoadConfig()
	cfg.PublicBaseURL = "https://api.example.org"
	cfg.APIVersion = "v2"
	cfg.DefaultTier = "Unlimited"
	return cfg
}

func start(t *testing.T, cfg app.Config, openMirror func() store.Store) *stack {
	t.Helper()

	fake := apimtest.New(t)
	fake.AddUser(username, password)
	cfg.APIMBaseURL = fake.URL

	application, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	// The API manager writes the side tables itself; the fake does it
	// through a second handle on the same database.
	mirror := openMirror()
	t.Cleanup(func() { _ = mirror.Close() })
	fake.OnEvent(apimtest.StoreHook(mirror))

	apis, err := app.LoadAPIs("", cfg.APIVersion)
	require.NoError(t, err)
	fake.PublishAPIs(apis)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	return &stack{
		fake:   fake,
		sdk:    clientsdk.NewSDKClient(srv.URL, username, password),
		url:    srv.URL,
		mirror: mirror,
	}
}

func setupPostgres(t *testing.T) string {
	t.Helper()
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
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://apim:apim@%s:%s/apimgtdb?sslmode=disable", host, port.Port())
}

// createClient creates clientName and returns the creation response.
func (s *stack) createClient(t *testing.T, req clientsdk.CreateClientRequest) *clientsdk.Client {
	t.Helper()

	if req.ClientName == "" {
		req.ClientName = clientName
	}
	created, err := s.sdk.CreateClient(t.Context(), req)
	require.NoError(t, err)
	require.NotNil(t, created)
	return created
}

// findClient returns the named client from the listing.
func findClient(clients []clientsdk.Client, name string) (clientsdk.Client, bool) {
	for _, c := range clients {
		if c.Name == name {
			return c, true
		}
	}
	return clientsdk.Client{}, false
}

// assertHealthy checks a health response reports ok.
func assertHealthy(t *testing.T, health *clientsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

func platformAPIs(t *testing.T) []domain.API {
	t.Helper()
	apis, err := app.LoadAPIs("", "v2")
	require.NoError(t, err)
	return apis.All()
}
