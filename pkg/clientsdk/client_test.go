package clientsdk

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorded struct {
	method   string
	path     string
	user     string
	password string
	body     map[string]any
}

// newTestServer answers every request with status and an envelope around
// result, recording what it received.
func newTestServer(t *testing.T, status int, message string, result any) (*SDKClient, *recorded) {
	t.Helper()

	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.user, rec.password, _ = r.BasicAuth()
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			require.NoError(t, json.Unmarshal(data, &rec.body))
		}

		envStatus := StatusSuccess
		if status >= 400 {
			envStatus = StatusError
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  envStatus,
			"message": message,
			"result":  result,
			"version": "v2.0.0",
		})
	}))
	t.Cleanup(srv.Close)

	return NewSDKClient(srv.URL+"/", "alice", "secret"), rec
}

func TestCreateClient(t *testing.T) {
	t.Parallel()

	client, rec := newTestServer(t, http.StatusCreated, "Client created successfully.", map[string]any{
		"name":           "reports",
		"tier":           "Unlimited",
		"consumerKey":    "ck",
		"consumerSecret": "cs",
		"_links": map[string]any{
			"self": map[string]any{"href": "http://localhost:8080/clients/v2/reports"},
		},
	})

	created, err := client.CreateClient(t.Context(), CreateClientRequest{
		ClientName:  "reports",
		CallbackURL: "https://reports.example.org/cb",
	})
	require.NoError(t, err)
	require.Equal(t, "cs", created.ConsumerSecret)
	require.Equal(t, "http://localhost:8080/clients/v2/reports", created.Links["self"].Href)

	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/clients/v2", rec.path)
	require.Equal(t, "alice", rec.user)
	require.Equal(t, "secret", rec.password)
	require.Equal(t, "reports", rec.body["clientName"])
	require.NotContains(t, rec.body, "tier")
}

func TestGetClientEscapesName(t *testing.T) {
	t.Parallel()

	client, rec := newTestServer(t, http.StatusOK, "", map[string]any{"name": "my app"})

	got, err := client.GetClient(t.Context(), "my app")
	require.NoError(t, err)
	require.Equal(t, "my app", got.Name)
	require.Equal(t, "/clients/v2/my%20app", rec.path)
}

func TestListClients(t *testing.T) {
	t.Parallel()

	t.Run("clients", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusOK, "", []map[string]any{{"name": "a"}, {"name": "b"}})
		got, err := client.ListClients(t.Context())
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("null result", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusOK, "", nil)
		got, err := client.ListClients(t.Context())
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestSubscriptions(t *testing.T) {
	t.Parallel()

	t.Run("subscribe", func(t *testing.T) {
		client, rec := newTestServer(t, http.StatusOK, "Client reports has been subscribed to Jobs.", nil)
		require.NoError(t, client.Subscribe(t.Context(), "reports", SubscriptionRequest{APIName: "Jobs", Tier: "Gold"}))
		require.Equal(t, http.MethodPost, rec.method)
		require.Equal(t, "/clients/v2/reports/subscriptions", rec.path)
		require.Equal(t, "Jobs", rec.body["apiName"])
		require.Equal(t, "Gold", rec.body["tier"])
	})

	t.Run("unsubscribe all", func(t *testing.T) {
		client, rec := newTestServer(t, http.StatusOK, "All APIs have been removed from the client reports.", nil)
		require.NoError(t, client.Unsubscribe(t.Context(), "reports", SubscriptionRequest{APIName: AllAPIs}))
		require.Equal(t, http.MethodDelete, rec.method)
		require.Equal(t, "*", rec.body["apiName"])
	})

	t.Run("list", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusOK, "", []map[string]any{
			{"apiName": "Jobs", "apiVersion": "v2", "apiProvider": "admin", "tier": "Unlimited"},
		})
		subs, err := client.ListSubscriptions(t.Context(), "reports")
		require.NoError(t, err)
		require.Equal(t, []Subscription{{APIName: "Jobs", APIVersion: "v2", APIProvider: "admin", Tier: "Unlimited"}}, subs)
	})
}

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusNotFound, "No client found matching ghost", nil)
		_, err := client.GetClient(t.Context(), "ghost")
		require.True(t, IsNotFound(err))
		require.False(t, IsBadRequest(err))
		require.ErrorContains(t, err, "No client found matching ghost")
	})

	t.Run("unauthorized", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusUnauthorized, "invalid credentials", nil)
		err := client.DeleteClient(t.Context(), "reports")
		require.True(t, IsUnauthorized(err))
	})

	t.Run("bad request", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusBadRequest, "apiName is required", nil)
		err := client.Subscribe(t.Context(), "reports", SubscriptionRequest{})
		require.True(t, IsBadRequest(err))
	})

	t.Run("non-envelope body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)

		_, err := NewSDKClient(srv.URL, "alice", "secret").ListClients(t.Context())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		require.Equal(t, "Bad Gateway", apiErr.Message)
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"ok","uptime":"1s","version":"v2.0.0","checks":{"database":"ok","upstream":"ok"}}`)
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL, "alice", "secret")
	require.Equal(t, "alice", client.Username())

	health, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Upstream)
}
