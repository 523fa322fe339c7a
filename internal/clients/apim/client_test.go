package apim_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/apim/apimtest"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

var (
	jobs  = domain.API{Name: "Jobs", Version: "v2", Provider: "admin"}
	files = domain.API{Name: "Files", Version: "v2", Provider: "admin"}
)

func setup(t *testing.T) (*apimtest.Server, *apim.Client, apim.Session) {
	t.Helper()

	fake := apimtest.New(t)
	fake.AddUser("alice", "secret")
	fake.PublishAPI(jobs, "/jobs/v2")
	fake.PublishAPI(files, "/files/v2")

	c := apim.NewClient(fake.Config())
	sess, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	return fake, c, sess
}

func TestLogin(t *testing.T) {
	fake := apimtest.New(t)
	fake.AddUser("alice", "secret")
	c := apim.NewClient(fake.Config())
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		sess, err := c.Login(ctx, "alice", "secret")
		require.NoError(t, err)
		require.Equal(t, "alice", sess.Username)
		require.NotEmpty(t, sess.Cookies)
	})

	t.Run("wrong password is an authentication failure", func(t *testing.T) {
		_, err := c.Login(ctx, "alice", "wrong")
		require.ErrorIs(t, err, domain.ErrAuthenticationFailure)
	})

	t.Run("unreachable store is unavailable", func(t *testing.T) {
		down := apim.NewClient(apim.Config{BaseURL: "http://127.0.0.1:1"})
		_, err := down.Login(ctx, "alice", "secret")
		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})
}

func TestCreateApplication(t *testing.T) {
	fake, c, sess := setup(t)
	ctx := context.Background()

	t.Run("tier is canonicalized", func(t *testing.T) {
		require.NoError(t, c.CreateApplication(ctx, sess, "app1", "gOlD", "desc", ""))

		app, err := c.GetApplication(ctx, sess, "app1")
		require.NoError(t, err)
		require.Equal(t, "Gold", app.Tier)
		require.Equal(t, "desc", app.Description)
	})

	t.Run("unknown tier is rejected before any call", func(t *testing.T) {
		fake.ResetCalls()
		err := c.CreateApplication(ctx, sess, "app2", "Platinum", "", "")
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
		require.Empty(t, fake.Calls())
	})

	t.Run("empty name is invalid", func(t *testing.T) {
		err := c.CreateApplication(ctx, sess, "  ", "Gold", "", "")
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("embedded error on 200 is rejected", func(t *testing.T) {
		err := c.CreateApplication(ctx, sess, "app1", "Gold", "", "")
		require.ErrorIs(t, err, domain.ErrUpstreamRejected)
		require.Contains(t, err.Error(), "duplicate application")
	})
}

func TestFaultClassification(t *testing.T) {
	fake, c, sess := setup(t)
	ctx := context.Background()

	cases := []struct {
		fault apimtest.Fault
		want  error
	}{
		{apimtest.FaultRejected, domain.ErrUpstreamRejected},
		{apimtest.FaultStatus, domain.ErrUpstreamRejected},
		{apimtest.FaultMalformed, domain.ErrMalformedResponse},
		{apimtest.FaultUnauthorized, domain.ErrAuthenticationFailure},
	}
	for _, tc := range cases {
		fake.Fail("getApplications", tc.fault)
		_, err := c.ListApplications(ctx, sess)
		require.ErrorIs(t, err, tc.want)
	}
	fake.Fail("getApplications", apimtest.FaultNone)

	_, err := c.ListApplications(ctx, sess)
	require.NoError(t, err)
}

func TestExpiredSession(t *testing.T) {
	fake, c, sess := setup(t)
	fake.ExpireSessions()

	_, err := c.ListApplications(context.Background(), sess)
	require.ErrorIs(t, err, domain.ErrAuthenticationFailure)
}

func TestGenerateCredentials(t *testing.T) {
	fake, c, sess := setup(t)
	ctx := context.Background()

	var (
		mu     sync.Mutex
		events []apimtest.Event
	)
	fake.OnEvent(func(ev apimtest.Event) error {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
		return nil
	})

	require.NoError(t, c.CreateApplication(ctx, sess, "app1", "Unlimited", "", ""))
	key, err := c.GenerateCredentials(ctx, sess, "app1", "https://example.org/cb")
	require.NoError(t, err)
	require.NotEmpty(t, key.ConsumerKey)
	require.NotEmpty(t, key.ConsumerSecret)
	require.True(t, key.EnableRegenerate)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	require.Equal(t, apimtest.EventKeyGenerated, events[0].Kind)
	require.Equal(t, key.ConsumerKey, events[0].ConsumerKey)
	require.Equal(t, domain.KeyTypeProduction, events[0].KeyType)

	calls := fake.Calls()
	last := calls[len(calls)-1]
	require.Equal(t, "generateApplicationKey", last.Action)
	require.Equal(t, "https://example.org/cb", last.Params.Get("callbackUrl"))
	require.Equal(t, "14400", last.Params.Get("validityTime"))
	require.Equal(t, "ALL", last.Params.Get("authorizedDomains"))

	// The listing never carries the secret.
	app, err := c.GetApplication(ctx, sess, "app1")
	require.NoError(t, err)
	require.Empty(t, app.ConsumerSecret)

	_, err = c.GenerateCredentials(ctx, sess, "missing", "")
	require.ErrorIs(t, err, domain.ErrUpstreamRejected)
}

func TestGenerateCredentialsWithoutData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":false}`))
	}))
	t.Cleanup(srv.Close)

	c := apim.NewClient(apim.Config{BaseURL: srv.URL})
	_, err := c.GenerateCredentials(context.Background(), apim.Session{}, "app1", "")
	require.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestListApplicationsShape(t *testing.T) {
	for name, body := range map[string]string{
		"missing applications key": `{"error":false}`,
		"applications not a list":  `{"error":false,"applications":"nope"}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			t.Cleanup(srv.Close)

			c := apim.NewClient(apim.Config{BaseURL: srv.URL})
			_, err := c.ListApplications(context.Background(), apim.Session{})
			require.ErrorIs(t, err, domain.ErrMalformedResponse)
		})
	}

	t.Run("error flag as a string", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"true","message":"store is in maintenance"}`))
		}))
		t.Cleanup(srv.Close)

		c := apim.NewClient(apim.Config{BaseURL: srv.URL})
		_, err := c.ListApplications(context.Background(), apim.Session{})
		require.ErrorIs(t, err, domain.ErrUpstreamRejected)
		require.Contains(t, err.Error(), "store is in maintenance")
	})
}

func TestGetApplication(t *testing.T) {
	_, c, sess := setup(t)
	ctx := context.Background()

	id, err := c.GetApplicationID(ctx, sess, apimtest.DefaultApplication)
	require.NoError(t, err)
	require.NotZero(t, id)

	// Matching is exact and case-sensitive.
	_, err = c.GetApplication(ctx, sess, "defaultapplication")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubscriptions(t *testing.T) {
	fake, c, sess := setup(t)
	ctx := context.Background()
	require.NoError(t, c.CreateApplication(ctx, sess, "app1", "Unlimited", "", ""))

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, c.AddSubscription(ctx, sess, "app1", jobs, "Unlimited"))
		require.NoError(t, c.AddSubscription(ctx, sess, "app1", jobs, "Unlimited"))
		require.Equal(t, []domain.API{jobs}, fake.Subscriptions("alice", "app1"))
	})

	t.Run("unknown API is rejected", func(t *testing.T) {
		err := c.AddSubscription(ctx, sess, "app1", domain.API{Name: "Nope", Version: "v2", Provider: "admin"}, "Unlimited")
		require.ErrorIs(t, err, domain.ErrUpstreamRejected)
	})

	t.Run("list picks the application out of the payload", func(t *testing.T) {
		require.NoError(t, c.AddSubscription(ctx, sess, apimtest.DefaultApplication, files, "Gold"))

		subs, err := c.ListSubscriptions(ctx, sess, "app1")
		require.NoError(t, err)
		require.Len(t, subs, 1)
		require.Equal(t, "Jobs", subs[0].Name)
		require.Equal(t, "/jobs/v2", subs[0].Context)
		require.NotEmpty(t, subs[0].SubStatus)
	})

	t.Run("application without subscriptions lists empty", func(t *testing.T) {
		require.NoError(t, c.CreateApplication(ctx, sess, "empty", "Unlimited", "", ""))
		subs, err := c.ListSubscriptions(ctx, sess, "empty")
		require.NoError(t, err)
		require.NotNil(t, subs)
		require.Empty(t, subs)
	})

	t.Run("missing application is not found", func(t *testing.T) {
		_, err := c.ListSubscriptions(ctx, sess, "ghost")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, c.RemoveSubscription(ctx, sess, "app1", jobs))
		require.Empty(t, fake.Subscriptions("alice", "app1"))

		err := c.RemoveSubscription(ctx, sess, "app1", jobs)
		require.ErrorIs(t, err, domain.ErrUpstreamRejected)
	})
}

func TestDeleteApplication(t *testing.T) {
	fake, c, sess := setup(t)
	ctx := context.Background()

	require.NoError(t, c.CreateApplication(ctx, sess, "app1", "Unlimited", "", ""))
	require.NoError(t, c.DeleteApplication(ctx, sess, "app1"))
	require.False(t, fake.HasApplication("alice", "app1"))

	fake.Fail("removeApplication", apimtest.FaultStatus)
	err := c.DeleteApplication(ctx, sess, apimtest.DefaultApplication)
	require.ErrorIs(t, err, domain.ErrUpstreamRejected)
	require.Contains(t, err.Error(), "status code 500")
}

func TestPing(t *testing.T) {
	fake := apimtest.New(t)
	require.NoError(t, apim.NewClient(fake.Config()).Ping(context.Background()))

	down := apim.NewClient(apim.Config{BaseURL: "http://127.0.0.1:1"})
	require.ErrorIs(t, down.Ping(context.Background()), domain.ErrUpstreamUnavailable)
}
