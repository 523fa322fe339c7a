package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/apim/apimtest"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/internal/clients/service"
	"github.com/aussiebroadwan/clients/internal/clients/store"
	"github.com/aussiebroadwan/clients/internal/clients/store/drivers/sqlite"
)

var defaults = domain.NewAPISet(
	domain.API{Name: "Jobs", Version: "v2", Provider: "admin"},
	domain.API{Name: "Files", Version: "v2", Provider: "admin"},
	domain.API{Name: "Systems", Version: "v2", Provider: "admin"},
)

var extra = domain.API{Name: "Tenants", Version: "v1", Provider: "ops"}

type fixture struct {
	fake    *apimtest.Server
	store   store.Store
	sess    apim.Session
	clients *service.ClientService
	subs    *service.SubscriptionService
	creds   *service.CredentialService
}

func newFixture(t *testing.T, mirror bool) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	fake := apimtest.New(t)
	fake.AddUser("alice", "secret")
	fake.PublishAPIs(defaults)
	fake.PublishAPI(extra, "/tenants/v1")
	if mirror {
		fake.OnEvent(apimtest.StoreHook(st))
	}

	mgr := apim.NewClient(fake.Config())
	sess, err := mgr.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	fake.ResetCalls()

	links := service.Links{BaseURL: "https://api.example.org", APIVersion: "v2"}
	creds := &service.CredentialService{Manager: mgr, Store: st}
	subs := &service.SubscriptionService{Manager: mgr, APIs: defaults, Links: links}

	return &fixture{
		fake:  fake,
		store: st,
		sess:  sess,
		creds: creds,
		subs:  subs,
		clients: &service.ClientService{
			Manager:       mgr,
			Credentials:   creds,
			Subscriptions: subs,
			Links:         links,
		},
	}
}

func TestCreateClient(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	c, err := f.clients.Create(ctx, f.sess, service.CreateClientParams{
		Name:        "reporting",
		Description: "nightly reports",
		Tier:        "gold",
		CallbackURL: "https://example.org/cb",
	})
	require.NoError(t, err)

	require.Equal(t, "reporting", c.Name)
	require.Equal(t, "nightly reports", c.Description)
	require.Equal(t, "Gold", c.Tier)
	require.Equal(t, "https://example.org/cb", c.CallbackURL)
	require.NotEmpty(t, c.ConsumerKey)
	require.NotEmpty(t, c.ConsumerSecret)
	require.Equal(t, "https://api.example.org/clients/v2/reporting", c.Links["self"].Href)
	require.Equal(t, "https://api.example.org/profiles/v2/alice", c.Links["subscriber"].Href)
	require.Equal(t, "https://api.example.org/clients/v2/reporting/subscriptions", c.Links["subscriptions"].Href)

	require.Equal(t, []string{
		"addApplication",
		"generateApplicationKey",
		"getApplications",
		"addAPISubscription",
		"addAPISubscription",
		"addAPISubscription",
	}, f.fake.Actions(true))
	require.Equal(t, defaults.All(), f.fake.Subscriptions("alice", "reporting"))

	t.Run("callback URL is patched onto the consumer record", func(t *testing.T) {
		app, err := f.store.ConsumerApps().GetConsumerApp(ctx, c.ConsumerKey)
		require.NoError(t, err)
		require.Equal(t, "https://example.org/cb", app.CallbackURL)
	})

	t.Run("secret is not disclosed again", func(t *testing.T) {
		got, err := f.clients.Get(ctx, f.sess, "reporting")
		require.NoError(t, err)
		require.Equal(t, c.ConsumerKey, got.ConsumerKey)
		require.Empty(t, got.ConsumerSecret)

		all, err := f.clients.List(ctx, f.sess)
		require.NoError(t, err)
		for _, cl := range all {
			require.Empty(t, cl.ConsumerSecret)
		}
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, err := f.clients.Create(ctx, f.sess, service.CreateClientParams{Name: "reporting"})
		require.ErrorIs(t, err, domain.ErrUpstreamRejected)
	})
}

func TestCreateClientValidation(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.clients.Create(ctx, f.sess, service.CreateClientParams{Name: "  "})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.clients.Create(ctx, f.sess, service.CreateClientParams{Name: "x", Tier: "Platinum"})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	require.Empty(t, f.fake.Actions(true))
}

func TestCreateClientDefaultsTier(t *testing.T) {
	f := newFixture(t, true)
	f.clients.DefaultTier = domain.TierBronze

	c, err := f.clients.Create(context.Background(), f.sess, service.CreateClientParams{Name: "plain"})
	require.NoError(t, err)
	require.Equal(t, "Bronze", c.Tier)
	require.Empty(t, c.CallbackURL)
}

func TestCreateClientSubscriptionFailure(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	f.fake.Fail("addAPISubscription", apimtest.FaultRejected)

	_, err := f.clients.Create(ctx, f.sess, service.CreateClientParams{Name: "partial"})
	require.ErrorIs(t, err, domain.ErrUpstreamRejected)

	// Nothing is rolled back: the application and its credentials remain.
	require.True(t, f.fake.HasApplication("alice", "partial"))

	all, err := f.clients.List(ctx, f.sess)
	require.NoError(t, err)
	var found bool
	for _, c := range all {
		if c.Name == "partial" {
			found = true
			require.NotEmpty(t, c.ConsumerKey)
		}
	}
	require.True(t, found)
}

func TestCreateClientWithoutConsumerRecord(t *testing.T) {
	// Without mirroring there is no consumer record to patch; creation
	// still succeeds.
	f := newFixture(t, false)

	c, err := f.clients.Create(context.Background(), f.sess, service.CreateClientParams{
		Name:        "orphan",
		CallbackURL: "https://example.org/cb",
	})
	require.NoError(t, err)
	require.NotEmpty(t, c.ConsumerSecret)
}

func TestListClientsRepairsMissingCredentials(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	all, err := f.clients.List(ctx, f.sess)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, apimtest.DefaultApplication, all[0].Name)
	require.NotEmpty(t, all[0].ConsumerKey)
	require.Equal(t, []string{"getApplications", "generateApplicationKey"}, f.fake.Actions(true))

	f.fake.ResetCalls()
	again, err := f.clients.List(ctx, f.sess)
	require.NoError(t, err)
	require.Equal(t, all[0].ConsumerKey, again[0].ConsumerKey)
	require.Equal(t, []string{"getApplications"}, f.fake.Actions(true))
}

func TestListClientsToleratesUnresolvableKeys(t *testing.T) {
	f := newFixture(t, false)

	all, err := f.clients.List(context.Background(), f.sess)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Empty(t, all[0].ConsumerKey)
}

func TestGetClient(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.clients.Get(context.Background(), f.sess, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.clients.Get(context.Background(), f.sess, "defaultapplication")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteClient(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.clients.Create(ctx, f.sess, service.CreateClientParams{Name: "temp"})
	require.NoError(t, err)
	id, ok := f.fake.ApplicationID("alice", "temp")
	require.True(t, ok)
	f.fake.ResetCalls()

	require.NoError(t, f.clients.Delete(ctx, f.sess, "temp"))
	require.False(t, f.fake.HasApplication("alice", "temp"))
	require.Equal(t, []string{
		"getAllSubscriptions",
		"removeSubscription",
		"removeSubscription",
		"removeSubscription",
		"removeApplication",
	}, f.fake.Actions(true))

	_, err = f.store.KeyMappings().GetKeyMapping(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteClientIsBestEffortOnSubscriptions(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.clients.Create(ctx, f.sess, service.CreateClientParams{Name: "sticky"})
	require.NoError(t, err)
	f.fake.Fail("removeSubscription", apimtest.FaultRejected)

	require.NoError(t, f.clients.Delete(ctx, f.sess, "sticky"))
	require.False(t, f.fake.HasApplication("alice", "sticky"))
}

func TestDeleteClientFailure(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	err := f.clients.Delete(ctx, f.sess, "missing")
	require.ErrorIs(t, err, domain.ErrUpstreamRejected)

	f.fake.Fail("removeApplication", apimtest.FaultStatus)
	err = f.clients.Delete(ctx, f.sess, apimtest.DefaultApplication)
	require.ErrorIs(t, err, domain.ErrUpstreamRejected)
	require.True(t, f.fake.HasApplication("alice", apimtest.DefaultApplication))
}

func TestSubscriptions(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	app := apimtest.DefaultApplication

	t.Run("version and provider are filled from the defaults", func(t *testing.T) {
		require.NoError(t, f.subs.Subscribe(ctx, f.sess, app, service.SubscribeParams{APIName: "Jobs"}))
		require.Equal(t, []domain.API{defaults.All()[0]}, f.fake.Subscriptions("alice", app))
	})

	t.Run("subscribing twice succeeds", func(t *testing.T) {
		require.NoError(t, f.subs.Subscribe(ctx, f.sess, app, service.SubscribeParams{APIName: "Jobs", Tier: "unlimited"}))
		require.Len(t, f.fake.Subscriptions("alice", app), 1)
	})

	t.Run("unknown API needs version and provider", func(t *testing.T) {
		err := f.subs.Subscribe(ctx, f.sess, app, service.SubscribeParams{APIName: "Tenants"})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)

		require.NoError(t, f.subs.Subscribe(ctx, f.sess, app, service.SubscribeParams{
			APIName: "Tenants", APIVersion: "v1", APIProvider: "ops",
		}))
	})

	t.Run("invalid tier", func(t *testing.T) {
		err := f.subs.Subscribe(ctx, f.sess, app, service.SubscribeParams{APIName: "Files", Tier: "free"})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("missing name", func(t *testing.T) {
		err := f.subs.Subscribe(ctx, f.sess, app, service.SubscribeParams{})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("wildcard subscribes every default", func(t *testing.T) {
		require.NoError(t, f.subs.Subscribe(ctx, f.sess, app, service.SubscribeParams{APIName: "*"}))
		require.ElementsMatch(t, append(defaults.All(), extra), f.fake.Subscriptions("alice", app))
	})

	t.Run("list is sanitized and linked", func(t *testing.T) {
		subs, err := f.subs.List(ctx, f.sess, app)
		require.NoError(t, err)
		require.Len(t, subs, 4)

		jobs := subs[0]
		require.Equal(t, "Jobs", jobs.APIName)
		require.Equal(t, "v2", jobs.APIVersion)
		require.Equal(t, "admin", jobs.APIProvider)
		require.Equal(t, "/jobs/v2", jobs.APIContext)
		require.Equal(t, "https://api.example.org/jobs/v2/", jobs.Links["api"].Href)
		require.Equal(t, "https://api.example.org/clients/v2/DefaultApplication", jobs.Links["client"].Href)
	})

	t.Run("unsubscribe one", func(t *testing.T) {
		require.NoError(t, f.subs.Unsubscribe(ctx, f.sess, app, service.SubscribeParams{APIName: "Files"}))
		require.NotContains(t, f.fake.Subscriptions("alice", app), defaults.All()[1])
	})

	t.Run("wildcard unsubscribes everything", func(t *testing.T) {
		require.NoError(t, f.subs.Unsubscribe(ctx, f.sess, app, service.SubscribeParams{APIName: "*"}))
		require.Empty(t, f.fake.Subscriptions("alice", app))

		subs, err := f.subs.List(ctx, f.sess, app)
		require.NoError(t, err)
		require.Empty(t, subs)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := f.subs.List(ctx, f.sess, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSubscribeDefaultsStopsAtFirstFailure(t *testing.T) {
	f := newFixture(t, true)
	f.fake.Fail("addAPISubscription", apimtest.FaultStatus)

	err := f.subs.SubscribeDefaults(context.Background(), f.sess, apimtest.DefaultApplication, "")
	require.ErrorIs(t, err, domain.ErrUpstreamRejected)
	require.Equal(t, []string{"addAPISubscription"}, f.fake.Actions(true))
}

func TestExpiredSession(t *testing.T) {
	f := newFixture(t, true)
	f.fake.ExpireSessions()

	_, err := f.clients.List(context.Background(), f.sess)
	require.ErrorIs(t, err, domain.ErrAuthenticationFailure)
}
