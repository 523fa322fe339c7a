package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clients/pkg/httpx"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler(), mw("outer"), mw("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSONIndent(rec, http.StatusCreated, map[string]string{"a": "b"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Equal(t, "{\n    \"a\": \"b\"\n}\n", rec.Body.String())
}

type sessionKey struct{}

func TestBasicAuthMiddleware(t *testing.T) {
	authn := func(ctx context.Context, user, pass string) (context.Context, error) {
		switch {
		case user == "down":
			return nil, errors.New("connection refused")
		case pass != "secret":
			return nil, httpx.ErrInvalidCredentials
		}
		return context.WithValue(ctx, sessionKey{}, "session-"+user), nil
	}

	var gotUser, gotSession string
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = httpx.UserIDFromContext(r.Context())
		gotSession, _ = r.Context().Value(sessionKey{}).(string)
		w.WriteHeader(http.StatusOK)
	}), httpx.VersionMiddleware("v2.0.0"), httpx.BasicAuthMiddleware("clients", authn))

	serve := func(user, pass string, set bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/clients/v2", nil)
		if set {
			req.SetBasicAuth(user, pass)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing credentials", func(t *testing.T) {
		rec := serve("", "", false)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.True(t, strings.HasPrefix(rec.Header().Get("WWW-Authenticate"), "Basic "))
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := serve("alice", "nope", true)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t,
			`{"status":"error","message":"invalid username/password combination","result":null,"version":"v2.0.0"}`,
			rec.Body.String())
	})

	t.Run("backend failure", func(t *testing.T) {
		rec := serve("down", "secret", true)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Contains(t, rec.Body.String(), `"version":"v2.0.0"`)
	})

	t.Run("success", func(t *testing.T) {
		rec := serve("alice", "secret", true)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "alice", gotUser)
		require.Equal(t, "session-alice", gotSession)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /widgets/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := httpx.MetricsMiddleware(mux)

	before, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "http_requests_total")
	require.NoError(t, err)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/widgets/one", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/widgets/two", nil))

	// Both requests land on one series keyed by the route pattern.
	after, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "http_requests_total")
	require.NoError(t, err)
	require.Equal(t, before+1, after)
}
