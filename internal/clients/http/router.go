package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/clients/api/clients" // Swagger docs
	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/service"
	"github.com/aussiebroadwan/clients/internal/clients/store"
	"github.com/aussiebroadwan/clients/pkg/httpx"
	"github.com/aussiebroadwan/clients/pkg/slogx"
)

// Realm is announced in the Basic authentication challenge.
const Realm = "clients"

// Upstream is the part of the API manager client the router uses directly:
// logging users in and checking readiness.
type Upstream interface {
	Login(ctx context.Context, username, password string) (apim.Session, error)
	Ping(ctx context.Context) error
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	upstream Upstream

	// failedLogins is shared by every secured route so the budget is per
	// caller, not per route.
	failedLogins httpx.Middleware

	ClientService       *service.ClientService
	SubscriptionService *service.SubscriptionService
}

func NewRouter(
	upstream Upstream,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		upstream:     upstream,
		failedLogins: httpx.RateLimitFailedLogins(httpx.StrictLimit),
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		httpx.VersionMiddleware(buildVersion),
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware, // innermost: reads the pattern the mux sets
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerClients()
	r.registerSubscriptions()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Clients Service API
//	@version					2.0
//	@description				Creates and manages OAuth client applications and their API subscriptions in the API manager.
//	@description
//	@description				Every clients endpoint authenticates with the caller's API manager username and password over HTTP Basic.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/clients
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.basic	BasicAuth
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured requires Basic credentials and rate limits per user. Failed logins
// are throttled before they reach the API manager.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		r.failedLogins,
		httpx.BasicAuthMiddleware(Realm, authenticator(r.upstream)),
		httpx.RateLimitByUser(limit),
	)
}

// handle registers h for pattern and its trailing-slash variant.
func (r *Router) handle(method, path string, h http.Handler) {
	r.Mux.Handle(method+" "+path, h)
	r.Mux.Handle(method+" "+path+"/{$}", h)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService, Version: r.buildVersion}

	r.handle(http.MethodGet, "/clients/v2", r.secured(h.HandleList, httpx.ReadLimit))
	r.handle(http.MethodPost, "/clients/v2", r.secured(h.HandleCreate, httpx.WriteLimit))
	r.handle(http.MethodGet, "/clients/v2/{name}", r.secured(h.HandleGet, httpx.ReadLimit))
	r.handle(http.MethodDelete, "/clients/v2/{name}", r.secured(h.HandleDelete, httpx.WriteLimit))
}

func (r *Router) registerSubscriptions() {
	h := &SubscriptionsHandler{SubscriptionService: r.SubscriptionService, Version: r.buildVersion}

	r.handle(http.MethodGet, "/clients/v2/{name}/subscriptions", r.secured(h.HandleList, httpx.ReadLimit))
	r.handle(http.MethodPost, "/clients/v2/{name}/subscriptions", r.secured(h.HandleAdd, httpx.WriteLimit))
	r.handle(http.MethodDelete, "/clients/v2/{name}/subscriptions", r.secured(h.HandleRemove, httpx.WriteLimit))
}

func (r *Router) registerSystem() {
	// Health checks and metrics are unauthenticated; probes poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.upstream),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
