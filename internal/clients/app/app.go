package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aussiebroadwan/clients/internal/clients/apim"
	"github.com/aussiebroadwan/clients/internal/clients/domain"
	httpapi "github.com/aussiebroadwan/clients/internal/clients/http"
	"github.com/aussiebroadwan/clients/internal/clients/service"
	"github.com/aussiebroadwan/clients/internal/clients/store"
	"github.com/aussiebroadwan/clients/internal/clients/store/drivers/postgres"
	"github.com/aussiebroadwan/clients/internal/clients/store/drivers/sqlite"
	"github.com/aussiebroadwan/clients/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v2.0.0"
)

// Application encapsulates the clients service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	upstream *apim.Client
	apis     domain.APISet

	// Services
	credentialService   *service.CredentialService
	subscriptionService *service.SubscriptionService
	clientService       *service.ClientService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "clients-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.APIMBaseURL == "" {
		return nil, errors.New("CLIENTS_APIM_BASE_URL is required")
	}

	apis, err := LoadAPIs(cfg.APIsFile, cfg.APIVersion)
	if err != nil {
		return nil, err
	}
	app.apis = apis

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.upstream = apim.NewClient(apim.Config{
		BaseURL:            cfg.APIMBaseURL,
		Timeout:            cfg.APIMTimeout,
		InsecureSkipVerify: cfg.APIMInsecureTLS,
	})

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("clients service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"apim", app.cfg.APIMBaseURL,
		"default_apis", app.apis.Len(),
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down clients service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("clients service stopped")
	return nil
}

// initDatabase opens the consumer-key database and applies migrations when
// configured to.
func (app *Application) initDatabase() error {
	switch app.cfg.DatabaseDriver {
	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db

	case "postgres":
		if app.cfg.DatabaseURL == "" {
			return errors.New("CLIENTS_DATABASE_URL is required for the postgres driver")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := postgres.NewStore(ctx, app.cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.RegisterPoolMetrics(prometheus.DefaultRegisterer); err != nil {
			app.logger.Warn("pool metrics not registered", "error", err)
		}
		app.db = db

	default:
		return fmt.Errorf("unknown database driver %q", app.cfg.DatabaseDriver)
	}

	if !app.cfg.Migrate {
		app.logger.Info("database ready", "driver", app.cfg.DatabaseDriver, "migrations", "skipped")
		return nil
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	tier, err := domain.ParseTier(app.cfg.DefaultTier)
	if err != nil {
		return fmt.Errorf("CLIENTS_DEFAULT_TIER: %w", err)
	}

	links := service.Links{BaseURL: app.cfg.PublicBaseURL, APIVersion: app.cfg.APIVersion}

	app.credentialService = &service.CredentialService{
		Manager: app.upstream,
		Store:   app.db,
	}
	app.subscriptionService = &service.SubscriptionService{
		Manager:     app.upstream,
		APIs:        app.apis,
		Links:       links,
		DefaultTier: tier,
	}
	app.clientService = &service.ClientService{
		Manager:       app.upstream,
		Credentials:   app.credentialService,
		Subscriptions: app.subscriptionService,
		Links:         links,
		DefaultTier:   tier,
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.upstream, BuildVersion, app.db, app.logger)

	// Wire services to router
	router.ClientService = app.clientService
	router.SubscriptionService = app.subscriptionService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
