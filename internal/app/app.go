package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/prefs"
	executionservice "github.com/thenoetrevino/testdeck/internal/services/execution"
	reportservice "github.com/thenoetrevino/testdeck/internal/services/report"
	testcaseservice "github.com/thenoetrevino/testdeck/internal/services/testcase"
	testplanservice "github.com/thenoetrevino/testdeck/internal/services/testplan"
	"go.uber.org/zap"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config
	Logger *zap.Logger

	// Backend access (REST client in production, fakes in tests)
	backend       api.Backend
	executionOpts []executionservice.Option

	// Local preferences (widget, last list position)
	Prefs *prefs.Store

	// Service layer (business logic)
	PlanService      testplanservice.Service
	CaseService      testcaseservice.Service
	ExecutionService executionservice.Service
	ReportService    reportservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(backend api.Backend, store *prefs.Store, opts ...Option) *App {
	cfg := &appConfig{
		config: config.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	a := &App{
		Config:        cfg.config,
		Logger:        cfg.logger,
		Prefs:         store,
		executionOpts: cfg.executionOpts,
	}
	a.bind(backend)
	return a
}

func (a *App) bind(backend api.Backend) {
	a.backend = backend
	a.PlanService = testplanservice.NewService(backend)
	a.CaseService = testcaseservice.NewService(backend)
	a.ExecutionService = executionservice.NewService(backend, a.executionOpts...)
	a.ReportService = reportservice.NewService(backend)
}

// Apply switches to a reloaded configuration. A changed API URL or timeout
// rebuilds the client and every service on top of it; the previous client
// stays in use when the new one cannot be created.
func (a *App) Apply(cfg *config.Config) error {
	old := a.Config
	a.Config = cfg
	if old != nil && old.API == cfg.API {
		return nil
	}

	client, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, api.WithLogger(a.Logger))
	if err != nil {
		a.Config.API = old.API
		return fmt.Errorf("failed to create API client: %w", err)
	}
	a.bind(client)
	a.Logger.Info("API client reconfigured", zap.String("url", client.BaseURL()))
	return nil
}

// Open builds the production container: an HTTP client for cfg.API and the
// preference store under ~/.testdeck.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	client, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, api.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	store, err := prefs.OpenDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}

	return New(client, store, WithConfig(cfg), WithLogger(logger)), nil
}

// Backend returns the underlying backend for operations not covered by a service
func (a *App) Backend() api.Backend {
	return a.backend
}

// Close performs cleanup of application resources
func (a *App) Close() error {
	var errs []error
	if a.Prefs != nil {
		errs = append(errs, a.Prefs.Close())
	}
	errs = append(errs, a.Logger.Sync())
	return errors.Join(errs...)
}

type contextKey struct{}

// NewContext returns ctx carrying a
func NewContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext returns the App stored by NewContext, if any
func FromContext(ctx context.Context) (*App, bool) {
	a, ok := ctx.Value(contextKey{}).(*App)
	return a, ok && a != nil
}
