package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/keyfold/authd/internal/authd/http"
	"github.com/keyfold/authd/internal/authd/otp"
	"github.com/keyfold/authd/internal/authd/service"
	"github.com/keyfold/authd/internal/authd/store"
	"github.com/keyfold/authd/internal/authd/store/drivers/sqlite"
	"github.com/keyfold/authd/pkg/cryptox"
	"github.com/keyfold/authd/pkg/jwtx"
	"github.com/keyfold/authd/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the credential service with its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	accountService *service.AccountService
	tokenService   *service.TokenService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "authd",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("authd starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully stops the HTTP server and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down authd...")

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

	app.logger.Info("authd stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() error {
	accessSigner, err := jwtx.NewSignerHS256([]byte(app.cfg.AccessSecret))
	if err != nil {
		return fmt.Errorf("failed to initialize access signer: %w", err)
	}
	refreshSigner, err := jwtx.NewSignerHS256([]byte(app.cfg.RefreshSecret))
	if err != nil {
		return fmt.Errorf("failed to initialize refresh signer: %w", err)
	}

	app.tokenService = &service.TokenService{
		AccessSigner:  accessSigner,
		RefreshSigner: refreshSigner,
		Issuer:        app.cfg.Issuer,
		AccessTTL:     app.cfg.AccessTTL,
		RefreshTTL:    app.cfg.RefreshTTL,
	}

	app.accountService = &service.AccountService{
		Store: app.db,
		OTP:   otp.NewClient(app.cfg.OTPBaseURL, app.cfg.OTPTimeout),
	}

	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)
	router.AccountService = app.accountService
	router.TokenService = app.tokenService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
