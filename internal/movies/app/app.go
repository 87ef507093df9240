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

	httpapi "github.com/bruinmovies/server/internal/movies/http"
	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/internal/movies/store"
	"github.com/bruinmovies/server/internal/movies/store/drivers/mongo"
	"github.com/bruinmovies/server/internal/movies/store/drivers/sqlite"
	"github.com/bruinmovies/server/pkg/jwtx"
	"github.com/bruinmovies/server/pkg/mailx"
	"github.com/bruinmovies/server/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the movies service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer *jwtx.HS256
	mailer mailx.Mailer

	// Services
	authService      *service.AuthService
	commentService   *service.CommentService
	watchlistService *service.WatchlistService
	userService      *service.UserService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "movies-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	signer, err := jwtx.NewHS256([]byte(cfg.JWTSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initMailer(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("movies service starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down movies service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("movies service stopped")
	return nil
}

// initDatabase initializes the configured store and applies migrations
func (app *Application) initDatabase() error {
	switch app.cfg.StoreDriver {
	case "mongo":
		db, err := mongo.NewStore(context.Background(), app.cfg.MongoURI, app.cfg.MongoDatabase)
		if err != nil {
			return fmt.Errorf("failed to initialize mongo store: %w", err)
		}
		app.db = db
	case "sqlite":
		host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(host)
		if err != nil {
			return fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		app.db = db
	default:
		return fmt.Errorf("unknown store driver %q", app.cfg.StoreDriver)
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply store migrations: %w", err)
	}

	app.logger.Info("store migrations applied successfully", "driver", app.cfg.StoreDriver)
	return nil
}

// initMailer initializes passcode delivery. The log mailer prints codes to
// the service log and is refused outside dev.
func (app *Application) initMailer() error {
	switch app.cfg.MailDriver {
	case "smtp":
		mailer, err := mailx.NewSMTPMailer(mailx.SMTPConfig{
			Host:     app.cfg.SMTPHost,
			Port:     app.cfg.SMTPPort,
			Username: app.cfg.SMTPUsername,
			Password: app.cfg.SMTPPassword,
			From:     app.cfg.SMTPFrom,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize SMTP mailer: %w", err)
		}
		app.mailer = mailer
	case "log":
		if app.cfg.Env != "dev" {
			return fmt.Errorf("log mail driver is dev-only, env is %q", app.cfg.Env)
		}
		app.mailer = &mailx.LogMailer{Logger: app.logger}
	default:
		return fmt.Errorf("unknown mail driver %q", app.cfg.MailDriver)
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:       app.db,
		Signer:      app.signer,
		Mailer:      app.mailer,
		Issuer:      app.cfg.Issuer,
		LoginKey:    service.LoginKey(app.cfg.LoginKey),
		PasscodeTTL: app.cfg.PasscodeTTL,
		SessionTTL:  app.cfg.SessionTTL,
	}

	app.commentService = &service.CommentService{Store: app.db}
	app.watchlistService = &service.WatchlistService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.CommentService = app.commentService
	router.WatchlistService = app.watchlistService
	router.UserService = app.userService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
