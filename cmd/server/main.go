// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smoradi/stockroom-be/internal/adapters/xlsxstore"
	"github.com/smoradi/stockroom-be/internal/core/ports"
	"github.com/smoradi/stockroom-be/internal/core/services"
	"github.com/smoradi/stockroom-be/internal/handlers"
	"github.com/smoradi/stockroom-be/internal/handlers/middleware"
	"github.com/smoradi/stockroom-be/internal/pkg/config"
	"github.com/smoradi/stockroom-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting stockroom inventory ledger",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("data_dir", cfg.Storage.DataDir),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	// Periodic snapshot saves, if configured
	autosaveDone := make(chan struct{})
	if cfg.Storage.AutosaveInterval > 0 {
		go runAutosave(ctx, cfg.Storage.AutosaveInterval, deps, slogger, autosaveDone)
	} else {
		close(autosaveDone)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		// Stop the autosave loop before the final save so the two never
		// write concurrently
		cancel()
		<-autosaveDone

		// The ledger only lives in memory; persist it before exiting
		if cfg.Storage.SaveOnShutdown {
			if err := deps.store.Save(shutdownCtx, deps.ledger.Snapshot()); err != nil {
				slogger.Error("failed to save snapshot on shutdown", slog.String("error", err.Error()))
			} else {
				slogger.Info("snapshot saved on shutdown")
			}
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	store              ports.SnapshotStore
	ledger             ports.Ledger
	authenticator      ports.Authenticator
	authHandler        *handlers.AuthHandler
	productHandler     *handlers.ProductHandler
	transactionHandler *handlers.TransactionHandler
	userHandler        *handlers.UserHandler
	dashboardHandler   *handlers.DashboardHandler
	exportHandler      *handlers.ExportHandler
	healthHandler      *handlers.HealthHandler
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	store := xlsxstore.NewStore(xlsxstore.Config{
		Dir:              cfg.Storage.DataDir,
		ProductsFile:     cfg.Storage.ProductsFile,
		TransactionsFile: cfg.Storage.TransactionsFile,
		UsersFile:        cfg.Storage.UsersFile,
	}, logger)
	deps.store = store

	ledger := services.NewLedger(logger)
	deps.ledger = ledger

	// Load the persisted snapshot; absent files just mean empty
	// collections, anything malformed is fatal here rather than
	// propagating corrupt data into the ledger.
	snap, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	ledger.Restore(snap)

	deps.authenticator = services.NewAuth(ledger, logger)

	deps.authHandler = handlers.NewAuthHandler(deps.authenticator, logger)
	deps.productHandler = handlers.NewProductHandler(ledger, logger)
	deps.transactionHandler = handlers.NewTransactionHandler(ledger, logger)
	deps.userHandler = handlers.NewUserHandler(ledger, logger)
	deps.dashboardHandler = handlers.NewDashboardHandler(ledger, logger)
	deps.exportHandler = handlers.NewExportHandler(ledger, store, logger)
	deps.healthHandler = handlers.NewHealthHandler(ledger, cfg, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(logger)(handler)
		handler = middleware.Recovery(logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	registerRoutes(mux, deps, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	}

	// Auth
	mux.HandleFunc("POST "+apiV1+"/auth/login", deps.authHandler.Login)

	// Products
	mux.HandleFunc("GET "+apiV1+"/products", deps.productHandler.ListProducts)
	mux.HandleFunc("POST "+apiV1+"/products", deps.productHandler.CreateProduct)
	mux.HandleFunc("GET "+apiV1+"/products/{code}", deps.productHandler.GetProduct)
	mux.HandleFunc("PUT "+apiV1+"/products/{code}", deps.productHandler.UpdateProduct)
	mux.HandleFunc("DELETE "+apiV1+"/products/{code}", deps.productHandler.DeleteProduct)
	mux.HandleFunc("POST "+apiV1+"/products/{code}/adjust", deps.productHandler.AdjustStock)
	mux.HandleFunc("GET "+apiV1+"/products/{code}/transactions", deps.productHandler.ProductTransactions)

	// Transactions (append-only)
	mux.HandleFunc("GET "+apiV1+"/transactions", deps.transactionHandler.ListTransactions)
	mux.HandleFunc("POST "+apiV1+"/transactions", deps.transactionHandler.CreateTransaction)

	// Users (append-only)
	mux.HandleFunc("GET "+apiV1+"/users", deps.userHandler.ListUsers)
	mux.HandleFunc("POST "+apiV1+"/users", deps.userHandler.CreateUser)

	// Dashboard, export, explicit save
	mux.HandleFunc("GET "+apiV1+"/dashboard", deps.dashboardHandler.GetDashboard)
	mux.HandleFunc("GET "+apiV1+"/export/{collection}", deps.exportHandler.ExportCollection)
	mux.HandleFunc("POST "+apiV1+"/save", deps.exportHandler.SaveSnapshot)
}

func runAutosave(ctx context.Context, interval time.Duration, deps *dependencies, logger *slog.Logger, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := deps.store.Save(ctx, deps.ledger.Snapshot()); err != nil {
				logger.Error("autosave failed", slog.String("error", err.Error()))
			} else {
				logger.Debug("autosave completed")
			}
		}
	}
}
