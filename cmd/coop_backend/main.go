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

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	amqpadapter "github.com/sangwaemm/The-Partners-App/internal/adapters/amqp"
	"github.com/sangwaemm/The-Partners-App/internal/adapters/gemini"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/core/services"
	"github.com/sangwaemm/The-Partners-App/internal/handlers"
	"github.com/sangwaemm/The-Partners-App/internal/middleware"
	"github.com/sangwaemm/The-Partners-App/internal/platform/config"
	"github.com/sangwaemm/The-Partners-App/internal/repositories/database/pgsql"
	"github.com/sangwaemm/The-Partners-App/internal/repositories/database/sqlite"
	"github.com/sangwaemm/The-Partners-App/internal/repositories/file"
	"github.com/sangwaemm/The-Partners-App/internal/repositories/memory"
	"github.com/sangwaemm/The-Partners-App/internal/worker"
	"github.com/sangwaemm/The-Partners-App/pkg/database"
)

const shutdownTimeout = 15 * time.Second

// @title Partners App Cooperative Ledger API
// @version 1.0
// @description Members, contributions, loans, investments and financial reports of a savings cooperative.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	snapshots, closeSnapshots, err := openSnapshotRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSnapshots()

	var reader portsrepo.SnapshotReader
	if snapshots != nil {
		reader = snapshots
	}
	loaded := memory.LoadInitialSnapshot(ctx, reader, cfg.SeedDemoData, logger)
	initial := loaded.Snapshot
	store := memory.NewStateStore(initial)
	logger.Info("Ledger state loaded",
		slog.Int("members", len(initial.Members)),
		slog.Int("loans", len(initial.Loans)),
		slog.Int("contributions", len(initial.Contributions)))

	var serviceOptions []services.ServiceOption
	if cfg.AMQPURL != "" {
		publisher, err := amqpadapter.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			return err
		}
		defer publisher.Close()
		serviceOptions = append(serviceOptions, services.WithNotificationPublisher(publisher))
		logger.Info("Notification fan-out enabled", slog.String("exchange", cfg.AMQPExchange))
	}

	var insights portssvc.InsightGenerator
	if cfg.GeminiAPIKey != "" {
		generator, err := gemini.NewInsightGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.InsightRatePerMin)
		if err != nil {
			logger.Warn("AI insights disabled", slog.String("error", err.Error()))
		} else {
			insights = generator
		}
	}

	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{
		State:    store,
		Snapshot: snapshots,
	}, insights, serviceOptions...)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}
	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if snapshots != nil && loaded.Persistable {
		persister := worker.NewPersistenceWorker(store, snapshots, cfg.PersistDebounce, cfg.PersistTimeout)
		store.Subscribe(persister.Trigger)
		g.Go(func() error {
			return persister.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openSnapshotRepository builds the configured snapshot store. A nil repository
// means persistence is disabled.
func openSnapshotRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.SnapshotRepositoryFacade, func(), error) {
	noop := func() {}

	switch cfg.SnapshotStore {
	case config.StoreNone:
		logger.Warn("Snapshot persistence disabled, changes live in memory only")
		return nil, noop, nil

	case config.StorePgsql:
		logger.Info("Running database migrations...")
		applied, err := pgsql.RunMigrations(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewSnapshotRepository(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	case config.StoreSqlite:
		repo, err := sqlite.NewSnapshotRepository(cfg.SqlitePath)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("SQLite snapshot store opened", slog.String("path", cfg.SqlitePath))
		return repo, func() {
			if err := repo.Close(); err != nil {
				logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
			}
		}, nil

	default:
		repo, err := file.NewSnapshotRepository(cfg.BackupFilePath)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("File snapshot store opened", slog.String("path", cfg.BackupFilePath))
		return repo, noop, nil
	}
}
