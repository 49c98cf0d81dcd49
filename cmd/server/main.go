package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/config"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/datasource"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/demo"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/handler"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/localstore"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/repository"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/service"
	"github.com/Multiproject-EJ/FinishThatStory.com/migrations"
	"github.com/Multiproject-EJ/FinishThatStory.com/pkg/logger"
	"github.com/Multiproject-EJ/FinishThatStory.com/pkg/middleware"
	"github.com/Multiproject-EJ/FinishThatStory.com/pkg/migration"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Logger initialized", zap.String("logLevel", cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := datasource.Resolve(ctx, cfg, zapLogger)
	zapLogger.Info("Data source resolved", zap.String("mode", string(source.Mode)))

	if source.Mode == models.SourceSupabase {
		defer source.DB.Close()

		if cfg.RunMigrations {
			migrator := migration.NewMigrator(migration.Config{
				MigrationsPath: ".",
				MigrationsFS:   migrations.FS,
			}, source.DB.Pool, zapLogger)
			if err := migrator.Up(ctx); err != nil {
				zapLogger.Fatal("Failed to apply migrations", zap.Error(err))
			}
		}
	}

	local, err := localstore.New(cfg.StateDir, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to open local state store", zap.Error(err))
	}

	deps := service.Deps{
		Mode:              source.Mode,
		DemoComments:      demo.NewCommentStore(),
		DemoContributions: demo.NewContributionStore(),
		DemoEngagement:    demo.NewEngagementStore(service.DemoStoryLikeBaseline, service.DemoFollowerBaseline),
		DemoCreations:     demo.NewCreationStore(),
		Local:             local,
		Logger:            zapLogger,
	}
	if source.Mode == models.SourceSupabase {
		pool := source.DB.Pool
		deps.Stories = repository.NewPgStoryRepository(pool, zapLogger)
		deps.Chapters = repository.NewPgChapterRepository(pool, zapLogger)
		deps.Comments = repository.NewPgCommentRepository(pool, zapLogger)
		deps.Contributions = repository.NewPgContributionRepository(pool, zapLogger)
		deps.Engagement = repository.NewPgEngagementRepository(pool, zapLogger)
		deps.Media = repository.NewPgMediaRepository(pool, zapLogger)
		deps.Profiles = repository.NewPgProfileRepository(pool, zapLogger)
		db := source.DB
		deps.RunInTx = func(ctx context.Context, fn func(service.TxRepos) error) error {
			return db.ExecuteInTransaction(ctx, func(tx pgx.Tx) error {
				return fn(service.TxRepos{
					Stories:  repository.NewPgStoryRepository(tx, zapLogger),
					Chapters: repository.NewPgChapterRepository(tx, zapLogger),
					Media:    repository.NewPgMediaRepository(tx, zapLogger),
				})
			})
		}
	}

	apiHandler := handler.NewHandler(
		service.NewStoryDetailService(deps),
		service.NewReaderService(deps),
		service.NewCreationService(deps),
		service.NewCommentService(deps),
		service.NewContributionService(deps),
		service.NewEngagementService(deps, cfg.EngagementRollbackOnError),
		service.NewProfileService(deps),
		zapLogger,
	)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.ZapLogger(zapLogger))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.GetAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	prometheus := ginprometheus.NewPrometheus("finishthatstory")
	prometheus.Use(router)

	apiHandler.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		zapLogger.Info("Starting HTTP server", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Graceful shutdown failed", zap.Error(err))
	}
	zapLogger.Info("Server stopped")
}
