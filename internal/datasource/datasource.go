// Package datasource decides, once at startup, whether the service runs
// against the configured Postgres backend or the in-memory demo store.
package datasource

import (
	"context"

	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/config"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
	"github.com/Multiproject-EJ/FinishThatStory.com/pkg/database"
)

// Result is the resolved data source. DB is nil in demo mode.
type Result struct {
	Mode models.DataSource
	DB   *database.Database
}

// Resolve picks the data source for this process. Missing configuration is
// the expected demo path, not an error; a configured backend that cannot be
// reached also falls back to demo with a logged diagnostic. The decision is
// made once and never re-evaluated mid-session.
func Resolve(ctx context.Context, cfg *config.Config, logger *zap.Logger) Result {
	log := logger.Named("DataSource")

	if !cfg.BackendConfigured() {
		log.Info("No backend configured, running in demo mode")
		return Result{Mode: models.SourceDemo}
	}

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Warn("Backend configured but unreachable, falling back to demo mode", zap.Error(err))
		return Result{Mode: models.SourceDemo}
	}

	log.Info("Connected to backend")
	return Result{Mode: models.SourceSupabase, DB: db}
}
