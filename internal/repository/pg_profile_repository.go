package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// Compile-time check
var _ ProfileRepository = (*pgProfileRepository)(nil)

const profileColumns = `id::text AS id, username, avatar, bio, language, updated_at`

type pgProfileRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgProfileRepository(db DBTX, logger *zap.Logger) ProfileRepository {
	return &pgProfileRepository{
		db:     db,
		logger: logger.Named("PgProfileRepo"),
	}
}

func (r *pgProfileRepository) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM "UserProfile" WHERE id = $1`

	logFields := []zap.Field{zap.String("userID", userID)}
	r.logger.Debug("Getting profile", logFields...)

	profile := &models.UserProfile{}
	if err := pgxscan.Get(ctx, r.db, profile, query, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Profile not found", logFields...)
			return nil, nil
		}
		r.logger.Error("Failed to get profile", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to get profile %s: %w", userID, err)
	}
	return profile, nil
}

func (r *pgProfileRepository) GetByUsername(ctx context.Context, username string) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM "UserProfile" WHERE lower(username) = lower($1)`

	logFields := []zap.Field{zap.String("username", username)}
	r.logger.Debug("Getting profile by username", logFields...)

	profile := &models.UserProfile{}
	if err := pgxscan.Get(ctx, r.db, profile, query, username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Profile not found by username", logFields...)
			return nil, nil
		}
		r.logger.Error("Failed to get profile by username", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to get profile by username %q: %w", username, err)
	}
	return profile, nil
}

func (r *pgProfileRepository) Upsert(ctx context.Context, userID string, input models.UserProfileInput) (*models.UserProfile, error) {
	query := `
        INSERT INTO "UserProfile" (id, username, avatar, bio, language, updated_at)
        VALUES ($1, $2, $3, $4, $5, now())
        ON CONFLICT (id) DO UPDATE SET
            username   = COALESCE(EXCLUDED.username, "UserProfile".username),
            avatar     = COALESCE(EXCLUDED.avatar, "UserProfile".avatar),
            bio        = COALESCE(EXCLUDED.bio, "UserProfile".bio),
            language   = COALESCE(EXCLUDED.language, "UserProfile".language),
            updated_at = now()
        RETURNING ` + profileColumns

	logFields := []zap.Field{zap.String("userID", userID)}
	r.logger.Debug("Upserting profile", logFields...)

	profile := &models.UserProfile{}
	err := pgxscan.Get(ctx, r.db, profile, query,
		userID,
		input.Username,
		input.Avatar,
		input.Bio,
		input.Language,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("Username already taken", append(logFields, zap.Error(err))...)
			return nil, fmt.Errorf("%w: username is already taken", models.ErrValidation)
		}
		r.logger.Error("Failed to upsert profile", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to upsert profile %s: %w", userID, err)
	}
	r.logger.Info("Profile upserted", logFields...)
	return profile, nil
}
