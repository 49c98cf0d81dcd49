package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// Compile-time check
var _ EngagementRepository = (*pgEngagementRepository)(nil)

type pgEngagementRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgEngagementRepository(db DBTX, logger *zap.Logger) EngagementRepository {
	return &pgEngagementRepository{
		db:     db,
		logger: logger.Named("PgEngagementRepo"),
	}
}

func (r *pgEngagementRepository) ToggleStoryLike(ctx context.Context, input models.LikeToggleInput) error {
	return r.toggleLike(ctx, "story_id", input)
}

func (r *pgEngagementRepository) ToggleChapterLike(ctx context.Context, input models.LikeToggleInput) error {
	return r.toggleLike(ctx, "chapter_id", input)
}

// toggleLike is idempotent in both directions: liking an already liked
// target and unliking an absent like are both no-ops.
func (r *pgEngagementRepository) toggleLike(ctx context.Context, column string, input models.LikeToggleInput) error {
	logFields := []zap.Field{
		zap.String("target", column),
		zap.String("targetID", input.TargetID),
		zap.String("userID", input.UserID),
		zap.Bool("like", input.Like),
	}
	r.logger.Debug("Toggling like", logFields...)

	var query string
	if input.Like {
		query = fmt.Sprintf(`
            INSERT INTO "StoryLike" (%s, user_id) VALUES ($1, $2)
            ON CONFLICT (user_id, %s) WHERE %s IS NOT NULL DO NOTHING`,
			column, column, column)
	} else {
		query = fmt.Sprintf(`DELETE FROM "StoryLike" WHERE %s = $1 AND user_id = $2`, column)
	}

	if _, err := r.db.Exec(ctx, query, input.TargetID, input.UserID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			r.logger.Warn("Like target not found", append(logFields, zap.Error(err))...)
			return models.ErrNotFound
		}
		r.logger.Error("Failed to toggle like", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to toggle %s like: %w", column, err)
	}
	return nil
}

func (r *pgEngagementRepository) Follow(ctx context.Context, input models.FollowInput) error {
	query := `
        INSERT INTO "UserFollow" (follower_id, following_id) VALUES ($1, $2)
        ON CONFLICT (follower_id, following_id) DO NOTHING`

	logFields := []zap.Field{
		zap.String("followerID", input.FollowerID),
		zap.String("followingID", input.FollowingID),
	}
	r.logger.Debug("Following author", logFields...)

	if _, err := r.db.Exec(ctx, query, input.FollowerID, input.FollowingID); err != nil {
		r.logger.Error("Failed to follow author", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to follow author: %w", err)
	}
	return nil
}

func (r *pgEngagementRepository) Unfollow(ctx context.Context, input models.FollowInput) error {
	query := `DELETE FROM "UserFollow" WHERE follower_id = $1 AND following_id = $2`

	logFields := []zap.Field{
		zap.String("followerID", input.FollowerID),
		zap.String("followingID", input.FollowingID),
	}
	r.logger.Debug("Unfollowing author", logFields...)

	if _, err := r.db.Exec(ctx, query, input.FollowerID, input.FollowingID); err != nil {
		r.logger.Error("Failed to unfollow author", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to unfollow author: %w", err)
	}
	return nil
}

func (r *pgEngagementRepository) FollowerCount(ctx context.Context, authorID string) (int, error) {
	query := `SELECT count(*) FROM "UserFollow" WHERE following_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		r.logger.Error("Failed to count followers", zap.String("authorID", authorID), zap.Error(err))
		return 0, fmt.Errorf("failed to count followers for %s: %w", authorID, err)
	}
	return count, nil
}

func (r *pgEngagementRepository) Snapshot(ctx context.Context, storyID, authorID, userID string) (models.EngagementSnapshot, error) {
	query := `
        SELECT
            (SELECT count(*) FROM "StoryLike" WHERE story_id = $1),
            (SELECT count(*) FROM "UserFollow" WHERE following_id = $2),
            ($3 <> '' AND EXISTS (
                SELECT 1 FROM "StoryLike" WHERE story_id = $1 AND user_id::text = $3)),
            ($3 <> '' AND EXISTS (
                SELECT 1 FROM "UserFollow" WHERE following_id = $2 AND follower_id::text = $3))`

	logFields := []zap.Field{
		zap.String("storyID", storyID),
		zap.String("authorID", authorID),
	}
	r.logger.Debug("Loading engagement snapshot", logFields...)

	var snapshot models.EngagementSnapshot
	err := r.db.QueryRow(ctx, query, storyID, authorID, userID).Scan(
		&snapshot.StoryLikes,
		&snapshot.FollowerCount,
		&snapshot.StoryLikedByUser,
		&snapshot.FollowingAuthor,
	)
	if err != nil {
		r.logger.Error("Failed to load engagement snapshot", append(logFields, zap.Error(err))...)
		return models.EngagementSnapshot{}, fmt.Errorf("failed to load engagement snapshot: %w", err)
	}
	return snapshot, nil
}
