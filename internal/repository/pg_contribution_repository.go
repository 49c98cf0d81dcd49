package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// Compile-time check
var _ ContributionRepository = (*pgContributionRepository)(nil)

const contributionColumns = `id::text AS id, story_id::text AS story_id,
	contributor_id::text AS contributor_id, chapter_id::text AS chapter_id,
	status, prompt, content, created_at, updated_at, responded_at`

type pgContributionRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgContributionRepository(db DBTX, logger *zap.Logger) ContributionRepository {
	return &pgContributionRepository{
		db:     db,
		logger: logger.Named("PgContributionRepo"),
	}
}

func (r *pgContributionRepository) Submit(ctx context.Context, input models.ContributionCreateInput) (*models.Contribution, error) {
	query := `
        INSERT INTO "StoryContribution"
            (story_id, contributor_id, prompt, content)
        VALUES
            ($1, $2, $3, $4)
        RETURNING ` + contributionColumns

	logFields := []zap.Field{
		zap.String("storyID", input.StoryID),
		zap.String("contributorID", input.ContributorID),
	}
	r.logger.Debug("Submitting contribution", logFields...)

	contribution := &models.Contribution{}
	err := pgxscan.Get(ctx, r.db, contribution, query,
		input.StoryID,
		input.ContributorID,
		input.Prompt,
		input.Content,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			r.logger.Warn("Story not found for contribution", append(logFields, zap.Error(err))...)
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to submit contribution", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to submit contribution: %w", err)
	}
	r.logger.Info("Contribution submitted", zap.String("contributionID", contribution.ID), zap.String("storyID", contribution.StoryID))
	return contribution, nil
}

func (r *pgContributionRepository) Update(ctx context.Context, input models.ContributionUpdateInput) (*models.Contribution, error) {
	var sb strings.Builder
	sb.WriteString(`UPDATE "StoryContribution" SET updated_at = now()`)
	args := make([]any, 0, 4)

	appendSet := func(column string, value any) {
		args = append(args, value)
		fmt.Fprintf(&sb, ", %s = $%d", column, len(args))
	}

	appendSet("status", input.Status)
	if chapterID, ok := input.ChapterID.Get(); ok {
		appendSet("chapter_id", chapterID)
	}
	if respondedAt, ok := input.RespondedAt.Get(); ok {
		appendSet("responded_at", respondedAt)
	}

	args = append(args, input.ContributionID)
	fmt.Fprintf(&sb, " WHERE id = $%d RETURNING %s", len(args), contributionColumns)

	logFields := []zap.Field{
		zap.String("contributionID", input.ContributionID),
		zap.String("status", string(input.Status)),
	}
	r.logger.Debug("Updating contribution", logFields...)

	contribution := &models.Contribution{}
	if err := pgxscan.Get(ctx, r.db, contribution, sb.String(), args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Contribution not found for update", logFields...)
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to update contribution", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to update contribution %s: %w", input.ContributionID, err)
	}
	r.logger.Info("Contribution updated", logFields...)
	return contribution, nil
}

func (r *pgContributionRepository) ListByStory(ctx context.Context, storyID string) ([]models.Contribution, error) {
	query := `SELECT ` + contributionColumns + `
        FROM "StoryContribution" WHERE story_id = $1 ORDER BY created_at DESC`

	logFields := []zap.Field{zap.String("storyID", storyID)}
	r.logger.Debug("Listing contributions", logFields...)

	contributions := []models.Contribution{}
	if err := pgxscan.Select(ctx, r.db, &contributions, query, storyID); err != nil {
		r.logger.Error("Failed to list contributions", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to list contributions for story %s: %w", storyID, err)
	}
	return contributions, nil
}
