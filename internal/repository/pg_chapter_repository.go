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
var _ ChapterRepository = (*pgChapterRepository)(nil)

type pgChapterRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgChapterRepository(db DBTX, logger *zap.Logger) ChapterRepository {
	return &pgChapterRepository{
		db:     db,
		logger: logger.Named("PgChapterRepo"),
	}
}

func (r *pgChapterRepository) Create(ctx context.Context, input models.ChapterCreateInput) (*models.Chapter, error) {
	query := `
        INSERT INTO "Chapter"
            (story_id, author_id, title, summary, content, "position", is_published)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + chapterColumns

	logFields := []zap.Field{
		zap.String("storyID", input.StoryID),
		zap.Int("position", input.Position),
	}
	r.logger.Debug("Creating chapter", logFields...)

	chapter := &models.Chapter{}
	err := pgxscan.Get(ctx, r.db, chapter, query,
		input.StoryID,
		input.AuthorID,
		input.Title,
		input.Summary,
		input.Content,
		input.Position,
		input.Published(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			r.logger.Warn("Story not found for chapter", append(logFields, zap.Error(err))...)
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to create chapter", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}
	r.logger.Info("Chapter created", zap.String("chapterID", chapter.ID), zap.String("storyID", chapter.StoryID))
	return chapter, nil
}

func (r *pgChapterRepository) Update(ctx context.Context, chapterID string, input models.ChapterUpdateInput) (*models.Chapter, error) {
	var sb strings.Builder
	sb.WriteString(`UPDATE "Chapter" SET updated_at = now()`)
	args := make([]any, 0, 6)

	appendSet := func(column string, value any) {
		args = append(args, value)
		fmt.Fprintf(&sb, ", %s = $%d", column, len(args))
	}

	if title, ok := input.Title.Get(); ok {
		appendSet("title", title)
	}
	if summary, ok := input.Summary.Get(); ok {
		appendSet("summary", summary)
	}
	if content, ok := input.Content.Get(); ok {
		appendSet("content", content)
	}
	if position, ok := input.Position.Get(); ok {
		appendSet(`"position"`, position)
	}
	if published, ok := input.IsPublished.Get(); ok {
		appendSet("is_published", published)
	}

	args = append(args, chapterID)
	fmt.Fprintf(&sb, " WHERE id = $%d RETURNING %s", len(args), chapterColumns)

	logFields := []zap.Field{zap.String("chapterID", chapterID)}
	r.logger.Debug("Updating chapter", logFields...)

	chapter := &models.Chapter{}
	if err := pgxscan.Get(ctx, r.db, chapter, sb.String(), args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Chapter not found for update", logFields...)
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to update chapter", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to update chapter %s: %w", chapterID, err)
	}
	r.logger.Info("Chapter updated", logFields...)
	return chapter, nil
}
