package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// Compile-time check
var _ CommentRepository = (*pgCommentRepository)(nil)

const commentColumns = `id::text AS id, story_id::text AS story_id,
	chapter_id::text AS chapter_id, author_id::text AS author_id, body,
	parent_comment_id::text AS parent_comment_id, created_at, updated_at`

type pgCommentRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgCommentRepository(db DBTX, logger *zap.Logger) CommentRepository {
	return &pgCommentRepository{
		db:     db,
		logger: logger.Named("PgCommentRepo"),
	}
}

func (r *pgCommentRepository) Add(ctx context.Context, input models.CommentCreateInput) (*models.Comment, error) {
	query := `
        INSERT INTO "Comment"
            (story_id, chapter_id, author_id, body, parent_comment_id)
        VALUES
            ($1, $2, $3, $4, $5)
        RETURNING ` + commentColumns

	logFields := []zap.Field{
		zap.String("storyID", input.StoryID),
		zap.String("authorID", input.AuthorID),
	}
	r.logger.Debug("Adding comment", logFields...)

	comment := &models.Comment{}
	err := pgxscan.Get(ctx, r.db, comment, query,
		input.StoryID,
		input.ChapterID,
		input.AuthorID,
		input.Body,
		input.ParentCommentID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			r.logger.Warn("Comment target not found", append(logFields, zap.Error(err))...)
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to add comment", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	r.logger.Info("Comment added", zap.String("commentID", comment.ID), zap.String("storyID", comment.StoryID))
	return comment, nil
}

// List applies the tri-state chapter filter: an unset ChapterID returns all
// of the story's comments, a nil one only story-level comments, and a
// concrete id only that chapter's comments.
func (r *pgCommentRepository) List(ctx context.Context, filters models.CommentListFilters) ([]models.Comment, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + commentColumns + ` FROM "Comment" WHERE story_id = $1`)

	args := []any{filters.StoryID}
	if chapterID, ok := filters.ChapterID.Get(); ok {
		if chapterID == nil {
			sb.WriteString(" AND chapter_id IS NULL")
		} else {
			args = append(args, *chapterID)
			fmt.Fprintf(&sb, " AND chapter_id = $%d", len(args))
		}
	}
	args = append(args, filters.EffectiveLimit())
	fmt.Fprintf(&sb, " ORDER BY created_at DESC LIMIT $%d", len(args))

	logFields := []zap.Field{
		zap.String("storyID", filters.StoryID),
		zap.Int("limit", filters.EffectiveLimit()),
	}
	r.logger.Debug("Listing comments", logFields...)

	comments := []models.Comment{}
	if err := pgxscan.Select(ctx, r.db, &comments, sb.String(), args...); err != nil {
		r.logger.Error("Failed to list comments", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to list comments for story %s: %w", filters.StoryID, err)
	}
	return comments, nil
}
