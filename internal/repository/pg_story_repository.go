package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// Compile-time check
var _ StoryRepository = (*pgStoryRepository)(nil)

// uuid columns are cast to text so rows scan straight into string fields.
const storyColumns = `id::text AS id, author_id::text AS author_id, title, slug,
	summary, cover_image, language, tags, is_published, published_at,
	created_at, updated_at`

const chapterColumns = `id::text AS id, story_id::text AS story_id,
	author_id::text AS author_id, title, summary, content, "position",
	is_published, created_at, updated_at`

type pgStoryRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgStoryRepository(db DBTX, logger *zap.Logger) StoryRepository {
	return &pgStoryRepository{
		db:     db,
		logger: logger.Named("PgStoryRepo"),
	}
}

func (r *pgStoryRepository) FetchPublished(ctx context.Context, filters models.StoryListFilters) ([]models.Story, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + storyColumns + ` FROM "Story" WHERE is_published = true`)

	args := make([]any, 0, 4)
	if filters.Language != "" {
		args = append(args, filters.Language)
		fmt.Fprintf(&sb, " AND language = $%d", len(args))
	}
	if len(filters.Tags) > 0 {
		args = append(args, filters.Tags)
		fmt.Fprintf(&sb, " AND tags @> $%d", len(args))
	}
	if filters.Search != "" {
		args = append(args, filters.Search)
		fmt.Fprintf(&sb, " AND title ILIKE '%%' || $%d || '%%'", len(args))
	}
	args = append(args, filters.EffectiveLimit())
	fmt.Fprintf(&sb, " ORDER BY published_at DESC NULLS FIRST LIMIT $%d", len(args))

	logFields := []zap.Field{
		zap.String("language", filters.Language),
		zap.Strings("tags", filters.Tags),
		zap.Int("limit", filters.EffectiveLimit()),
	}
	r.logger.Debug("Fetching published stories", logFields...)

	stories := []models.Story{}
	if err := pgxscan.Select(ctx, r.db, &stories, sb.String(), args...); err != nil {
		r.logger.Error("Failed to fetch published stories", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to fetch published stories: %w", err)
	}
	return stories, nil
}

func (r *pgStoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM "Story" WHERE lower(slug) = lower($1)`

	logFields := []zap.Field{zap.String("slug", slug)}
	r.logger.Debug("Getting story by slug", logFields...)

	story := &models.Story{}
	if err := pgxscan.Get(ctx, r.db, story, query, slug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Story not found by slug", logFields...)
			return nil, nil
		}
		r.logger.Error("Failed to get story by slug", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to get story by slug %q: %w", slug, err)
	}
	return story, nil
}

func (r *pgStoryRepository) Create(ctx context.Context, input models.StoryCreateInput) (*models.Story, error) {
	query := `
        INSERT INTO "Story"
            (author_id, title, slug, summary, cover_image, language, tags, is_published, published_at)
        VALUES
            ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
        RETURNING ` + storyColumns

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	logFields := []zap.Field{
		zap.String("authorID", input.AuthorID),
		zap.String("title", input.Title),
	}
	r.logger.Debug("Creating story", logFields...)

	story := &models.Story{}
	err := pgxscan.Get(ctx, r.db, story, query,
		input.AuthorID,
		input.Title,
		input.EffectiveSlug(),
		input.Summary,
		input.CoverImage,
		input.EffectiveLanguage(),
		tags,
		input.IsPublished,
		input.EffectivePublishedAt(time.Now().UTC()),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("Story slug already taken", append(logFields, zap.Error(err))...)
			return nil, fmt.Errorf("%w: slug is already taken", models.ErrValidation)
		}
		r.logger.Error("Failed to create story", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to create story: %w", err)
	}
	r.logger.Info("Story created", zap.String("storyID", story.ID), zap.String("title", story.Title))
	return story, nil
}

func (r *pgStoryRepository) Update(ctx context.Context, storyID string, input models.StoryUpdateInput) (*models.Story, error) {
	var sb strings.Builder
	sb.WriteString(`UPDATE "Story" SET updated_at = now()`)
	args := make([]any, 0, 9)

	appendSet := func(column string, value any) {
		args = append(args, value)
		fmt.Fprintf(&sb, ", %s = $%d", column, len(args))
	}

	if title, ok := input.Title.Get(); ok {
		appendSet("title", title)
	}
	if slug, ok := input.Slug.Get(); ok {
		if slug == "" {
			sb.WriteString(", slug = NULL")
		} else {
			appendSet("slug", slug)
		}
	}
	if summary, ok := input.Summary.Get(); ok {
		appendSet("summary", summary)
	}
	if cover, ok := input.CoverImage.Get(); ok {
		appendSet("cover_image", cover)
	}
	if lang, ok := input.Language.Get(); ok {
		appendSet("language", lang)
	}
	if tags, ok := input.Tags.Get(); ok {
		if tags == nil {
			tags = []string{}
		}
		appendSet("tags", tags)
	}
	if published, ok := input.IsPublished.Get(); ok {
		appendSet("is_published", published)
	}
	if publishedAt, ok := input.ResolvePublishedAt(time.Now().UTC()).Get(); ok {
		appendSet("published_at", publishedAt)
	}

	args = append(args, storyID)
	fmt.Fprintf(&sb, " WHERE id = $%d RETURNING %s", len(args), storyColumns)

	logFields := []zap.Field{zap.String("storyID", storyID)}
	r.logger.Debug("Updating story", logFields...)

	story := &models.Story{}
	if err := pgxscan.Get(ctx, r.db, story, sb.String(), args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Story not found for update", logFields...)
			return nil, models.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("Story slug already taken", append(logFields, zap.Error(err))...)
			return nil, fmt.Errorf("%w: slug is already taken", models.ErrValidation)
		}
		r.logger.Error("Failed to update story", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to update story %s: %w", storyID, err)
	}
	r.logger.Info("Story updated", logFields...)
	return story, nil
}

func (r *pgStoryRepository) ListChapters(ctx context.Context, storyID string) ([]models.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM "Chapter" WHERE story_id = $1 ORDER BY "position"`

	logFields := []zap.Field{zap.String("storyID", storyID)}
	r.logger.Debug("Listing chapters", logFields...)

	chapters := []models.Chapter{}
	if err := pgxscan.Select(ctx, r.db, &chapters, query, storyID); err != nil {
		r.logger.Error("Failed to list chapters", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to list chapters for story %s: %w", storyID, err)
	}
	return chapters, nil
}
