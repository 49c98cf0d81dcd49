package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// Compile-time check
var _ MediaRepository = (*pgMediaRepository)(nil)

const mediaAssetColumns = `id::text AS id, chapter_id::text AS chapter_id,
	title, description, media_type, media_url, duration_seconds, transcript,
	sort_order`

const ambientCueColumns = `id::text AS id, chapter_id::text AS chapter_id,
	timestamp_seconds, label, description`

type pgMediaRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgMediaRepository(db DBTX, logger *zap.Logger) MediaRepository {
	return &pgMediaRepository{
		db:     db,
		logger: logger.Named("PgMediaRepo"),
	}
}

// CreateAssets persists the given media slots one by one. Callers filter
// blank slots before reaching this method.
func (r *pgMediaRepository) CreateAssets(ctx context.Context, inputs []models.MediaAssetInput) ([]models.ChapterMediaAsset, error) {
	query := `
        INSERT INTO chapter_media_assets
            (chapter_id, title, description, media_type, media_url, duration_seconds, transcript, sort_order)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + mediaAssetColumns

	assets := make([]models.ChapterMediaAsset, 0, len(inputs))
	for _, input := range inputs {
		logFields := []zap.Field{
			zap.String("chapterID", input.ChapterID),
			zap.String("mediaType", string(input.MediaType)),
		}
		r.logger.Debug("Creating media asset", logFields...)

		asset := models.ChapterMediaAsset{}
		err := pgxscan.Get(ctx, r.db, &asset, query,
			input.ChapterID,
			input.Title,
			input.Description,
			input.MediaType,
			input.MediaURL,
			input.DurationSeconds,
			input.Transcript,
			input.SortOrder,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				r.logger.Warn("Chapter not found for media asset", append(logFields, zap.Error(err))...)
				return nil, models.ErrNotFound
			}
			r.logger.Error("Failed to create media asset", append(logFields, zap.Error(err))...)
			return nil, fmt.Errorf("failed to create media asset: %w", err)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func (r *pgMediaRepository) ListAssets(ctx context.Context, chapterID string) ([]models.ChapterMediaAsset, error) {
	query := `SELECT ` + mediaAssetColumns + `
        FROM chapter_media_assets WHERE chapter_id = $1
        ORDER BY sort_order NULLS LAST, id`

	logFields := []zap.Field{zap.String("chapterID", chapterID)}
	r.logger.Debug("Listing media assets", logFields...)

	assets := []models.ChapterMediaAsset{}
	if err := pgxscan.Select(ctx, r.db, &assets, query, chapterID); err != nil {
		r.logger.Error("Failed to list media assets", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to list media assets for chapter %s: %w", chapterID, err)
	}
	return assets, nil
}

func (r *pgMediaRepository) ListCues(ctx context.Context, chapterID string) ([]models.ChapterAmbientCue, error) {
	query := `SELECT ` + ambientCueColumns + `
        FROM chapter_ambient_cues WHERE chapter_id = $1
        ORDER BY timestamp_seconds`

	logFields := []zap.Field{zap.String("chapterID", chapterID)}
	r.logger.Debug("Listing ambient cues", logFields...)

	cues := []models.ChapterAmbientCue{}
	if err := pgxscan.Select(ctx, r.db, &cues, query, chapterID); err != nil {
		r.logger.Error("Failed to list ambient cues", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to list ambient cues for chapter %s: %w", chapterID, err)
	}
	return cues, nil
}
