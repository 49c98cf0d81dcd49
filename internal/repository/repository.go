package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// DBTX is the subset of pgxpool.Pool / pgx.Tx the repositories need.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StoryRepository provides typed access to stories and their chapters.
type StoryRepository interface {
	// FetchPublished returns published stories ordered by publish date
	// descending (nulls first), narrowed by the filters.
	FetchPublished(ctx context.Context, filters models.StoryListFilters) ([]models.Story, error)
	// GetBySlug is case-insensitive and returns (nil, nil) when absent.
	GetBySlug(ctx context.Context, slug string) (*models.Story, error)
	Create(ctx context.Context, input models.StoryCreateInput) (*models.Story, error)
	Update(ctx context.Context, storyID string, input models.StoryUpdateInput) (*models.Story, error)
	// ListChapters returns the story's chapters ordered by position.
	ListChapters(ctx context.Context, storyID string) ([]models.Chapter, error)
}

// ChapterRepository creates and updates chapters.
type ChapterRepository interface {
	Create(ctx context.Context, input models.ChapterCreateInput) (*models.Chapter, error)
	Update(ctx context.Context, chapterID string, input models.ChapterUpdateInput) (*models.Chapter, error)
}

// CommentRepository adds and lists comments.
type CommentRepository interface {
	Add(ctx context.Context, input models.CommentCreateInput) (*models.Comment, error)
	List(ctx context.Context, filters models.CommentListFilters) ([]models.Comment, error)
}

// ContributionRepository manages community contributions.
type ContributionRepository interface {
	Submit(ctx context.Context, input models.ContributionCreateInput) (*models.Contribution, error)
	Update(ctx context.Context, input models.ContributionUpdateInput) (*models.Contribution, error)
	// ListByStory returns contributions ordered by creation date descending.
	ListByStory(ctx context.Context, storyID string) ([]models.Contribution, error)
}

// EngagementRepository manages like and follow associations. Toggles are
// idempotent in both directions.
type EngagementRepository interface {
	ToggleStoryLike(ctx context.Context, input models.LikeToggleInput) error
	ToggleChapterLike(ctx context.Context, input models.LikeToggleInput) error
	Follow(ctx context.Context, input models.FollowInput) error
	Unfollow(ctx context.Context, input models.FollowInput) error
	// Snapshot loads the current like/follow state. userID may be empty, in
	// which case the per-user booleans stay false.
	Snapshot(ctx context.Context, storyID, authorID, userID string) (models.EngagementSnapshot, error)
	FollowerCount(ctx context.Context, authorID string) (int, error)
}

// MediaRepository manages chapter media assets and ambient cues.
type MediaRepository interface {
	CreateAssets(ctx context.Context, inputs []models.MediaAssetInput) ([]models.ChapterMediaAsset, error)
	ListAssets(ctx context.Context, chapterID string) ([]models.ChapterMediaAsset, error)
	ListCues(ctx context.Context, chapterID string) ([]models.ChapterAmbientCue, error)
}

// ProfileRepository manages user profiles.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	// GetByUsername is case-insensitive and returns (nil, nil) when absent.
	GetByUsername(ctx context.Context, username string) (*models.UserProfile, error)
	Upsert(ctx context.Context, userID string, input models.UserProfileInput) (*models.UserProfile, error)
}
