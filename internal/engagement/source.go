package engagement

import (
	"context"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/demo"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/repository"
)

// Source is the engagement backend a Reconciler talks to.
type Source interface {
	Snapshot(ctx context.Context, storyID, authorID, userID string) (models.EngagementSnapshot, error)
	SetStoryLike(ctx context.Context, storyID, userID string, like bool) error
	SetAuthorFollow(ctx context.Context, authorID, userID string, follow bool) error
}

// Compile-time checks
var (
	_ Source = (*repositorySource)(nil)
	_ Source = (*demoSource)(nil)
)

type repositorySource struct {
	repo repository.EngagementRepository
}

// NewRepositorySource adapts the Postgres engagement repository.
func NewRepositorySource(repo repository.EngagementRepository) Source {
	return &repositorySource{repo: repo}
}

func (s *repositorySource) Snapshot(ctx context.Context, storyID, authorID, userID string) (models.EngagementSnapshot, error) {
	return s.repo.Snapshot(ctx, storyID, authorID, userID)
}

func (s *repositorySource) SetStoryLike(ctx context.Context, storyID, userID string, like bool) error {
	input := models.LikeToggleInput{
		TargetID: storyID,
		UserID:   userID,
		Like:     like,
	}
	if err := input.Validate(); err != nil {
		return err
	}
	return s.repo.ToggleStoryLike(ctx, input)
}

func (s *repositorySource) SetAuthorFollow(ctx context.Context, authorID, userID string, follow bool) error {
	input := models.FollowInput{FollowerID: userID, FollowingID: authorID}
	if err := input.Validate(); err != nil {
		return err
	}
	if follow {
		return s.repo.Follow(ctx, input)
	}
	return s.repo.Unfollow(ctx, input)
}

type demoSource struct {
	store *demo.EngagementStore
}

// NewDemoSource adapts the in-memory demo engagement store. It never fails.
func NewDemoSource(store *demo.EngagementStore) Source {
	return &demoSource{store: store}
}

func (s *demoSource) Snapshot(_ context.Context, storyID, authorID, userID string) (models.EngagementSnapshot, error) {
	return s.store.Snapshot(storyID, authorID, userID), nil
}

func (s *demoSource) SetStoryLike(_ context.Context, storyID, userID string, like bool) error {
	_, liked := s.store.ToggleStoryLike(storyID, userID)
	if liked != like {
		// Already in the requested state after a double toggle; flip back.
		s.store.ToggleStoryLike(storyID, userID)
	}
	return nil
}

func (s *demoSource) SetAuthorFollow(_ context.Context, authorID, userID string, follow bool) error {
	_, following := s.store.ToggleAuthorFollow(authorID, userID)
	if following != follow {
		s.store.ToggleAuthorFollow(authorID, userID)
	}
	return nil
}
