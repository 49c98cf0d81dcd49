package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/engagement"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// EngagementService builds short-lived reconcilers over the active source.
type EngagementService struct {
	deps            Deps
	source          engagement.Source
	rollbackOnError bool
	logger          *zap.Logger
}

func NewEngagementService(deps Deps, rollbackOnError bool) *EngagementService {
	var source engagement.Source
	if deps.supabase() {
		source = engagement.NewRepositorySource(deps.Engagement)
	} else {
		source = engagement.NewDemoSource(deps.DemoEngagement)
	}
	return &EngagementService{
		deps:            deps,
		source:          source,
		rollbackOnError: rollbackOnError,
		logger:          deps.Logger.Named("EngagementService"),
	}
}

// resolveUserID substitutes the stable anonymous demo identity when no user
// is supplied in demo mode.
func (s *EngagementService) resolveUserID(userID string) string {
	if userID == "" && !s.deps.supabase() {
		return s.deps.Local.DemoUserID()
	}
	return userID
}

// NewReconciler builds a loaded-on-demand reconciler for one view.
func (s *EngagementService) NewReconciler(storyID, authorID, userID string) *engagement.Reconciler {
	return engagement.NewReconciler(engagement.Options{
		Source:          s.source,
		Mode:            s.deps.Mode,
		StoryID:         storyID,
		AuthorID:        authorID,
		UserID:          s.resolveUserID(userID),
		RollbackOnError: s.rollbackOnError,
		Logger:          s.deps.Logger,
	})
}

// Snapshot loads the current engagement state for a view.
func (s *EngagementService) Snapshot(ctx context.Context, storyID, authorID, userID string) engagement.State {
	r := s.NewReconciler(storyID, authorID, userID)
	defer r.Close()
	return r.Load(ctx)
}

// ToggleStoryLike loads and flips the user's like on a story.
func (s *EngagementService) ToggleStoryLike(ctx context.Context, storyID, authorID, userID string) engagement.State {
	r := s.NewReconciler(storyID, authorID, userID)
	defer r.Close()
	r.Load(ctx)
	return r.ToggleStoryLike(ctx)
}

// ToggleAuthorFollow loads and flips the user's follow on an author.
// Self-follows are rejected before any I/O.
func (s *EngagementService) ToggleAuthorFollow(ctx context.Context, storyID, authorID, userID string) (engagement.State, error) {
	resolved := s.resolveUserID(userID)
	if resolved == authorID {
		return engagement.State{}, models.ErrSelfFollow
	}
	r := s.NewReconciler(storyID, authorID, resolved)
	defer r.Close()
	r.Load(ctx)
	return r.ToggleAuthorFollow(ctx), nil
}
