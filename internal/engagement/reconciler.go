// Package engagement keeps a user's view of like/follow state in sync with
// the chosen data source, applying optimistic local updates.
package engagement

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// State is the reconciler's observable snapshot.
type State struct {
	StoryLikes       int               `json:"storyLikes"`
	StoryLikedByUser bool              `json:"storyLikedByUser"`
	FollowerCount    int               `json:"followerCount"`
	FollowingAuthor  bool              `json:"followingAuthor"`
	IsLoading        bool              `json:"isLoading"`
	IsTogglingLike   bool              `json:"isTogglingLike"`
	IsTogglingFollow bool              `json:"isTogglingFollow"`
	DataSource       models.DataSource `json:"dataSource"`
	Error            string            `json:"error,omitempty"`
}

// Reconciler tracks engagement state for one (story, author, user) triple.
// Toggles flip local state optimistically before the source call; a failed
// call surfaces its error but keeps the optimistic state unless rollback was
// opted into. Calls arriving while a load or a toggle of the same kind is in
// flight are dropped.
type Reconciler struct {
	mu     sync.Mutex
	state  State
	closed bool

	source          Source
	storyID         string
	authorID        string
	userID          string
	rollbackOnError bool
	logger          *zap.Logger
}

// Options configure a Reconciler.
type Options struct {
	Source          Source
	Mode            models.DataSource
	StoryID         string
	AuthorID        string
	UserID          string
	RollbackOnError bool
	Logger          *zap.Logger
}

func NewReconciler(opts Options) *Reconciler {
	return &Reconciler{
		state: State{
			IsLoading:  true,
			DataSource: opts.Mode,
		},
		source:          opts.Source,
		storyID:         opts.StoryID,
		authorID:        opts.AuthorID,
		userID:          opts.UserID,
		rollbackOnError: opts.RollbackOnError,
		logger:          opts.Logger.Named("EngagementReconciler"),
	}
}

// Snapshot returns a copy of the current state.
func (r *Reconciler) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Close discards the reconciler. Results of in-flight calls that land after
// Close must not change state.
func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// Load fetches the initial snapshot from the source. The state stays
// isLoading until the fetch lands; a result arriving after Close or after
// context cancellation is discarded.
func (r *Reconciler) Load(ctx context.Context) State {
	snapshot, err := r.source.Snapshot(ctx, r.storyID, r.authorID, r.userID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || ctx.Err() != nil {
		return r.state
	}

	r.state.IsLoading = false
	if err != nil {
		r.logger.Warn("Failed to load engagement snapshot",
			zap.String("storyID", r.storyID), zap.Error(err))
		r.state.Error = err.Error()
		return r.state
	}

	r.state.StoryLikes = snapshot.StoryLikes
	r.state.StoryLikedByUser = snapshot.StoryLikedByUser
	r.state.FollowerCount = snapshot.FollowerCount
	r.state.FollowingAuthor = snapshot.FollowingAuthor
	r.state.Error = ""
	return r.state
}

// ToggleStoryLike flips the user's like. Dropped while loading or while a
// like toggle is already in flight.
func (r *Reconciler) ToggleStoryLike(ctx context.Context) State {
	r.mu.Lock()
	if r.closed || r.state.IsLoading || r.state.IsTogglingLike {
		state := r.state
		r.mu.Unlock()
		return state
	}

	next := !r.state.StoryLikedByUser
	previousCount := r.state.StoryLikes
	previousLiked := r.state.StoryLikedByUser

	r.state.StoryLikedByUser = next
	r.state.StoryLikes = adjustCount(r.state.StoryLikes, next)
	r.state.IsTogglingLike = true
	r.state.Error = ""
	r.mu.Unlock()

	err := r.source.SetStoryLike(ctx, r.storyID, r.userID, next)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return r.state
	}

	r.state.IsTogglingLike = false
	if err != nil {
		r.logger.Warn("Failed to persist story like",
			zap.String("storyID", r.storyID), zap.Bool("like", next), zap.Error(err))
		r.state.Error = err.Error()
		if r.rollbackOnError {
			r.state.StoryLikes = previousCount
			r.state.StoryLikedByUser = previousLiked
		}
	}
	return r.state
}

// ToggleAuthorFollow flips the user's follow. Independent of the like toggle;
// dropped while loading or while a follow toggle is already in flight.
func (r *Reconciler) ToggleAuthorFollow(ctx context.Context) State {
	r.mu.Lock()
	if r.closed || r.state.IsLoading || r.state.IsTogglingFollow {
		state := r.state
		r.mu.Unlock()
		return state
	}

	next := !r.state.FollowingAuthor
	previousCount := r.state.FollowerCount
	previousFollowing := r.state.FollowingAuthor

	r.state.FollowingAuthor = next
	r.state.FollowerCount = adjustCount(r.state.FollowerCount, next)
	r.state.IsTogglingFollow = true
	r.state.Error = ""
	r.mu.Unlock()

	err := r.source.SetAuthorFollow(ctx, r.authorID, r.userID, next)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return r.state
	}

	r.state.IsTogglingFollow = false
	if err != nil {
		r.logger.Warn("Failed to persist author follow",
			zap.String("authorID", r.authorID), zap.Bool("follow", next), zap.Error(err))
		r.state.Error = err.Error()
		if r.rollbackOnError {
			r.state.FollowerCount = previousCount
			r.state.FollowingAuthor = previousFollowing
		}
	}
	return r.state
}

func adjustCount(count int, up bool) int {
	if up {
		return count + 1
	}
	if count <= 0 {
		return 0
	}
	return count - 1
}
