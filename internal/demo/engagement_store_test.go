package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedBaseline(n int) BaselineFunc {
	return func(string) int { return n }
}

func TestEngagementStoreToggleStoryLike(t *testing.T) {
	store := NewEngagementStore(fixedBaseline(100), fixedBaseline(0))

	count, liked := store.ToggleStoryLike("story-1", "user-a")
	assert.Equal(t, 101, count)
	assert.True(t, liked)

	count, liked = store.ToggleStoryLike("story-1", "user-a")
	assert.Equal(t, 100, count, "unliking returns to the baseline")
	assert.False(t, liked)

	// Two distinct users each add one.
	store.ToggleStoryLike("story-1", "user-a")
	count, _ = store.ToggleStoryLike("story-1", "user-b")
	assert.Equal(t, 102, count)
}

func TestEngagementStoreCountNeverNegative(t *testing.T) {
	store := NewEngagementStore(fixedBaseline(0), fixedBaseline(0))

	snapshot := store.Snapshot("story-1", "author-1", "user-a")
	assert.Equal(t, 0, snapshot.StoryLikes)

	count, liked := store.ToggleStoryLike("story-1", "user-a")
	assert.Equal(t, 1, count)
	assert.True(t, liked)

	count, liked = store.ToggleStoryLike("story-1", "user-a")
	assert.Equal(t, 0, count)
	assert.False(t, liked)

	// Toggling off again re-likes rather than going negative.
	count, liked = store.ToggleStoryLike("story-1", "user-a")
	assert.Equal(t, 1, count)
	assert.True(t, liked)
}

func TestEngagementStoreSnapshot(t *testing.T) {
	store := NewEngagementStore(fixedBaseline(50), fixedBaseline(7))

	store.ToggleStoryLike("story-1", "user-a")
	store.ToggleAuthorFollow("author-1", "user-a")

	viewerA := store.Snapshot("story-1", "author-1", "user-a")
	assert.Equal(t, 51, viewerA.StoryLikes)
	assert.True(t, viewerA.StoryLikedByUser)
	assert.Equal(t, 8, viewerA.FollowerCount)
	assert.True(t, viewerA.FollowingAuthor)

	viewerB := store.Snapshot("story-1", "author-1", "user-b")
	assert.Equal(t, 51, viewerB.StoryLikes, "counts are shared")
	assert.False(t, viewerB.StoryLikedByUser, "per-user state is not")
	assert.False(t, viewerB.FollowingAuthor)
}

func TestEngagementStoreBaselinePerTarget(t *testing.T) {
	baselines := map[string]int{"story-1": 10, "story-2": 20}
	store := NewEngagementStore(func(id string) int { return baselines[id] }, fixedBaseline(0))

	count, _ := store.ToggleStoryLike("story-1", "user-a")
	assert.Equal(t, 11, count)
	count, _ = store.ToggleStoryLike("story-2", "user-a")
	assert.Equal(t, 21, count)
}
