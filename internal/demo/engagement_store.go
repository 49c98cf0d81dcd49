package demo

import (
	"sync"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// counter tracks a seeded total plus per-user overrides. An override is only
// ever stored as true; toggling off deletes the key, so the map never holds
// negative intent and the effective count cannot dip below zero.
type counter struct {
	baseline  int
	overrides map[string]bool
}

func (c *counter) total() int {
	delta := 0
	for _, on := range c.overrides {
		if on {
			delta++
		}
	}
	if total := c.baseline + delta; total > 0 {
		return total
	}
	return 0
}

// BaselineFunc resolves the seeded count for a target id.
type BaselineFunc func(id string) int

// EngagementStore keeps demo-mode like and follow counters.
type EngagementStore struct {
	mu               sync.Mutex
	storyLikes       map[string]*counter
	authorFollowers  map[string]*counter
	storyBaseline    BaselineFunc
	followerBaseline BaselineFunc
}

func NewEngagementStore(storyBaseline, followerBaseline BaselineFunc) *EngagementStore {
	return &EngagementStore{
		storyLikes:       make(map[string]*counter),
		authorFollowers:  make(map[string]*counter),
		storyBaseline:    storyBaseline,
		followerBaseline: followerBaseline,
	}
}

func ensureCounter(collection map[string]*counter, key string, baseline int) *counter {
	c, ok := collection[key]
	if !ok {
		c = &counter{baseline: baseline, overrides: make(map[string]bool)}
		collection[key] = c
	}
	return c
}

// Snapshot reports the current engagement state for a user's view of a story.
func (s *EngagementStore) Snapshot(storyID, authorID, userID string) models.EngagementSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	story := ensureCounter(s.storyLikes, storyID, s.storyBaseline(storyID))
	author := ensureCounter(s.authorFollowers, authorID, s.followerBaseline(authorID))

	return models.EngagementSnapshot{
		StoryLikes:       story.total(),
		StoryLikedByUser: story.overrides[userID],
		FollowerCount:    author.total(),
		FollowingAuthor:  author.overrides[userID],
	}
}

// ToggleStoryLike flips the user's like on a story and returns the new count
// and state.
func (s *EngagementStore) ToggleStoryLike(storyID, userID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	story := ensureCounter(s.storyLikes, storyID, s.storyBaseline(storyID))
	next := !story.overrides[userID]
	if next {
		story.overrides[userID] = true
	} else {
		delete(story.overrides, userID)
	}
	return story.total(), next
}

// ToggleAuthorFollow flips the user's follow on an author and returns the new
// follower count and state.
func (s *EngagementStore) ToggleAuthorFollow(authorID, userID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := ensureCounter(s.authorFollowers, authorID, s.followerBaseline(authorID))
	next := !author.overrides[userID]
	if next {
		author.overrides[userID] = true
	} else {
		delete(author.overrides, userID)
	}
	return author.total(), next
}
