package demo

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// CommentInput is the payload for a demo comment.
type CommentInput struct {
	Alias     string
	Role      string
	Body      string
	ChapterID *string
}

// CommentStore keeps per-story comment threads for demo mode. Threads are
// returned oldest first.
type CommentStore struct {
	mu      sync.Mutex
	entries map[string]*mergedCollection[models.StoryCommentView]
}

func NewCommentStore() *CommentStore {
	return &CommentStore{entries: make(map[string]*mergedCollection[models.StoryCommentView])}
}

func cloneCommentView(c models.StoryCommentView) models.StoryCommentView {
	return c
}

func (s *CommentStore) entry(storyID string, baseline []models.StoryCommentView) *mergedCollection[models.StoryCommentView] {
	col, ok := s.entries[storyID]
	if !ok {
		col = newMergedCollection(
			func(c models.StoryCommentView) string { return c.ID },
			cloneCommentView,
			func(a, b models.StoryCommentView) bool { return a.CreatedAt.Before(b.CreatedAt) },
		)
		s.entries[storyID] = col
	}
	col.seed(baseline)
	return col
}

// Thread returns the merged comment thread for a story, chronological.
func (s *CommentStore) Thread(storyID string, baseline []models.StoryCommentView) []models.StoryCommentView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry(storyID, baseline).items()
}

// Add appends a session comment to the story's thread and returns it.
func (s *CommentStore) Add(storyID string, baseline []models.StoryCommentView, input CommentInput) models.StoryCommentView {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := models.StoryCommentView{
		ID:        "demo-comment-" + uuid.NewString(),
		Body:      input.Body,
		CreatedAt: time.Now().UTC(),
		ChapterID: input.ChapterID,
		Author: models.Collaborator{
			ID:          "demo-commenter-" + uuid.NewString(),
			DisplayName: input.Alias,
			Role:        input.Role,
		},
	}
	s.entry(storyID, baseline).add(comment)
	return comment
}
