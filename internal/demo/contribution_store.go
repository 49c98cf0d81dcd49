package demo

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// ContributionInput is the payload for a demo contribution.
type ContributionInput struct {
	Alias           string
	Content         string
	Prompt          *string
	ChapterID       *string
	ChapterTitle    *string
	ChapterPosition *int
}

// ContributionStore keeps per-story contribution timelines for demo mode.
// Timelines are returned newest first.
type ContributionStore struct {
	mu      sync.Mutex
	entries map[string]*mergedCollection[models.ContributionView]
}

func NewContributionStore() *ContributionStore {
	return &ContributionStore{entries: make(map[string]*mergedCollection[models.ContributionView])}
}

func (s *ContributionStore) entry(storyID string, baseline []models.ContributionView) *mergedCollection[models.ContributionView] {
	col, ok := s.entries[storyID]
	if !ok {
		col = newMergedCollection(
			func(c models.ContributionView) string { return c.ID },
			func(c models.ContributionView) models.ContributionView { return c },
			func(a, b models.ContributionView) bool { return a.CreatedAt.After(b.CreatedAt) },
		)
		s.entries[storyID] = col
	}
	col.seed(baseline)
	return col
}

// Timeline returns the merged contribution timeline, most recent first.
func (s *ContributionStore) Timeline(storyID string, baseline []models.ContributionView) []models.ContributionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry(storyID, baseline).items()
}

// Add records a session contribution. It starts pending with no response
// timestamp, credited to a freshly minted guest contributor.
func (s *ContributionStore) Add(storyID string, baseline []models.ContributionView, input ContributionInput) models.ContributionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	content := input.Content
	contribution := models.ContributionView{
		ID:              "demo-contribution-" + uuid.NewString(),
		Status:          models.ContributionPending,
		Prompt:          input.Prompt,
		Content:         &content,
		CreatedAt:       time.Now().UTC(),
		ChapterID:       input.ChapterID,
		ChapterTitle:    input.ChapterTitle,
		ChapterPosition: input.ChapterPosition,
		Contributor: models.Collaborator{
			ID:          "demo-contributor-" + uuid.NewString(),
			DisplayName: input.Alias,
			Role:        "Guest contributor",
		},
	}
	s.entry(storyID, baseline).add(contribution)
	return contribution
}
