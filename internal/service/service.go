// Package service orchestrates the content repository and the demo stores
// behind a single API. Every service consults the data source mode decided
// at startup and never re-evaluates it.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/demo"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/fixtures"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/localstore"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/repository"
)

// TxRepos bundles the repositories bound to a single transaction for
// multi-statement writes.
type TxRepos struct {
	Stories  repository.StoryRepository
	Chapters repository.ChapterRepository
	Media    repository.MediaRepository
}

// Deps wires every service. Repository fields are nil in demo mode; demo
// stores and the local store are always present.
type Deps struct {
	Mode models.DataSource

	Stories       repository.StoryRepository
	Chapters      repository.ChapterRepository
	Comments      repository.CommentRepository
	Contributions repository.ContributionRepository
	Engagement    repository.EngagementRepository
	Media         repository.MediaRepository
	Profiles      repository.ProfileRepository

	// RunInTx executes fn with transaction-scoped repositories and rolls
	// back when fn fails. nil in demo mode; callers without a pool fall
	// back to the plain repository fields.
	RunInTx func(ctx context.Context, fn func(TxRepos) error) error

	DemoComments      *demo.CommentStore
	DemoContributions *demo.ContributionStore
	DemoEngagement    *demo.EngagementStore
	DemoCreations     *demo.CreationStore

	Local  *localstore.Store
	Logger *zap.Logger
}

func (d Deps) supabase() bool {
	return d.Mode == models.SourceSupabase
}

// demoStoryData is the raw material for assembling demo-mode views of one
// story: the fixture set, or a story created during this session.
type demoStoryData struct {
	story                models.Story
	chapters             []models.Chapter
	collaborators        []models.Collaborator
	prompts              []models.ContributionPrompt
	commentBaseline      []models.StoryCommentView
	contributionBaseline []models.ContributionView
	likeBaselines        map[string]int
	followerBaseline     int
	contributionFloor    int
	mediaAssets          []models.ChapterMediaAsset
	fixture              bool
}

// demoStoryBySlug resolves a slug against the fixture catalogue first, then
// the session creation store.
func (d Deps) demoStoryBySlug(slug string) (demoStoryData, bool) {
	if slug == fixtures.StellarStorySlug {
		return demoStoryData{
			story:                fixtures.StellarSymphonyStory(),
			chapters:             fixtures.StellarChapters(),
			collaborators:        fixtures.StellarCollaborators(),
			prompts:              fixtures.StellarPrompts(),
			commentBaseline:      fixtures.StellarComments(),
			contributionBaseline: fixtures.StellarContributions(),
			likeBaselines:        fixtures.ChapterLikeBaselines(),
			followerBaseline:     fixtures.FollowerBaseline,
			contributionFloor:    fixtures.ContributionCountBaseline,
			fixture:              true,
		}, true
	}

	entry, ok := d.DemoCreations.BySlug(slug)
	if !ok {
		return demoStoryData{}, false
	}
	return demoStoryData{
		story:    entry.Story,
		chapters: entry.Chapters,
		collaborators: []models.Collaborator{
			{ID: entry.Story.AuthorID, DisplayName: entry.AuthorDisplayName, Role: "Author"},
		},
		mediaAssets: entry.MediaAssets,
	}, true
}

// demoStoryByID resolves a story id the same way.
func (d Deps) demoStoryByID(storyID string) (demoStoryData, bool) {
	if storyID == fixtures.StellarStoryID {
		return d.demoStoryBySlug(fixtures.StellarStorySlug)
	}
	for _, entry := range d.DemoCreations.List() {
		if entry.Story.ID == storyID {
			if entry.Story.Slug == nil {
				return demoStoryData{}, false
			}
			return d.demoStoryBySlug(*entry.Story.Slug)
		}
	}
	return demoStoryData{}, false
}

// profileResolver looks author identities up in the profile table, caching
// per call site. A missing or failed lookup falls back to the placeholder.
func (d Deps) profileResolver(ctx context.Context) func(string) (models.Collaborator, bool) {
	cache := make(map[string]models.Collaborator)
	return func(userID string) (models.Collaborator, bool) {
		if c, ok := cache[userID]; ok {
			return c, true
		}
		profile, err := d.Profiles.Get(ctx, userID)
		if err != nil || profile == nil || profile.Username == nil {
			return models.Collaborator{}, false
		}
		c := models.Collaborator{
			ID:          profile.ID,
			DisplayName: *profile.Username,
			Role:        "Collaborator",
			AvatarURL:   profile.Avatar,
		}
		cache[userID] = c
		return c, true
	}
}

// collaboratorResolver builds an id-to-identity lookup over a fixed set.
func collaboratorResolver(collaborators []models.Collaborator) func(string) (models.Collaborator, bool) {
	byID := make(map[string]models.Collaborator, len(collaborators))
	for _, c := range collaborators {
		byID[c.ID] = c
	}
	return func(userID string) (models.Collaborator, bool) {
		c, ok := byID[userID]
		return c, ok
	}
}

// chapterResolver builds an id-to-chapter lookup.
func chapterResolver(chapters []models.Chapter) func(string) (models.Chapter, bool) {
	byID := make(map[string]models.Chapter, len(chapters))
	for _, ch := range chapters {
		byID[ch.ID] = ch
	}
	return func(chapterID string) (models.Chapter, bool) {
		ch, ok := byID[chapterID]
		return ch, ok
	}
}

// DemoStoryLikeBaseline resolves the seeded like count for a story id, for
// wiring into the demo engagement store.
func DemoStoryLikeBaseline(storyID string) int {
	if storyID == fixtures.StellarStoryID {
		return fixtures.StoryLikeBaseline()
	}
	return 0
}

// DemoFollowerBaseline resolves the seeded follower count for an author id.
func DemoFollowerBaseline(authorID string) int {
	if authorID == fixtures.NovaQuillID {
		return fixtures.FollowerBaseline
	}
	return 0
}
