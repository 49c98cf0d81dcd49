package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/assembler"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/fixtures"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// StoryDetailService assembles the full story page payload.
type StoryDetailService struct {
	deps   Deps
	logger *zap.Logger
}

func NewStoryDetailService(deps Deps) *StoryDetailService {
	return &StoryDetailService{
		deps:   deps,
		logger: deps.Logger.Named("StoryDetailService"),
	}
}

// FetchDetail resolves a story page by slug. In supabase mode any repository
// failure falls back to the demo catalogue rather than surfacing an error;
// nil means the slug is unknown to both worlds.
func (s *StoryDetailService) FetchDetail(ctx context.Context, slug string) (*models.StoryDetail, error) {
	if s.deps.supabase() {
		detail, err := s.fetchFromRepository(ctx, slug)
		if err != nil {
			s.logger.Warn("Repository detail fetch failed, falling back to demo data",
				zap.String("slug", slug), zap.Error(err))
		} else if detail != nil {
			return detail, nil
		}
	}
	return s.fetchFromDemo(slug), nil
}

func (s *StoryDetailService) fetchFromRepository(ctx context.Context, slug string) (*models.StoryDetail, error) {
	story, err := s.deps.Stories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, nil
	}

	chapters, err := s.deps.Stories.ListChapters(ctx, story.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.deps.Comments.List(ctx, models.CommentListFilters{StoryID: story.ID})
	if err != nil {
		return nil, err
	}
	contributions, err := s.deps.Contributions.ListByStory(ctx, story.ID)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.deps.Engagement.Snapshot(ctx, story.ID, story.AuthorID, "")
	if err != nil {
		return nil, err
	}

	resolve := s.deps.profileResolver(ctx)
	commentViews := assembler.BuildCommentViews(comments, resolve)
	chapterViews := assembler.BuildChapterViews(chapters, commentViews, nil)
	contributionViews := assembler.SortContributionsByRecency(
		assembler.BuildContributionViews(contributions, chapterResolver(chapters), resolve))

	stats := assembler.DeriveStats(*story, chapterViews, contributionViews, snapshot.FollowerCount, 0)
	stats.Likes = snapshot.StoryLikes

	return &models.StoryDetail{
		Story:               *story,
		Chapters:            chapterViews,
		Comments:            commentViews,
		Contributions:       contributionViews,
		Collaborators:       s.collaboratorsFor(ctx, *story, chapters),
		ContributionPrompts: []models.ContributionPrompt{},
		Stats:               stats,
		Source:              models.SourceSupabase,
	}, nil
}

// collaboratorsFor lists the distinct authors behind a story and its
// chapters, the story author first.
func (s *StoryDetailService) collaboratorsFor(ctx context.Context, story models.Story, chapters []models.Chapter) []models.Collaborator {
	resolve := s.deps.profileResolver(ctx)
	seen := map[string]struct{}{}
	ids := []string{story.AuthorID}
	seen[story.AuthorID] = struct{}{}
	for _, chapter := range chapters {
		if _, ok := seen[chapter.AuthorID]; !ok {
			seen[chapter.AuthorID] = struct{}{}
			ids = append(ids, chapter.AuthorID)
		}
	}

	collaborators := make([]models.Collaborator, 0, len(ids))
	for _, id := range ids {
		if c, ok := resolve(id); ok {
			collaborators = append(collaborators, c)
		} else {
			collaborators = append(collaborators, models.PlaceholderCollaborator(id))
		}
	}
	return collaborators
}

func (s *StoryDetailService) fetchFromDemo(slug string) *models.StoryDetail {
	data, ok := s.deps.demoStoryBySlug(slug)
	if !ok {
		return nil
	}

	comments := s.deps.DemoComments.Thread(data.story.ID, data.commentBaseline)
	contributions := s.deps.DemoContributions.Timeline(data.story.ID, data.contributionBaseline)

	chapterViews := assembler.BuildChapterViews(data.chapters, comments, data.likeBaselines)
	stats := assembler.DeriveStats(data.story, chapterViews, contributions, data.followerBaseline, data.contributionFloor)

	prompts := data.prompts
	if prompts == nil {
		prompts = []models.ContributionPrompt{}
	}

	return &models.StoryDetail{
		Story:               data.story,
		Chapters:            chapterViews,
		Comments:            comments,
		Contributions:       contributions,
		Collaborators:       data.collaborators,
		ContributionPrompts: prompts,
		Stats:               stats,
		Source:              models.SourceDemo,
	}
}

// ListPublished serves the discovery feed. Demo mode lists the fixture story
// plus any session creations that claim to be published.
func (s *StoryDetailService) ListPublished(ctx context.Context, filters models.StoryListFilters) ([]models.Story, models.DataSource, error) {
	if err := filters.Validate(); err != nil {
		return nil, s.deps.Mode, err
	}

	if s.deps.supabase() {
		stories, err := s.deps.Stories.FetchPublished(ctx, filters)
		if err != nil {
			return nil, models.SourceSupabase, fmt.Errorf("failed to list published stories: %w", err)
		}
		return stories, models.SourceSupabase, nil
	}

	stories := []models.Story{fixtures.StellarSymphonyStory()}
	for _, entry := range s.deps.DemoCreations.List() {
		if entry.Story.IsPublished {
			stories = append(stories, entry.Story)
		}
	}
	if limit := filters.EffectiveLimit(); len(stories) > limit {
		stories = stories[:limit]
	}
	return stories, models.SourceDemo, nil
}
