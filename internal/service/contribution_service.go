package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/assembler"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/demo"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// ContributionService manages the community contribution timeline.
type ContributionService struct {
	deps   Deps
	logger *zap.Logger
}

func NewContributionService(deps Deps) *ContributionService {
	return &ContributionService{
		deps:   deps,
		logger: deps.Logger.Named("ContributionService"),
	}
}

// Submit records a pending contribution. Alias only matters in demo mode.
func (s *ContributionService) Submit(ctx context.Context, input models.ContributionCreateInput, alias string, chapterID *string) (*models.ContributionView, error) {
	if s.deps.supabase() {
		if err := input.Validate(); err != nil {
			return nil, err
		}
		contribution, err := s.deps.Contributions.Submit(ctx, input)
		if err != nil {
			return nil, err
		}
		views := assembler.BuildContributionViews(
			[]models.Contribution{*contribution}, nil, s.deps.profileResolver(ctx))
		return &views[0], nil
	}

	if input.Content == nil || *input.Content == "" {
		return nil, fmt.Errorf("%w: contribution content cannot be empty", models.ErrValidation)
	}
	if len(*input.Content) > models.MaxContributionContentLength {
		return nil, fmt.Errorf("%w: content must be at most %d characters", models.ErrValidation, models.MaxContributionContentLength)
	}

	data, ok := s.deps.demoStoryByID(input.StoryID)
	if !ok {
		return nil, models.ErrNotFound
	}
	if alias == "" {
		alias = "Anonymous storyteller"
	}

	demoInput := demo.ContributionInput{
		Alias:   alias,
		Content: *input.Content,
		Prompt:  input.Prompt,
	}
	if chapterID != nil {
		if chapter, found := chapterResolver(data.chapters)(*chapterID); found {
			demoInput.ChapterID = &chapter.ID
			demoInput.ChapterTitle = chapter.Title
			position := chapter.Position
			demoInput.ChapterPosition = &position
		}
	}

	view := s.deps.DemoContributions.Add(data.story.ID, data.contributionBaseline, demoInput)
	return &view, nil
}

// Timeline lists a story's contributions, newest first.
func (s *ContributionService) Timeline(ctx context.Context, storyID string) ([]models.ContributionView, error) {
	if s.deps.supabase() {
		contributions, err := s.deps.Contributions.ListByStory(ctx, storyID)
		if err != nil {
			return nil, err
		}
		chapters, err := s.deps.Stories.ListChapters(ctx, storyID)
		if err != nil {
			return nil, err
		}
		views := assembler.BuildContributionViews(
			contributions, chapterResolver(chapters), s.deps.profileResolver(ctx))
		return assembler.SortContributionsByRecency(views), nil
	}

	data, ok := s.deps.demoStoryByID(storyID)
	if !ok {
		return []models.ContributionView{}, nil
	}
	return s.deps.DemoContributions.Timeline(data.story.ID, data.contributionBaseline), nil
}

// Respond moves a contribution through its review lifecycle, stamping the
// response timestamp when the status leaves pending and none was supplied.
// Review requires the relational backend.
func (s *ContributionService) Respond(ctx context.Context, input models.ContributionUpdateInput) (*models.Contribution, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !s.deps.supabase() {
		return nil, fmt.Errorf("%w: contribution review requires a configured backend", models.ErrValidation)
	}

	if input.Status != models.ContributionPending && !input.RespondedAt.IsSet() {
		now := time.Now().UTC()
		input.RespondedAt = models.NewOptional[*time.Time](&now)
	}
	return s.deps.Contributions.Update(ctx, input)
}
