package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/demo"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// ChapterInput is the opening chapter supplied when creating a story.
type ChapterInput struct {
	Title       *string `json:"title"`
	Summary     *string `json:"summary"`
	Content     string  `json:"content"`
	IsPublished *bool   `json:"isPublished"`
}

// CreateStoryInput bundles everything a story launch needs: the story, its
// opening chapter and optional media slots.
type CreateStoryInput struct {
	Story             models.StoryCreateInput  `json:"story"`
	Chapter           ChapterInput             `json:"chapter"`
	MediaAssets       []models.MediaAssetInput `json:"mediaAssets"`
	AuthorDisplayName string                   `json:"authorDisplayName"`
}

// CreateStoryResult is the persisted outcome.
type CreateStoryResult struct {
	Story       models.Story               `json:"story"`
	Chapter     models.Chapter             `json:"chapter"`
	MediaAssets []models.ChapterMediaAsset `json:"mediaAssets"`
	Source      models.DataSource          `json:"source"`
}

// CreationService launches new stories on whichever backend is active.
type CreationService struct {
	deps   Deps
	logger *zap.Logger
}

func NewCreationService(deps Deps) *CreationService {
	return &CreationService{
		deps:   deps,
		logger: deps.Logger.Named("CreationService"),
	}
}

// CreateStory validates and persists a story with exactly one chapter at
// position 0. Blank media slots are discarded before persistence. In demo
// mode the author identity comes from the durable local store when the
// caller supplies none.
func (s *CreationService) CreateStory(ctx context.Context, input CreateStoryInput) (*CreateStoryResult, error) {
	if !s.deps.supabase() && input.Story.AuthorID == "" {
		input.Story.AuthorID = s.deps.Local.DemoAuthorID()
	}
	if err := input.Story.Validate(); err != nil {
		return nil, err
	}
	if input.Chapter.Content == "" {
		return nil, fmt.Errorf("%w: chapter content cannot be empty", models.ErrValidation)
	}

	media := make([]models.MediaAssetInput, 0, len(input.MediaAssets))
	for _, asset := range input.MediaAssets {
		if asset.IsEmpty() {
			continue
		}
		media = append(media, asset)
	}

	if s.deps.supabase() {
		return s.createInRepository(ctx, input, media)
	}
	return s.createInDemo(input, media)
}

// createInRepository persists the story, its opening chapter and the media
// slots as one atomic write: a failure partway through rolls everything back.
func (s *CreationService) createInRepository(ctx context.Context, input CreateStoryInput, media []models.MediaAssetInput) (*CreateStoryResult, error) {
	var result *CreateStoryResult
	create := func(repos TxRepos) error {
		story, err := repos.Stories.Create(ctx, input.Story)
		if err != nil {
			return err
		}

		chapter, err := repos.Chapters.Create(ctx, models.ChapterCreateInput{
			StoryID:     story.ID,
			AuthorID:    story.AuthorID,
			Title:       input.Chapter.Title,
			Summary:     input.Chapter.Summary,
			Content:     input.Chapter.Content,
			Position:    0,
			IsPublished: input.Chapter.IsPublished,
		})
		if err != nil {
			return err
		}

		assets := []models.ChapterMediaAsset{}
		if len(media) > 0 {
			for i := range media {
				media[i].ChapterID = chapter.ID
				if err := media[i].Validate(); err != nil {
					return err
				}
			}
			assets, err = repos.Media.CreateAssets(ctx, media)
			if err != nil {
				return err
			}
		}

		result = &CreateStoryResult{
			Story:       *story,
			Chapter:     *chapter,
			MediaAssets: assets,
			Source:      models.SourceSupabase,
		}
		return nil
	}

	var err error
	if s.deps.RunInTx != nil {
		err = s.deps.RunInTx(ctx, create)
	} else {
		err = create(TxRepos{Stories: s.deps.Stories, Chapters: s.deps.Chapters, Media: s.deps.Media})
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Story launched",
		zap.String("storyID", result.Story.ID), zap.Stringp("slug", result.Story.Slug))
	return result, nil
}

func (s *CreationService) createInDemo(input CreateStoryInput, media []models.MediaAssetInput) (*CreateStoryResult, error) {
	chapterPublished := true
	if input.Chapter.IsPublished != nil {
		chapterPublished = *input.Chapter.IsPublished
	}

	entry := s.deps.DemoCreations.AddStory(demo.StoryDraft{
		AuthorID:          input.Story.AuthorID,
		AuthorDisplayName: authorDisplayName(input),
		Title:             input.Story.Title,
		Slug:              input.Story.Slug,
		Summary:           input.Story.Summary,
		CoverImage:        input.Story.CoverImage,
		Language:          input.Story.EffectiveLanguage(),
		Tags:              input.Story.Tags,
		IsPublished:       input.Story.IsPublished,
		PublishedAt:       input.Story.EffectivePublishedAt(time.Now().UTC()),
		Chapter: demo.ChapterDraft{
			Title:       input.Chapter.Title,
			Summary:     input.Chapter.Summary,
			Content:     input.Chapter.Content,
			IsPublished: chapterPublished,
		},
		MediaAssets: media,
	})

	s.logger.Info("Story launched in demo mode",
		zap.String("storyID", entry.Story.ID), zap.Stringp("slug", entry.Story.Slug))

	return &CreateStoryResult{
		Story:       entry.Story,
		Chapter:     entry.Chapters[0],
		MediaAssets: entry.MediaAssets,
		Source:      models.SourceDemo,
	}, nil
}

func authorDisplayName(input CreateStoryInput) string {
	if input.AuthorDisplayName != "" {
		return input.AuthorDisplayName
	}
	return models.PlaceholderCollaborator(input.Story.AuthorID).DisplayName
}
