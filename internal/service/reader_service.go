package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/assembler"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/fixtures"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// ReaderService assembles the chapter reading payload.
type ReaderService struct {
	deps   Deps
	logger *zap.Logger
}

func NewReaderService(deps Deps) *ReaderService {
	return &ReaderService{
		deps:   deps,
		logger: deps.Logger.Named("ReaderService"),
	}
}

// FetchChapter resolves the reading payload for a chapter. A nil chapterID
// opens the first chapter by position. Media and cue fetch failures degrade
// to empty lists with a warning; they never fail the page. nil means the
// slug or chapter is unknown.
func (s *ReaderService) FetchChapter(ctx context.Context, slug string, chapterID *string) (*models.ReaderChapter, error) {
	var payload *models.ReaderChapter
	if s.deps.supabase() {
		result, err := s.fetchFromRepository(ctx, slug, chapterID)
		if err != nil {
			s.logger.Warn("Repository reader fetch failed, falling back to demo data",
				zap.String("slug", slug), zap.Error(err))
		} else if result != nil {
			payload = result
		}
	}
	if payload == nil {
		payload = s.fetchFromDemo(slug, chapterID)
	}
	if payload == nil {
		return nil, nil
	}

	s.deps.Local.CacheChapter(*payload)
	return payload, nil
}

func (s *ReaderService) fetchFromRepository(ctx context.Context, slug string, chapterID *string) (*models.ReaderChapter, error) {
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
	if len(chapters) == 0 {
		return nil, nil
	}
	assembler.SortChaptersByPosition(chapters)

	active, ok := pickChapter(chapters, chapterID)
	if !ok {
		return nil, nil
	}

	assets, err := s.deps.Media.ListAssets(ctx, active.ID)
	if err != nil {
		s.logger.Warn("Failed to load media assets, degrading to empty list",
			zap.String("chapterID", active.ID), zap.Error(err))
		assets = []models.ChapterMediaAsset{}
	}
	cues, err := s.deps.Media.ListCues(ctx, active.ID)
	if err != nil {
		s.logger.Warn("Failed to load ambient cues, degrading to empty list",
			zap.String("chapterID", active.ID), zap.Error(err))
		cues = []models.ChapterAmbientCue{}
	}

	payload := assembler.BuildReaderChapter(*story, chapters, active, assets, cues, models.SourceSupabase)
	return &payload, nil
}

func (s *ReaderService) fetchFromDemo(slug string, chapterID *string) *models.ReaderChapter {
	data, ok := s.deps.demoStoryBySlug(slug)
	if !ok || len(data.chapters) == 0 {
		return nil
	}

	chapters := assembler.SortChaptersByPosition(data.chapters)
	active, ok := pickChapter(chapters, chapterID)
	if !ok {
		return nil
	}

	var assets []models.ChapterMediaAsset
	var cues []models.ChapterAmbientCue
	if data.fixture {
		assets, cues = fixtures.ChapterExtras(active.ID, active.Position)
	} else {
		assets = []models.ChapterMediaAsset{}
		cues = []models.ChapterAmbientCue{}
		for _, asset := range data.mediaAssets {
			if asset.ChapterID == active.ID {
				assets = append(assets, asset)
			}
		}
	}

	payload := assembler.BuildReaderChapter(data.story, chapters, active, assets, cues, models.SourceDemo)
	return &payload
}

// CachedChapters exposes the offline reader cache.
func (s *ReaderService) CachedChapters() []models.ReaderChapter {
	entries := s.deps.Local.CachedChapters()
	payloads := make([]models.ReaderChapter, 0, len(entries))
	for _, entry := range entries {
		payloads = append(payloads, entry.Payload)
	}
	return payloads
}

func pickChapter(chapters []models.Chapter, chapterID *string) (models.Chapter, bool) {
	if chapterID == nil || *chapterID == "" {
		return chapters[0], true
	}
	for _, chapter := range chapters {
		if chapter.ID == *chapterID {
			return chapter, true
		}
	}
	return models.Chapter{}, false
}
