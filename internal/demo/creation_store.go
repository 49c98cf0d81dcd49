package demo

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// ChapterDraft is the opening chapter supplied with a story draft.
type ChapterDraft struct {
	Title       *string
	Summary     *string
	Content     string
	IsPublished bool
}

// StoryDraft is the payload for creating a story in demo mode.
type StoryDraft struct {
	AuthorID          string
	AuthorDisplayName string
	Title             string
	Slug              *string
	Summary           *string
	CoverImage        *string
	Language          string
	Tags              []string
	IsPublished       bool
	PublishedAt       *time.Time
	Chapter           ChapterDraft
	MediaAssets       []models.MediaAssetInput
}

// CreationEntry is a story created during the demo session, with its single
// opening chapter and any attached media.
type CreationEntry struct {
	Story             models.Story
	Chapters          []models.Chapter
	MediaAssets       []models.ChapterMediaAsset
	AuthorDisplayName string
}

func cloneCreationEntry(e CreationEntry) CreationEntry {
	out := e
	out.Story.Tags = append([]string(nil), e.Story.Tags...)
	out.Chapters = append([]models.Chapter(nil), e.Chapters...)
	out.MediaAssets = append([]models.ChapterMediaAsset(nil), e.MediaAssets...)
	return out
}

// CreationStore keeps stories created in demo mode, keyed by slug.
type CreationStore struct {
	mu      sync.Mutex
	entries map[string]CreationEntry
	order   []string
}

func NewCreationStore() *CreationStore {
	return &CreationStore{entries: make(map[string]CreationEntry)}
}

// uniqueSlug probes base, base-2, base-3, ... until a free slug is found.
func (s *CreationStore) uniqueSlug(base string) string {
	if _, taken := s.entries[base]; !taken {
		return base
	}
	for counter := 2; ; counter++ {
		candidate := fmt.Sprintf("%s-%d", base, counter)
		if _, taken := s.entries[candidate]; !taken {
			return candidate
		}
	}
}

// AddStory mints a story with exactly one chapter at position 0. Blank media
// slots (no title, no URL, no transcript) are discarded rather than stored.
func (s *CreationStore) AddStory(draft StoryDraft) CreationEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	base := ""
	if draft.Slug != nil {
		base = models.Slugify(*draft.Slug)
	}
	if base == "" {
		base = models.Slugify(draft.Title)
	}
	if base == "" {
		base = models.Slugify(fmt.Sprintf("story-%d", now.UnixMilli()))
	}
	slug := s.uniqueSlug(base)

	storyID := "demo-story-" + uuid.NewString()
	story := models.Story{
		ID:          storyID,
		AuthorID:    draft.AuthorID,
		Title:       draft.Title,
		Slug:        &slug,
		Summary:     draft.Summary,
		CoverImage:  draft.CoverImage,
		Language:    draft.Language,
		Tags:        append([]string(nil), draft.Tags...),
		IsPublished: draft.IsPublished,
		PublishedAt: draft.PublishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	chapterID := "demo-chapter-" + uuid.NewString()
	chapter := models.Chapter{
		ID:          chapterID,
		StoryID:     storyID,
		AuthorID:    draft.AuthorID,
		Title:       draft.Chapter.Title,
		Summary:     draft.Chapter.Summary,
		Content:     draft.Chapter.Content,
		Position:    0,
		IsPublished: draft.Chapter.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	assets := make([]models.ChapterMediaAsset, 0, len(draft.MediaAssets))
	for i, input := range draft.MediaAssets {
		if input.IsEmpty() {
			continue
		}
		sortOrder := i
		if input.SortOrder != nil {
			sortOrder = *input.SortOrder
		}
		assets = append(assets, models.ChapterMediaAsset{
			ID:              "demo-media-" + uuid.NewString(),
			ChapterID:       chapterID,
			Title:           input.Title,
			Description:     input.Description,
			MediaType:       input.MediaType,
			MediaURL:        input.MediaURL,
			DurationSeconds: input.DurationSeconds,
			Transcript:      input.Transcript,
			SortOrder:       &sortOrder,
		})
	}

	entry := CreationEntry{
		Story:             story,
		Chapters:          []models.Chapter{chapter},
		MediaAssets:       assets,
		AuthorDisplayName: draft.AuthorDisplayName,
	}
	s.entries[slug] = entry
	s.order = append(s.order, slug)

	return cloneCreationEntry(entry)
}

// BySlug returns the session story stored under slug, if any.
func (s *CreationStore) BySlug(slug string) (CreationEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[slug]
	if !ok {
		return CreationEntry{}, false
	}
	return cloneCreationEntry(entry), true
}

// List returns all session stories in creation order.
func (s *CreationStore) List() []CreationEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CreationEntry, 0, len(s.order))
	for _, slug := range s.order {
		out = append(out, cloneCreationEntry(s.entries[slug]))
	}
	return out
}
