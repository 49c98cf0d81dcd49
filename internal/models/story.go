package models

import (
	"fmt"
	"time"
)

// Limits applied by the story input schemas.
const (
	DefaultStoryListLimit = 12
	MaxStoryListLimit     = 50
	MaxStoryTagFilters    = 8
	MaxStoryTags          = 12
	MinSearchLength       = 2
	MaxSearchLength       = 120
	MinTitleLength        = 3
)

// Story is the domain representation of a published or draft story.
type Story struct {
	ID          string     `db:"id" json:"id"`
	AuthorID    string     `db:"author_id" json:"authorId"`
	Title       string     `db:"title" json:"title"`
	Slug        *string    `db:"slug" json:"slug"`
	Summary     *string    `db:"summary" json:"summary"`
	CoverImage  *string    `db:"cover_image" json:"coverImage"`
	Language    string     `db:"language" json:"language"`
	Tags        []string   `db:"tags" json:"tags"`
	IsPublished bool       `db:"is_published" json:"isPublished"`
	PublishedAt *time.Time `db:"published_at" json:"publishedAt"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// StoryListFilters narrows fetchPublishedStories results.
type StoryListFilters struct {
	Limit    int      `json:"limit" form:"limit"`
	Language string   `json:"language" form:"language"`
	Tags     []string `json:"tags" form:"tags"`
	Search   string   `json:"search" form:"search"`
}

// Validate checks the filter schema. A zero Limit means "use the default".
func (f StoryListFilters) Validate() error {
	if f.Limit < 0 || f.Limit > MaxStoryListLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, MaxStoryListLimit)
	}
	if f.Language != "" && (len(f.Language) < 2 || len(f.Language) > 8) {
		return fmt.Errorf("%w: language must be 2-8 characters", ErrValidation)
	}
	if len(f.Tags) > MaxStoryTagFilters {
		return fmt.Errorf("%w: at most %d tag filters", ErrValidation, MaxStoryTagFilters)
	}
	for _, tag := range f.Tags {
		if tag == "" {
			return fmt.Errorf("%w: tag filters cannot be empty", ErrValidation)
		}
	}
	if f.Search != "" && (len(f.Search) < MinSearchLength || len(f.Search) > MaxSearchLength) {
		return fmt.Errorf("%w: search must be %d-%d characters", ErrValidation, MinSearchLength, MaxSearchLength)
	}
	return nil
}

// EffectiveLimit resolves the list limit, applying the default.
func (f StoryListFilters) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultStoryListLimit
	}
	return f.Limit
}

// StoryCreateInput is the payload for creating a story.
type StoryCreateInput struct {
	AuthorID    string     `json:"authorId"`
	Title       string     `json:"title"`
	Slug        *string    `json:"slug"`
	Summary     *string    `json:"summary"`
	CoverImage  *string    `json:"coverImage"`
	Language    string     `json:"language"`
	Tags        []string   `json:"tags"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// Validate checks the create schema. It does not touch storage.
func (in StoryCreateInput) Validate() error {
	if in.AuthorID == "" {
		return fmt.Errorf("%w: authorId is required", ErrValidation)
	}
	if len(in.Title) < MinTitleLength {
		return fmt.Errorf("%w: story title must be at least %d characters", ErrValidation, MinTitleLength)
	}
	if in.Slug != nil && *in.Slug != "" && !IsValidSlug(*in.Slug) {
		return fmt.Errorf("%w: slug must be lowercase kebab-case", ErrValidation)
	}
	if in.Summary != nil && len(*in.Summary) > 500 {
		return fmt.Errorf("%w: summary must be at most 500 characters", ErrValidation)
	}
	if in.CoverImage != nil && len(*in.CoverImage) > 500 {
		return fmt.Errorf("%w: cover image URL must be at most 500 characters", ErrValidation)
	}
	if in.Language != "" && (len(in.Language) < 2 || len(in.Language) > 8) {
		return fmt.Errorf("%w: language must be 2-8 characters", ErrValidation)
	}
	if len(in.Tags) > MaxStoryTags {
		return fmt.Errorf("%w: at most %d tags", ErrValidation, MaxStoryTags)
	}
	for _, tag := range in.Tags {
		if len(tag) < 2 || len(tag) > 32 {
			return fmt.Errorf("%w: tags must be 2-32 characters", ErrValidation)
		}
	}
	return nil
}

// EffectiveLanguage resolves the story language, defaulting to English.
func (in StoryCreateInput) EffectiveLanguage() string {
	if in.Language == "" {
		return "en"
	}
	return in.Language
}

// EffectiveSlug resolves the slug, falling back to a slugified title.
func (in StoryCreateInput) EffectiveSlug() string {
	if in.Slug != nil && *in.Slug != "" {
		return *in.Slug
	}
	return Slugify(in.Title)
}

// EffectivePublishedAt resolves the publish timestamp for creation: a story
// published without an explicit timestamp is stamped "now", an unpublished
// one keeps whatever was supplied (usually nil).
func (in StoryCreateInput) EffectivePublishedAt(now time.Time) *time.Time {
	if in.PublishedAt != nil {
		return in.PublishedAt
	}
	if in.IsPublished {
		return &now
	}
	return nil
}

// StoryUpdateInput is the partial-update payload for a story. Only supplied
// fields are changed.
type StoryUpdateInput struct {
	Title       Optional[string]     `json:"title"`
	Slug        Optional[string]     `json:"slug"`
	Summary     Optional[*string]    `json:"summary"`
	CoverImage  Optional[*string]    `json:"coverImage"`
	Language    Optional[string]     `json:"language"`
	Tags        Optional[[]string]   `json:"tags"`
	IsPublished Optional[bool]       `json:"isPublished"`
	PublishedAt Optional[*time.Time] `json:"publishedAt"`
}

// Validate checks the supplied fields against the update schema.
func (in StoryUpdateInput) Validate() error {
	if title, ok := in.Title.Get(); ok && len(title) < MinTitleLength {
		return fmt.Errorf("%w: story title must be at least %d characters", ErrValidation, MinTitleLength)
	}
	// An empty slug is allowed and clears the stored slug.
	if slug, ok := in.Slug.Get(); ok && slug != "" && !IsValidSlug(slug) {
		return fmt.Errorf("%w: slug must be lowercase kebab-case", ErrValidation)
	}
	if summary, ok := in.Summary.Get(); ok && summary != nil && len(*summary) > 500 {
		return fmt.Errorf("%w: summary must be at most 500 characters", ErrValidation)
	}
	if cover, ok := in.CoverImage.Get(); ok && cover != nil && len(*cover) > 500 {
		return fmt.Errorf("%w: cover image URL must be at most 500 characters", ErrValidation)
	}
	if lang, ok := in.Language.Get(); ok && (len(lang) < 2 || len(lang) > 8) {
		return fmt.Errorf("%w: language must be 2-8 characters", ErrValidation)
	}
	if tags, ok := in.Tags.Get(); ok {
		if len(tags) > MaxStoryTags {
			return fmt.Errorf("%w: at most %d tags", ErrValidation, MaxStoryTags)
		}
		for _, tag := range tags {
			if len(tag) < 2 || len(tag) > 32 {
				return fmt.Errorf("%w: tags must be 2-32 characters", ErrValidation)
			}
		}
	}
	return nil
}

// ResolvePublishedAt applies the publish/unpublish timestamp rule: toggling
// isPublished without an explicit publishedAt sets it to "now" (publish) or
// clears it (unpublish); an explicitly supplied publishedAt always wins.
// The returned Optional is unset when published_at should not change.
func (in StoryUpdateInput) ResolvePublishedAt(now time.Time) Optional[*time.Time] {
	if in.PublishedAt.IsSet() {
		explicit, _ := in.PublishedAt.Get()
		return NewOptional(explicit)
	}
	if published, ok := in.IsPublished.Get(); ok {
		if published {
			return NewOptional(&now)
		}
		return NewOptional[*time.Time](nil)
	}
	return Optional[*time.Time]{}
}
