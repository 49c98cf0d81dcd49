package models

import (
	"fmt"
	"time"
)

// Chapter is an ordered unit of a story's content. Position defines reading
// order within the owning story; uniqueness of positions is not enforced by
// validation (the schema accepts any non-negative integer).
type Chapter struct {
	ID          string    `db:"id" json:"id"`
	StoryID     string    `db:"story_id" json:"storyId"`
	AuthorID    string    `db:"author_id" json:"authorId"`
	Title       *string   `db:"title" json:"title"`
	Summary     *string   `db:"summary" json:"summary"`
	Content     string    `db:"content" json:"content"`
	Position    int       `db:"position" json:"position"`
	IsPublished bool      `db:"is_published" json:"isPublished"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// ChapterCreateInput is the payload for creating a chapter.
type ChapterCreateInput struct {
	StoryID     string  `json:"storyId"`
	AuthorID    string  `json:"authorId"`
	Title       *string `json:"title"`
	Summary     *string `json:"summary"`
	Content     string  `json:"content"`
	Position    int     `json:"position"`
	IsPublished *bool   `json:"isPublished"`
}

// Validate checks the chapter create schema.
func (in ChapterCreateInput) Validate() error {
	if in.StoryID == "" {
		return fmt.Errorf("%w: storyId is required", ErrValidation)
	}
	if in.AuthorID == "" {
		return fmt.Errorf("%w: authorId is required", ErrValidation)
	}
	if in.Title != nil && (len(*in.Title) < 1 || len(*in.Title) > 120) {
		return fmt.Errorf("%w: chapter title must be 1-120 characters", ErrValidation)
	}
	if in.Summary != nil && len(*in.Summary) > 500 {
		return fmt.Errorf("%w: chapter summary must be at most 500 characters", ErrValidation)
	}
	if in.Content == "" {
		return fmt.Errorf("%w: chapter content cannot be empty", ErrValidation)
	}
	if in.Position < 0 {
		return fmt.Errorf("%w: chapter position must be non-negative", ErrValidation)
	}
	return nil
}

// Published resolves the publication flag, defaulting to true.
func (in ChapterCreateInput) Published() bool {
	if in.IsPublished == nil {
		return true
	}
	return *in.IsPublished
}

// ChapterUpdateInput is the partial-update payload for a chapter.
type ChapterUpdateInput struct {
	Title       Optional[*string] `json:"title"`
	Summary     Optional[*string] `json:"summary"`
	Content     Optional[string]  `json:"content"`
	Position    Optional[int]     `json:"position"`
	IsPublished Optional[bool]    `json:"isPublished"`
}

// Validate checks the supplied fields against the update schema.
func (in ChapterUpdateInput) Validate() error {
	if title, ok := in.Title.Get(); ok && title != nil && (len(*title) < 1 || len(*title) > 120) {
		return fmt.Errorf("%w: chapter title must be 1-120 characters", ErrValidation)
	}
	if summary, ok := in.Summary.Get(); ok && summary != nil && len(*summary) > 500 {
		return fmt.Errorf("%w: chapter summary must be at most 500 characters", ErrValidation)
	}
	if content, ok := in.Content.Get(); ok && content == "" {
		return fmt.Errorf("%w: chapter content cannot be empty", ErrValidation)
	}
	if position, ok := in.Position.Get(); ok && position < 0 {
		return fmt.Errorf("%w: chapter position must be non-negative", ErrValidation)
	}
	return nil
}
