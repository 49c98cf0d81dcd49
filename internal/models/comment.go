package models

import (
	"fmt"
	"time"
)

// Comment limits.
const (
	MaxCommentLength        = 2000
	DefaultCommentListLimit = 50
	MaxCommentListLimit     = 100
)

// Comment is a reader comment. A nil ChapterID means the comment targets the
// story as a whole. Reply counts are derived from ParentCommentID, not stored.
type Comment struct {
	ID              string    `db:"id" json:"id"`
	StoryID         string    `db:"story_id" json:"storyId"`
	ChapterID       *string   `db:"chapter_id" json:"chapterId"`
	AuthorID        string    `db:"author_id" json:"authorId"`
	Body            string    `db:"body" json:"body"`
	ParentCommentID *string   `db:"parent_comment_id" json:"parentCommentId"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// CommentCreateInput is the payload for adding a comment.
type CommentCreateInput struct {
	StoryID         string  `json:"storyId"`
	ChapterID       *string `json:"chapterId"`
	AuthorID        string  `json:"authorId"`
	Body            string  `json:"body"`
	ParentCommentID *string `json:"parentCommentId"`
}

// Validate checks the comment create schema.
func (in CommentCreateInput) Validate() error {
	if in.StoryID == "" {
		return fmt.Errorf("%w: storyId is required", ErrValidation)
	}
	if in.AuthorID == "" {
		return fmt.Errorf("%w: authorId is required", ErrValidation)
	}
	if len(in.Body) < 1 || len(in.Body) > MaxCommentLength {
		return fmt.Errorf("%w: comment body must be 1-%d characters", ErrValidation, MaxCommentLength)
	}
	return nil
}

// CommentListFilters narrows listComments results. ChapterID is tri-state:
// unset means no chapter filter, set-to-nil means story-level comments only,
// set-to-id means comments on that chapter only.
type CommentListFilters struct {
	StoryID   string             `json:"storyId"`
	ChapterID Optional[*string]  `json:"chapterId"`
	Limit     int                `json:"limit"`
}

// Validate checks the filter schema. A zero Limit means "use the default".
func (f CommentListFilters) Validate() error {
	if f.StoryID == "" {
		return fmt.Errorf("%w: storyId is required", ErrValidation)
	}
	if f.Limit < 0 || f.Limit > MaxCommentListLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, MaxCommentListLimit)
	}
	return nil
}

// EffectiveLimit resolves the list limit, applying the default.
func (f CommentListFilters) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultCommentListLimit
	}
	return f.Limit
}
