package models

import "fmt"

// MediaType classifies a chapter media asset. Matches the media_type column
// of chapter_media_assets.
type MediaType string

const (
	MediaTypeAudio       MediaType = "audio"
	MediaTypeVideo       MediaType = "video"
	MediaTypeInteractive MediaType = "interactive"
	MediaTypeText        MediaType = "text"
)

// Valid reports whether m is a known media type.
func (m MediaType) Valid() bool {
	switch m {
	case MediaTypeAudio, MediaTypeVideo, MediaTypeInteractive, MediaTypeText:
		return true
	}
	return false
}

// ChapterMediaAsset is a piece of media attached to a chapter.
type ChapterMediaAsset struct {
	ID              string    `db:"id" json:"id"`
	ChapterID       string    `db:"chapter_id" json:"chapterId"`
	Title           string    `db:"title" json:"title"`
	Description     *string   `db:"description" json:"description"`
	MediaType       MediaType `db:"media_type" json:"mediaType"`
	MediaURL        *string   `db:"media_url" json:"mediaUrl"`
	DurationSeconds *int      `db:"duration_seconds" json:"durationSeconds"`
	Transcript      *string   `db:"transcript" json:"transcript"`
	SortOrder       *int      `db:"sort_order" json:"sortOrder"`
}

// MediaAssetInput is the payload for attaching a media asset to a chapter.
type MediaAssetInput struct {
	ChapterID       string    `json:"chapterId"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	MediaType       MediaType `json:"mediaType"`
	MediaURL        *string   `json:"mediaUrl"`
	DurationSeconds *int      `json:"durationSeconds"`
	Transcript      *string   `json:"transcript"`
	SortOrder       *int      `json:"sortOrder"`
}

// Validate checks the media asset schema.
func (in MediaAssetInput) Validate() error {
	if in.ChapterID == "" {
		return fmt.Errorf("%w: chapterId is required", ErrValidation)
	}
	if in.Title == "" {
		return fmt.Errorf("%w: media asset title is required", ErrValidation)
	}
	if in.Description != nil && len(*in.Description) > 500 {
		return fmt.Errorf("%w: media description must be at most 500 characters", ErrValidation)
	}
	if !in.MediaType.Valid() {
		return fmt.Errorf("%w: media type must be audio, video, interactive or text", ErrValidation)
	}
	if in.DurationSeconds != nil && *in.DurationSeconds < 0 {
		return fmt.Errorf("%w: duration must be non-negative", ErrValidation)
	}
	if in.SortOrder != nil && *in.SortOrder < 0 {
		return fmt.Errorf("%w: sort order must be non-negative", ErrValidation)
	}
	return nil
}

// IsEmpty reports whether the input is a blank media slot: no title, no URL,
// no transcript. Blank slots are discarded before persistence, not stored as
// empty records.
func (in MediaAssetInput) IsEmpty() bool {
	return in.Title == "" &&
		(in.MediaURL == nil || *in.MediaURL == "") &&
		(in.Transcript == nil || *in.Transcript == "")
}

// ChapterAmbientCue is a time-anchored annotation on a chapter's primary
// audio asset.
type ChapterAmbientCue struct {
	ID               string  `db:"id" json:"id"`
	ChapterID        string  `db:"chapter_id" json:"chapterId"`
	TimestampSeconds int     `db:"timestamp_seconds" json:"timestampSeconds"`
	Label            string  `db:"label" json:"label"`
	Description      *string `db:"description" json:"description"`
}
