package models

import (
	"fmt"
	"time"
)

// ContributionStatus is the lifecycle state of a community contribution.
// Matches the 'status' column of the StoryContribution table.
type ContributionStatus string

const (
	ContributionPending  ContributionStatus = "pending"
	ContributionAccepted ContributionStatus = "accepted"
	ContributionRejected ContributionStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s ContributionStatus) Valid() bool {
	switch s {
	case ContributionPending, ContributionAccepted, ContributionRejected:
		return true
	}
	return false
}

// MaxContributionContentLength caps the submitted text.
const MaxContributionContentLength = 5000

// Contribution is a community-submitted response to a prompt. Created as
// pending; transitions to accepted or rejected exactly once, stamping
// RespondedAt at that transition.
type Contribution struct {
	ID            string             `db:"id" json:"id"`
	StoryID       string             `db:"story_id" json:"storyId"`
	ContributorID string             `db:"contributor_id" json:"contributorId"`
	ChapterID     *string            `db:"chapter_id" json:"chapterId"`
	Status        ContributionStatus `db:"status" json:"status"`
	Prompt        *string            `db:"prompt" json:"prompt"`
	Content       *string            `db:"content" json:"content"`
	CreatedAt     time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `db:"updated_at" json:"updatedAt"`
	RespondedAt   *time.Time         `db:"responded_at" json:"respondedAt"`
}

// ContributionCreateInput is the payload for submitting a contribution.
// Prompt and content are both optional at this layer; UI flows enforce
// content presence before calling in.
type ContributionCreateInput struct {
	StoryID       string  `json:"storyId"`
	ContributorID string  `json:"contributorId"`
	Prompt        *string `json:"prompt"`
	Content       *string `json:"content"`
}

// Validate checks the contribution create schema.
func (in ContributionCreateInput) Validate() error {
	if in.StoryID == "" {
		return fmt.Errorf("%w: storyId is required", ErrValidation)
	}
	if in.ContributorID == "" {
		return fmt.Errorf("%w: contributorId is required", ErrValidation)
	}
	if in.Prompt != nil && len(*in.Prompt) > 500 {
		return fmt.Errorf("%w: prompt must be at most 500 characters", ErrValidation)
	}
	if in.Content != nil && len(*in.Content) > MaxContributionContentLength {
		return fmt.Errorf("%w: content must be at most %d characters", ErrValidation, MaxContributionContentLength)
	}
	return nil
}

// ContributionUpdateInput moves a contribution through its lifecycle. Status
// is required; chapter assignment and response timestamp are independently
// optional.
type ContributionUpdateInput struct {
	ContributionID string               `json:"contributionId"`
	Status         ContributionStatus   `json:"status"`
	ChapterID      Optional[*string]    `json:"chapterId"`
	RespondedAt    Optional[*time.Time] `json:"respondedAt"`
}

// Validate checks the contribution update schema.
func (in ContributionUpdateInput) Validate() error {
	if in.ContributionID == "" {
		return fmt.Errorf("%w: contributionId is required", ErrValidation)
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: status must be pending, accepted or rejected", ErrValidation)
	}
	return nil
}
