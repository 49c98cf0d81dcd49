package models

import (
	"fmt"
	"time"
)

// UserProfile is the public identity a user presents on the platform. The
// identity provider itself lives outside this system; profiles only mirror
// displayable attributes.
type UserProfile struct {
	ID        string     `db:"id" json:"id"`
	Username  *string    `db:"username" json:"username"`
	Avatar    *string    `db:"avatar" json:"avatar"`
	Bio       *string    `db:"bio" json:"bio"`
	Language  *string    `db:"language" json:"language"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
}

// UserProfileInput is the upsert payload for a profile.
type UserProfileInput struct {
	Username *string `json:"username"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Language *string `json:"language"`
}

// Validate checks the profile schema.
func (in UserProfileInput) Validate() error {
	if in.Username != nil && (len(*in.Username) < 2 || len(*in.Username) > 40) {
		return fmt.Errorf("%w: username must be 2-40 characters", ErrValidation)
	}
	if in.Bio != nil && len(*in.Bio) > 500 {
		return fmt.Errorf("%w: bio must be at most 500 characters", ErrValidation)
	}
	if in.Language != nil && (len(*in.Language) < 2 || len(*in.Language) > 8) {
		return fmt.Errorf("%w: language must be 2-8 characters", ErrValidation)
	}
	return nil
}
