package models

import "fmt"

// LikeToggleInput toggles a like association for a story or chapter target.
// Like=true is an idempotent upsert, Like=false an idempotent delete.
type LikeToggleInput struct {
	TargetID string `json:"targetId"`
	UserID   string `json:"userId"`
	Like     bool   `json:"like"`
}

// Validate checks the like toggle schema.
func (in LikeToggleInput) Validate() error {
	if in.TargetID == "" {
		return fmt.Errorf("%w: targetId is required", ErrValidation)
	}
	if in.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrValidation)
	}
	return nil
}

// FollowInput associates a follower with an author.
type FollowInput struct {
	FollowerID  string `json:"followerId"`
	FollowingID string `json:"followingId"`
}

// Validate rejects malformed and self-referential follows before any I/O.
func (in FollowInput) Validate() error {
	if in.FollowerID == "" {
		return fmt.Errorf("%w: followerId is required", ErrValidation)
	}
	if in.FollowingID == "" {
		return fmt.Errorf("%w: followingId is required", ErrValidation)
	}
	if in.FollowerID == in.FollowingID {
		return ErrSelfFollow
	}
	return nil
}

// EngagementSnapshot is the like/follow state for one (story, author, user)
// triple, as seen by either data source.
type EngagementSnapshot struct {
	StoryLikes       int  `json:"storyLikes"`
	StoryLikedByUser bool `json:"storyLikedByUser"`
	FollowerCount    int  `json:"followerCount"`
	FollowingAuthor  bool `json:"followingAuthor"`
}
