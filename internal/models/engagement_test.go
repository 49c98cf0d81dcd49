package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowInputValidate(t *testing.T) {
	assert.NoError(t, FollowInput{FollowerID: "a", FollowingID: "b"}.Validate())
	assert.ErrorIs(t, FollowInput{FollowingID: "b"}.Validate(), ErrValidation)
	assert.ErrorIs(t, FollowInput{FollowerID: "a"}.Validate(), ErrValidation)
	assert.ErrorIs(t, FollowInput{FollowerID: "a", FollowingID: "a"}.Validate(), ErrSelfFollow)
}

func TestLikeToggleInputValidate(t *testing.T) {
	assert.NoError(t, LikeToggleInput{TargetID: "s", UserID: "u", Like: true}.Validate())
	assert.ErrorIs(t, LikeToggleInput{UserID: "u"}.Validate(), ErrValidation)
	assert.ErrorIs(t, LikeToggleInput{TargetID: "s"}.Validate(), ErrValidation)
}
