package engagement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// recordingEngagementRepo records every call so tests can assert that
// invalid input never reaches the data layer.
type recordingEngagementRepo struct {
	likeToggles   []models.LikeToggleInput
	followInputs  []models.FollowInput
	unfollowCalls []models.FollowInput
}

func (r *recordingEngagementRepo) ToggleStoryLike(_ context.Context, input models.LikeToggleInput) error {
	r.likeToggles = append(r.likeToggles, input)
	return nil
}

func (r *recordingEngagementRepo) ToggleChapterLike(_ context.Context, input models.LikeToggleInput) error {
	r.likeToggles = append(r.likeToggles, input)
	return nil
}

func (r *recordingEngagementRepo) Follow(_ context.Context, input models.FollowInput) error {
	r.followInputs = append(r.followInputs, input)
	return nil
}

func (r *recordingEngagementRepo) Unfollow(_ context.Context, input models.FollowInput) error {
	r.unfollowCalls = append(r.unfollowCalls, input)
	return nil
}

func (r *recordingEngagementRepo) Snapshot(context.Context, string, string, string) (models.EngagementSnapshot, error) {
	return models.EngagementSnapshot{}, nil
}

func (r *recordingEngagementRepo) FollowerCount(context.Context, string) (int, error) {
	return 0, nil
}

func TestRepositorySourceValidatesLikeBeforeIO(t *testing.T) {
	repo := &recordingEngagementRepo{}
	source := NewRepositorySource(repo)

	err := source.SetStoryLike(context.Background(), "story-1", "", true)
	require.Error(t, err, "an empty user id should fail the schema check")
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, repo.likeToggles, "the repository should not be reached")

	err = source.SetStoryLike(context.Background(), "", "user-1", false)
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, repo.likeToggles)

	err = source.SetStoryLike(context.Background(), "story-1", "user-1", true)
	require.NoError(t, err)
	require.Len(t, repo.likeToggles, 1)
	assert.Equal(t, models.LikeToggleInput{TargetID: "story-1", UserID: "user-1", Like: true}, repo.likeToggles[0])
}

func TestRepositorySourceValidatesFollowBeforeIO(t *testing.T) {
	repo := &recordingEngagementRepo{}
	source := NewRepositorySource(repo)

	err := source.SetAuthorFollow(context.Background(), "author-1", "", true)
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, repo.followInputs)

	err = source.SetAuthorFollow(context.Background(), "user-1", "user-1", true)
	require.ErrorIs(t, err, models.ErrSelfFollow)
	assert.Empty(t, repo.followInputs)

	err = source.SetAuthorFollow(context.Background(), "author-1", "user-1", false)
	require.NoError(t, err)
	require.Len(t, repo.unfollowCalls, 1)
	assert.Equal(t, "user-1", repo.unfollowCalls[0].FollowerID)
}
