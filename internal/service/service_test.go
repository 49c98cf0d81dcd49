package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/demo"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/fixtures"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/localstore"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

func demoDeps(t *testing.T) Deps {
	t.Helper()
	local, err := localstore.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return Deps{
		Mode:              models.SourceDemo,
		DemoComments:      demo.NewCommentStore(),
		DemoContributions: demo.NewContributionStore(),
		DemoEngagement:    demo.NewEngagementStore(DemoStoryLikeBaseline, DemoFollowerBaseline),
		DemoCreations:     demo.NewCreationStore(),
		Local:             local,
		Logger:            zap.NewNop(),
	}
}

func storyLaunch(title string) CreateStoryInput {
	return CreateStoryInput{
		Story:             models.StoryCreateInput{Title: title, IsPublished: true},
		Chapter:           ChapterInput{Content: "Once upon a time, the drift began."},
		AuthorDisplayName: "Session Author",
	}
}

func TestCreationServiceDemoSlugProbing(t *testing.T) {
	deps := demoDeps(t)
	svc := NewCreationService(deps)
	ctx := context.Background()

	first, err := svc.CreateStory(ctx, storyLaunch("Nebula Drift"))
	require.NoError(t, err)
	require.NotNil(t, first.Story.Slug)
	assert.Equal(t, "nebula-drift", *first.Story.Slug)
	assert.Equal(t, models.SourceDemo, first.Source)
	assert.Equal(t, 0, first.Chapter.Position)

	second, err := svc.CreateStory(ctx, storyLaunch("Nebula Drift"))
	require.NoError(t, err)
	assert.Equal(t, "nebula-drift-2", *second.Story.Slug)
}

func TestCreationServiceDemoFillsAuthorIdentity(t *testing.T) {
	deps := demoDeps(t)
	svc := NewCreationService(deps)
	ctx := context.Background()

	first, err := svc.CreateStory(ctx, storyLaunch("Nebula Drift"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Story.AuthorID, "demo-author-"))

	second, err := svc.CreateStory(ctx, storyLaunch("Another Tale"))
	require.NoError(t, err)
	assert.Equal(t, first.Story.AuthorID, second.Story.AuthorID, "the session author identity is stable")
}

func TestCreationServiceRejectsEmptyChapter(t *testing.T) {
	deps := demoDeps(t)
	svc := NewCreationService(deps)

	input := storyLaunch("Nebula Drift")
	input.Chapter.Content = ""
	_, err := svc.CreateStory(context.Background(), input)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestStoryDetailDemoFixture(t *testing.T) {
	deps := demoDeps(t)
	svc := NewStoryDetailService(deps)

	detail, err := svc.FetchDetail(context.Background(), fixtures.StellarStorySlug)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, models.SourceDemo, detail.Source)
	assert.Equal(t, fixtures.StellarStoryID, detail.Story.ID)
	assert.Len(t, detail.Chapters, 3)
	assert.Len(t, detail.Comments, 3)
	assert.Len(t, detail.Collaborators, 3)
	assert.NotEmpty(t, detail.ContributionPrompts)

	assert.Equal(t, 2217, detail.Stats.Likes, "likes aggregate the chapter baselines")
	assert.Equal(t, fixtures.FollowerBaseline, detail.Stats.Followers)
	assert.Equal(t, fixtures.ContributionCountBaseline, detail.Stats.Contributions)
	assert.Equal(t, 3, detail.Stats.ChapterCount)
	assert.Positive(t, detail.Stats.ReadingTimeMinutes)
}

func TestStoryDetailDemoUnknownSlug(t *testing.T) {
	deps := demoDeps(t)
	svc := NewStoryDetailService(deps)

	detail, err := svc.FetchDetail(context.Background(), "no-such-story")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestStoryDetailDemoSessionCreation(t *testing.T) {
	deps := demoDeps(t)
	ctx := context.Background()

	created, err := NewCreationService(deps).CreateStory(ctx, storyLaunch("Nebula Drift"))
	require.NoError(t, err)

	detail, err := NewStoryDetailService(deps).FetchDetail(ctx, *created.Story.Slug)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, created.Story.ID, detail.Story.ID)
	require.Len(t, detail.Collaborators, 1)
	assert.Equal(t, "Session Author", detail.Collaborators[0].DisplayName)
	assert.Equal(t, 1, detail.Stats.ChapterCount)
}

func TestListPublishedDemo(t *testing.T) {
	deps := demoDeps(t)
	ctx := context.Background()
	svc := NewStoryDetailService(deps)

	published := storyLaunch("Nebula Drift")
	draft := storyLaunch("Secret Draft")
	draft.Story.IsPublished = false
	_, err := NewCreationService(deps).CreateStory(ctx, published)
	require.NoError(t, err)
	_, err = NewCreationService(deps).CreateStory(ctx, draft)
	require.NoError(t, err)

	stories, source, err := svc.ListPublished(ctx, models.StoryListFilters{})
	require.NoError(t, err)
	assert.Equal(t, models.SourceDemo, source)
	require.Len(t, stories, 2, "the fixture story plus the published creation")
	assert.Equal(t, fixtures.StellarStoryID, stories[0].ID)
	assert.Equal(t, "Nebula Drift", stories[1].Title)

	limited, _, err := svc.ListPublished(ctx, models.StoryListFilters{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCommentServiceDemoAddAndFilter(t *testing.T) {
	deps := demoDeps(t)
	svc := NewCommentService(deps)
	ctx := context.Background()

	chapterID := fixtures.ChapterOneID
	added, err := svc.Add(ctx, models.CommentCreateInput{
		StoryID:   fixtures.StellarStoryID,
		ChapterID: &chapterID,
		Body:      "What a chapter.",
	}, "Visitor", "")
	require.NoError(t, err)
	assert.Equal(t, "Visitor", added.Author.DisplayName)
	assert.Equal(t, "Guest", added.Author.Role)

	all, err := svc.List(ctx, models.CommentListFilters{StoryID: fixtures.StellarStoryID})
	require.NoError(t, err)
	assert.Len(t, all, 4, "three seeded comments plus the new one")

	byChapter, err := svc.List(ctx, models.CommentListFilters{
		StoryID:   fixtures.StellarStoryID,
		ChapterID: models.NewOptional(&chapterID),
	})
	require.NoError(t, err)
	for _, comment := range byChapter {
		require.NotNil(t, comment.ChapterID)
		assert.Equal(t, chapterID, *comment.ChapterID)
	}

	storyLevel, err := svc.List(ctx, models.CommentListFilters{
		StoryID:   fixtures.StellarStoryID,
		ChapterID: models.NewOptional[*string](nil),
	})
	require.NoError(t, err)
	for _, comment := range storyLevel {
		assert.Nil(t, comment.ChapterID, "the explicit-null filter keeps only story-level comments")
	}
}

func TestCommentServiceDemoUnknownStory(t *testing.T) {
	deps := demoDeps(t)
	svc := NewCommentService(deps)

	_, err := svc.Add(context.Background(), models.CommentCreateInput{
		StoryID: "not-a-story",
		Body:    "hello",
	}, "", "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestContributionServiceDemoSubmit(t *testing.T) {
	deps := demoDeps(t)
	svc := NewContributionService(deps)
	ctx := context.Background()

	content := "The orchestra answers from the void."
	chapterID := fixtures.ChapterTwoID
	view, err := svc.Submit(ctx, models.ContributionCreateInput{
		StoryID: fixtures.StellarStoryID,
		Content: &content,
	}, "", &chapterID)
	require.NoError(t, err)

	assert.Equal(t, models.ContributionPending, view.Status)
	assert.Equal(t, "Anonymous storyteller", view.Contributor.DisplayName)
	require.NotNil(t, view.ChapterID)
	assert.Equal(t, chapterID, *view.ChapterID)
	require.NotNil(t, view.ChapterPosition)
	assert.Equal(t, 1, *view.ChapterPosition)

	timeline, err := svc.Timeline(ctx, fixtures.StellarStoryID)
	require.NoError(t, err)
	require.Len(t, timeline, 4)
	assert.Equal(t, view.ID, timeline[0].ID, "the fresh submission leads the timeline")
}

func TestContributionServiceDemoRejectsReview(t *testing.T) {
	deps := demoDeps(t)
	svc := NewContributionService(deps)

	_, err := svc.Respond(context.Background(), models.ContributionUpdateInput{
		ContributionID: "ct-1",
		Status:         models.ContributionAccepted,
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestEngagementServiceDemo(t *testing.T) {
	deps := demoDeps(t)
	svc := NewEngagementService(deps, false)
	ctx := context.Background()

	state := svc.Snapshot(ctx, fixtures.StellarStoryID, fixtures.NovaQuillID, "")
	assert.Equal(t, 2217, state.StoryLikes)
	assert.Equal(t, fixtures.FollowerBaseline, state.FollowerCount)
	assert.False(t, state.StoryLikedByUser)
	assert.Equal(t, models.SourceDemo, state.DataSource)

	state = svc.ToggleStoryLike(ctx, fixtures.StellarStoryID, fixtures.NovaQuillID, "")
	assert.Equal(t, 2218, state.StoryLikes)
	assert.True(t, state.StoryLikedByUser)

	// The anonymous identity is durable, so a second snapshot still sees it.
	state = svc.Snapshot(ctx, fixtures.StellarStoryID, fixtures.NovaQuillID, "")
	assert.Equal(t, 2218, state.StoryLikes)
	assert.True(t, state.StoryLikedByUser)

	state, err := svc.ToggleAuthorFollow(ctx, fixtures.StellarStoryID, fixtures.NovaQuillID, "")
	require.NoError(t, err)
	assert.Equal(t, fixtures.FollowerBaseline+1, state.FollowerCount)
	assert.True(t, state.FollowingAuthor)
}

func TestEngagementServiceRejectsSelfFollow(t *testing.T) {
	deps := demoDeps(t)
	svc := NewEngagementService(deps, false)

	_, err := svc.ToggleAuthorFollow(context.Background(), fixtures.StellarStoryID, "user-1", "user-1")
	assert.ErrorIs(t, err, models.ErrSelfFollow)
}

func TestReaderServiceDemoFixture(t *testing.T) {
	deps := demoDeps(t)
	svc := NewReaderService(deps)
	ctx := context.Background()

	payload, err := svc.FetchChapter(ctx, fixtures.StellarStorySlug, nil)
	require.NoError(t, err)
	require.NotNil(t, payload)

	assert.Equal(t, fixtures.ChapterOneID, payload.Chapter.ID, "a nil chapter id opens the first chapter")
	assert.Equal(t, 0, payload.ChapterIndex)
	assert.Equal(t, 3, payload.TotalChapters)
	assert.NotEmpty(t, payload.MediaAssets)
	assert.NotEmpty(t, payload.AmbientCues)
	assert.Equal(t, models.SourceDemo, payload.Source)

	chapterID := fixtures.ChapterThreeID
	payload, err = svc.FetchChapter(ctx, fixtures.StellarStorySlug, &chapterID)
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, 2, payload.ChapterIndex)
	assert.Nil(t, payload.Navigation.NextChapterID)

	cached := svc.CachedChapters()
	require.Len(t, cached, 2, "each fetched chapter lands in the offline cache")
	assert.Equal(t, fixtures.ChapterThreeID, cached[0].Chapter.ID)
}

func TestReaderServiceDemoUnknownChapter(t *testing.T) {
	deps := demoDeps(t)
	svc := NewReaderService(deps)

	missing := "no-such-chapter"
	payload, err := svc.FetchChapter(context.Background(), fixtures.StellarStorySlug, &missing)
	require.NoError(t, err)
	assert.Nil(t, payload)

	payload, err = svc.FetchChapter(context.Background(), "no-such-story", nil)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestProfileServiceDemo(t *testing.T) {
	deps := demoDeps(t)
	svc := NewProfileService(deps)
	ctx := context.Background()

	detail, err := svc.Detail(ctx, "NovaQuill")
	require.NoError(t, err)
	require.NotNil(t, detail, "usernames resolve case-insensitively")
	assert.Equal(t, "NovaQuill", detail.DisplayName)
	assert.Equal(t, fixtures.FollowerBaseline, detail.Stats.Followers)
	assert.Equal(t, models.SourceDemo, detail.Source)
	require.NotEmpty(t, detail.Stories)
	assert.Equal(t, fixtures.StellarStoryID, detail.Stories[0].Story.ID)

	unknown, err := svc.Detail(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, unknown)

	_, err = svc.Upsert(ctx, "user-1", models.UserProfileInput{})
	assert.ErrorIs(t, err, models.ErrValidation, "profile writes require the relational backend")
}
