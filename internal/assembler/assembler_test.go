package assembler

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestReadingMinutes(t *testing.T) {
	assert.Equal(t, 1, ReadingMinutes(""), "empty content still reads as one minute")
	assert.Equal(t, 1, ReadingMinutes("just a few words"))
	assert.Equal(t, 1, ReadingMinutes(words(180)))
	assert.Equal(t, 2, ReadingMinutes(words(360)))
	assert.Equal(t, 3, ReadingMinutes(words(450)), "450/180 = 2.5 rounds up")
	assert.Equal(t, 2, ReadingMinutes(words(440)), "440/180 = 2.44 rounds down")
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t"))
	assert.Equal(t, 3, WordCount("one  two\nthree"))
}

func TestBuildCommentViewsDerivesReplyCounts(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rootID := "c-root"
	comments := []models.Comment{
		{ID: "c-reply-2", AuthorID: "u-2", Body: "me too", ParentCommentID: &rootID, CreatedAt: base.Add(2 * time.Hour)},
		{ID: rootID, AuthorID: "u-1", Body: "loved it", CreatedAt: base},
		{ID: "c-reply-1", AuthorID: "u-3", Body: "same", ParentCommentID: &rootID, CreatedAt: base.Add(time.Hour)},
	}

	views := BuildCommentViews(comments, nil)
	require.Len(t, views, 3)

	assert.Equal(t, rootID, views[0].ID, "output is chronological regardless of input order")
	assert.Equal(t, 2, views[0].RepliesCount)
	assert.Equal(t, 0, views[1].RepliesCount)
	assert.Equal(t, 0, views[2].RepliesCount)
}

func TestBuildCommentViewsResolvesAuthors(t *testing.T) {
	comments := []models.Comment{
		{ID: "c-1", AuthorID: "known-user", CreatedAt: time.Now()},
		{ID: "c-2", AuthorID: "unknown-user-123456", CreatedAt: time.Now()},
	}
	resolver := func(userID string) (models.Collaborator, bool) {
		if userID == "known-user" {
			return models.Collaborator{ID: userID, DisplayName: "Nova Quill"}, true
		}
		return models.Collaborator{}, false
	}

	views := BuildCommentViews(comments, resolver)
	assert.Equal(t, "Nova Quill", views[0].Author.DisplayName)
	assert.Equal(t, "Contributor unknow", views[1].Author.DisplayName, "unresolved authors get a placeholder identity")
}

func TestBuildChapterViewsCounts(t *testing.T) {
	chapterOne := "ch-1"
	chapters := []models.Chapter{
		{ID: chapterOne, Content: words(360)},
		{ID: "ch-2", Content: words(90)},
	}
	comments := []models.StoryCommentView{
		{ID: "c-1", ChapterID: &chapterOne},
		{ID: "c-2", ChapterID: &chapterOne},
		{ID: "c-3"},
	}
	likes := map[string]int{chapterOne: 42}

	views := BuildChapterViews(chapters, comments, likes)
	require.Len(t, views, 2)

	assert.Equal(t, 360, views[0].WordCount)
	assert.Equal(t, 2, views[0].EstimatedDurationMinutes)
	assert.Equal(t, 42, views[0].LikeCount)
	assert.Equal(t, 2, views[0].CommentCount, "story-level comments do not count against chapters")

	assert.Equal(t, 1, views[1].EstimatedDurationMinutes)
	assert.Equal(t, 0, views[1].LikeCount)
	assert.Equal(t, 0, views[1].CommentCount)
}

func TestBuildContributionViewsChapterContext(t *testing.T) {
	chapterID := "ch-1"
	title := "Chapter One"
	contributions := []models.Contribution{
		{ID: "ct-1", ContributorID: "u-1", Status: models.ContributionPending, ChapterID: &chapterID},
		{ID: "ct-2", ContributorID: "u-2", Status: models.ContributionAccepted},
	}
	resolveChapter := func(id string) (models.Chapter, bool) {
		if id == chapterID {
			return models.Chapter{ID: chapterID, Title: &title, Position: 3}, true
		}
		return models.Chapter{}, false
	}

	views := BuildContributionViews(contributions, resolveChapter, nil)
	require.Len(t, views, 2)

	require.NotNil(t, views[0].ChapterTitle)
	assert.Equal(t, "Chapter One", *views[0].ChapterTitle)
	require.NotNil(t, views[0].ChapterPosition)
	assert.Equal(t, 3, *views[0].ChapterPosition)

	assert.Nil(t, views[1].ChapterTitle, "contributions without a chapter carry no context")
	assert.Nil(t, views[1].ChapterPosition)
}

func TestDeriveStats(t *testing.T) {
	storyUpdated := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	chapterUpdated := storyUpdated.Add(48 * time.Hour)
	story := models.Story{UpdatedAt: storyUpdated}
	chapters := []models.StoryChapterView{
		{Chapter: models.Chapter{UpdatedAt: chapterUpdated}, LikeCount: 860, EstimatedDurationMinutes: 4},
		{Chapter: models.Chapter{UpdatedAt: storyUpdated}, LikeCount: 742, EstimatedDurationMinutes: 3},
	}
	contributions := []models.ContributionView{
		{CreatedAt: storyUpdated.Add(time.Hour)},
	}

	stats := DeriveStats(story, chapters, contributions, 972, 34)
	assert.Equal(t, 1602, stats.Likes)
	assert.Equal(t, 972, stats.Followers)
	assert.Equal(t, 34, stats.Contributions, "baseline wins while the timeline is shorter")
	assert.Equal(t, 7, stats.ReadingTimeMinutes)
	assert.Equal(t, 2, stats.ChapterCount)
	assert.Equal(t, chapterUpdated, stats.LastUpdated, "the freshest chapter drives lastUpdated")

	longTimeline := make([]models.ContributionView, 40)
	stats = DeriveStats(story, chapters, longTimeline, 972, 34)
	assert.Equal(t, 40, stats.Contributions, "a longer timeline overtakes the baseline")
}

func TestBuildNavigation(t *testing.T) {
	chapters := []models.Chapter{
		{ID: "ch-1", Position: 0},
		{ID: "ch-2", Position: 1},
		{ID: "ch-3", Position: 2},
	}

	t.Run("first chapter has no previous", func(t *testing.T) {
		index, nav := BuildNavigation(chapters, "ch-1")
		assert.Equal(t, 0, index)
		assert.Nil(t, nav.PreviousChapterID)
		require.NotNil(t, nav.NextChapterID)
		assert.Equal(t, "ch-2", *nav.NextChapterID)
	})

	t.Run("middle chapter has both neighbours", func(t *testing.T) {
		index, nav := BuildNavigation(chapters, "ch-2")
		assert.Equal(t, 1, index)
		require.NotNil(t, nav.PreviousChapterID)
		assert.Equal(t, "ch-1", *nav.PreviousChapterID)
		require.NotNil(t, nav.NextChapterID)
		assert.Equal(t, "ch-3", *nav.NextChapterID)
	})

	t.Run("last chapter has no next", func(t *testing.T) {
		index, nav := BuildNavigation(chapters, "ch-3")
		assert.Equal(t, 2, index)
		require.NotNil(t, nav.PreviousChapterID)
		assert.Equal(t, "ch-2", *nav.PreviousChapterID)
		assert.Nil(t, nav.NextChapterID)
	})

	t.Run("unknown chapter yields index -1", func(t *testing.T) {
		index, nav := BuildNavigation(chapters, "missing")
		assert.Equal(t, -1, index)
		assert.Nil(t, nav.PreviousChapterID)
		assert.Nil(t, nav.NextChapterID)
	})
}

func TestSortChaptersByPosition(t *testing.T) {
	chapters := []models.Chapter{
		{ID: "ch-3", Position: 2},
		{ID: "ch-1", Position: 0},
		{ID: "ch-2", Position: 1},
	}
	sorted := SortChaptersByPosition(chapters)
	assert.Equal(t, "ch-1", sorted[0].ID)
	assert.Equal(t, "ch-2", sorted[1].ID)
	assert.Equal(t, "ch-3", sorted[2].ID)
}

func TestBuildReaderChapter(t *testing.T) {
	story := models.Story{ID: "s-1", Title: "The Stellar Symphony"}
	chapters := []models.Chapter{
		{ID: "ch-1", Position: 0, Content: words(90)},
		{ID: "ch-2", Position: 1, Content: words(360)},
	}

	payload := BuildReaderChapter(story, chapters, chapters[1], nil, nil, models.SourceDemo)

	assert.Equal(t, 1, payload.ChapterIndex)
	assert.Equal(t, 2, payload.TotalChapters)
	assert.Equal(t, 360, payload.Stats.WordCount)
	assert.Equal(t, 2, payload.Stats.ReadingTimeMinutes)
	require.Len(t, payload.TableOfContents, 2)
	assert.Equal(t, models.SourceDemo, payload.Source)
	require.NotNil(t, payload.Navigation.PreviousChapterID)
	assert.Equal(t, "ch-1", *payload.Navigation.PreviousChapterID)
	assert.Nil(t, payload.Navigation.NextChapterID)
}
