package demo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

func TestContributionStoreTimelineNewestFirst(t *testing.T) {
	store := NewContributionStore()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	baseline := []models.ContributionView{
		{ID: "ct-1", Status: models.ContributionAccepted, CreatedAt: base},
		{ID: "ct-2", Status: models.ContributionPending, CreatedAt: base.Add(time.Hour)},
	}

	added := store.Add("story-1", baseline, ContributionInput{Alias: "Visitor", Content: "a twist"})
	assert.True(t, strings.HasPrefix(added.ID, "demo-contribution-"))
	assert.Equal(t, models.ContributionPending, added.Status)
	assert.Nil(t, added.RespondedAt)
	assert.Equal(t, "Guest contributor", added.Contributor.Role)
	require.NotNil(t, added.Content)
	assert.Equal(t, "a twist", *added.Content)

	timeline := store.Timeline("story-1", baseline)
	require.Len(t, timeline, 3)
	assert.Equal(t, added.ID, timeline[0].ID, "session contribution is most recent")
	assert.Equal(t, "ct-2", timeline[1].ID)
	assert.Equal(t, "ct-1", timeline[2].ID)
}

func TestContributionStoreCarriesChapterContext(t *testing.T) {
	store := NewContributionStore()
	chapterID := "ch-1"
	title := "Chapter One"
	position := 0

	added := store.Add("story-1", nil, ContributionInput{
		Alias:           "Visitor",
		Content:         "continuation",
		ChapterID:       &chapterID,
		ChapterTitle:    &title,
		ChapterPosition: &position,
	})

	require.NotNil(t, added.ChapterID)
	assert.Equal(t, chapterID, *added.ChapterID)
	require.NotNil(t, added.ChapterTitle)
	assert.Equal(t, title, *added.ChapterTitle)
	require.NotNil(t, added.ChapterPosition)
	assert.Equal(t, position, *added.ChapterPosition)
}
