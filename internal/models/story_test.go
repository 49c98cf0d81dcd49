package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryCreateInputEffectiveSlug(t *testing.T) {
	in := StoryCreateInput{Title: "The Stellar Symphony"}
	assert.Equal(t, "the-stellar-symphony", in.EffectiveSlug(), "missing slug falls back to the slugified title")

	explicit := "custom-slug"
	in.Slug = &explicit
	assert.Equal(t, "custom-slug", in.EffectiveSlug(), "an explicit slug wins over the title")

	empty := ""
	in.Slug = &empty
	assert.Equal(t, "the-stellar-symphony", in.EffectiveSlug(), "an empty slug counts as missing")
}

func TestStoryCreateInputEffectivePublishedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("published without timestamp is stamped now", func(t *testing.T) {
		in := StoryCreateInput{IsPublished: true}
		got := in.EffectivePublishedAt(now)
		require.NotNil(t, got)
		assert.Equal(t, now, *got)
	})

	t.Run("explicit timestamp wins", func(t *testing.T) {
		explicit := now.Add(-24 * time.Hour)
		in := StoryCreateInput{IsPublished: true, PublishedAt: &explicit}
		got := in.EffectivePublishedAt(now)
		require.NotNil(t, got)
		assert.Equal(t, explicit, *got)
	})

	t.Run("draft stays nil", func(t *testing.T) {
		in := StoryCreateInput{IsPublished: false}
		assert.Nil(t, in.EffectivePublishedAt(now))
	})
}

func TestStoryCreateInputValidate(t *testing.T) {
	valid := StoryCreateInput{AuthorID: "author-1", Title: "Nebula Drift"}
	require.NoError(t, valid.Validate())

	t.Run("author required", func(t *testing.T) {
		in := valid
		in.AuthorID = ""
		assert.ErrorIs(t, in.Validate(), ErrValidation)
	})

	t.Run("title too short", func(t *testing.T) {
		in := valid
		in.Title = "ab"
		assert.ErrorIs(t, in.Validate(), ErrValidation)
	})

	t.Run("malformed slug rejected", func(t *testing.T) {
		in := valid
		bad := "Not A Slug"
		in.Slug = &bad
		assert.ErrorIs(t, in.Validate(), ErrValidation)
	})

	t.Run("tag bounds", func(t *testing.T) {
		in := valid
		in.Tags = []string{"x"}
		assert.ErrorIs(t, in.Validate(), ErrValidation, "one-character tags are rejected")

		in.Tags = make([]string, MaxStoryTags+1)
		for i := range in.Tags {
			in.Tags[i] = "tag"
		}
		assert.ErrorIs(t, in.Validate(), ErrValidation)
	})
}

func TestStoryUpdateInputResolvePublishedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("untouched when neither field supplied", func(t *testing.T) {
		in := StoryUpdateInput{Title: NewOptional("New Title")}
		assert.False(t, in.ResolvePublishedAt(now).IsSet())
	})

	t.Run("publishing stamps now", func(t *testing.T) {
		in := StoryUpdateInput{IsPublished: NewOptional(true)}
		resolved := in.ResolvePublishedAt(now)
		got, ok := resolved.Get()
		require.True(t, ok)
		require.NotNil(t, got)
		assert.Equal(t, now, *got)
	})

	t.Run("unpublishing clears the timestamp", func(t *testing.T) {
		in := StoryUpdateInput{IsPublished: NewOptional(false)}
		got, ok := in.ResolvePublishedAt(now).Get()
		require.True(t, ok)
		assert.Nil(t, got)
	})

	t.Run("explicit timestamp wins over the toggle", func(t *testing.T) {
		explicit := now.Add(-48 * time.Hour)
		in := StoryUpdateInput{
			IsPublished: NewOptional(true),
			PublishedAt: NewOptional(&explicit),
		}
		got, ok := in.ResolvePublishedAt(now).Get()
		require.True(t, ok)
		require.NotNil(t, got)
		assert.Equal(t, explicit, *got)
	})

	t.Run("explicit null clears even while published", func(t *testing.T) {
		in := StoryUpdateInput{
			IsPublished: NewOptional(true),
			PublishedAt: NewOptional[*time.Time](nil),
		}
		got, ok := in.ResolvePublishedAt(now).Get()
		require.True(t, ok)
		assert.Nil(t, got)
	})
}

func TestStoryListFiltersValidate(t *testing.T) {
	assert.NoError(t, StoryListFilters{}.Validate())
	assert.Equal(t, DefaultStoryListLimit, StoryListFilters{}.EffectiveLimit())
	assert.Equal(t, 5, StoryListFilters{Limit: 5}.EffectiveLimit())

	assert.ErrorIs(t, StoryListFilters{Limit: MaxStoryListLimit + 1}.Validate(), ErrValidation)
	assert.ErrorIs(t, StoryListFilters{Search: "a"}.Validate(), ErrValidation, "search below the minimum length")
	assert.ErrorIs(t, StoryListFilters{Tags: []string{""}}.Validate(), ErrValidation)
}
