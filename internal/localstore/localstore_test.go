package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	return store, dir
}

func readerPayload(storyID, chapterID string) models.ReaderChapter {
	slug := storyID + "-slug"
	return models.ReaderChapter{
		Story:   models.Story{ID: storyID, Slug: &slug, Title: "Story " + storyID},
		Chapter: models.Chapter{ID: chapterID, StoryID: storyID},
		Source:  models.SourceDemo,
	}
}

func TestDemoIdentitiesAreStable(t *testing.T) {
	store, dir := newTestStore(t)

	userID := store.DemoUserID()
	authorID := store.DemoAuthorID()
	require.NotEmpty(t, userID)
	assert.True(t, strings.HasPrefix(authorID, "demo-author-"))

	assert.Equal(t, userID, store.DemoUserID())
	assert.Equal(t, authorID, store.DemoAuthorID())

	// A new Store over the same directory sees the persisted ids.
	reopened, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, userID, reopened.DemoUserID())
	assert.Equal(t, authorID, reopened.DemoAuthorID())
}

func TestDemoIdentitiesDifferAcrossDirectories(t *testing.T) {
	first, _ := newTestStore(t)
	second, _ := newTestStore(t)
	assert.NotEqual(t, first.DemoUserID(), second.DemoUserID())
}

func TestCacheChapterNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)

	store.CacheChapter(readerPayload("s-1", "ch-1"))
	store.CacheChapter(readerPayload("s-1", "ch-2"))

	cached := store.CachedChapters()
	require.Len(t, cached, 2)
	assert.Equal(t, "ch-2", cached[0].ChapterID)
	assert.Equal(t, "ch-1", cached[1].ChapterID)
	assert.Equal(t, "s-1-slug", cached[0].StorySlug)
}

func TestCacheChapterRecachingMovesToFront(t *testing.T) {
	store, _ := newTestStore(t)

	store.CacheChapter(readerPayload("s-1", "ch-1"))
	store.CacheChapter(readerPayload("s-1", "ch-2"))
	store.CacheChapter(readerPayload("s-1", "ch-1"))

	cached := store.CachedChapters()
	require.Len(t, cached, 2, "re-caching must not duplicate the entry")
	assert.Equal(t, "ch-1", cached[0].ChapterID)
	assert.Equal(t, "ch-2", cached[1].ChapterID)
}

func TestCacheChapterEvictsOldestPastCapacity(t *testing.T) {
	store, _ := newTestStore(t)

	for i := 0; i < MaxCachedChapters+3; i++ {
		store.CacheChapter(readerPayload("s-1", fmt.Sprintf("ch-%d", i)))
	}

	cached := store.CachedChapters()
	require.Len(t, cached, MaxCachedChapters)
	assert.Equal(t, fmt.Sprintf("ch-%d", MaxCachedChapters+2), cached[0].ChapterID)
	// The three oldest entries fell off.
	for _, entry := range cached {
		assert.NotEqual(t, "ch-0", entry.ChapterID)
		assert.NotEqual(t, "ch-1", entry.ChapterID)
		assert.NotEqual(t, "ch-2", entry.ChapterID)
	}
}

func TestCorruptStateFileDegradesToEmpty(t *testing.T) {
	store, dir := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "reader-cache.json"), []byte("{not json"), 0o644))
	assert.Empty(t, store.CachedChapters())

	// Writing through the store recovers the file.
	store.CacheChapter(readerPayload("s-1", "ch-1"))
	assert.Len(t, store.CachedChapters(), 1)
}
