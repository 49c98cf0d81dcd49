// Package localstore is a small file-backed JSON store: the durable
// equivalent of browser local storage for a headless deployment. It keeps
// the anonymous demo identities and a bounded offline reader cache.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// MaxCachedChapters bounds the offline reader cache.
const MaxCachedChapters = 12

const (
	idsFile   = "identities.json"
	cacheFile = "reader-cache.json"
)

type identities struct {
	DemoUserID   string `json:"demoUserId"`
	DemoAuthorID string `json:"demoAuthorId"`
}

// CachedChapter is one offline reader cache entry.
type CachedChapter struct {
	StoryID         string               `json:"storyId"`
	StorySlug       string               `json:"storySlug"`
	StoryTitle      string               `json:"storyTitle"`
	ChapterID       string               `json:"chapterId"`
	ChapterTitle    *string              `json:"chapterTitle"`
	ChapterPosition int                  `json:"chapterPosition"`
	CachedAt        time.Time            `json:"cachedAt"`
	Payload         models.ReaderChapter `json:"payload"`
}

// Store reads and writes JSON files under a state directory. Corrupt or
// missing files degrade to empty state with a warning, never an error.
type Store struct {
	mu     sync.Mutex
	dir    string
	logger *zap.Logger
}

func New(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger.Named("LocalStore")}, nil
}

func (s *Store) readJSON(name string, dst any) bool {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read state file", zap.String("file", name), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("Discarding corrupt state file", zap.String("file", name), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) writeJSON(name string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to encode state file", zap.String("file", name), zap.Error(err))
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		s.logger.Warn("Failed to write state file", zap.String("file", name), zap.Error(err))
	}
}

func (s *Store) loadIdentities() identities {
	var ids identities
	s.readJSON(idsFile, &ids)
	return ids
}

// DemoUserID returns the stable anonymous demo-user id, minting and
// persisting one on first use.
func (s *Store) DemoUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.loadIdentities()
	if ids.DemoUserID == "" {
		ids.DemoUserID = uuid.NewString()
		s.writeJSON(idsFile, ids)
		s.logger.Debug("Minted demo user id", zap.String("demoUserID", ids.DemoUserID))
	}
	return ids.DemoUserID
}

// DemoAuthorID returns the stable demo-author id used for stories created
// without a backend, minting and persisting one on first use.
func (s *Store) DemoAuthorID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.loadIdentities()
	if ids.DemoAuthorID == "" {
		ids.DemoAuthorID = "demo-author-" + uuid.NewString()
		s.writeJSON(idsFile, ids)
		s.logger.Debug("Minted demo author id", zap.String("demoAuthorID", ids.DemoAuthorID))
	}
	return ids.DemoAuthorID
}

// CacheChapter stores a reader payload for offline use. Entries are keyed by
// (storyId, chapterId); re-caching moves an entry to the front, and the
// oldest entries fall off past the capacity.
func (s *Store) CacheChapter(payload models.ReaderChapter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slug := payload.Story.ID
	if payload.Story.Slug != nil && *payload.Story.Slug != "" {
		slug = *payload.Story.Slug
	}
	entry := CachedChapter{
		StoryID:         payload.Story.ID,
		StorySlug:       slug,
		StoryTitle:      payload.Story.Title,
		ChapterID:       payload.Chapter.ID,
		ChapterTitle:    payload.Chapter.Title,
		ChapterPosition: payload.Chapter.Position,
		CachedAt:        time.Now().UTC(),
		Payload:         payload,
	}

	var entries []CachedChapter
	s.readJSON(cacheFile, &entries)

	next := make([]CachedChapter, 0, len(entries)+1)
	next = append(next, entry)
	for _, existing := range entries {
		if existing.StoryID == entry.StoryID && existing.ChapterID == entry.ChapterID {
			continue
		}
		next = append(next, existing)
	}
	if len(next) > MaxCachedChapters {
		next = next[:MaxCachedChapters]
	}
	s.writeJSON(cacheFile, next)
}

// CachedChapters returns the offline cache, most recently cached first.
func (s *Store) CachedChapters() []CachedChapter {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []CachedChapter
	s.readJSON(cacheFile, &entries)
	return entries
}
