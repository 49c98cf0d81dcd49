// Package assembler builds display-ready views out of raw records. Functions
// here are pure: no I/O, no clocks beyond what callers pass in.
package assembler

import (
	"math"
	"sort"
	"strings"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// WordsPerMinute is the assumed reading speed.
const WordsPerMinute = 180

// WordCount counts whitespace-separated words.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// ReadingMinutes estimates reading time, never reporting less than a minute.
func ReadingMinutes(content string) int {
	minutes := int(math.Round(float64(WordCount(content)) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// CollaboratorResolver maps a user id to a display identity. Returning false
// makes the assembler fall back to a placeholder.
type CollaboratorResolver func(userID string) (models.Collaborator, bool)

func resolveCollaborator(resolve CollaboratorResolver, userID string) models.Collaborator {
	if resolve != nil {
		if collaborator, ok := resolve(userID); ok {
			return collaborator
		}
	}
	return models.PlaceholderCollaborator(userID)
}

// BuildCommentViews joins comments with author identities and derives reply
// counts from parent references. Output is chronological, oldest first.
func BuildCommentViews(comments []models.Comment, resolve CollaboratorResolver) []models.StoryCommentView {
	replies := make(map[string]int, len(comments))
	for _, comment := range comments {
		if comment.ParentCommentID != nil {
			replies[*comment.ParentCommentID]++
		}
	}

	views := make([]models.StoryCommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, models.StoryCommentView{
			ID:           comment.ID,
			Body:         comment.Body,
			CreatedAt:    comment.CreatedAt,
			ChapterID:    comment.ChapterID,
			RepliesCount: replies[comment.ID],
			Author:       resolveCollaborator(resolve, comment.AuthorID),
		})
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].CreatedAt.Before(views[j].CreatedAt) })
	return views
}

// BuildChapterViews enriches chapters with reading stats and per-chapter
// comment counts. likeCounts may be nil.
func BuildChapterViews(chapters []models.Chapter, comments []models.StoryCommentView, likeCounts map[string]int) []models.StoryChapterView {
	commentCounts := make(map[string]int, len(comments))
	for _, comment := range comments {
		if comment.ChapterID != nil {
			commentCounts[*comment.ChapterID]++
		}
	}

	views := make([]models.StoryChapterView, 0, len(chapters))
	for _, chapter := range chapters {
		views = append(views, models.StoryChapterView{
			Chapter:                  chapter,
			WordCount:                WordCount(chapter.Content),
			EstimatedDurationMinutes: ReadingMinutes(chapter.Content),
			LikeCount:                likeCounts[chapter.ID],
			CommentCount:             commentCounts[chapter.ID],
		})
	}
	return views
}

// ChapterResolver maps a chapter id to its record.
type ChapterResolver func(chapterID string) (models.Chapter, bool)

// BuildContributionViews joins contributions with chapter context and
// contributor identities.
func BuildContributionViews(contributions []models.Contribution, resolveChapter ChapterResolver, resolveCollab CollaboratorResolver) []models.ContributionView {
	views := make([]models.ContributionView, 0, len(contributions))
	for _, contribution := range contributions {
		view := models.ContributionView{
			ID:          contribution.ID,
			Status:      contribution.Status,
			Prompt:      contribution.Prompt,
			Content:     contribution.Content,
			CreatedAt:   contribution.CreatedAt,
			RespondedAt: contribution.RespondedAt,
			ChapterID:   contribution.ChapterID,
			Contributor: resolveCollaborator(resolveCollab, contribution.ContributorID),
		}
		if contribution.ChapterID != nil && resolveChapter != nil {
			if chapter, ok := resolveChapter(*contribution.ChapterID); ok {
				view.ChapterTitle = chapter.Title
				position := chapter.Position
				view.ChapterPosition = &position
			}
		}
		views = append(views, view)
	}
	return views
}

// SortContributionsByRecency orders contributions newest first, in place.
func SortContributionsByRecency(contributions []models.ContributionView) []models.ContributionView {
	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].CreatedAt.After(contributions[j].CreatedAt)
	})
	return contributions
}

// DeriveStats aggregates engagement and reading numbers. lastUpdated is the
// latest updatedAt across the story, its chapters and the contribution
// timeline.
func DeriveStats(story models.Story, chapters []models.StoryChapterView, contributions []models.ContributionView, followers, contributionBaseline int) models.StoryDetailStats {
	likes := 0
	readingMinutes := 0
	lastUpdated := story.UpdatedAt
	for _, chapter := range chapters {
		likes += chapter.LikeCount
		readingMinutes += chapter.EstimatedDurationMinutes
		if chapter.Chapter.UpdatedAt.After(lastUpdated) {
			lastUpdated = chapter.Chapter.UpdatedAt
		}
	}
	for _, contribution := range contributions {
		if contribution.CreatedAt.After(lastUpdated) {
			lastUpdated = contribution.CreatedAt
		}
	}

	contributionCount := contributionBaseline
	if len(contributions) > contributionCount {
		contributionCount = len(contributions)
	}

	return models.StoryDetailStats{
		Likes:              likes,
		Followers:          followers,
		Contributions:      contributionCount,
		ReadingTimeMinutes: readingMinutes,
		ChapterCount:       len(chapters),
		LastUpdated:        lastUpdated,
	}
}

// SortChaptersByPosition orders chapters for reading, in place.
func SortChaptersByPosition(chapters []models.Chapter) []models.Chapter {
	sort.SliceStable(chapters, func(i, j int) bool { return chapters[i].Position < chapters[j].Position })
	return chapters
}

// TableOfContents lists the chapters in reading order.
func TableOfContents(chapters []models.Chapter) []models.TOCEntry {
	entries := make([]models.TOCEntry, 0, len(chapters))
	for _, chapter := range chapters {
		entries = append(entries, models.TOCEntry{
			ID:       chapter.ID,
			Title:    chapter.Title,
			Position: chapter.Position,
		})
	}
	return entries
}

// BuildNavigation locates the active chapter in position order and points at
// its neighbours. The index is -1 when the chapter is not in the list.
func BuildNavigation(chapters []models.Chapter, activeChapterID string) (int, models.ReaderNavigation) {
	index := -1
	for i, chapter := range chapters {
		if chapter.ID == activeChapterID {
			index = i
			break
		}
	}

	var nav models.ReaderNavigation
	if index > 0 {
		id := chapters[index-1].ID
		nav.PreviousChapterID = &id
	}
	if index >= 0 && index < len(chapters)-1 {
		id := chapters[index+1].ID
		nav.NextChapterID = &id
	}
	return index, nav
}

// BuildReaderChapter assembles the full reading payload for one chapter.
// Chapters must already be sorted by position.
func BuildReaderChapter(
	story models.Story,
	chapters []models.Chapter,
	active models.Chapter,
	assets []models.ChapterMediaAsset,
	cues []models.ChapterAmbientCue,
	source models.DataSource,
) models.ReaderChapter {
	index, nav := BuildNavigation(chapters, active.ID)
	return models.ReaderChapter{
		Story:         story,
		Chapter:       active,
		ChapterIndex:  index,
		TotalChapters: len(chapters),
		Stats: models.ReaderStats{
			WordCount:          WordCount(active.Content),
			ReadingTimeMinutes: ReadingMinutes(active.Content),
		},
		Navigation:      nav,
		TableOfContents: TableOfContents(chapters),
		MediaAssets:     assets,
		AmbientCues:     cues,
		Source:          source,
	}
}
