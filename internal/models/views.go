package models

import "time"

// DataSource tags a payload with the backend that produced it.
type DataSource string

const (
	SourceSupabase DataSource = "supabase"
	SourceDemo     DataSource = "demo"
)

// StoryCommentView is a comment joined with its author identity and derived
// reply count.
type StoryCommentView struct {
	ID           string       `json:"id"`
	Body         string       `json:"body"`
	CreatedAt    time.Time    `json:"createdAt"`
	ChapterID    *string      `json:"chapterId"`
	RepliesCount int          `json:"repliesCount"`
	Author       Collaborator `json:"author"`
}

// StoryChapterView is a chapter enriched with derived reading stats.
type StoryChapterView struct {
	Chapter                  Chapter `json:"chapter"`
	WordCount                int     `json:"wordCount"`
	EstimatedDurationMinutes int     `json:"estimatedDurationMinutes"`
	LikeCount                int     `json:"likeCount"`
	CommentCount             int     `json:"commentCount"`
}

// ContributionView is a contribution joined with chapter context and the
// contributor's identity.
type ContributionView struct {
	ID              string             `json:"id"`
	Status          ContributionStatus `json:"status"`
	Prompt          *string            `json:"prompt"`
	Content         *string            `json:"content"`
	CreatedAt       time.Time          `json:"createdAt"`
	RespondedAt     *time.Time         `json:"respondedAt"`
	ChapterID       *string            `json:"chapterId"`
	ChapterTitle    *string            `json:"chapterTitle"`
	ChapterPosition *int               `json:"chapterPosition"`
	Contributor     Collaborator       `json:"contributor"`
}

// ContributionPrompt is an open call for community submissions on a story.
type ContributionPrompt struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueAt       time.Time `json:"dueAt"`
}

// StoryDetailStats aggregates engagement and reading numbers for a story.
type StoryDetailStats struct {
	Likes              int       `json:"likes"`
	Followers          int       `json:"followers"`
	Contributions      int       `json:"contributions"`
	ReadingTimeMinutes int       `json:"readingTimeMinutes"`
	ChapterCount       int       `json:"chapterCount"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

// StoryDetail is the display-ready aggregate for a story page, assembled
// identically from either data source.
type StoryDetail struct {
	Story               Story                `json:"story"`
	Chapters            []StoryChapterView   `json:"chapters"`
	Comments            []StoryCommentView   `json:"comments"`
	Contributions       []ContributionView   `json:"contributions"`
	Collaborators       []Collaborator       `json:"collaborators"`
	ContributionPrompts []ContributionPrompt `json:"contributionPrompts"`
	Stats               StoryDetailStats     `json:"stats"`
	Source              DataSource           `json:"source"`
}

// TOCEntry is one row of a story's table of contents.
type TOCEntry struct {
	ID       string  `json:"id"`
	Title    *string `json:"title"`
	Position int     `json:"position"`
}

// ReaderStats are derived reading numbers for a single chapter.
type ReaderStats struct {
	WordCount          int `json:"wordCount"`
	ReadingTimeMinutes int `json:"readingTimeMinutes"`
}

// ReaderNavigation points at the neighbouring chapters in position order.
// Both ids are nil at the respective end of the story.
type ReaderNavigation struct {
	PreviousChapterID *string `json:"previousChapterId"`
	NextChapterID     *string `json:"nextChapterId"`
}

// ProfileStoryHighlight is a story summary shown on a profile page.
type ProfileStoryHighlight struct {
	Story        Story     `json:"story"`
	ChapterCount int       `json:"chapterCount"`
	LikeCount    int       `json:"likeCount"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// ProfileStats aggregates a profile's social numbers.
type ProfileStats struct {
	Followers     int `json:"followers"`
	Following     int `json:"following"`
	Contributions int `json:"contributions"`
	StoryCount    int `json:"storyCount"`
}

// ProfileSupportLink is an external support destination on a profile.
type ProfileSupportLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Label    string `json:"label"`
	URL      string `json:"url"`
}

// ProfileDetail is the display-ready aggregate for a profile page.
type ProfileDetail struct {
	Profile      UserProfile             `json:"profile"`
	DisplayName  string                  `json:"displayName"`
	Stories      []ProfileStoryHighlight `json:"stories"`
	Stats        ProfileStats            `json:"stats"`
	SupportLinks []ProfileSupportLink    `json:"supportLinks"`
	Source       DataSource              `json:"source"`
}

// ReaderChapter is the display-ready payload for the reading experience.
type ReaderChapter struct {
	Story           Story               `json:"story"`
	Chapter         Chapter             `json:"chapter"`
	ChapterIndex    int                 `json:"chapterIndex"`
	TotalChapters   int                 `json:"totalChapters"`
	Stats           ReaderStats         `json:"stats"`
	Navigation      ReaderNavigation    `json:"navigation"`
	TableOfContents []TOCEntry          `json:"tableOfContents"`
	MediaAssets     []ChapterMediaAsset `json:"mediaAssets"`
	AmbientCues     []ChapterAmbientCue `json:"ambientCues"`
	Source          DataSource          `json:"source"`
}
