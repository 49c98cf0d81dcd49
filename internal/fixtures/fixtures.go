// Package fixtures holds the "Stellar Symphony" seed data backing demo mode.
// Every accessor returns a fresh copy so callers can mutate freely.
package fixtures

import (
	"fmt"
	"time"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// Well-known fixture ids.
const (
	StellarStoryID   = "5d2f2a16-2a7f-4e69-9d3d-3abdf7de1e4b"
	StellarStorySlug = "stellar-symphony"

	NovaQuillID  = "1d88cc60-7d3a-445a-a7f9-6b7cf87db5e4"
	EchoWeaverID = "5f650d8f-2a6c-4df9-93f5-9c4bb77a9b21"
	OrbitInkID   = "a4de6a1e-13f5-4c9d-8e4a-6b7a929a1a99"

	ChapterOneID   = "6e84c6d4-fd87-4ed6-8e3c-b0c4a1f08a4f"
	ChapterTwoID   = "ab1bb077-587d-4d77-aa2d-e4fb6de916d9"
	ChapterThreeID = "f5de88f4-90a4-4bc4-b32c-9a532df4087d"
)

// Engagement baselines.
const (
	FollowerBaseline          = 972
	ContributionCountBaseline = 34
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("fixtures: bad timestamp " + value)
	}
	return t
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// StellarSymphonyStory returns the demo story record.
func StellarSymphonyStory() models.Story {
	published := ts("2024-02-28T08:00:00Z")
	return models.Story{
		ID:          StellarStoryID,
		AuthorID:    NovaQuillID,
		Title:       "Stellar Symphony",
		Slug:        strPtr(StellarStorySlug),
		Summary:     strPtr("A cosmic audio drama where each chapter unlocks a new constellation composed with community-sourced melodies and lore."),
		CoverImage:  nil,
		Language:    "en",
		Tags:        []string{"audio", "sci-fi", "collaborative"},
		IsPublished: true,
		PublishedAt: &published,
		CreatedAt:   ts("2024-02-12T09:30:00Z"),
		UpdatedAt:   ts("2024-03-22T18:45:00Z"),
	}
}

// StellarCollaborators returns the story's credited team.
func StellarCollaborators() []models.Collaborator {
	return []models.Collaborator{
		{ID: NovaQuillID, DisplayName: "NovaQuill", Role: "Showrunner"},
		{ID: EchoWeaverID, DisplayName: "EchoWeaver", Role: "Sound designer"},
		{ID: OrbitInkID, DisplayName: "OrbitInk", Role: "Lore curator"},
	}
}

// StellarChapters returns the three movements in position order.
func StellarChapters() []models.Chapter {
	return []models.Chapter{
		{
			ID:       ChapterOneID,
			StoryID:  StellarStoryID,
			AuthorID: NovaQuillID,
			Title:    strPtr("Movement I — Celestial Prelude"),
			Summary:  strPtr("The crew tunes the resonance engines and invites listeners to hum along as the first star map blossoms into sound."),
			Content: "The Starship Aria glided beyond Neptune's orbit as NovaQuill signaled the chorus to begin. Listeners across the galaxy " +
				"sent in vocal fragments, humming in divergent keys. EchoWeaver sampled each tone, stretching them into ribbons of " +
				"sustained harmony. OrbitInk annotated the constellations projected within the observation dome, mapping myths to the " +
				"frequencies. The chapter closed with an unresolved cadence, beckoning collaborators to submit percussive textures for " +
				"the next movement.",
			Position:    0,
			IsPublished: true,
			CreatedAt:   ts("2024-02-28T08:00:00Z"),
			UpdatedAt:   ts("2024-03-05T14:12:00Z"),
		},
		{
			ID:       ChapterTwoID,
			StoryID:  StellarStoryID,
			AuthorID: EchoWeaverID,
			Title:    strPtr("Movement II — Nebula Bridge"),
			Summary:  strPtr("Community-sourced percussion transforms ion storms into polyrhythms while lore scribes weave in forgotten pilgrim chants."),
			Content: "EchoWeaver layered percussive samples uploaded from contributors spanning four star systems. Metallic taps from cargo " +
				"bays merged with heartbeat drums, syncing to telemetry spikes as the Aria traversed the Orion Nebula. OrbitInk uncovered " +
				"a pilgrim chant hidden in a 200-year-old signal, guiding the harmonics toward a safe passage. NovaQuill requested " +
				"counter-melodies, inviting listeners to score the lull between plasma surges.",
			Position:    1,
			IsPublished: true,
			CreatedAt:   ts("2024-03-07T09:00:00Z"),
			UpdatedAt:   ts("2024-03-18T10:27:00Z"),
		},
		{
			ID:       ChapterThreeID,
			StoryID:  StellarStoryID,
			AuthorID: OrbitInkID,
			Title:    strPtr("Movement III — Harmonic Convergence"),
			Summary:  strPtr("A call-and-response finale stitches together contributions from over 400 participants as the Aria approaches the Aurora Gate."),
			Content: "As the Aurora Gate emerged, the chorus erupted with motifs sourced from every previous submission. EchoWeaver balanced " +
				"the frequencies to prevent resonance overload while OrbitInk narrated the legends of the gatekeepers. NovaQuill layered " +
				"a spoken-word plea for new storytellers to claim the upcoming interlude. The climax resolved into a shimmering chord, " +
				"leaving an intentional gap for future collaborators to complete the cadence.",
			Position:    2,
			IsPublished: true,
			CreatedAt:   ts("2024-03-18T10:00:00Z"),
			UpdatedAt:   ts("2024-03-22T18:45:00Z"),
		},
	}
}

// StellarComments returns the seeded comment views, one per chapter.
func StellarComments() []models.StoryCommentView {
	return []models.StoryCommentView{
		{
			ID:           "b74f0d86-f2fb-4bde-8b05-18f0d3c9bc4d",
			Body:         "Layered a low-frequency drone that mirrors the hum of the Aria's engines—feel free to sample it for the nebula bridge.",
			CreatedAt:    ts("2024-03-08T11:45:00Z"),
			ChapterID:    strPtr(ChapterOneID),
			RepliesCount: 2,
			Author: models.Collaborator{
				ID:          "4bf1c360-98fb-4b62-8aa2-4e6eb4f4a673",
				DisplayName: "PulsePilot",
				Role:        "Composer",
			},
		},
		{
			ID:           "a4af20d5-5a78-4546-8d8d-4c5e42c51f0c",
			Body:         "Loved the pilgrim chant sample! I uploaded a harmony with whispered consonants to keep it otherworldly.",
			CreatedAt:    ts("2024-03-18T13:02:00Z"),
			ChapterID:    strPtr(ChapterTwoID),
			RepliesCount: 1,
			Author: models.Collaborator{
				ID:          "a01d8c54-66dc-47a2-8f61-0ab516b88388",
				DisplayName: "ChromaFable",
				Role:        "Vocalist",
			},
		},
		{
			ID:           "9eae07a0-7d04-4aea-9adf-1434159ebeb6",
			Body:         "Tagging lore keepers: I drafted a short verse about the gatekeepers' trials. Feedback welcome before the live session!",
			CreatedAt:    ts("2024-03-22T19:10:00Z"),
			ChapterID:    strPtr(ChapterThreeID),
			RepliesCount: 3,
			Author: models.Collaborator{
				ID:          "dc5d6dd0-b09a-4e05-a94a-8a1cf41b18e5",
				DisplayName: "MythRelay",
				Role:        "Writer",
			},
		},
	}
}

// StellarPrompts returns the open contribution calls.
func StellarPrompts() []models.ContributionPrompt {
	return []models.ContributionPrompt{
		{
			ID:          "0e7c7b81-9a44-4ede-8d8b-6b3ac5e65ebf",
			Title:       "Compose the Aurora Interlude",
			Description: "Add a 60-second motif representing the Aurora Gate opening. Instrumental or vocal textures welcome—think shimmering and warm.",
			DueAt:       ts("2024-04-15T23:59:00Z"),
		},
		{
			ID:          "7becc5bb-42b5-4c2e-a995-644c93361c1f",
			Title:       "Write the Gatekeeper's Oath",
			Description: "Submit 120 words or fewer capturing the promise made before entering the gate. Spoken word or lyrical verses encouraged.",
			DueAt:       ts("2024-04-18T18:00:00Z"),
		},
	}
}

// StellarContributions returns the seeded contribution timeline.
func StellarContributions() []models.ContributionView {
	acceptedAt := ts("2024-03-22T12:05:00Z")
	rejectedAt := ts("2024-03-16T12:24:00Z")
	return []models.ContributionView{
		{
			ID:     "6fa7a0c3-2321-4f9f-9c5d-09dc5520d2c2",
			Status: models.ContributionAccepted,
			Prompt: strPtr("Compose the Aurora Interlude"),
			Content: strPtr("Shared a rising string progression that holds on the gate's resonance frequency. " +
				"Layered in choral breaths to cue the audience handoff."),
			CreatedAt:       ts("2024-03-20T16:42:00Z"),
			RespondedAt:     &acceptedAt,
			ChapterID:       strPtr(ChapterThreeID),
			ChapterTitle:    strPtr("Movement III — Harmonic Convergence"),
			ChapterPosition: intPtr(2),
			Contributor: models.Collaborator{
				ID:          "c7f8d3a2-6fbe-4a67-9e89-8b0f6f6f9f70",
				DisplayName: "LumenChorus",
				Role:        "Composer",
			},
		},
		{
			ID:     "96d54272-2f02-4d4d-b9eb-28c12a9372d2",
			Status: models.ContributionPending,
			Prompt: strPtr("Write the Gatekeeper's Oath"),
			Content: strPtr("Drafted a bilingual oath referencing the original pilgrim chant. " +
				"Includes a whispered counterpoint that can sit under NovaQuill's narration."),
			CreatedAt:       ts("2024-03-24T09:18:00Z"),
			ChapterID:       strPtr(ChapterThreeID),
			ChapterTitle:    strPtr("Movement III — Harmonic Convergence"),
			ChapterPosition: intPtr(2),
			Contributor: models.Collaborator{
				ID:          "3d6b521e-1f8f-4f35-9cd2-4698807cc238",
				DisplayName: "VerseVoyager",
				Role:        "Writer",
			},
		},
		{
			ID:     "4bd11d1b-887d-46f5-93c9-4f5a2df9fe3d",
			Status: models.ContributionRejected,
			Content: strPtr("Proposed an aggressive percussion breakdown using sampled engine malfunctions. " +
				"Happy to revisit if we open an alt mix."),
			CreatedAt:       ts("2024-03-15T21:07:00Z"),
			RespondedAt:     &rejectedAt,
			ChapterID:       strPtr(ChapterTwoID),
			ChapterTitle:    strPtr("Movement II — Nebula Bridge"),
			ChapterPosition: intPtr(1),
			Contributor: models.Collaborator{
				ID:          "f41fae2f-2c94-4ac1-909c-bd2165a9390d",
				DisplayName: "DriftPulse",
				Role:        "Percussionist",
			},
		},
	}
}

// ChapterLikeBaselines returns the seeded like count per chapter id.
func ChapterLikeBaselines() map[string]int {
	return map[string]int{
		ChapterOneID:   860,
		ChapterTwoID:   742,
		ChapterThreeID: 615,
	}
}

// StoryLikeBaseline is the story-level baseline: the sum of its chapters'
// seeded like counts.
func StoryLikeBaseline() int {
	total := 0
	for _, likes := range ChapterLikeBaselines() {
		total += likes
	}
	return total
}

// ChapterExtras builds the demo media assets and ambient cues for a chapter.
// Ids derive from the chapter id so repeated builds stay stable.
func ChapterExtras(chapterID string, position int) ([]models.ChapterMediaAsset, []models.ChapterAmbientCue) {
	assets := []models.ChapterMediaAsset{
		{
			ID:              chapterID + "-audio",
			ChapterID:       chapterID,
			Title:           fmt.Sprintf("Movement %d — Studio Cut", position+1),
			Description:     strPtr("High-fidelity mix capturing community submissions layered with starship instrumentation."),
			MediaType:       models.MediaTypeAudio,
			MediaURL:        strPtr("https://cdn.pixabay.com/audio/2023/01/31/audio_9ff50a4c6d.mp3"),
			DurationSeconds: intPtr(312 - position*28),
			SortOrder:       intPtr(0),
		},
		{
			ID:          chapterID + "-transcript",
			ChapterID:   chapterID,
			Title:       "Narrated transcript",
			Description: strPtr("Text-aligned transcript highlighting collaborative callouts."),
			MediaType:   models.MediaTypeText,
			SortOrder:   intPtr(1),
		},
	}

	cues := []models.ChapterAmbientCue{
		{
			ID:               chapterID + "-cue-1",
			ChapterID:        chapterID,
			TimestampSeconds: 45,
			Label:            "Resonance engines bloom",
			Description:      strPtr("Fade in layered humming textures gathered from listener submissions."),
		},
		{
			ID:               chapterID + "-cue-2",
			ChapterID:        chapterID,
			TimestampSeconds: 138,
			Label:            "Community bridge solo",
			Description:      strPtr("Percussive polyrhythm featuring sampled cargo bay taps and pulse drums."),
		},
		{
			ID:               chapterID + "-cue-3",
			ChapterID:        chapterID,
			TimestampSeconds: 246,
			Label:            "Aurora crescendo",
			Description:      strPtr("Collective crescendo guiding the Aria toward the Aurora Gate portal."),
		},
	}

	return assets, cues
}

// demoProfile bundles a profile fixture with its social stats.
type demoProfile struct {
	Profile      models.UserProfile
	DisplayName  string
	Stats        models.ProfileStats
	SupportLinks []models.ProfileSupportLink
}

func demoProfiles() map[string]demoProfile {
	novaUpdated := ts("2024-03-22T18:45:00Z")
	echoUpdated := ts("2024-03-18T10:27:00Z")
	return map[string]demoProfile{
		"novaquill": {
			Profile: models.UserProfile{
				ID:        NovaQuillID,
				Username:  strPtr("novaquill"),
				Bio:       strPtr("Audio fiction showrunner weaving collaborative galaxies with fellow storytellers."),
				Language:  strPtr("en"),
				UpdatedAt: &novaUpdated,
			},
			DisplayName: "NovaQuill",
			Stats: models.ProfileStats{
				Followers:     FollowerBaseline,
				Following:     48,
				Contributions: ContributionCountBaseline,
				StoryCount:    1,
			},
			SupportLinks: []models.ProfileSupportLink{
				{ID: "patreon", Platform: "Patreon", Label: "Support NovaQuill on Patreon", URL: "https://www.patreon.com/novaquill"},
				{ID: "kofi", Platform: "Ko-fi", Label: "Buy NovaQuill a tea on Ko-fi", URL: "https://ko-fi.com/novaquill"},
				{ID: "website", Platform: "Website", Label: "Visit the Stellar Symphony hub", URL: "https://finishthatstory.com/demo/stellar-symphony"},
			},
		},
		"echoweaver": {
			Profile: models.UserProfile{
				ID:        EchoWeaverID,
				Username:  strPtr("echoweaver"),
				Bio:       strPtr("Sound designer turning crowd-sourced beats into nebula soundscapes for Stellar Symphony."),
				Language:  strPtr("en"),
				UpdatedAt: &echoUpdated,
			},
			DisplayName: "EchoWeaver",
			Stats: models.ProfileStats{
				Followers:     486,
				Following:     61,
				Contributions: 19,
				StoryCount:    1,
			},
			SupportLinks: []models.ProfileSupportLink{
				{ID: "custom", Platform: "Custom", Label: "Download collaborative stems", URL: "https://finishthatstory.com/demo/echoweaver-stems"},
			},
		},
	}
}

// DemoProfile returns the seeded profile for a username (case-insensitive
// lookup is the caller's job; keys here are lowercase). The boolean reports
// whether the username is known.
func DemoProfile(username string) (models.UserProfile, string, models.ProfileStats, []models.ProfileSupportLink, bool) {
	p, ok := demoProfiles()[username]
	if !ok {
		return models.UserProfile{}, "", models.ProfileStats{}, nil, false
	}
	return p.Profile, p.DisplayName, p.Stats, p.SupportLinks, true
}

// DemoProfileUsernames lists the seeded usernames.
func DemoProfileUsernames() []string {
	return []string{"novaquill", "echoweaver"}
}
