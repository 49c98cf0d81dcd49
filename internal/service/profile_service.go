package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/fixtures"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// ProfileService serves public profile pages and profile updates.
type ProfileService struct {
	deps   Deps
	logger *zap.Logger
}

func NewProfileService(deps Deps) *ProfileService {
	return &ProfileService{
		deps:   deps,
		logger: deps.Logger.Named("ProfileService"),
	}
}

// Detail resolves a profile page by username. nil means unknown in both
// worlds.
func (s *ProfileService) Detail(ctx context.Context, username string) (*models.ProfileDetail, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrValidation)
	}

	if s.deps.supabase() {
		detail, err := s.fetchFromRepository(ctx, username)
		if err != nil {
			s.logger.Warn("Repository profile fetch failed, falling back to demo data",
				zap.String("username", username), zap.Error(err))
		} else if detail != nil {
			return detail, nil
		}
	}
	return s.fetchFromDemo(username), nil
}

func (s *ProfileService) fetchFromRepository(ctx context.Context, username string) (*models.ProfileDetail, error) {
	profile, err := s.deps.Profiles.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	followers, err := s.deps.Engagement.FollowerCount(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	displayName := username
	if profile.Username != nil {
		displayName = *profile.Username
	}

	return &models.ProfileDetail{
		Profile:      *profile,
		DisplayName:  displayName,
		Stories:      []models.ProfileStoryHighlight{},
		Stats:        models.ProfileStats{Followers: followers},
		SupportLinks: []models.ProfileSupportLink{},
		Source:       models.SourceSupabase,
	}, nil
}

func (s *ProfileService) fetchFromDemo(username string) *models.ProfileDetail {
	profile, displayName, stats, links, ok := fixtures.DemoProfile(username)
	if !ok {
		return nil
	}

	highlights := []models.ProfileStoryHighlight{}
	if detail := NewStoryDetailService(s.deps).fetchFromDemo(fixtures.StellarStorySlug); detail != nil {
		highlights = append(highlights, models.ProfileStoryHighlight{
			Story:        detail.Story,
			ChapterCount: len(detail.Chapters),
			LikeCount:    detail.Stats.Likes,
			LastUpdated:  detail.Stats.LastUpdated,
		})
	}

	return &models.ProfileDetail{
		Profile:      profile,
		DisplayName:  displayName,
		Stories:      highlights,
		Stats:        stats,
		SupportLinks: links,
		Source:       models.SourceDemo,
	}
}

// Upsert saves profile attributes. Profiles live in the relational backend
// only; demo mode has nothing durable to write to.
func (s *ProfileService) Upsert(ctx context.Context, userID string, input models.UserProfileInput) (*models.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", models.ErrValidation)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !s.deps.supabase() {
		return nil, fmt.Errorf("%w: profile editing requires a configured backend", models.ErrValidation)
	}
	return s.deps.Profiles.Upsert(ctx, userID, input)
}
