package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/assembler"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/demo"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

// CommentService adds and lists comments through the active data source.
type CommentService struct {
	deps   Deps
	logger *zap.Logger
}

func NewCommentService(deps Deps) *CommentService {
	return &CommentService{
		deps:   deps,
		logger: deps.Logger.Named("CommentService"),
	}
}

// Add records a comment. Alias and role only matter in demo mode, where the
// commenter has no profile row to resolve against.
func (s *CommentService) Add(ctx context.Context, input models.CommentCreateInput, alias, role string) (*models.StoryCommentView, error) {
	if s.deps.supabase() {
		if err := input.Validate(); err != nil {
			return nil, err
		}
		comment, err := s.deps.Comments.Add(ctx, input)
		if err != nil {
			return nil, err
		}
		views := assembler.BuildCommentViews([]models.Comment{*comment}, s.deps.profileResolver(ctx))
		return &views[0], nil
	}

	if input.Body == "" || len(input.Body) > models.MaxCommentLength {
		return nil, models.ErrValidation
	}
	data, ok := s.deps.demoStoryByID(input.StoryID)
	if !ok {
		return nil, models.ErrNotFound
	}
	if alias == "" {
		alias = models.PlaceholderCollaborator(input.AuthorID).DisplayName
	}
	if role == "" {
		role = "Guest"
	}
	view := s.deps.DemoComments.Add(data.story.ID, data.commentBaseline, demo.CommentInput{
		Alias:     alias,
		Role:      role,
		Body:      input.Body,
		ChapterID: input.ChapterID,
	})
	return &view, nil
}

// List returns a story's comment thread, honouring the tri-state chapter
// filter in both modes.
func (s *CommentService) List(ctx context.Context, filters models.CommentListFilters) ([]models.StoryCommentView, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	if s.deps.supabase() {
		comments, err := s.deps.Comments.List(ctx, filters)
		if err != nil {
			return nil, err
		}
		return assembler.BuildCommentViews(comments, s.deps.profileResolver(ctx)), nil
	}

	data, ok := s.deps.demoStoryByID(filters.StoryID)
	if !ok {
		return []models.StoryCommentView{}, nil
	}

	thread := s.deps.DemoComments.Thread(data.story.ID, data.commentBaseline)
	filtered := make([]models.StoryCommentView, 0, len(thread))
	for _, comment := range thread {
		if chapterID, set := filters.ChapterID.Get(); set {
			if chapterID == nil && comment.ChapterID != nil {
				continue
			}
			if chapterID != nil && (comment.ChapterID == nil || *comment.ChapterID != *chapterID) {
				continue
			}
		}
		filtered = append(filtered, comment)
		if len(filtered) == filters.EffectiveLimit() {
			break
		}
	}
	return filtered, nil
}
