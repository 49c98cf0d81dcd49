// Package handler exposes the HTTP API over gin.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/service"
)

type Handler struct {
	stories       *service.StoryDetailService
	reader        *service.ReaderService
	creation      *service.CreationService
	comments      *service.CommentService
	contributions *service.ContributionService
	engagement    *service.EngagementService
	profiles      *service.ProfileService
	logger        *zap.Logger
}

func NewHandler(
	stories *service.StoryDetailService,
	reader *service.ReaderService,
	creation *service.CreationService,
	comments *service.CommentService,
	contributions *service.ContributionService,
	engagement *service.EngagementService,
	profiles *service.ProfileService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		stories:       stories,
		reader:        reader,
		creation:      creation,
		comments:      comments,
		contributions: contributions,
		engagement:    engagement,
		profiles:      profiles,
		logger:        logger.Named("Handler"),
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.healthCheck)

	api := router.Group("/api")
	{
		api.GET("/stories", h.listStories)
		api.POST("/stories", h.createStory)
		api.GET("/stories/:slug", h.getStoryDetail)
		api.GET("/stories/:slug/reader", h.getReaderChapter)
		api.GET("/stories/:slug/reader/:chapterId", h.getReaderChapter)

		api.GET("/comments", h.listComments)
		api.POST("/comments", h.addComment)

		api.GET("/contributions", h.listContributions)
		api.POST("/contributions", h.submitContribution)
		api.PATCH("/contributions/:id", h.respondToContribution)

		api.POST("/engagement/story-like", h.toggleStoryLike)
		api.POST("/engagement/follow", h.toggleAuthorFollow)
		api.GET("/engagement/snapshot", h.getEngagementSnapshot)

		api.GET("/profiles/:username", h.getProfileDetail)
		api.PUT("/profiles", h.upsertProfile)

		api.GET("/reader/offline", h.listCachedChapters)
	}
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleServiceError maps domain sentinels onto HTTP status codes.
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrSelfFollow),
		errors.Is(err, models.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.logger.Error("Unhandled service error",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
