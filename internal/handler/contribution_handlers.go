package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

type submitContributionRequest struct {
	StoryID       string  `json:"storyId"`
	ContributorID string  `json:"contributorId"`
	Prompt        *string `json:"prompt"`
	Content       *string `json:"content"`
	ChapterID     *string `json:"chapterId"`
	Alias         string  `json:"alias"`
}

func (h *Handler) submitContribution(c *gin.Context) {
	var req submitContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.contributions.Submit(c.Request.Context(), models.ContributionCreateInput{
		StoryID:       req.StoryID,
		ContributorID: req.ContributorID,
		Prompt:        req.Prompt,
		Content:       req.Content,
	}, req.Alias, req.ChapterID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *Handler) listContributions(c *gin.Context) {
	storyID := c.Query("storyId")
	if storyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storyId is required"})
		return
	}

	views, err := h.contributions.Timeline(c.Request.Context(), storyID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contributions": views})
}

type respondToContributionRequest struct {
	Status      models.ContributionStatus   `json:"status"`
	ChapterID   models.Optional[*string]    `json:"chapterId"`
	RespondedAt models.Optional[*time.Time] `json:"respondedAt"`
}

func (h *Handler) respondToContribution(c *gin.Context) {
	var req respondToContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input := models.ContributionUpdateInput{
		ContributionID: c.Param("id"),
		Status:         req.Status,
		ChapterID:      req.ChapterID,
		RespondedAt:    req.RespondedAt,
	}

	contribution, err := h.contributions.Respond(c.Request.Context(), input)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contribution)
}
