package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type engagementToggleRequest struct {
	StoryID  string `json:"storyId"`
	AuthorID string `json:"authorId"`
	UserID   string `json:"userId"`
}

func (h *Handler) toggleStoryLike(c *gin.Context) {
	var req engagementToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.StoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storyId is required"})
		return
	}

	state := h.engagement.ToggleStoryLike(c.Request.Context(), req.StoryID, req.AuthorID, req.UserID)
	c.JSON(http.StatusOK, state)
}

func (h *Handler) toggleAuthorFollow(c *gin.Context) {
	var req engagementToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.AuthorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "authorId is required"})
		return
	}

	state, err := h.engagement.ToggleAuthorFollow(c.Request.Context(), req.StoryID, req.AuthorID, req.UserID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) getEngagementSnapshot(c *gin.Context) {
	storyID := c.Query("storyId")
	authorID := c.Query("authorId")
	if storyID == "" || authorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storyId and authorId are required"})
		return
	}

	state := h.engagement.Snapshot(c.Request.Context(), storyID, authorID, c.Query("userId"))
	c.JSON(http.StatusOK, state)
}
