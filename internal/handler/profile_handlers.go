package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

func (h *Handler) getProfileDetail(c *gin.Context) {
	detail, err := h.profiles.Detail(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

type upsertProfileRequest struct {
	UserID   string  `json:"userId"`
	Username *string `json:"username"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Language *string `json:"language"`
}

func (h *Handler) upsertProfile(c *gin.Context) {
	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.profiles.Upsert(c.Request.Context(), req.UserID, models.UserProfileInput{
		Username: req.Username,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
		Language: req.Language,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
