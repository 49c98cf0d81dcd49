package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
	"github.com/Multiproject-EJ/FinishThatStory.com/internal/service"
)

func (h *Handler) listStories(c *gin.Context) {
	var filters models.StoryListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	stories, source, err := h.stories.ListPublished(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stories": stories, "source": source})
}

func (h *Handler) getStoryDetail(c *gin.Context) {
	detail, err := h.stories.FetchDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) createStory(c *gin.Context) {
	var input service.CreateStoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.creation.CreateStory(c.Request.Context(), input)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) getReaderChapter(c *gin.Context) {
	var chapterID *string
	if id := c.Param("chapterId"); id != "" {
		chapterID = &id
	}

	payload, err := h.reader.FetchChapter(c.Request.Context(), c.Param("slug"), chapterID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "chapter not found"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *Handler) listCachedChapters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"chapters": h.reader.CachedChapters()})
}
