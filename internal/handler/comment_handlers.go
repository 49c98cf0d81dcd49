package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Multiproject-EJ/FinishThatStory.com/internal/models"
)

type addCommentRequest struct {
	StoryID         string  `json:"storyId"`
	ChapterID       *string `json:"chapterId"`
	AuthorID        string  `json:"authorId"`
	Body            string  `json:"body"`
	ParentCommentID *string `json:"parentCommentId"`
	Alias           string  `json:"alias"`
	Role            string  `json:"role"`
}

func (h *Handler) addComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.comments.Add(c.Request.Context(), models.CommentCreateInput{
		StoryID:         req.StoryID,
		ChapterID:       req.ChapterID,
		AuthorID:        req.AuthorID,
		Body:            req.Body,
		ParentCommentID: req.ParentCommentID,
	}, req.Alias, req.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// listComments honours the tri-state chapter filter: an absent chapterId
// query key means no filter, an empty or "null" value means story-level
// comments only, anything else narrows to that chapter.
func (h *Handler) listComments(c *gin.Context) {
	filters := models.CommentListFilters{StoryID: c.Query("storyId")}
	if limit := c.Query("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filters.Limit = parsed
	}
	if c.Request.URL.Query().Has("chapterId") {
		value := c.Query("chapterId")
		if value == "" || value == "null" {
			filters.ChapterID = models.NewOptional[*string](nil)
		} else {
			filters.ChapterID = models.NewOptional(&value)
		}
	}

	views, err := h.comments.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": views})
}
