package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	postPort "rasaneh/internal/ports/post"
	userPort "rasaneh/internal/ports/user"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) SharePost(c *gin.Context) {
	var req struct {
		UserID  string   `json:"user_id" binding:"required"`
		Content string   `json:"content" binding:"required"`
		Media   string   `json:"media"`
		Tags    []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.pc.SharePost(c.Request.Context(), req.UserID, req.Content, req.Media, req.Tags)
	if err != nil {
		if errors.Is(err, userPort.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) GetPost(c *gin.Context) {
	ref, ok := postRef(c)
	if !ok {
		return
	}
	res, err := ctl.pc.GetPost(c.Request.Context(), ref)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) LikePost(c *gin.Context) {
	ref, ok := postRef(c)
	if !ok {
		return
	}
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := ctl.pc.LikePost(c.Request.Context(), ref, req.UserID); err != nil {
		engagementError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post liked"})
}

func (ctl *PostController) UnlikePost(c *gin.Context) {
	ref, ok := postRef(c)
	if !ok {
		return
	}
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := ctl.pc.UnlikePost(c.Request.Context(), ref, req.UserID); err != nil {
		engagementError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post unliked"})
}

func (ctl *PostController) AddComment(c *gin.Context) {
	ref, ok := postRef(c)
	if !ok {
		return
	}
	var req struct {
		UserID string `json:"user_id" binding:"required"`
		Text   string `json:"text"` // empty text is allowed
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.pc.AddComment(c.Request.Context(), ref, req.UserID, req.Text)
	if err != nil {
		engagementError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func postRef(c *gin.Context) (int, bool) {
	ref, err := strconv.Atoi(c.Param("ref"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post ref"})
		return 0, false
	}
	return ref, true
}

func engagementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, postPort.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
	case errors.Is(err, userPort.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}
