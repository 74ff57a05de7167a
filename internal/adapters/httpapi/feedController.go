package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FeedController struct{ fd FeedUseCase }

func NewFeedController(fd FeedUseCase) *FeedController { return &FeedController{fd: fd} }

func (ctl *FeedController) GetAllPosts(c *gin.Context) {
	posts, err := ctl.fd.GetAllPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get feed"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetUserPosts فید یک کاربر: unknown user returns an empty list, not 404
func (ctl *FeedController) GetUserPosts(c *gin.Context) {
	posts, err := ctl.fd.GetUserPosts(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get feed"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *FeedController) GetTrendingPosts(c *gin.Context) {
	posts, err := ctl.fd.GetTrendingPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get trending posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}
