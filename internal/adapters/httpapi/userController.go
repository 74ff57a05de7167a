package httpapi

import (
	"errors"
	"net/http"

	userPort "rasaneh/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

func (ctl *UserController) RegisterUser(c *gin.Context) {
	var req struct {
		UserID         string `json:"user_id"`
		Username       string `json:"username" binding:"required"`
		ProfilePicture string `json:"profile_picture"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	// user_id is caller-supplied; generate one when the request omits it
	if req.UserID == "" {
		req.UserID = uuid.Must(uuid.NewV4()).String()
	}

	u, err := ctl.uc.RegisterUser(c.Request.Context(), req.UserID, req.Username, req.ProfilePicture)
	if err != nil {
		if errors.Is(err, userPort.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register user"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (ctl *UserController) GetUser(c *gin.Context) {
	u, err := ctl.uc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}
