package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/collabboard/collabboard-api/internal/dto"
	apierrors "github.com/collabboard/collabboard-api/internal/errors"
	"github.com/collabboard/collabboard-api/internal/services"
)

// UserHandler coordinates user lookup HTTP handlers.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// SearchUsers finds users by a case-insensitive substring of their
// username or email. An absent or empty query yields an empty list.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")

	users, err := h.authService.SearchUsers(query)
	if err != nil {
		apierrors.InternalError(c, "Failed to search users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}
