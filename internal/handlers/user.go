package handlers

import (
	"net/http"

	"github.com/DevangDixit02/thoughtMemo/internal/middleware"
	"github.com/DevangDixit02/thoughtMemo/internal/models"
	"github.com/DevangDixit02/thoughtMemo/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
	postRepository repositories.PostRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository) *UserHandler {
	return &UserHandler{
		userRepository: userRepo,
		postRepository: postRepo,
	}
}

// Profile renders the authenticated user together with their posts. The
// posts collection is the source of truth; the list is derived by an
// author query rather than kept on the user document.
func (h *UserHandler) Profile(c echo.Context) error {
	claims := c.Get(middleware.ContextUserKey).(*models.SessionClaims)

	user, err := h.userRepository.GetUserByEmail(c.Request().Context(), claims.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	posts, err := h.postRepository.GetPostsByAuthor(c.Request().Context(), user.ID.Hex())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	return c.Render(http.StatusOK, "profile", echo.Map{
		"User":  user,
		"Posts": posts,
	})
}
