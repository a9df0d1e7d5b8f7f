package handlers

import (
	"net/http"

	"github.com/DevangDixit02/thoughtMemo/internal/middleware"
	"github.com/DevangDixit02/thoughtMemo/internal/models"
	"github.com/DevangDixit02/thoughtMemo/internal/repositories"
	"github.com/DevangDixit02/thoughtMemo/internal/storage"
	"github.com/labstack/echo/v4"
)

// UploadHandler handles profile picture uploads
type UploadHandler struct {
	userRepository repositories.UserRepository
	uploads        storage.Store
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(userRepo repositories.UserRepository, uploads storage.Store) *UploadHandler {
	return &UploadHandler{
		userRepository: userRepo,
		uploads:        uploads,
	}
}

// Upload stores the attached image and records the stored filename as the
// authenticated user's profile picture.
func (h *UploadHandler) Upload(c echo.Context) error {
	claims := c.Get(middleware.ContextUserKey).(*models.SessionClaims)

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}
	defer src.Close()

	filename, err := h.uploads.Save(src, file.Filename)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	user, err := h.userRepository.GetUserByEmail(c.Request().Context(), claims.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}
	if err := h.userRepository.SetProfilePic(c.Request().Context(), user.ID.Hex(), filename); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	return c.Redirect(http.StatusFound, "/profile")
}
