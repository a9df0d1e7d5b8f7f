package handlers

import (
	"errors"
	"net/http"

	"github.com/DevangDixit02/thoughtMemo/internal/middleware"
	"github.com/DevangDixit02/thoughtMemo/internal/models"
	"github.com/DevangDixit02/thoughtMemo/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	sharedEditing  bool
}

// NewPostHandler creates a new PostHandler. When sharedEditing is false,
// edit and update are restricted to the post's author.
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, sharedEditing bool) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		sharedEditing:  sharedEditing,
	}
}

// Create creates a new post owned by the authenticated user
func (h *PostHandler) Create(c echo.Context) error {
	claims := c.Get(middleware.ContextUserKey).(*models.SessionClaims)

	user, err := h.userRepository.GetUserByEmail(c.Request().Context(), claims.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		UserID:  user.ID.Hex(),
		Content: req.Content,
	}
	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	return c.Redirect(http.StatusFound, "/profile")
}

// ToggleLike likes the post if the authenticated user has not liked it yet,
// and unlikes it otherwise.
func (h *PostHandler) ToggleLike(c echo.Context) error {
	claims := c.Get(middleware.ContextUserKey).(*models.SessionClaims)
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	if post.LikedBy(claims.UserID) {
		err = h.postRepository.RemoveLike(c.Request().Context(), postID, claims.UserID)
	} else {
		err = h.postRepository.AddLike(c.Request().Context(), postID, claims.UserID)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	return c.Redirect(http.StatusFound, "/profile")
}

// EditForm renders the edit form pre-filled with the post's content
func (h *PostHandler) EditForm(c echo.Context) error {
	claims := c.Get(middleware.ContextUserKey).(*models.SessionClaims)

	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	if !h.canEdit(claims, post) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to edit this post")
	}

	author, err := h.userRepository.GetUserByID(c.Request().Context(), post.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	return c.Render(http.StatusOK, "edit", echo.Map{
		"Post":   post,
		"Author": author,
	})
}

// Update replaces the content of a post and redirects to the profile
func (h *PostHandler) Update(c echo.Context) error {
	claims := c.Get(middleware.ContextUserKey).(*models.SessionClaims)
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	if !h.canEdit(claims, post) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this post")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if err := h.postRepository.UpdateContent(c.Request().Context(), postID, req.Content); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	return c.Redirect(http.StatusFound, "/profile")
}

func (h *PostHandler) canEdit(claims *models.SessionClaims, post *models.Post) bool {
	return h.sharedEditing || post.UserID == claims.UserID
}
