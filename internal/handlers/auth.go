package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/DevangDixit02/thoughtMemo/internal/auth"
	"github.com/DevangDixit02/thoughtMemo/internal/middleware"
	"github.com/DevangDixit02/thoughtMemo/internal/models"
	"github.com/DevangDixit02/thoughtMemo/internal/repositories"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	userRepository repositories.UserRepository
	tokenCodec     *auth.TokenCodec
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, codec *auth.TokenCodec) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		tokenCodec:     codec,
	}
}

// Register creates an account and issues a session cookie. The existence
// check and the insert are two separate operations; two concurrent
// registrations with the same email can race.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	_, err := h.userRepository.GetUserByEmail(c.Request().Context(), req.Email)
	if err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "User Already Exists")
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	user := &models.User{
		Name:     req.Name,
		Username: req.Username,
		Age:      req.Age,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := h.userRepository.CreateUser(c.Request().Context(), user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	token, err := h.tokenCodec.Sign(user.ID.Hex(), user.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}
	h.setSessionCookie(c, token)

	return c.String(http.StatusOK, "Registered")
}

// Login authenticates with email and password and issues a session cookie
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	user, err := h.userRepository.GetUserByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid Credentials")
	}

	token, err := h.tokenCodec.Sign(user.ID.Hex(), user.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}
	h.setSessionCookie(c, token)

	return c.Redirect(http.StatusFound, "/profile")
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionTTL),
		HttpOnly: true,
	})
}
