package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Index renders the landing page
func Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index", nil)
}

// LoginForm renders the login form
func LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", nil)
}

// UploadForm renders the profile picture upload form
func UploadForm(c echo.Context) error {
	return c.Render(http.StatusOK, "profileupload", nil)
}
