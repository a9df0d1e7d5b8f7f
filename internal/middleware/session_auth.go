package middleware

import (
	"net/http"

	"github.com/DevangDixit02/thoughtMemo/internal/auth"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "token"

// ContextUserKey is where the decoded session claims live on the request context.
const ContextUserKey = "user"

// SessionAuth gates routes that require a known identity. A missing or
// invalid token never surfaces as an error; the browser is sent back to the
// login page instead.
func SessionAuth(codec *auth.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/login")
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}

			// Store decoded claims in context
			c.Set(ContextUserKey, claims)

			return next(c)
		}
	}
}
