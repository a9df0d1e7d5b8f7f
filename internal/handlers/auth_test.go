package handlers_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/DevangDixit02/thoughtMemo/internal/auth"
	"github.com/DevangDixit02/thoughtMemo/internal/handlers"
	"github.com/DevangDixit02/thoughtMemo/internal/middleware"
	"github.com/DevangDixit02/thoughtMemo/internal/models"
	"github.com/DevangDixit02/thoughtMemo/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registerForm(email, password string) url.Values {
	return url.Values{
		"email":    {email},
		"password": {password},
		"username": {"anna"},
		"age":      {"30"},
		"name":     {"Anna"},
	}
}

func loginForm(email, password string) url.Values {
	return url.Values{
		"email":    {email},
		"password": {password},
	}
}

func sessionCookie(rec interface{ Result() *http.Response }) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestRegister_CreatesAccountAndIssuesSession(t *testing.T) {
	e := newEcho()
	userRepo := repositories.NewMockUserRepository()
	h := handlers.NewAuthHandler(userRepo, auth.NewTokenCodec("test-secret"))

	c, rec := newFormContext(e, http.MethodPost, "/register", registerForm("a@x.com", "pw1"))
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Registered", rec.Body.String())

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)

	user, err := userRepo.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "anna", user.Username)
	assert.Equal(t, models.DefaultProfilePic, user.ProfilePic)
	// Password is stored only as a hash
	assert.NotEqual(t, "pw1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw1")))
}

func TestRegister_DuplicateEmailRejectedWithoutSession(t *testing.T) {
	e := newEcho()
	userRepo := repositories.NewMockUserRepository()
	h := handlers.NewAuthHandler(userRepo, auth.NewTokenCodec("test-secret"))

	c, _ := newFormContext(e, http.MethodPost, "/register", registerForm("a@x.com", "pw1"))
	require.NoError(t, h.Register(c))

	original, err := userRepo.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)

	c2, rec2 := newFormContext(e, http.MethodPost, "/register", registerForm("a@x.com", "pw2"))
	err = h.Register(c2)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "User Already Exists", he.Message)

	assert.Nil(t, sessionCookie(rec2))
	assert.Equal(t, 1, userRepo.Count())

	// Original account and password hash are unchanged
	unchanged, err := userRepo.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, original.Password, unchanged.Password)
}

func TestLogin_FreshlyRegisteredAccount(t *testing.T) {
	e := newEcho()
	userRepo := repositories.NewMockUserRepository()
	codec := auth.NewTokenCodec("test-secret")
	h := handlers.NewAuthHandler(userRepo, codec)

	c, _ := newFormContext(e, http.MethodPost, "/register", registerForm("a@x.com", "pw1"))
	require.NoError(t, h.Register(c))

	c2, rec2 := newFormContext(e, http.MethodPost, "/login", loginForm("a@x.com", "pw1"))
	require.NoError(t, h.Login(c2))

	assert.Equal(t, http.StatusFound, rec2.Code)
	assert.Equal(t, "/profile", rec2.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(rec2)
	require.NotNil(t, cookie)

	claims, err := codec.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestLogin_WrongPasswordIssuesNoCookie(t *testing.T) {
	e := newEcho()
	userRepo := repositories.NewMockUserRepository()
	h := handlers.NewAuthHandler(userRepo, auth.NewTokenCodec("test-secret"))

	c, _ := newFormContext(e, http.MethodPost, "/register", registerForm("a@x.com", "pw1"))
	require.NoError(t, h.Register(c))

	c2, rec2 := newFormContext(e, http.MethodPost, "/login", loginForm("a@x.com", "wrong"))
	err := h.Login(c2)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "Invalid Credentials", he.Message)
	assert.Nil(t, sessionCookie(rec2))
}

func TestLogin_UnknownEmail(t *testing.T) {
	e := newEcho()
	h := handlers.NewAuthHandler(repositories.NewMockUserRepository(), auth.NewTokenCodec("test-secret"))

	c, rec := newFormContext(e, http.MethodPost, "/login", loginForm("nobody@x.com", "pw1"))
	err := h.Login(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "User not found", he.Message)
	assert.Nil(t, sessionCookie(rec))
}

func TestLogout_ExpiresCookieAndRedirects(t *testing.T) {
	e := newEcho()
	h := handlers.NewAuthHandler(repositories.NewMockUserRepository(), auth.NewTokenCodec("test-secret"))

	c, rec := newFormContext(e, http.MethodGet, "/logout", url.Values{})
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
