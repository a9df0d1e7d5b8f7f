package handlers_test

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DevangDixit02/thoughtMemo/internal/middleware"
	"github.com/DevangDixit02/thoughtMemo/internal/models"
	"github.com/DevangDixit02/thoughtMemo/internal/repositories"
	"github.com/DevangDixit02/thoughtMemo/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// stubRenderer writes the template name so tests can assert which view was
// rendered without parsing real templates.
type stubRenderer struct{}

func (stubRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	_, err := fmt.Fprint(w, name)
	return err
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = stubRenderer{}
	e.Validator = validators.NewValidator()
	return e
}

// newFormContext builds a context for a urlencoded form request.
func newFormContext(e *echo.Echo, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate attaches session claims the way SessionAuth would.
func authenticate(c echo.Context, user *models.User) {
	c.Set(middleware.ContextUserKey, &models.SessionClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
	})
}

func seedUser(t *testing.T, repo *repositories.MockUserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Test User",
		Username: email,
		Age:      30,
		Email:    email,
		Password: "irrelevant-hash",
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func seedPost(t *testing.T, repo *repositories.MockPostRepository, author *models.User, content string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:  author.ID.Hex(),
		Content: content,
	}
	require.NoError(t, repo.CreatePost(context.Background(), post))
	return post
}
