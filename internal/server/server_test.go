package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp builds a Server against an in-memory sqlite database with
// routes registered on a fresh Fiber app.
func setupTestApp(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:            "8080",
		Env:             "test",
		DBName:          "blogly_test",
		DefaultImageURL: models.DefaultImageURL,
	}

	s := NewServerWithDeps(cfg, db)
	app := fiber.New()
	s.SetupRoutes(app)
	return app, s, db
}

// get runs a GET request and returns the response with its body as a string.
func get(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

// postForm submits an urlencoded form and returns the response.
func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp
}

// index is strings.Index, shortened for ordering assertions on page bodies.
func index(body, sub string) int {
	return strings.Index(body, sub)
}

// seedUser inserts a user directly through the database.
func seedUser(t *testing.T, db *gorm.DB, first, last string) *models.User {
	t.Helper()
	user := &models.User{FirstName: first, LastName: last, ImageURL: models.DefaultImageURL}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedPost inserts a post directly through the database.
func seedPost(t *testing.T, db *gorm.DB, userID uint, title, content string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: content, UserID: userID}
	require.NoError(t, db.Create(post).Error)
	return post
}
