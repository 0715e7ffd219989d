package server

import (
	"net/http"
	"net/url"
	"testing"

	"blogly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTags(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	for _, name := range []string{"serious", "cool", "fun"} {
		require.NoError(t, db.Create(&models.Tag{Name: name}).Error)
	}

	resp, body := get(t, app, "/tags")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "cool")
	assert.Less(t, index(body, "cool"), index(body, "fun"))
	assert.Less(t, index(body, "fun"), index(body, "serious"))
}

func TestShowTag_ListsPosts(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	user := seedUser(t, db, "Test", "User")
	post := seedPost(t, db, user.ID, "Tagged Post", "content")
	tag := &models.Tag{Name: "cool"}
	require.NoError(t, db.Create(tag).Error)
	require.NoError(t, db.Create(&models.PostTag{PostID: post.ID, TagID: tag.ID}).Error)

	resp, body := get(t, app, "/tags/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "cool")
	assert.Contains(t, body, "Tagged Post")
}

func TestShowTag_NotFound(t *testing.T) {
	t.Parallel()

	app, _, _ := setupTestApp(t)

	resp, _ := get(t, app, "/tags/7")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateTag(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)

	resp := postForm(t, app, "/tags/new", url.Values{"name": {"brand-new"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tags", resp.Header.Get("Location"))

	var tag models.Tag
	require.NoError(t, db.First(&tag, "name = ?", "brand-new").Error)
}

func TestCreateTag_MissingName(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)

	resp := postForm(t, app, "/tags/new", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateTag(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	require.NoError(t, db.Create(&models.Tag{Name: "before"}).Error)

	resp := postForm(t, app, "/tags/1/edit", url.Values{"name": {"after"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tags", resp.Header.Get("Location"))

	var tag models.Tag
	require.NoError(t, db.First(&tag, 1).Error)
	assert.Equal(t, "after", tag.Name)
}

func TestDeleteTag_KeepsPosts(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	user := seedUser(t, db, "Test", "User")
	post := seedPost(t, db, user.ID, "Survivor", "content")
	tag := &models.Tag{Name: "doomed"}
	require.NoError(t, db.Create(tag).Error)
	require.NoError(t, db.Create(&models.PostTag{PostID: post.ID, TagID: tag.ID}).Error)

	resp := postForm(t, app, "/tags/1/delete", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tags", resp.Header.Get("Location"))

	var tags, links, posts int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	require.NoError(t, db.Model(&models.PostTag{}).Count(&links).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.Zero(t, tags)
	assert.Zero(t, links)
	assert.EqualValues(t, 1, posts)
}
