package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"blogly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_ShowsFiveMostRecentPosts(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	user := seedUser(t, db, "Test", "User")
	for i := 1; i <= 6; i++ {
		seedPost(t, db, user.ID, fmt.Sprintf("Post %d", i), "content")
	}

	resp, body := get(t, app, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Recent Posts")
	assert.Contains(t, body, "Post 6")
	assert.NotContains(t, body, "Post 1<")
	assert.Less(t, index(body, "Post 6"), index(body, "Post 2"))
}

func TestListPosts_OrderedByCreation(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	user := seedUser(t, db, "Test", "User")
	seedPost(t, db, user.ID, "Early Post", "content")
	seedPost(t, db, user.ID, "Late Post", "content")

	resp, body := get(t, app, "/posts")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "All Posts")
	assert.Less(t, index(body, "Early Post"), index(body, "Late Post"))
}

func TestShowPost(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	user := seedUser(t, db, "Test", "User")
	post := seedPost(t, db, user.ID, "Test Post", "post body text")
	tag := &models.Tag{Name: "cool"}
	require.NoError(t, db.Create(tag).Error)
	require.NoError(t, db.Create(&models.PostTag{PostID: post.ID, TagID: tag.ID}).Error)

	resp, body := get(t, app, fmt.Sprintf("/posts/%d", post.ID))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Test Post")
	assert.Contains(t, body, "post body text")
	assert.Contains(t, body, "By Test User")
	assert.Contains(t, body, "Posted "+post.WriteDate())
	assert.Contains(t, body, "cool")
}

func TestShowPost_NotFound(t *testing.T) {
	t.Parallel()

	app, _, _ := setupTestApp(t)

	resp, _ := get(t, app, "/posts/42")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNewPostForm_ListsTags(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	seedUser(t, db, "Test", "User")
	require.NoError(t, db.Create(&models.Tag{Name: "fun"}).Error)

	resp, body := get(t, app, "/users/1/posts/new")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Test User")
	assert.Contains(t, body, "fun")
}

func TestNewPostForm_UserNotFound(t *testing.T) {
	t.Parallel()

	app, _, _ := setupTestApp(t)

	resp, _ := get(t, app, "/users/99/posts/new")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreatePost_WithTags(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	user := seedUser(t, db, "Test", "User")
	fun := &models.Tag{Name: "fun"}
	cool := &models.Tag{Name: "cool"}
	require.NoError(t, db.Create(fun).Error)
	require.NoError(t, db.Create(cool).Error)

	resp := postForm(t, app, "/users/1/posts/new", url.Values{
		"title":   {"Tagged Post"},
		"content": {"content"},
		"tags":    {strconv.Itoa(int(fun.ID)), strconv.Itoa(int(cool.ID))},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/users/%d", user.ID), resp.Header.Get("Location"))

	var post models.Post
	require.NoError(t, db.First(&post, "title = ?", "Tagged Post").Error)
	var links int64
	require.NoError(t, db.Model(&models.PostTag{}).Where("post_id = ?", post.ID).Count(&links).Error)
	assert.EqualValues(t, 2, links)
}

func TestCreatePost_MissingTitle(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	seedUser(t, db, "Test", "User")

	resp := postForm(t, app, "/users/1/posts/new", url.Values{
		"content": {"content"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdatePost_ReplacesTags(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	user := seedUser(t, db, "Test", "User")
	post := seedPost(t, db, user.ID, "Before", "content")
	alpha := &models.Tag{Name: "alpha"}
	beta := &models.Tag{Name: "beta"}
	require.NoError(t, db.Create(alpha).Error)
	require.NoError(t, db.Create(beta).Error)
	require.NoError(t, db.Create(&models.PostTag{PostID: post.ID, TagID: alpha.ID}).Error)

	resp := postForm(t, app, fmt.Sprintf("/posts/%d/edit", post.ID), url.Values{
		"title":   {"After"},
		"content": {"new content"},
		"tags":    {strconv.Itoa(int(beta.ID))},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/posts/%d", post.ID), resp.Header.Get("Location"))

	var updated models.Post
	require.NoError(t, db.First(&updated, post.ID).Error)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "new content", updated.Content)

	var link models.PostTag
	require.NoError(t, db.First(&link, "post_id = ?", post.ID).Error)
	assert.Equal(t, beta.ID, link.TagID)
}

func TestDeletePost(t *testing.T) {
	t.Parallel()

	app, _, db := setupTestApp(t)
	user := seedUser(t, db, "Test", "User")
	post := seedPost(t, db, user.ID, "Doomed", "content")

	resp := postForm(t, app, fmt.Sprintf("/posts/%d/delete", post.ID), nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users", resp.Header.Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}
