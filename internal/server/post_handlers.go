package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"blogly/internal/models"
)

// homePostCount is how many recent posts the home page shows.
const homePostCount = 5

// Home handles GET / with the most recent posts.
func (s *Server) Home(c *fiber.Ctx) error {
	posts, err := s.postRepo.ListRecent(c.Context(), homePostCount)
	if err != nil {
		return s.renderAppError(c, err)
	}
	return s.render(c, fiber.StatusOK, "all-posts.html", fiber.Map{
		"Heading": "Recent Posts",
		"Posts":   posts,
	})
}

// ListPosts handles GET /posts
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.ListAll(c.Context())
	if err != nil {
		return s.renderAppError(c, err)
	}
	return s.render(c, fiber.StatusOK, "all-posts.html", fiber.Map{
		"Heading": "All Posts",
		"Posts":   posts,
	})
}

// NewPostForm handles GET /users/:id/posts/new
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return s.renderAppError(c, err)
	}

	tags, err := s.tagRepo.List(c.Context())
	if err != nil {
		return s.renderAppError(c, err)
	}

	return s.render(c, fiber.StatusOK, "new-post.html", fiber.Map{
		"User": user,
		"Tags": tags,
	})
}

// CreatePost handles POST /users/:id/posts/new
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return s.renderAppError(c, err)
	}

	fields, err := s.requireForm(c, "title", "content")
	if err != nil {
		return nil
	}

	post := &models.Post{
		Title:   fields[0],
		Content: fields[1],
		UserID:  user.ID,
	}
	if err := s.postRepo.Create(c.Context(), post, parseTagIDs(c)); err != nil {
		return s.renderAppError(c, err)
	}

	return c.Redirect(fmt.Sprintf("/users/%d", user.ID))
}

// ShowPost handles GET /posts/:id
func (s *Server) ShowPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return s.renderAppError(c, err)
	}

	return s.render(c, fiber.StatusOK, "post-details.html", fiber.Map{
		"Post": post,
	})
}

// EditPostForm handles GET /posts/:id/edit
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return s.renderAppError(c, err)
	}

	tags, err := s.tagRepo.List(c.Context())
	if err != nil {
		return s.renderAppError(c, err)
	}

	checked := make(map[uint]bool, len(post.Tags))
	for _, tag := range post.Tags {
		checked[tag.ID] = true
	}

	return s.render(c, fiber.StatusOK, "edit-post.html", fiber.Map{
		"Post":       post,
		"Tags":       tags,
		"TagChecked": checked,
	})
}

// UpdatePost handles POST /posts/:id/edit. Title and content are overwritten
// and the tag set is replaced to exactly match the submitted selection.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return s.renderAppError(c, err)
	}

	post.Title = c.FormValue("title")
	post.Content = c.FormValue("content")

	if err := s.postRepo.Update(c.Context(), post); err != nil {
		return s.renderAppError(c, err)
	}
	if err := s.postRepo.ReplaceTags(c.Context(), post.ID, parseTagIDs(c)); err != nil {
		return s.renderAppError(c, err)
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", post.ID))
}

// DeletePost handles POST /posts/:id/delete
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postRepo.Delete(c.Context(), id); err != nil {
		return s.renderAppError(c, err)
	}

	return c.Redirect("/users")
}
