package server

import (
	"github.com/gofiber/fiber/v2"

	"blogly/internal/models"
)

// ListTags handles GET /tags
func (s *Server) ListTags(c *fiber.Ctx) error {
	tags, err := s.tagRepo.List(c.Context())
	if err != nil {
		return s.renderAppError(c, err)
	}
	return s.render(c, fiber.StatusOK, "tags.html", fiber.Map{
		"Tags": tags,
	})
}

// ShowTag handles GET /tags/:id
func (s *Server) ShowTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagRepo.GetByID(c.Context(), id)
	if err != nil {
		return s.renderAppError(c, err)
	}

	return s.render(c, fiber.StatusOK, "tag-details.html", fiber.Map{
		"Tag": tag,
	})
}

// NewTagForm handles GET /tags/new
func (s *Server) NewTagForm(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, "new-tag.html", nil)
}

// CreateTag handles POST /tags/new
func (s *Server) CreateTag(c *fiber.Ctx) error {
	fields, err := s.requireForm(c, "name")
	if err != nil {
		return nil
	}

	tag := &models.Tag{Name: fields[0]}
	if err := s.tagRepo.Create(c.Context(), tag); err != nil {
		return s.renderAppError(c, err)
	}

	return c.Redirect("/tags")
}

// EditTagForm handles GET /tags/:id/edit
func (s *Server) EditTagForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagRepo.GetByID(c.Context(), id)
	if err != nil {
		return s.renderAppError(c, err)
	}

	return s.render(c, fiber.StatusOK, "edit-tag.html", fiber.Map{
		"Tag": tag,
	})
}

// UpdateTag handles POST /tags/:id/edit
func (s *Server) UpdateTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagRepo.GetByID(c.Context(), id)
	if err != nil {
		return s.renderAppError(c, err)
	}

	tag.Name = c.FormValue("name")

	if err := s.tagRepo.Update(c.Context(), tag); err != nil {
		return s.renderAppError(c, err)
	}

	return c.Redirect("/tags")
}

// DeleteTag handles POST /tags/:id/delete
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tagRepo.Delete(c.Context(), id); err != nil {
		return s.renderAppError(c, err)
	}

	return c.Redirect("/tags")
}
