package server

import (
	"github.com/gofiber/fiber/v2"

	"blogly/internal/models"
)

// ListUsers handles GET /users
func (s *Server) ListUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.List(c.Context())
	if err != nil {
		return s.renderAppError(c, err)
	}
	return s.render(c, fiber.StatusOK, "users.html", fiber.Map{
		"Users": users,
	})
}

// NewUserForm handles GET /users/new
func (s *Server) NewUserForm(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, "new-user.html", nil)
}

// CreateUser handles POST /users/new
func (s *Server) CreateUser(c *fiber.Ctx) error {
	names, err := s.requireForm(c, "first_name", "last_name")
	if err != nil {
		return nil
	}

	imageURL := c.FormValue("image_url")
	if imageURL == "" {
		imageURL = s.config.DefaultImageURL
	}

	user := &models.User{
		FirstName: names[0],
		LastName:  names[1],
		ImageURL:  imageURL,
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return s.renderAppError(c, err)
	}

	return c.Redirect("/users")
}

// ShowUser handles GET /users/:id
func (s *Server) ShowUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return s.renderAppError(c, err)
	}

	return s.render(c, fiber.StatusOK, "user-details.html", fiber.Map{
		"User": user,
	})
}

// EditUserForm handles GET /users/:id/edit
func (s *Server) EditUserForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return s.renderAppError(c, err)
	}

	return s.render(c, fiber.StatusOK, "edit-user.html", fiber.Map{
		"User": user,
	})
}

// UpdateUser handles POST /users/:id/edit
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return s.renderAppError(c, err)
	}

	// Overwrite every field from the form, blanks included. The edit form
	// intentionally has no required-field contract, unlike create.
	user.FirstName = c.FormValue("first_name")
	user.LastName = c.FormValue("last_name")
	user.ImageURL = c.FormValue("image_url")

	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return s.renderAppError(c, err)
	}

	return c.Redirect("/users")
}

// DeleteUser handles POST /users/:id/delete
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userRepo.Delete(c.Context(), id); err != nil {
		return s.renderAppError(c, err)
	}

	return c.Redirect("/users")
}
