package server

import (
	"errors"
	"strconv"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = s.renderError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// requireForm reads the named form fields, failing the request with a 400
// when any of them is absent or blank. Returns errResponseWritten on failure.
func (s *Server) requireForm(c *fiber.Ctx, names ...string) ([]string, error) {
	values := make([]string, 0, len(names))
	for _, name := range names {
		v := c.FormValue(name)
		if v == "" {
			_ = s.renderError(c, fiber.StatusBadRequest,
				models.NewValidationError(name+" is required"))
			return nil, errResponseWritten
		}
		values = append(values, v)
	}
	return values, nil
}

// parseTagIDs reads the multi-select "tags" form field as a list of tag ids.
// Unparseable values are dropped; an empty selection is a valid empty set.
func parseTagIDs(c *fiber.Ctx) []uint {
	var ids []uint
	for _, raw := range c.Request().PostArgs().PeekMulti("tags") {
		id, err := strconv.Atoi(string(raw))
		if err == nil && id > 0 {
			ids = append(ids, uint(id))
		}
	}
	return ids
}
