package server

import (
	"bytes"
	"embed"
	"html/template"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// The rendering layer is deliberately thin: every page is a standalone
// template sharing the head/foot partials defined in layout.html.
//
//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// render executes the named template and writes it as an HTML response.
func (s *Server) render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// renderAppError maps an AppError onto the right status code and renders the
// error page. Database failures keep their 500; nothing is swallowed.
func (s *Server) renderAppError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if models.IsNotFound(err) {
		status = fiber.StatusNotFound
	}
	return s.renderError(c, status, err)
}

func (s *Server) renderError(c *fiber.Ctx, status int, err error) error {
	return s.render(c, status, "error.html", fiber.Map{
		"Status":  status,
		"Message": err.Error(),
	})
}
