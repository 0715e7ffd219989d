// Package server contains the HTTP handlers for the application's pages.
package server

import (
	"fmt"
	"sync"

	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/middleware"
	"blogly/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

var (
	promOnce       sync.Once
	promMiddleware *fiberprometheus.FiberPrometheus
)

// metrics returns the process-wide Prometheus middleware. The collector can
// only be registered once per process, hence the Once.
func metrics() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMiddleware = fiberprometheus.New("blogly")
	})
	return promMiddleware
}

// Server holds all dependencies and provides handlers
type Server struct {
	config   *config.Config
	db       *gorm.DB
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	tagRepo  repository.TagRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the DB itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	return &Server{
		config:   cfg,
		db:       db,
		userRepo: repository.NewUserRepository(db),
		postRepo: repository.NewPostRepository(db),
		tagRepo:  repository.NewTagRepository(db),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// OpenTelemetry server span per request
	app.Use(middleware.TracingMiddleware())

	// Prometheus metrics
	prom := metrics()
	app.Use(prom.Middleware)

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks and metrics
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	metrics().RegisterAt(app, "/metrics")

	app.Get("/", s.Home)

	// User routes
	app.Get("/users", s.ListUsers)
	app.Get("/users/new", s.NewUserForm)
	app.Post("/users/new", s.CreateUser)
	// Specific /:id/:resource routes BEFORE generic /:id route
	app.Get("/users/:id/posts/new", s.NewPostForm)
	app.Post("/users/:id/posts/new", s.CreatePost)
	app.Get("/users/:id/edit", s.EditUserForm)
	app.Post("/users/:id/edit", s.UpdateUser)
	app.Post("/users/:id/delete", s.DeleteUser)
	app.Get("/users/:id", s.ShowUser)

	// Post routes
	app.Get("/posts", s.ListPosts)
	app.Get("/posts/:id/edit", s.EditPostForm)
	app.Post("/posts/:id/edit", s.UpdatePost)
	app.Post("/posts/:id/delete", s.DeletePost)
	app.Get("/posts/:id", s.ShowPost)

	// Tag routes
	app.Get("/tags", s.ListTags)
	app.Get("/tags/new", s.NewTagForm)
	app.Post("/tags/new", s.CreateTag)
	app.Get("/tags/:id/edit", s.EditTagForm)
	app.Post("/tags/:id/edit", s.UpdateTag)
	app.Post("/tags/:id/delete", s.DeleteTag)
	app.Get("/tags/:id", s.ShowTag)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the database is reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
