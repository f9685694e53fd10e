// Package server contains the HTTP handlers for the post manager API.
package server

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"socialmanager/internal/bootstrap"
	"socialmanager/internal/catalog"
	"socialmanager/internal/composer"
	"socialmanager/internal/config"
	"socialmanager/internal/featureflags"
	"socialmanager/internal/middleware"
	"socialmanager/internal/models"
	"socialmanager/internal/notifications"
	"socialmanager/internal/repository"
	"socialmanager/internal/service"

	_ "socialmanager/docs" // swagger docs

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	runtime        *bootstrap.Runtime
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc
	postRepo       repository.PostRepository
	notifier       *notifications.Notifier
	hub            *notifications.Hub
	featureFlags   *featureflags.Manager
	catalog        *catalog.Catalog
	postService    *service.PostService
	composer       *composer.Composer
	view           *composer.View
}

// NewServer creates a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	rt, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.OptionsFromConfig(cfg))
	if err != nil {
		return nil, err
	}

	server, err := NewServerWithDeps(cfg, rt.DB, rt.Redis, rt.Posts)
	if err != nil {
		return nil, err
	}
	server.runtime = rt
	return server, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the store and Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, postRepo repository.PostRepository) (*Server, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("platform catalogue: %w", err)
	}

	// Initialize Prometheus metrics
	prom := middleware.InitMetrics("socialmanager-api")

	ctx, cancel := context.WithCancel(context.Background())
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		shutdownCtx:    ctx,
		shutdownFn:     cancel,
		postRepo:       postRepo,
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
		catalog:        cat,
	}

	server.hub = notifications.NewHub()

	// With Redis, events go through the channel so every replica's sockets
	// see them; StartEventLog relays the channel into the hub.
	var events service.EventPublisher = server.hub
	if redisClient != nil {
		server.notifier = notifications.NewNotifier(redisClient)
		events = server.notifier
	}

	ttl := time.Duration(cfg.ListCacheTTLSeconds) * time.Second
	server.postService = service.NewPostService(postRepo, events, server.featureFlags, ttl)
	server.composer = composer.New(server.postService, server.featureFlags, cat)
	server.view = composer.NewView(server.composer)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and correlation ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before the limiter so error responses still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowHeaders:  "Origin, Content-Type, Accept, X-Correlation-ID",
		ExposeHeaders: "X-Request-ID, X-Correlation-ID, X-Trace-ID, X-Post-Filters, X-RateLimit-Remaining",
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		MaxAge:        86400, // 24 hours
	}))

	// Global rate limiting (300 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Live post events for dashboards
	api.Get("/ws/posts", s.PostEventsSocket())

	write := middleware.RateLimit(s.redis, s.config.RateLimitPerMinute, time.Minute, "write")

	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", write, s.CreatePost)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	posts.Post("/:id/delete-request", s.RequestDelete)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", write, s.UpdatePost)
	posts.Delete("/:id", write, s.DeletePost)

	api.Post("/delete-confirmation", write, s.ConfirmDelete)

	comp := api.Group("/composer")
	comp.Get("/", s.GetComposer)
	comp.Post("/", s.OpenComposer)
	comp.Patch("/", s.UpdateComposer)
	comp.Post("/edit/:id", s.OpenComposerForEdit)
	comp.Post("/platforms/:platform", s.ToggleComposerPlatform)
	comp.Post("/media", s.AddComposerMedia)
	comp.Delete("/media/:name", s.RemoveComposerMedia)
	comp.Post("/save", write, s.SaveComposer)
	comp.Post("/cancel", s.CancelComposer)

	api.Get("/view", s.GetView)
	api.Put("/view", s.SetView)

	api.Get("/platforms", s.GetPlatforms)
	api.Get("/platforms/:platform", s.GetPlatform)

	api.Get("/flags", s.GetFeatureFlags)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	storeStatus := "healthy"
	if err := s.postService.Ready(ctx); err != nil {
		storeStatus = "unhealthy"
	}

	// Redis is optional; it only counts once it has been configured.
	redisStatus := "disabled"
	if s.config.RedisURL != "" {
		redisStatus = "healthy"
		if s.redis == nil {
			redisStatus = "unavailable"
		} else if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if storeStatus != "healthy" || (redisStatus != "healthy" && redisStatus != "disabled") {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"store":   storeStatus,
			"backend": s.postService.Backend(),
			"redis":   redisStatus,
		},
		"time": time.Now(),
	})
}

// StartEventLog subscribes to post events, logs each one and relays it to
// the dashboard sockets until Shutdown. It does nothing without Redis.
func (s *Server) StartEventLog() error {
	if s.notifier == nil {
		return nil
	}
	err := s.notifier.StartSubscriber(s.shutdownCtx, func(e notifications.PostEvent) {
		middleware.Logger.Info("post event",
			slog.String("type", e.Type),
			slog.Uint64("post_id", uint64(e.PostID)),
			slog.String("status", e.Status),
			slog.Any("platforms", e.Platforms),
		)
	})
	if err != nil {
		return err
	}
	return s.hub.StartWiring(s.shutdownCtx, s.notifier)
}

// ErrorHandler reports errors that escape a handler in the standard shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return models.RespondWithError(c, fe.Code, fe)
	}
	log.Printf("Error: %v", err)
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Cancel the server-scoped context to stop the event subscriber
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	if s.hub != nil {
		if err := s.hub.Shutdown(ctx); err != nil {
			log.Printf("error closing dashboard sockets: %v", err)
		}
	}

	if s.runtime != nil {
		if err := s.runtime.Close(); err != nil {
			log.Printf("error closing runtime: %v", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
