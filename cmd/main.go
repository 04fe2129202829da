package main

import (
	"strconv"
	"time"

	"vendor-service/internal/api"
	"vendor-service/internal/handler"
	"vendor-service/internal/middleware"
	"vendor-service/internal/model"
	"vendor-service/internal/store"
	"vendor-service/pkg/config"
	"vendor-service/pkg/jwtutil"
	"vendor-service/pkg/logger"
	"vendor-service/pkg/metrics"
	"vendor-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load("vendor-service")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting vendor service...", zap.String("environment", cfg.Server.Env))

	// Initialize JWT utilities
	tokens := jwtutil.New(&cfg.JWT)
	log.Info("JWT utilities initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize HTTP metrics middleware
	httpMetrics := metrics.NewHTTPMetrics("vendor-service")

	// Create the in-memory backend, seeded with the reference fixtures.
	// Each store is constructed once here and handed to its consumers;
	// it lives for the process lifetime.
	vendorStore := store.New(model.SeedVendors()...)
	contactStore := store.New(model.SeedContactPersons()...)
	prometheus.UpdateVendorCount(vendorStore.Len())
	log.Info("In-memory backend seeded",
		zap.Int("vendors", vendorStore.Len()),
		zap.Int("contacts", contactStore.Len()))

	// Wrap the stores in the simulated-latency facade
	vendors := api.NewVendorSimulator(vendorStore, cfg.API.Latency)
	contacts := api.NewContactSimulator(contactStore, cfg.API.Latency)
	auth := api.NewAuthSimulator(tokens, cfg.API.LoginLatency)
	log.Info("Simulated backend initialized",
		zap.Duration("latency", cfg.API.Latency),
		zap.Duration("login_latency", cfg.API.LoginLatency))

	vendorHandler := handler.NewVendorHandler(vendors)
	contactHandler := handler.NewContactHandler(contacts)
	authHandler := handler.NewAuthHandler(auth)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(httpMetrics.Middleware())

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Process request
			err := next(c)

			// Calculate duration
			duration := time.Since(start).Seconds()
			status := c.Response().Status

			// Log request details
			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Float64("duration_s", duration),
				zap.String("ip", c.RealIP()),
			)

			prometheus.HttpRequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Request().URL.Path,
				strconv.Itoa(status),
			).Inc()

			prometheus.HttpRequestDuration.WithLabelValues(
				c.Request().Method,
				c.Request().URL.Path,
				strconv.Itoa(status),
			).Observe(duration)

			return err
		}
	})

	// Routes
	// Public routes that don't require authentication
	e.GET("/", handler.Hello)
	e.GET("/health", handler.Hello)

	// Prometheus metrics endpoint
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	// Login is public; everything under /api requires a session token
	e.POST("/api/auth/login", authHandler.Login)

	apiGroup := e.Group("/api")
	apiGroup.Use(middleware.AuthMiddleware(tokens))

	// Vendor endpoints. Vendors cannot be deleted, only deactivated.
	apiGroup.GET("/vendors", vendorHandler.List)
	apiGroup.POST("/vendors", vendorHandler.Create)
	apiGroup.GET("/vendors/:id", vendorHandler.Get)
	apiGroup.PUT("/vendors/:id", vendorHandler.Update)
	apiGroup.GET("/vendors/:id/contacts", contactHandler.ListByVendor)

	// Contact person endpoints
	apiGroup.POST("/contacts", contactHandler.Create)
	apiGroup.GET("/contacts/:id", contactHandler.Get)
	apiGroup.PUT("/contacts/:id", contactHandler.Update)
	apiGroup.DELETE("/contacts/:id", contactHandler.Delete)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
