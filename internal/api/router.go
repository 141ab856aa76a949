package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/xgenai/careers-platform/internal/api/handler"
	"github.com/xgenai/careers-platform/internal/api/middleware"
	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

// Handlers groups the wired handler set the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Admin        *handler.AdminHandler
	Applications *handler.ApplicationHandler
	Interns      *handler.InternHandler
	Health       *handler.HealthHandler
	HealthDeps   *handler.HealthDependenciesHandler
}

// NewRouter builds and returns the Echo instance with all routes
// registered. registry isolates request metrics; tests pass a fresh one
// so repeated routers never collide on registration.
func NewRouter(h Handlers, sessions ports.SessionRegistry, corsOrigins string, registry *prometheus.Registry, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: strings.Split(corsOrigins, ","),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "careers",
		Registerer: registry,
	}))

	userAuth := middleware.Auth(sessions, domain.KindUser)
	adminAuth := middleware.Auth(sessions, domain.KindAdmin)
	internAuth := middleware.Auth(sessions, domain.KindIntern)

	// --- Public routes ---
	e.POST("/api/signup", h.Auth.Signup)
	e.POST("/api/login", h.Auth.Login)
	e.POST("/api/admin/login", h.Auth.AdminLogin)
	e.POST("/api/intern/login", h.Auth.InternLogin)
	e.POST("/api/applications", h.Applications.Submit)
	e.DELETE("/api/clear-data", h.Admin.ClearData)

	// --- User routes ---
	e.GET("/api/user/dashboard", h.User.Dashboard, userAuth)
	e.POST("/api/user/projects", h.User.AddProject, userAuth)

	// --- Admin routes ---
	e.POST("/api/admin/logout", h.Auth.AdminLogout, adminAuth)
	e.GET("/api/users", h.Admin.ListUsers, adminAuth)
	e.GET("/api/admin/all-data", h.Admin.AllData, adminAuth)
	e.GET("/api/stats", h.Admin.Stats, adminAuth)
	e.GET("/api/emails", h.Admin.ListEmails, adminAuth)
	e.GET("/api/admin/applications", h.Applications.List, adminAuth)
	e.PUT("/api/admin/applications/:id/status", h.Applications.UpdateStatus, adminAuth)
	e.POST("/api/admin/select-intern", h.Applications.SelectIntern, adminAuth)
	e.POST("/api/admin/send-application-email", h.Admin.SendApplicationEmail, adminAuth)
	e.POST("/api/admin/weekly-task", h.Interns.CreateTask, adminAuth)
	e.GET("/api/admin/interns", h.Interns.ListInterns, adminAuth)

	// --- Intern routes ---
	e.GET("/api/intern/dashboard", h.Interns.Dashboard, internAuth)
	e.POST("/api/intern/submit-task", h.Interns.SubmitTask, internAuth)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", h.Health.Liveness)              // liveness  – is the process alive?
	e.GET("/health/ready", h.HealthDeps.Readiness)   // readiness – are dependencies up?
	// Serve both the request metrics and the app counters registered in
	// the default registry.
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{registry, prometheus.DefaultGatherer},
	}))

	return e
}
