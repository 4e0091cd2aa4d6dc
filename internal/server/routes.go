package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tourismportal/internal/auth"
	"tourismportal/internal/db"
	"tourismportal/internal/email"
	"tourismportal/internal/handlers"
	"tourismportal/internal/handlers/api"
	"tourismportal/internal/images"
	"tourismportal/internal/middleware"
)

// Deps bundles the shared services the routes need.
type Deps struct {
	DB         *db.DB
	JWT        *auth.JWTService
	TokenStore *auth.TokenStore
	Images     *images.Store
	Notifier   *email.Notifier
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	authMiddleware := middleware.NewAuthMiddleware(deps.JWT, deps.TokenStore, deps.DB)

	authHandler := api.NewAuthHandler(deps.DB, deps.JWT, deps.TokenStore)
	placeHandler := api.NewPlaceHandler(deps.DB, deps.Images, deps.Notifier)
	moderationHandler := api.NewModerationHandler(deps.DB, deps.Notifier)
	carouselHandler := api.NewCarouselHandler(deps.DB)
	healthHandler := api.NewHealthHandler(deps.DB)
	pageHandler := handlers.NewPageHandler(deps.DB, s.Cfg)

	// Pages. OptionalAuth lets the shells greet a signed-in user; the
	// actual enforcement happens on the API routes below.
	s.App.Get("/", authMiddleware.OptionalAuth, pageHandler.Landing)
	s.App.Get("/auth", authMiddleware.OptionalAuth, pageHandler.Auth)
	s.App.Get("/dashboard", authMiddleware.OptionalAuth, pageHandler.Dashboard)
	s.App.Get("/admin", authMiddleware.OptionalAuth, pageHandler.Admin)
	s.App.Get("/carousel", authMiddleware.OptionalAuth, pageHandler.Carousel)

	// Public API
	s.App.Post("/api/register", authHandler.Register)
	s.App.Post("/api/login", authHandler.Login)
	s.App.Post("/api/refresh", authHandler.Refresh)
	s.App.Get("/api/approvedplaces", placeHandler.ListApproved)
	s.App.Get("/api/carousel", carouselHandler.Feed)
	s.App.Get("/api/health", healthHandler.Check)

	// Authenticated API
	s.App.Post("/api/logout", authMiddleware.RequireAuth, authHandler.Logout)
	s.App.Post("/api/change-password", authMiddleware.RequireAuth, authHandler.ChangePassword)
	s.App.Post("/api/places", authMiddleware.RequireAuth, placeHandler.Create)
	s.App.Get("/api/places", authMiddleware.RequireAuth, placeHandler.List)
	s.App.Put("/api/places/:id", authMiddleware.RequireAuth, placeHandler.Update)

	// Admin API (moderation)
	s.App.Get("/api/pending", authMiddleware.RequireAdmin, moderationHandler.ListPending)
	s.App.Put("/api/places/:id/status", authMiddleware.RequireAdmin, moderationHandler.UpdatePlaceStatus)
	s.App.Get("/api/users/pending", authMiddleware.RequireAdmin, moderationHandler.ListPendingUsers)
	s.App.Put("/api/users/status-remarks/:id", authMiddleware.RequireAdmin, moderationHandler.UpdateUserStatus)

	// Prometheus metrics
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
