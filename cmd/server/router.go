package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pacificaway/pacificaway-api/internal/api"
	apiMiddleware "github.com/pacificaway/pacificaway-api/internal/api/middleware"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter registers every route with its middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	metrics := apiMiddleware.NewMetrics(app.registry)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.CORS(app.config.Server.CORSAllowedOrigins))
	r.Use(metrics.Handler)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	adminOnly := apiMiddleware.RequireRole(domain.RoleAdmin)

	authHandler := api.NewAuthHandler(app.userService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	serviceHandler := api.NewServiceHandler(app.catalogService, app.logger)
	itemHandler := api.NewItemHandler(app.catalogService, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryService, app.logger)
	bookingHandler := api.NewBookingHandler(app.bookingService, app.logger)
	geoHandler := api.NewGeoHandler(app.geoService, app.logger)
	healthHandler := api.NewHealthHandler(app.db, app.logger)

	r.Get("/", api.Root)
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/me", userHandler.Me)
		r.With(adminOnly).Get("/", userHandler.List)
		r.With(adminOnly).Get("/{id}", userHandler.Get)
	})

	r.Route("/services", func(r chi.Router) {
		r.Get("/", serviceHandler.List)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/", serviceHandler.Create)
			r.Patch("/{id}", serviceHandler.Update)
			r.Delete("/{id}", serviceHandler.Delete)
		})
	})

	r.Route("/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/", itemHandler.Create)
			r.Patch("/{id}", itemHandler.Update)
			r.Delete("/{id}", itemHandler.Delete)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/", categoryHandler.Create)
			r.Patch("/{id}", categoryHandler.Update)
			r.Delete("/{id}", categoryHandler.Delete)
		})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Post("/", bookingHandler.Create)
		r.Get("/me", bookingHandler.ListMine)
		r.Patch("/{id}/status", bookingHandler.UpdateStatus)
	})

	r.Route("/countries", func(r chi.Router) {
		r.Get("/", geoHandler.ListCountries)
		r.With(authMiddleware.Authenticate, adminOnly).Post("/", geoHandler.CreateCountry)
	})
	r.Route("/states", func(r chi.Router) {
		r.Get("/", geoHandler.ListStates)
		r.With(authMiddleware.Authenticate, adminOnly).Post("/", geoHandler.CreateState)
	})
	r.Route("/cities", func(r chi.Router) {
		r.Get("/", geoHandler.ListCities)
		r.With(authMiddleware.Authenticate, adminOnly).Post("/", geoHandler.CreateCity)
	})

	return r
}
