package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"alexmorgan.design/internal/config"
	"alexmorgan.design/internal/middleware"
	"alexmorgan.design/internal/services"
	"alexmorgan.design/internal/timing"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, content *services.ContentStore, logger *zap.Logger) http.Handler {
	logger = orNop(logger)
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize services
	portfolioService := services.NewPortfolioService(content)
	testimonialService := services.NewTestimonialService(content)
	sectionService := services.NewSectionService(content, probeFor(cfg.Widgets.ScrollProbe))
	contactService := services.NewContactService(logger, cfg.Contact.OutboxLimit)

	// Initialize handlers
	portfolioHandler := NewPortfolioHandler(portfolioService, logger)
	testimonialHandler := NewTestimonialHandler(testimonialService, logger)
	sectionHandler := NewSectionHandler(sectionService, logger)
	contactHandler := NewContactHandler(contactService, logger)
	viewHandler := NewViewHandler(ViewDeps{
		Content:        content,
		Portfolio:      portfolioService,
		Testimonials:   testimonialService,
		Sections:       sectionService,
		Contact:        contactService,
		Widgets:        cfg.Widgets,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Scheduler:      timing.NewReal(),
		Logger:         logger,
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Portfolio endpoints
		r.Get("/portfolio", portfolioHandler.ListItems)
		r.Get("/portfolio/{id}", portfolioHandler.GetItem)
		r.Get("/portfolio/{id}/lightbox", portfolioHandler.GetLightbox)
		r.Get("/categories", portfolioHandler.ListCategories)

		// Testimonial endpoints
		r.Get("/testimonials", testimonialHandler.ListTestimonials)

		// Layout endpoints
		r.Get("/sections", sectionHandler.GetLayout)
		r.Get("/sections/active", sectionHandler.GetActiveSection)
		r.Get("/sections/visible", sectionHandler.GetVisibleSections)

		// Contact endpoints
		r.Post("/contact", contactHandler.Submit)
		r.Post("/contact/validate", contactHandler.ValidateField)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// View session socket
	r.Get("/ws/view", viewHandler.Serve)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.Server.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Serve index.html at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.Server.StaticDir, "index.html"))
	})

	return r
}

// orNop returns logger, or a no-op logger when it is nil
func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
