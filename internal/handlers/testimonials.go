package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"alexmorgan.design/internal/services"
)

// TestimonialHandler handles testimonial endpoints
type TestimonialHandler struct {
	testimonialService *services.TestimonialService
	logger             *zap.Logger
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(ts *services.TestimonialService, logger *zap.Logger) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: ts, logger: orNop(logger)}
}

// ListTestimonials handles GET /api/testimonials
func (h *TestimonialHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.testimonialService.GetAll())
}
