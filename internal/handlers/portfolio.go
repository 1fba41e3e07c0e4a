package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"alexmorgan.design/internal/services"
)

// PortfolioHandler handles portfolio-related endpoints
type PortfolioHandler struct {
	portfolioService *services.PortfolioService
	logger           *zap.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(ps *services.PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: ps, logger: orNop(logger)}
}

// ListItems handles GET /api/portfolio?filter=tag
func (h *PortfolioHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("filter")
	respondJSON(w, h.logger, http.StatusOK, h.portfolioService.Filter(tag))
}

// GetItem handles GET /api/portfolio/{id}
func (h *PortfolioHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.portfolioService.GetByID(id)
	if err != nil {
		respondError(w, h.logger, http.StatusNotFound, "Portfolio item not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// GetLightbox handles GET /api/portfolio/{id}/lightbox
func (h *PortfolioHandler) GetLightbox(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lb, err := h.portfolioService.Lightbox(id)
	if errors.Is(err, services.ErrNotFound) {
		respondError(w, h.logger, http.StatusNotFound, "Portfolio item not found")
		return
	}
	if err != nil {
		respondError(w, h.logger, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, h.logger, http.StatusOK, lb)
}

// ListCategories handles GET /api/categories
func (h *PortfolioHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.portfolioService.Categories())
}
