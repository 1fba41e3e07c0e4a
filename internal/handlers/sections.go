package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"alexmorgan.design/internal/config"
	"alexmorgan.design/internal/models"
	"alexmorgan.design/internal/services"
	"alexmorgan.design/internal/widgets/navigation"
)

// SectionHandler handles page layout endpoints
type SectionHandler struct {
	sectionService *services.SectionService
	logger         *zap.Logger
}

// NewSectionHandler creates a new SectionHandler
func NewSectionHandler(ss *services.SectionService, logger *zap.Logger) *SectionHandler {
	return &SectionHandler{sectionService: ss, logger: orNop(logger)}
}

// GetLayout handles GET /api/sections - returns the section layout
func (h *SectionHandler) GetLayout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.sectionService.GetLayout())
}

// GetActiveSection handles GET /api/sections/active?scroll=&viewport=&header=
func (h *SectionHandler) GetActiveSection(w http.ResponseWriter, r *http.Request) {
	scrollY, err := parseFloatParam(r, "scroll", 0)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid scroll offset")
		return
	}

	viewport, err := parseFloatParam(r, "viewport", 0)
	if err != nil || viewport < 0 {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid viewport height")
		return
	}

	header, err := parseFloatParam(r, "header", 0)
	if err != nil || header < 0 {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid header height")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, h.sectionService.GetActiveSection(scrollY, viewport, header))
}

// GetVisibleSections handles GET /api/sections/visible?scroll=&viewport=
func (h *SectionHandler) GetVisibleSections(w http.ResponseWriter, r *http.Request) {
	scrollY, err := parseFloatParam(r, "scroll", 0)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid scroll offset")
		return
	}

	viewport, err := parseFloatParam(r, "viewport", DefaultViewport)
	if err != nil || viewport < 0 {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid viewport height")
		return
	}

	sections := h.sectionService.GetVisibleSections(scrollY, viewport)
	if sections == nil {
		sections = []models.Section{}
	}
	respondJSON(w, h.logger, http.StatusOK, sections)
}

// parseFloatParam parses a float query parameter with a default value
func parseFloatParam(r *http.Request, name string, defaultVal float64) (float64, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(val, 64)
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// probeFor maps the configured probe name to the scroll probe
func probeFor(name string) navigation.Probe {
	if name == config.ProbeHeader {
		return navigation.HeaderProbe
	}
	return navigation.SidebarProbe
}
