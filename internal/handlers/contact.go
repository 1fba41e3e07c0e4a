package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"alexmorgan.design/internal/models"
	"alexmorgan.design/internal/services"
)

// ContactHandler handles contact form endpoints
type ContactHandler struct {
	contactService *services.ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contactService: cs, logger: orNop(logger)}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, errs := h.contactService.Submit(req)
	if !errs.Valid() {
		respondJSON(w, h.logger, http.StatusUnprocessableEntity, map[string]interface{}{"errors": errs})
		return
	}

	respondJSON(w, h.logger, http.StatusAccepted, msg)
}

// ValidateField handles POST /api/contact/validate
func (h *ContactHandler) ValidateField(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Field == "" {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, h.contactService.ValidateField(req.Field, req.Value))
}
