package list_affiliates

import (
	"net/http"

	"github.com/teemx/GolfTee-BookingService/internal/api/handlers"
	"github.com/teemx/GolfTee-BookingService/internal/api/middleware"
)

const (
	msgForbidden = "доступ запрещен"
)

type Handler struct {
	service AffiliateService
	logger  Logger
}

func NewHandler(service AffiliateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/affiliates
// Доступно только админам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /affiliates - Access denied")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /affiliates - Failed to list affiliates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /affiliates - Affiliates retrieved: count=%d", len(result.Affiliates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
