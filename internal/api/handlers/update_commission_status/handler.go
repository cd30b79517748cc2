package update_commission_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/teemx/GolfTee-BookingService/internal/api/handlers"
	"github.com/teemx/GolfTee-BookingService/internal/api/middleware"
	"github.com/teemx/GolfTee-BookingService/internal/service/commissions"
	"github.com/teemx/GolfTee-BookingService/internal/service/commissions/models"
)

const (
	msgInvalidCommissionID = "некорректный ID комиссии"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgForbidden           = "доступ запрещен"
	msgNotFound            = "комиссия не найдена"
	msgInvalidStatus       = "некорректный статус комиссии"
)

type Handler struct {
	service CommissionService
	logger  Logger
}

func NewHandler(service CommissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/commissions/{commissionId}
// Доступно только админам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("PATCH /commissions/{id} - Access denied")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	vars := mux.Vars(r)
	commissionID, err := strconv.ParseInt(vars["commissionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /commissions/{id} - Invalid commission ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCommissionID)
		return
	}

	var req models.UpdateCommissionStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /commissions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), commissionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, commissions.ErrCommissionNotFound):
			h.logger.Warn("PATCH /commissions/{id} - Commission not found: commission_id=%d", commissionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, commissions.ErrInvalidStatus):
			h.logger.Warn("PATCH /commissions/{id} - Invalid status: commission_id=%d, status=%s",
				commissionID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /commissions/{id} - Failed to update commission: commission_id=%d, error=%v",
				commissionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /commissions/{id} - Commission updated successfully: commission_id=%d, status=%s",
		commissionID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
