package list_commissions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/teemx/GolfTee-BookingService/internal/api/handlers"
	"github.com/teemx/GolfTee-BookingService/internal/api/middleware"
	"github.com/teemx/GolfTee-BookingService/internal/service/commissions"
	"github.com/teemx/GolfTee-BookingService/internal/service/commissions/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidAffiliateID = "некорректный ID аффилиата"
	msgInvalidStatus      = "некорректный статус комиссии"
	msgNoAffiliate        = "у пользователя нет аффилиатского профиля"
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

// Handle GET /api/v1/commissions?affiliateId=1&status=pending
// Админ видит все комиссии, промоутер - только свои
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /commissions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	var status *string
	if statusStr := query.Get("status"); statusStr != "" {
		status = &statusStr
	}

	var result *models.CommissionListResponse
	var err error

	if middleware.IsAdmin(r.Context()) {
		req := &models.ListCommissionsRequest{Status: status}
		if affiliateStr := query.Get("affiliateId"); affiliateStr != "" {
			affiliateID, parseErr := strconv.ParseInt(affiliateStr, 10, 64)
			if parseErr != nil {
				h.logger.Warn("GET /commissions - Invalid affiliate ID: %v", parseErr)
				handlers.RespondBadRequest(w, msgInvalidAffiliateID)
				return
			}
			req.AffiliateID = &affiliateID
		}
		result, err = h.service.List(r.Context(), req)
	} else {
		result, err = h.service.ListForUser(r.Context(), userID, status)
	}

	if err != nil {
		switch {
		case errors.Is(err, commissions.ErrAffiliateNotFound):
			h.logger.Warn("GET /commissions - No affiliate profile: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNoAffiliate)

		case errors.Is(err, commissions.ErrInvalidInput):
			h.logger.Warn("GET /commissions - Invalid status: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /commissions - Failed to list commissions: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /commissions - Commissions retrieved: user_id=%d, count=%d", userID, len(result.Commissions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
