package update_affiliate

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/teemx/GolfTee-BookingService/internal/api/handlers"
	"github.com/teemx/GolfTee-BookingService/internal/api/middleware"
	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates"
	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates/models"
)

const (
	msgInvalidAffiliateID = "некорректный ID аффилиата"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "аффилиат не найден"
	msgReferralCodeTaken  = "реферальный код уже занят"
	msgInvalidInput       = "некорректные параметры запроса"
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

// Handle PATCH /api/v1/affiliates/{affiliateId}
// Доступно только админам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("PATCH /affiliates/{id} - Access denied")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	vars := mux.Vars(r)
	affiliateID, err := strconv.ParseInt(vars["affiliateId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /affiliates/{id} - Invalid affiliate ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAffiliateID)
		return
	}

	var req models.UpdateAffiliateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /affiliates/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), affiliateID, &req)
	if err != nil {
		switch {
		case errors.Is(err, affiliates.ErrAffiliateNotFound):
			h.logger.Warn("PATCH /affiliates/{id} - Affiliate not found: affiliate_id=%d", affiliateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, affiliates.ErrReferralCodeTaken):
			h.logger.Warn("PATCH /affiliates/{id} - Referral code taken: affiliate_id=%d", affiliateID)
			handlers.RespondConflict(w, msgReferralCodeTaken)

		case errors.Is(err, affiliates.ErrInvalidInput):
			h.logger.Warn("PATCH /affiliates/{id} - Invalid input: affiliate_id=%d, error=%v", affiliateID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /affiliates/{id} - Failed to update affiliate: affiliate_id=%d, error=%v",
				affiliateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /affiliates/{id} - Affiliate updated successfully: affiliate_id=%d", affiliateID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
