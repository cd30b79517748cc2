package create_affiliate

import (
	"errors"
	"net/http"

	"github.com/teemx/GolfTee-BookingService/internal/api/handlers"
	"github.com/teemx/GolfTee-BookingService/internal/api/middleware"
	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates"
	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgUserNotFound       = "пользователь не найден"
	msgNotPromoter        = "пользователь не является промоутером"
	msgAlreadyAffiliate   = "у пользователя уже есть аффилиатский профиль"
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

// Handle POST /api/v1/affiliates
// Доступно только админам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("POST /affiliates - Access denied")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req models.CreateAffiliateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /affiliates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, affiliates.ErrUserNotFound):
			h.logger.Warn("POST /affiliates - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, affiliates.ErrNotPromoter):
			h.logger.Warn("POST /affiliates - User is not a promoter: user_id=%d", req.UserID)
			handlers.RespondConflict(w, msgNotPromoter)

		case errors.Is(err, affiliates.ErrAlreadyAffiliate):
			h.logger.Warn("POST /affiliates - Already affiliate: user_id=%d", req.UserID)
			handlers.RespondConflict(w, msgAlreadyAffiliate)

		case errors.Is(err, affiliates.ErrReferralCodeTaken):
			h.logger.Warn("POST /affiliates - Referral code taken: user_id=%d", req.UserID)
			handlers.RespondConflict(w, msgReferralCodeTaken)

		case errors.Is(err, affiliates.ErrInvalidInput):
			h.logger.Warn("POST /affiliates - Invalid input: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /affiliates - Failed to create affiliate: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /affiliates - Affiliate created successfully: affiliate_id=%d, user_id=%d",
		result.ID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
