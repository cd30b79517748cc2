package get_affiliate_by_code

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/teemx/GolfTee-BookingService/internal/api/handlers"
	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates"
)

const (
	msgMissingCode = "отсутствует реферальный код"
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

// Handle GET /api/v1/referrals/{referralCode}
// Публичная проверка реферального кода перед бронированием
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["referralCode"]
	if code == "" {
		h.logger.Warn("GET /referrals/{code} - Missing referral code")
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	result, err := h.service.GetByReferralCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, affiliates.ErrAffiliateNotFound):
			h.logger.Info("GET /referrals/{code} - Code not found: code=%s", code)
			handlers.RespondJSON(w, http.StatusOK, &ReferralCodeResponse{
				ReferralCode: code,
				Valid:        false,
			})

		case errors.Is(err, affiliates.ErrInvalidInput):
			h.logger.Warn("GET /referrals/{code} - Invalid code: %v", err)
			handlers.RespondBadRequest(w, msgMissingCode)

		default:
			h.logger.Error("GET /referrals/{code} - Failed to check code: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /referrals/{code} - Code valid: code=%s", result.ReferralCode)
	handlers.RespondJSON(w, http.StatusOK, &ReferralCodeResponse{
		ReferralCode: result.ReferralCode,
		Valid:        true,
	})
}
