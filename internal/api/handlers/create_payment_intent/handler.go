package create_payment_intent

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/teemx/GolfTee-BookingService/internal/api/handlers"
	"github.com/teemx/GolfTee-BookingService/internal/api/middleware"
	"github.com/teemx/GolfTee-BookingService/internal/domain"
	quotePrice "github.com/teemx/GolfTee-BookingService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCourseNotFound     = "поле не найдено"
	msgInvalidInput       = "некорректные параметры запроса"
	msgPaymentFailed      = "не удалось создать платёж"
)

type Handler struct {
	quoteUseCase  QuotePriceUseCase
	paymentClient PaymentClient
	currency      string
	logger        Logger
}

func NewHandler(quoteUseCase QuotePriceUseCase, paymentClient PaymentClient, currency string, logger Logger) *Handler {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &Handler{
		quoteUseCase:  quoteUseCase,
		paymentClient: paymentClient,
		currency:      currency,
		logger:        logger,
	}
}

// Handle POST /api/v1/payments/intents
// Сумма интента считается сервером из котировки, клиентская сумма не принимается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/intents - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreatePaymentIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/intents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /payments/intents - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	quote, err := h.quoteUseCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrCourseNotFound):
			h.logger.Warn("POST /payments/intents - Course not found: course_id=%d", req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /payments/intents - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /payments/intents - Failed to quote price: course_id=%d, error=%v", req.CourseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	metadata := map[string]string{
		"user_id":   strconv.FormatInt(userID, 10),
		"course_id": strconv.FormatInt(req.CourseID, 10),
		"date":      req.Date,
		"tee_time":  req.TeeTime,
		"players":   strconv.Itoa(req.Players),
	}

	intent, err := h.paymentClient.CreatePaymentIntent(r.Context(), domain.Cents(quote.FinalPrice), h.currency, metadata)
	if err != nil {
		h.logger.Error("POST /payments/intents - Failed to create intent: user_id=%d, error=%v", userID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgPaymentFailed)
		return
	}

	h.logger.Info("POST /payments/intents - Intent created: intent_id=%s, user_id=%d, amount=%.2f",
		intent.ID, userID, quote.FinalPrice)
	handlers.RespondJSON(w, http.StatusCreated, &PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          quote.FinalPrice,
		Currency:        h.currency,
		CodeRejection:   quote.CodeRejection,
	})
}
