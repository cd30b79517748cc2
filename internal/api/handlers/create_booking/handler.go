package create_booking

import (
	"errors"
	"net/http"

	"github.com/teemx/GolfTee-BookingService/internal/api/handlers"
	"github.com/teemx/GolfTee-BookingService/internal/api/middleware"
	createBooking "github.com/teemx/GolfTee-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgCourseNotFound       = "поле не найдено"
	msgSlotNotAvailable     = "выбранное время недоступно"
	msgPaymentNotFound      = "платёж не найден"
	msgPaymentNotConfirmed  = "платёж не подтверждён"
	msgAmountMismatch       = "оплаченная сумма не совпадает с ценой бронирования"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgInvalidInput         = "некорректные параметры запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, course_id=%d", userID, req.CourseID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCourseNotFound):
			h.logger.Warn("POST /bookings - Course not found: course_id=%d", req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, createBooking.ErrPaymentNotFound):
			h.logger.Warn("POST /bookings - Payment not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, createBooking.ErrPaymentNotConfirmed):
			h.logger.Warn("POST /bookings - Payment not confirmed: user_id=%d", userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentNotConfirmed)

		case errors.Is(err, createBooking.ErrAmountMismatch):
			h.logger.Warn("POST /bookings - Amount mismatch: user_id=%d, course_id=%d", userID, req.CourseID)
			handlers.RespondConflict(w, msgAmountMismatch)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, course_id=%d", userID, req.CourseID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, course_id=%d, error=%v",
				userID, req.CourseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Идемпотентный ретрай возвращает существующее бронирование
	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, course_id=%d",
		result.ID, userID, req.CourseID)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
