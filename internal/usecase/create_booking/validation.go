package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourseID <= 0 {
		return fmt.Errorf("%w: courseID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TeeTime.IsZero() {
		return fmt.Errorf("%w: teeTime is required", ErrInvalidInput)
	}

	if err := req.TeeTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid teeTime format: %v", ErrInvalidInput, err)
	}

	if req.Players < domain.MinPlayers || req.Players > domain.MaxPlayers {
		return fmt.Errorf("%w: players must be between %d and %d", ErrInvalidInput, domain.MinPlayers, domain.MaxPlayers)
	}

	if strings.TrimSpace(req.PaymentIntentID) == "" {
		return fmt.Errorf("%w: paymentIntentID is required", ErrInvalidInput)
	}

	if req.DiscountCode != nil && strings.TrimSpace(*req.DiscountCode) == "" {
		return fmt.Errorf("%w: discount code must not be blank", ErrInvalidInput)
	}

	if req.ReferralCode != nil && strings.TrimSpace(*req.ReferralCode) == "" {
		return fmt.Errorf("%w: referral code must not be blank", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата игры не в прошлом
// Дата календарная: сравниваются только год, месяц и день
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
