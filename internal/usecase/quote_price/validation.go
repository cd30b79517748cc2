package quote_price

import (
	"fmt"
	"strings"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourseID <= 0 {
		return fmt.Errorf("%w: courseID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Players < domain.MinPlayers || req.Players > domain.MaxPlayers {
		return fmt.Errorf("%w: players must be between %d and %d", ErrInvalidInput, domain.MinPlayers, domain.MaxPlayers)
	}

	if req.DiscountCode != nil && strings.TrimSpace(*req.DiscountCode) == "" {
		return fmt.Errorf("%w: discount code must not be blank", ErrInvalidInput)
	}

	return nil
}
