package create_payment_intent

import (
	"time"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	quotePrice "github.com/teemx/GolfTee-BookingService/internal/usecase/quote_price"
)

// CreatePaymentIntentRequest HTTP request model
// Параметры совпадают с параметрами будущего бронирования: сумма платежа
// считается сервером по тем же правилам, что и котировка
type CreatePaymentIntentRequest struct {
	CourseID     int64   `json:"courseId"`
	Date         string  `json:"date"`    // "2026-05-16"
	TeeTime      string  `json:"teeTime"` // "10:00"
	Players      int     `json:"players"`
	DiscountCode *string `json:"discountCode,omitempty"`
}

// PaymentIntentResponse HTTP response model
type PaymentIntentResponse struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	CodeRejection   string  `json:"codeRejection,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель расчёта цены
func (r *CreatePaymentIntentRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &quotePrice.Request{
		CourseID:     r.CourseID,
		Date:         date,
		Players:      r.Players,
		DiscountCode: r.DiscountCode,
	}, nil
}
