package quote_price

import (
	"time"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	quotePrice "github.com/teemx/GolfTee-BookingService/internal/usecase/quote_price"
)

// QuotePriceRequest HTTP request model
type QuotePriceRequest struct {
	CourseID     int64   `json:"courseId"`
	Date         string  `json:"date"` // "2026-05-16"
	Players      int     `json:"players"`
	DiscountCode *string `json:"discountCode,omitempty"`
}

// AppliedDiscountResponse применённая скидка
type AppliedDiscountResponse struct {
	Code           string  `json:"code"`
	AmountDeducted float64 `json:"amountDeducted"`
}

// QuotePriceResponse HTTP response model
type QuotePriceResponse struct {
	CourseID      int64                    `json:"courseId"`
	Date          string                   `json:"date"`
	Players       int                      `json:"players"`
	BasePrice     float64                  `json:"basePrice"`
	Discount      *AppliedDiscountResponse `json:"discount,omitempty"`
	FinalPrice    float64                  `json:"finalPrice"`
	CodeRejection string                   `json:"codeRejection,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuotePriceRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuotePriceResponse {
	result := &QuotePriceResponse{
		CourseID:      resp.CourseID,
		Date:          resp.Date.Format(domain.DateFormat),
		Players:       resp.Players,
		BasePrice:     resp.BasePrice,
		FinalPrice:    resp.FinalPrice,
		CodeRejection: resp.CodeRejection,
	}

	if resp.Discount != nil {
		result.Discount = &AppliedDiscountResponse{
			Code:           resp.Discount.Code,
			AmountDeducted: resp.Discount.AmountDeducted,
		}
	}

	return result
}
