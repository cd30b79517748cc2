package create_booking

import (
	"time"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	createBooking "github.com/teemx/GolfTee-BookingService/internal/usecase/create_booking"
	"github.com/teemx/GolfTee-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourseID        int64   `json:"courseId"`
	BookingDate     string  `json:"bookingDate"` // "2026-05-16"
	TeeTime         string  `json:"teeTime"`     // "10:00"
	Players         int     `json:"players"`
	PaymentIntentID string  `json:"paymentIntentId"`
	DiscountCode    *string `json:"discountCode,omitempty"`
	ReferralCode    *string `json:"referralCode,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	CourseID        int64   `json:"courseId"`
	BookingDate     string  `json:"bookingDate"`
	TeeTime         string  `json:"teeTime"`
	Players         int     `json:"players"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	PaymentIntentID string  `json:"paymentIntentId"`
	CourseName      string  `json:"courseName"`
	CourseCity      *string `json:"courseCity,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	teeTime, err := types.NewTimeStringFromString(r.TeeTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		CourseID:        r.CourseID,
		Date:            bookingDate,
		TeeTime:         teeTime,
		Players:         r.Players,
		PaymentIntentID: r.PaymentIntentID,
		DiscountCode:    r.DiscountCode,
		ReferralCode:    r.ReferralCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		CourseID:        resp.CourseID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		TeeTime:         resp.TeeTime.String(),
		Players:         resp.Players,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		PaymentIntentID: resp.PaymentIntentID,
		CourseName:      resp.CourseName,
		CourseCity:      resp.CourseCity,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
