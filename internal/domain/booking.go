package domain

import (
	"time"

	"github.com/teemx/GolfTee-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed tee-time reservation
type Booking struct {
	ID              int64
	UserID          int64
	CourseID        int64
	BookingDate     time.Time
	TeeTime         types.TimeString
	NumberOfPlayers int
	TotalPrice      float64 // Итоговая цена после применения скидки
	Status          BookingStatus
	DiscountCodeID  *int64
	PaymentIntentID string // Идентификатор платежа; уникален, защищает от повторного бронирования

	// Denormalized data for history
	CourseName string
	CourseCity *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// UserBookingsFilter фильтр для получения бронирований пользователя
type UserBookingsFilter struct {
	UserID          int64
	Status          *BookingStatus
	IncludeInactive bool
}
