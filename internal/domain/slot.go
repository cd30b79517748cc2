package domain

import (
	"time"

	"github.com/teemx/GolfTee-BookingService/pkg/types"
)

// AvailabilitySlot represents remaining capacity for one tee time
// Ключ слота - (course, date, tee time); остаток мест никогда не уходит ниже нуля
type AvailabilitySlot struct {
	ID             int64
	CourseID       int64
	Date           time.Time
	TeeTime        types.TimeString
	AvailableSlots int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAvailable returns true if at least one spot remains
func (s *AvailabilitySlot) IsAvailable() bool {
	return s.AvailableSlots > 0
}
