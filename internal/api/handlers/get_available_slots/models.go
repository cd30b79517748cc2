package get_available_slots

import (
	"github.com/teemx/GolfTee-BookingService/internal/domain"
	getSlots "github.com/teemx/GolfTee-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse модель ти-тайма
type SlotResponse struct {
	TeeTime        string  `json:"teeTime"` // "10:00"
	AvailableSpots int     `json:"availableSpots"`
	PricePerPlayer float64 `json:"pricePerPlayer"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	CourseID int64          `json:"courseId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			TeeTime:        slot.TeeTime.String(),
			AvailableSpots: slot.AvailableSpots,
			PricePerPlayer: slot.PricePerPlayer,
		}
	}

	return &SlotsResponse{
		CourseID: resp.CourseID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
