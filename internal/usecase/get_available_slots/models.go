package get_available_slots

import (
	"time"

	"github.com/teemx/GolfTee-BookingService/pkg/types"
)

// Request модель запроса на получение доступных ти-таймов
type Request struct {
	CourseID int64     // ID поля
	Date     time.Time // Дата игры (без времени)
}

// Response модель ответа со списком ти-таймов
type Response struct {
	CourseID int64     // ID поля
	Date     time.Time // Дата, на которую запрашивались слоты
	Slots    []Slot    // Список ти-таймов, отсортированный по времени
}

// Slot модель ти-тайма
type Slot struct {
	TeeTime        types.TimeString // Время ти-тайма (например, "10:00")
	AvailableSpots int              // Количество свободных мест
	PricePerPlayer float64          // Цена за игрока по тарифу дня
}
