package domain

import "time"

// Course represents a golf course in the catalog
type Course struct {
	ID           int64
	Name         string
	Description  *string
	Address      *string
	City         string
	State        string
	PriceWeekday float64 // Цена за одного игрока в будний день
	PriceWeekend float64 // Цена за одного игрока в выходной
	Holes        int
	Par          *int
	Length       *int
	Rating       float64
	ReviewCount  int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RateFor returns the per-player rate for the given calendar date.
// Суббота и воскресенье считаются выходными; дата трактуется как
// календарная (без привязки к таймзоне).
func (c *Course) RateFor(date time.Time) float64 {
	if IsWeekend(date) {
		return c.PriceWeekend
	}
	return c.PriceWeekday
}

// IsWeekend returns true if the date falls on Saturday or Sunday
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CourseFilter фильтр для выборки полей из каталога
type CourseFilter struct {
	City            *string
	State           *string
	Holes           *int
	MinPrice        *float64 // По будничной цене
	MaxPrice        *float64
	IncludeInactive bool
}
