package get_available_slots

import (
	"context"
	"time"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория слотов доступности
type AvailabilityRepository interface {
	ListByCourseDate(ctx context.Context, courseID int64, date time.Time) ([]*domain.AvailabilitySlot, error)
}

// CourseRepository интерфейс репозитория каталога полей
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
