package catalog

import (
	"context"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

// CourseRepository интерфейс репозитория каталога полей
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	List(ctx context.Context, filter domain.CourseFilter) ([]*domain.Course, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
