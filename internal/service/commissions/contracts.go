package commissions

import (
	"context"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

// CommissionRepository интерфейс репозитория комиссий
type CommissionRepository interface {
	List(ctx context.Context, filter domain.CommissionFilter) ([]*domain.Commission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CommissionStatus) (*domain.Commission, error)
}

// AffiliateRepository интерфейс репозитория аффилиатов
type AffiliateRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Affiliate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
