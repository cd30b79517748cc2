package affiliates

import (
	"context"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

// AffiliateRepository интерфейс репозитория аффилиатов
type AffiliateRepository interface {
	Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error)
	GetByID(ctx context.Context, id int64) (*domain.Affiliate, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Affiliate, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.Affiliate, error)
	List(ctx context.Context) ([]*domain.Affiliate, error)
	Update(ctx context.Context, id int64, commissionRate *float64, referralCode *string) (*domain.Affiliate, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
