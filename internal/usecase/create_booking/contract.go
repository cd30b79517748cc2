package create_booking

import (
	"context"
	"time"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	"github.com/teemx/GolfTee-BookingService/internal/integrations/stripe"
	"github.com/teemx/GolfTee-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Booking, error)
}

// CourseRepository интерфейс репозитория каталога полей
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
}

// AvailabilityRepository интерфейс репозитория слотов доступности
type AvailabilityRepository interface {
	Get(ctx context.Context, courseID int64, date time.Time, teeTime types.TimeString) (*domain.AvailabilitySlot, error)
	Decrement(ctx context.Context, slotID int64) error
}

// DiscountRepository интерфейс репозитория промокодов
type DiscountRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
	IncrementUsage(ctx context.Context, codeID int64) error
}

// AffiliateRepository интерфейс репозитория аффилиатов
type AffiliateRepository interface {
	GetByReferralCode(ctx context.Context, code string) (*domain.Affiliate, error)
}

// CommissionRepository интерфейс репозитория комиссий
type CommissionRepository interface {
	Create(ctx context.Context, commission *domain.Commission) (*domain.Commission, error)
}

// PaymentClient интерфейс платёжного клиента
type PaymentClient interface {
	GetPaymentIntent(ctx context.Context, intentID string) (*stripe.PaymentIntent, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
