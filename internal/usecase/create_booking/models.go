package create_booking

import (
	"time"

	"github.com/teemx/GolfTee-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64            // ID пользователя
	CourseID        int64            // ID поля
	Date            time.Time        // Дата игры (без времени)
	TeeTime         types.TimeString // Время ти-тайма (например, "10:00")
	Players         int              // Количество игроков
	PaymentIntentID string           // Подтверждённый платёжный интент Stripe
	DiscountCode    *string          // Промокод (опционально)
	ReferralCode    *string          // Реферальный код аффилиата (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	UserID          int64            // ID пользователя
	CourseID        int64            // ID поля
	BookingDate     time.Time        // Дата игры
	TeeTime         types.TimeString // Время ти-тайма
	Players         int              // Количество игроков
	TotalPrice      float64          // Итоговая цена (после скидки)
	Status          string           // Статус бронирования
	PaymentIntentID string           // Идентификатор платежа

	// Денормализованные данные поля
	CourseName string
	CourseCity *string

	// AlreadyExisted true, если платёж уже был привязан к бронированию
	// (идемпотентный ретрай) и новое бронирование не создавалось
	AlreadyExisted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
