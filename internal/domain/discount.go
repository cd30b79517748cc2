package domain

import (
	"math"
	"time"
)

// DiscountType represents how a discount code reduces the base price
type DiscountType string

const (
	// DiscountPercentage значение - доля от базовой цены в диапазоне [0,1]
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixedAmount значение - фиксированная сумма в валюте заказа
	DiscountFixedAmount DiscountType = "fixed_amount"
)

// DiscountCode represents a promotional code with eligibility bounds
type DiscountCode struct {
	ID              int64
	Code            string
	Description     *string
	DiscountType    DiscountType
	Value           float64
	ExpiresAt       *time.Time
	MaxUses         *int
	CurrentUses     int
	MinBookingValue *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RejectionReason причина, по которой код не был применён
// Отказ не является ошибкой: бронирование продолжается без скидки
type RejectionReason string

const (
	RejectionUnknownCode   RejectionReason = "unknown_code"
	RejectionExpired       RejectionReason = "code_expired"
	RejectionUsesExhausted RejectionReason = "max_uses_reached"
	RejectionMinValue      RejectionReason = "below_min_booking_value"
	RejectionUnknownType   RejectionReason = "unknown_discount_type"
)

// Eligibility checks whether the code may be applied to a booking with the
// given base price at the given moment. Возвращает причину отказа или пустую
// строку, если код применим.
func (d *DiscountCode) Eligibility(basePrice float64, asOf time.Time) RejectionReason {
	if d.ExpiresAt != nil && asOf.After(*d.ExpiresAt) {
		return RejectionExpired
	}
	if d.MaxUses != nil && d.CurrentUses >= *d.MaxUses {
		return RejectionUsesExhausted
	}
	if d.MinBookingValue != nil && basePrice < *d.MinBookingValue {
		return RejectionMinValue
	}
	return ""
}

// Deduction computes the amount deducted from basePrice by this code.
// Для percentage - доля от базы; для fixed_amount - не больше самой базы.
func (d *DiscountCode) Deduction(basePrice float64) (float64, RejectionReason) {
	switch d.DiscountType {
	case DiscountPercentage:
		return RoundMoney(basePrice * d.Value), ""
	case DiscountFixedAmount:
		return math.Min(d.Value, basePrice), ""
	default:
		return 0, RejectionUnknownType
	}
}

// RoundMoney rounds a currency amount to two decimal places
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Cents converts a currency amount to integer cents
// Платёжный шлюз оперирует целыми центами; сравнение сумм делается в центах
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
