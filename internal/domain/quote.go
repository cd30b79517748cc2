package domain

import (
	"math"
	"time"
)

// AppliedDiscount описывает применённую к котировке скидку
type AppliedDiscount struct {
	Code           string
	AmountDeducted float64
}

// PriceQuote represents a computed price for a prospective booking
type PriceQuote struct {
	BasePrice  float64
	Discount   *AppliedDiscount // nil, если скидка не применена
	FinalPrice float64
	// Rejection заполняется, когда код передан, но не применён
	// Отказ кода не ошибка: котировка считается без скидки
	Rejection RejectionReason
}

// ComputeQuote computes the price for (course, date, players) with an optional
// discount code. Бронирование и котировка обязаны считать цену одним и тем же
// кодом, поэтому расчёт вынесен сюда и не зависит от слоя вызова.
func ComputeQuote(course *Course, date time.Time, players int, code *DiscountCode, asOf time.Time) PriceQuote {
	basePrice := RoundMoney(course.RateFor(date) * float64(players))

	quote := PriceQuote{
		BasePrice:  basePrice,
		FinalPrice: basePrice,
	}

	if code == nil {
		return quote
	}

	if reason := code.Eligibility(basePrice, asOf); reason != "" {
		quote.Rejection = reason
		return quote
	}

	deducted, reason := code.Deduction(basePrice)
	if reason != "" {
		quote.Rejection = reason
		return quote
	}

	quote.Discount = &AppliedDiscount{
		Code:           code.Code,
		AmountDeducted: deducted,
	}
	quote.FinalPrice = RoundMoney(math.Max(0, basePrice-deducted))

	return quote
}
