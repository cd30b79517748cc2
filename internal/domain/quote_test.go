package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemx/GolfTee-BookingService/pkg/ptr"
)

func testCourse() *Course {
	return &Course{
		ID:           1,
		Name:         "Club de Golf Chapultepec",
		City:         "Naucalpan",
		State:        "MEX",
		PriceWeekday: 140,
		PriceWeekend: 160,
		Holes:        18,
		IsActive:     true,
	}
}

func TestComputeQuote_WeekdayRate(t *testing.T) {
	course := testCourse()
	// Четверг
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	quote := ComputeQuote(course, date, 2, nil, time.Now())

	assert.Equal(t, 280.0, quote.BasePrice)
	assert.Equal(t, 280.0, quote.FinalPrice)
	assert.Nil(t, quote.Discount)
	assert.Empty(t, quote.Rejection)
}

func TestComputeQuote_WeekendRate(t *testing.T) {
	course := testCourse()
	// Суббота
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	quote := ComputeQuote(course, date, 2, nil, time.Now())

	assert.Equal(t, 320.0, quote.BasePrice)
	assert.Equal(t, 320.0, quote.FinalPrice)
}

func TestComputeQuote_PercentageDiscount(t *testing.T) {
	course := testCourse()
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	code := &DiscountCode{
		ID:           1,
		Code:         "SUMMER10",
		DiscountType: DiscountPercentage,
		Value:        0.1,
	}

	quote := ComputeQuote(course, date, 2, code, time.Now())

	require.NotNil(t, quote.Discount)
	assert.Equal(t, "SUMMER10", quote.Discount.Code)
	assert.Equal(t, 28.0, quote.Discount.AmountDeducted)
	assert.Equal(t, 252.0, quote.FinalPrice)
	assert.Empty(t, quote.Rejection)
}

func TestComputeQuote_FixedAmountClampedToBase(t *testing.T) {
	course := testCourse()
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	code := &DiscountCode{
		ID:           2,
		Code:         "BIGFIX",
		DiscountType: DiscountFixedAmount,
		Value:        500,
	}

	quote := ComputeQuote(course, date, 2, code, time.Now())

	require.NotNil(t, quote.Discount)
	assert.Equal(t, 280.0, quote.Discount.AmountDeducted)
	assert.Equal(t, 0.0, quote.FinalPrice)
}

func TestComputeQuote_BelowMinBookingValue(t *testing.T) {
	course := testCourse()
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	code := &DiscountCode{
		ID:              3,
		Code:            "VIP20",
		DiscountType:    DiscountPercentage,
		Value:           0.2,
		MinBookingValue: ptr.Ptr(300.0),
	}

	quote := ComputeQuote(course, date, 2, code, time.Now())

	assert.Nil(t, quote.Discount)
	assert.Equal(t, RejectionMinValue, quote.Rejection)
	assert.Equal(t, 280.0, quote.FinalPrice)
}

func TestComputeQuote_ExpiredCode(t *testing.T) {
	course := testCourse()
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	code := &DiscountCode{
		ID:           4,
		Code:         "OLD",
		DiscountType: DiscountPercentage,
		Value:        0.1,
		ExpiresAt:    ptr.Ptr(asOf.Add(-time.Hour)),
	}

	quote := ComputeQuote(course, date, 2, code, asOf)

	assert.Nil(t, quote.Discount)
	assert.Equal(t, RejectionExpired, quote.Rejection)
	assert.Equal(t, 280.0, quote.FinalPrice)
}

func TestComputeQuote_MaxUsesReached(t *testing.T) {
	course := testCourse()
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	code := &DiscountCode{
		ID:           5,
		Code:         "LIMITED",
		DiscountType: DiscountPercentage,
		Value:        0.1,
		MaxUses:      ptr.Ptr(100),
		CurrentUses:  100,
	}

	quote := ComputeQuote(course, date, 2, code, time.Now())

	assert.Nil(t, quote.Discount)
	assert.Equal(t, RejectionUsesExhausted, quote.Rejection)
}

func TestComputeQuote_UnknownDiscountType(t *testing.T) {
	course := testCourse()
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	code := &DiscountCode{
		ID:           6,
		Code:         "WEIRD",
		DiscountType: DiscountType("loyalty_points"),
		Value:        0.1,
	}

	quote := ComputeQuote(course, date, 2, code, time.Now())

	assert.Nil(t, quote.Discount)
	assert.Equal(t, RejectionUnknownType, quote.Rejection)
	assert.Equal(t, 280.0, quote.FinalPrice)
}

func TestComputeQuote_Deterministic(t *testing.T) {
	course := testCourse()
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	code := &DiscountCode{
		ID:           7,
		Code:         "SUMMER10",
		DiscountType: DiscountPercentage,
		Value:        0.1,
	}

	first := ComputeQuote(course, date, 4, code, asOf)
	second := ComputeQuote(course, date, 4, code, asOf)

	assert.Equal(t, first, second)
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.13, RoundMoney(10.125))
	assert.Equal(t, 10.55, RoundMoney(10.554))
	assert.Equal(t, 0.0, RoundMoney(0))
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(25200), Cents(252.0))
	assert.Equal(t, int64(10513), Cents(105.125))
	assert.Equal(t, int64(0), Cents(0))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)))  // суббота
	assert.True(t, IsWeekend(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)))  // воскресенье
	assert.False(t, IsWeekend(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))) // понедельник
}
