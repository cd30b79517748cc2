package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	availabilityRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/booking"
	discountRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/discount"
	stripeClient "github.com/teemx/GolfTee-BookingService/internal/integrations/stripe"
	"github.com/teemx/GolfTee-BookingService/pkg/ptr"
	"github.com/teemx/GolfTee-BookingService/pkg/types"
)

// Фейки репозиториев

type fakeBookingRepo struct {
	existing  *domain.Booking // возвращается из GetByPaymentIntentID
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b := *booking
	b.ID = 100
	f.created = &b
	return &b, nil
}

func (f *fakeBookingRepo) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Booking, error) {
	if f.existing != nil {
		return f.existing, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

type fakeCourseRepo struct {
	course *domain.Course
	err    error
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	return f.course, f.err
}

type fakeAvailabilityRepo struct {
	slot         *domain.AvailabilitySlot
	getErr       error
	decrementErr error
	decremented  []int64
}

func (f *fakeAvailabilityRepo) Get(ctx context.Context, courseID int64, date time.Time, teeTime types.TimeString) (*domain.AvailabilitySlot, error) {
	return f.slot, f.getErr
}

func (f *fakeAvailabilityRepo) Decrement(ctx context.Context, slotID int64) error {
	if f.decrementErr != nil {
		return f.decrementErr
	}
	f.decremented = append(f.decremented, slotID)
	return nil
}

type fakeDiscountRepo struct {
	code         *domain.DiscountCode
	getErr       error
	incrementErr error
	incremented  []int64
}

func (f *fakeDiscountRepo) GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	return f.code, f.getErr
}

func (f *fakeDiscountRepo) IncrementUsage(ctx context.Context, codeID int64) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.incremented = append(f.incremented, codeID)
	return nil
}

type fakeAffiliateRepo struct {
	affiliate *domain.Affiliate
	err       error
}

func (f *fakeAffiliateRepo) GetByReferralCode(ctx context.Context, code string) (*domain.Affiliate, error) {
	return f.affiliate, f.err
}

type fakeCommissionRepo struct {
	created *domain.Commission
}

func (f *fakeCommissionRepo) Create(ctx context.Context, commission *domain.Commission) (*domain.Commission, error) {
	c := *commission
	c.ID = 1
	f.created = &c
	return &c, nil
}

type fakePaymentClient struct {
	intent *stripeClient.PaymentIntent
	err    error
}

func (f *fakePaymentClient) GetPaymentIntent(ctx context.Context, intentID string) (*stripeClient.PaymentIntent, error) {
	return f.intent, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Окружение теста

type env struct {
	bookings     *fakeBookingRepo
	courses      *fakeCourseRepo
	availability *fakeAvailabilityRepo
	discounts    *fakeDiscountRepo
	affiliates   *fakeAffiliateRepo
	commissions  *fakeCommissionRepo
	payments     *fakePaymentClient
	uc           *UseCase
}

func newEnv() *env {
	e := &env{
		bookings: &fakeBookingRepo{},
		courses: &fakeCourseRepo{course: &domain.Course{
			ID:           1,
			Name:         "Cabo del Sol",
			City:         "Los Cabos",
			State:        "BCS",
			PriceWeekday: 140,
			PriceWeekend: 160,
			IsActive:     true,
		}},
		availability: &fakeAvailabilityRepo{slot: &domain.AvailabilitySlot{
			ID:             7,
			CourseID:       1,
			Date:           time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			TeeTime:        "10:00",
			AvailableSlots: 3,
		}},
		discounts:   &fakeDiscountRepo{getErr: discountRepo.ErrCodeNotFound},
		affiliates:  &fakeAffiliateRepo{},
		commissions: &fakeCommissionRepo{},
		payments: &fakePaymentClient{intent: &stripeClient.PaymentIntent{
			ID:          "pi_123",
			AmountCents: 32000,
			Currency:    "mxn",
			Status:      stripeClient.StatusSucceeded,
		}},
	}

	e.uc = NewUseCase(
		e.bookings,
		e.courses,
		e.availability,
		e.discounts,
		e.affiliates,
		e.commissions,
		e.payments,
		fakeTxManager{},
		nopLogger{},
	)
	e.uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return e
}

// Суббота, 2 игрока по 160 = 320
func baseRequest() *Request {
	return &Request{
		UserID:          42,
		CourseID:        1,
		Date:            time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		TeeTime:         "10:00",
		Players:         2,
		PaymentIntentID: "pi_123",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), baseRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, 320.0, resp.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Cabo del Sol", resp.CourseName)
	assert.False(t, resp.AlreadyExisted)
	assert.Equal(t, []int64{7}, e.availability.decremented)
	assert.Nil(t, e.commissions.created)
}

func TestCreateBooking_WithDiscountAndReferral(t *testing.T) {
	e := newEnv()
	e.discounts.getErr = nil
	e.discounts.code = &domain.DiscountCode{
		ID:           10,
		Code:         "SUMMER10",
		DiscountType: domain.DiscountPercentage,
		Value:        0.1,
	}
	e.affiliates.affiliate = &domain.Affiliate{
		ID:             5,
		UserID:         99,
		ReferralCode:   "GOLF-AB12CD34",
		CommissionRate: 0.05,
	}
	// 320 - 10% = 288
	e.payments.intent.AmountCents = 28800

	req := baseRequest()
	req.DiscountCode = ptr.Ptr("SUMMER10")
	req.ReferralCode = ptr.Ptr("GOLF-AB12CD34")

	resp, err := e.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 288.0, resp.TotalPrice)
	assert.Equal(t, []int64{10}, e.discounts.incremented)

	require.NotNil(t, e.commissions.created)
	assert.Equal(t, int64(5), e.commissions.created.AffiliateID)
	assert.Equal(t, int64(100), e.commissions.created.BookingID)
	// 5% от итоговой цены после скидки
	assert.Equal(t, 14.4, e.commissions.created.Amount)
	assert.Equal(t, domain.CommissionPending, e.commissions.created.Status)
}

func TestCreateBooking_SelfReferralNoCommission(t *testing.T) {
	e := newEnv()
	e.affiliates.affiliate = &domain.Affiliate{
		ID:             5,
		UserID:         42, // сам пользователь
		ReferralCode:   "GOLF-AB12CD34",
		CommissionRate: 0.05,
	}

	req := baseRequest()
	req.ReferralCode = ptr.Ptr("GOLF-AB12CD34")

	resp, err := e.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Nil(t, e.commissions.created)
}

func TestCreateBooking_SlotNotFound(t *testing.T) {
	e := newEnv()
	e.availability.slot = nil
	e.availability.getErr = availabilityRepo.ErrSlotNotFound

	_, err := e.uc.Execute(context.Background(), baseRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_SlotFull(t *testing.T) {
	e := newEnv()
	e.availability.slot.AvailableSlots = 0

	_, err := e.uc.Execute(context.Background(), baseRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_SlotTakenConcurrently(t *testing.T) {
	e := newEnv()
	e.availability.decrementErr = availabilityRepo.ErrSlotConflict

	_, err := e.uc.Execute(context.Background(), baseRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_AmountMismatch(t *testing.T) {
	e := newEnv()
	e.payments.intent.AmountCents = 28000 // оплачено меньше, чем 320

	_, err := e.uc.Execute(context.Background(), baseRequest())

	assert.ErrorIs(t, err, ErrAmountMismatch)
	assert.Empty(t, e.availability.decremented)
}

func TestCreateBooking_PaymentNotConfirmed(t *testing.T) {
	e := newEnv()
	e.payments.intent.Status = stripeClient.StatusRequiresPayment

	_, err := e.uc.Execute(context.Background(), baseRequest())

	assert.ErrorIs(t, err, ErrPaymentNotConfirmed)
}

func TestCreateBooking_PaymentNotFound(t *testing.T) {
	e := newEnv()
	e.payments.intent = nil
	e.payments.err = stripeClient.ErrPaymentNotFound

	_, err := e.uc.Execute(context.Background(), baseRequest())

	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestCreateBooking_IdempotentRetry(t *testing.T) {
	e := newEnv()
	e.bookings.existing = &domain.Booking{
		ID:              55,
		UserID:          42,
		CourseID:        1,
		TotalPrice:      320,
		Status:          domain.StatusConfirmed,
		PaymentIntentID: "pi_123",
		CourseName:      "Cabo del Sol",
	}

	resp, err := e.uc.Execute(context.Background(), baseRequest())

	require.NoError(t, err)
	assert.True(t, resp.AlreadyExisted)
	assert.Equal(t, int64(55), resp.ID)
	// Повторный запрос не трогает слот
	assert.Empty(t, e.availability.decremented)
}

func TestCreateBooking_PastDate(t *testing.T) {
	e := newEnv()
	req := baseRequest()
	req.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	_, err := e.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking_InactiveCourse(t *testing.T) {
	e := newEnv()
	e.courses.course.IsActive = false

	_, err := e.uc.Execute(context.Background(), baseRequest())

	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCreateBooking_ExhaustedCodeBetweenQuoteAndBooking(t *testing.T) {
	e := newEnv()
	e.discounts.getErr = nil
	e.discounts.code = &domain.DiscountCode{
		ID:           10,
		Code:         "SUMMER10",
		DiscountType: domain.DiscountPercentage,
		Value:        0.1,
	}
	e.discounts.incrementErr = discountRepo.ErrUsageExhausted
	e.payments.intent.AmountCents = 28800

	req := baseRequest()
	req.DiscountCode = ptr.Ptr("SUMMER10")

	_, err := e.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAmountMismatch)
}

func TestCreateBooking_Validation(t *testing.T) {
	e := newEnv()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user id", func(r *Request) { r.UserID = 0 }},
		{"zero course id", func(r *Request) { r.CourseID = 0 }},
		{"missing tee time", func(r *Request) { r.TeeTime = "" }},
		{"bad tee time", func(r *Request) { r.TeeTime = "25:99" }},
		{"too many players", func(r *Request) { r.Players = 5 }},
		{"missing payment intent", func(r *Request) { r.PaymentIntentID = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(req)
			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
