package quote_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	courseRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/course"
	discountRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/discount"
)

type fakeCourseRepo struct {
	course *domain.Course
	err    error
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	return f.course, f.err
}

type fakeDiscountRepo struct {
	code *domain.DiscountCode
	err  error
}

func (f *fakeDiscountRepo) GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	return f.code, f.err
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

func activeCourse() *domain.Course {
	return &domain.Course{
		ID:           1,
		Name:         "Cabo del Sol",
		City:         "Los Cabos",
		State:        "BCS",
		PriceWeekday: 140,
		PriceWeekend: 160,
		Holes:        18,
		IsActive:     true,
	}
}

func newTestUseCase(courses *fakeCourseRepo, discounts *fakeDiscountRepo) *UseCase {
	uc := NewUseCase(courses, discounts, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestQuotePrice_WithoutCode(t *testing.T) {
	uc := newTestUseCase(&fakeCourseRepo{course: activeCourse()}, &fakeDiscountRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		CourseID: 1,
		Date:     time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), // суббота
		Players:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, 320.0, resp.BasePrice)
	assert.Equal(t, 320.0, resp.FinalPrice)
	assert.Nil(t, resp.Discount)
	assert.Empty(t, resp.CodeRejection)
}

func TestQuotePrice_WithPercentageCode(t *testing.T) {
	code := "SUMMER10"
	uc := newTestUseCase(
		&fakeCourseRepo{course: activeCourse()},
		&fakeDiscountRepo{code: &domain.DiscountCode{
			ID:           10,
			Code:         code,
			DiscountType: domain.DiscountPercentage,
			Value:        0.1,
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		CourseID:     1,
		Date:         time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), // четверг
		Players:      2,
		DiscountCode: &code,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Discount)
	assert.Equal(t, "SUMMER10", resp.Discount.Code)
	assert.Equal(t, 28.0, resp.Discount.AmountDeducted)
	assert.Equal(t, 252.0, resp.FinalPrice)
}

func TestQuotePrice_UnknownCode(t *testing.T) {
	code := "NOSUCH"
	uc := newTestUseCase(
		&fakeCourseRepo{course: activeCourse()},
		&fakeDiscountRepo{err: discountRepo.ErrCodeNotFound},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		CourseID:     1,
		Date:         time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Players:      2,
		DiscountCode: &code,
	})

	require.NoError(t, err)
	assert.Nil(t, resp.Discount)
	assert.Equal(t, string(domain.RejectionUnknownCode), resp.CodeRejection)
	assert.Equal(t, 280.0, resp.FinalPrice)
}

func TestQuotePrice_CourseNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeCourseRepo{err: courseRepo.ErrCourseNotFound}, &fakeDiscountRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CourseID: 99,
		Date:     time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Players:  2,
	})

	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestQuotePrice_InactiveCourse(t *testing.T) {
	course := activeCourse()
	course.IsActive = false
	uc := newTestUseCase(&fakeCourseRepo{course: course}, &fakeDiscountRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CourseID: 1,
		Date:     time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Players:  2,
	})

	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestQuotePrice_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeCourseRepo{course: activeCourse()}, &fakeDiscountRepo{})
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero course id", &Request{CourseID: 0, Date: date, Players: 2}},
		{"zero date", &Request{CourseID: 1, Players: 2}},
		{"too few players", &Request{CourseID: 1, Date: date, Players: 0}},
		{"too many players", &Request{CourseID: 1, Date: date, Players: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
