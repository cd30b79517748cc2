package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	courseRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/course"
)

type fakeAvailabilityRepo struct {
	slots []*domain.AvailabilitySlot
	err   error
}

func (f *fakeAvailabilityRepo) ListByCourseDate(ctx context.Context, courseID int64, date time.Time) ([]*domain.AvailabilitySlot, error) {
	return f.slots, f.err
}

type fakeCourseRepo struct {
	course *domain.Course
	err    error
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	return f.course, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetAvailableSlots_FiltersFullSlots(t *testing.T) {
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC) // суббота
	availability := &fakeAvailabilityRepo{slots: []*domain.AvailabilitySlot{
		{ID: 1, CourseID: 1, Date: date, TeeTime: "08:00", AvailableSlots: 4},
		{ID: 2, CourseID: 1, Date: date, TeeTime: "09:00", AvailableSlots: 0},
		{ID: 3, CourseID: 1, Date: date, TeeTime: "10:00", AvailableSlots: 1},
	}}
	courses := &fakeCourseRepo{course: &domain.Course{
		ID:           1,
		Name:         "Cabo del Sol",
		PriceWeekday: 140,
		PriceWeekend: 160,
		IsActive:     true,
	}}

	uc := NewUseCase(availability, courses, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{CourseID: 1, Date: date})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "08:00", resp.Slots[0].TeeTime.String())
	assert.Equal(t, 4, resp.Slots[0].AvailableSpots)
	assert.Equal(t, "10:00", resp.Slots[1].TeeTime.String())
	// Цена за игрока по тарифу выходного дня
	assert.Equal(t, 160.0, resp.Slots[0].PricePerPlayer)
}

func TestGetAvailableSlots_EmptyWhenNoSlots(t *testing.T) {
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(
		&fakeAvailabilityRepo{},
		&fakeCourseRepo{course: &domain.Course{ID: 1, PriceWeekday: 140, IsActive: true}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{CourseID: 1, Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestGetAvailableSlots_CourseNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAvailabilityRepo{},
		&fakeCourseRepo{err: courseRepo.ErrCourseNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		CourseID: 99,
		Date:     time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGetAvailableSlots_InactiveCourse(t *testing.T) {
	uc := NewUseCase(
		&fakeAvailabilityRepo{},
		&fakeCourseRepo{course: &domain.Course{ID: 1, IsActive: false}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		CourseID: 1,
		Date:     time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGetAvailableSlots_Validation(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{}, &fakeCourseRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourseID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CourseID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
