package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	bookingRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/booking"
	"github.com/teemx/GolfTee-BookingService/internal/service/bookings/models"
	"github.com/teemx/GolfTee-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	list      []*domain.Booking
	cancelled map[int64]string
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	if f.cancelled == nil {
		f.cancelled = make(map[int64]string)
	}
	f.cancelled[id] = reason
	return nil
}

type fakeAvailabilityRepo struct {
	incremented int
	err         error
}

func (f *fakeAvailabilityRepo) Increment(ctx context.Context, courseID int64, date time.Time, teeTime types.TimeString) error {
	if f.err != nil {
		return f.err
	}
	f.incremented++
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              1,
		UserID:          42,
		CourseID:        7,
		BookingDate:     time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		TeeTime:         "10:00",
		NumberOfPlayers: 2,
		TotalPrice:      320,
		Status:          domain.StatusConfirmed,
		CourseName:      "Cabo del Sol",
	}
}

func TestGetByID_OwnerAccess(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &fakeAvailabilityRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 42, false)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-09-05", resp.BookingDate)
	assert.Equal(t, "10:00", resp.TeeTime)
}

func TestGetByID_ForeignBookingDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &fakeAvailabilityRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 13, false)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminSeesAny(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &fakeAvailabilityRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 13, true)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.UserID)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, &fakeAvailabilityRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 42, false)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_RestoresSlot(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	availability := &fakeAvailabilityRepo{}
	svc := NewService(repo, availability, fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: "  плохая погода  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "плохая погода", repo.cancelled[1])
	assert.Equal(t, 1, availability.incremented)
}

func TestCancel_SlotGoneIsNotFatal(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	availability := &fakeAvailabilityRepo{err: assert.AnError}
	svc := NewService(repo, availability, fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})

	assert.NoError(t, err)
	assert.Contains(t, repo.cancelled, int64(1))
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{booking: booking}
	svc := NewService(repo, &fakeAvailabilityRepo{}, fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ForeignBookingDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &fakeAvailabilityRepo{}, fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 13})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &fakeAvailabilityRepo{}, fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, &fakeAvailabilityRepo{}, fakeTxManager{}, nopLogger{})

	badStatus := "paused"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: &badStatus,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_ReturnsList(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{confirmedBooking()}}
	svc := NewService(repo, &fakeAvailabilityRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Cabo del Sol", resp.Bookings[0].CourseName)
}
