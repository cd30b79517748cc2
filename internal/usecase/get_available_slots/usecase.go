package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	courseRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/course"
)

// UseCase use case для получения доступных ти-таймов
type UseCase struct {
	availabilityRepo AvailabilityRepository
	courseRepo       CourseRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	courseRepo CourseRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		courseRepo:       courseRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных ти-таймов
// Слоты с нулевым остатком мест не возвращаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: course=%d, date=%s", req.CourseID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем поле
	course, err := uc.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			uc.logger.Warn("GetAvailableSlots: course id=%d not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get course id=%d: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	if !course.IsActive {
		uc.logger.Warn("GetAvailableSlots: course id=%d is inactive", req.CourseID)
		return nil, ErrCourseNotFound
	}

	// 3. Получаем слоты на дату
	slots, err := uc.availabilityRepo.ListByCourseDate(ctx, req.CourseID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 4. Оставляем только слоты со свободными местами
	rate := course.RateFor(req.Date)
	result := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsAvailable() {
			continue
		}
		result = append(result, Slot{
			TeeTime:        slot.TeeTime,
			AvailableSpots: slot.AvailableSlots,
			PricePerPlayer: rate,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d available slots for course=%d, date=%s",
		len(result), req.CourseID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourseID: req.CourseID,
		Date:     req.Date,
		Slots:    result,
	}, nil
}
