package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	courseRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/course"
	discountRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/discount"
)

// UseCase use case для расчёта цены бронирования
type UseCase struct {
	courseRepo   CourseRepository
	discountRepo DiscountRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courseRepo CourseRepository,
	discountRepo DiscountRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		courseRepo:   courseRepo,
		discountRepo: discountRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет расчёт цены
// Расчёт детерминированный: бронирование с теми же параметрами получит ту же цену
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: course=%d, date=%s, players=%d",
		req.CourseID, req.Date.Format(domain.DateFormat), req.Players)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем поле
	course, err := uc.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			uc.logger.Warn("QuotePrice: course id=%d not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("QuotePrice: failed to get course id=%d: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	// Неактивное поле не котируется
	if !course.IsActive {
		uc.logger.Warn("QuotePrice: course id=%d is inactive", req.CourseID)
		return nil, ErrCourseNotFound
	}

	// 3. Получаем промокод, если указан
	// Неизвестный код не ошибка: возвращаем цену без скидки с причиной отказа
	var code *domain.DiscountCode
	var rejection domain.RejectionReason

	if req.DiscountCode != nil {
		code, err = uc.discountRepo.GetByCode(ctx, *req.DiscountCode)
		if err != nil {
			if errors.Is(err, discountRepo.ErrCodeNotFound) {
				uc.logger.Info("QuotePrice: discount code %q not found", *req.DiscountCode)
				rejection = domain.RejectionUnknownCode
			} else {
				uc.logger.Error("QuotePrice: failed to get discount code: %v", err)
				return nil, fmt.Errorf("%w: failed to get discount code: %v", ErrInternal, err)
			}
		}
	}

	// 4. Считаем котировку
	quote := domain.ComputeQuote(course, req.Date, req.Players, code, uc.timeProvider.Now())
	if rejection == "" {
		rejection = quote.Rejection
	}

	if rejection != "" {
		uc.logger.Info("QuotePrice: code not applied, reason=%s", rejection)
	}

	resp := &Response{
		CourseID:      course.ID,
		Date:          req.Date,
		Players:       req.Players,
		BasePrice:     quote.BasePrice,
		FinalPrice:    quote.FinalPrice,
		CodeRejection: string(rejection),
	}

	if quote.Discount != nil {
		resp.Discount = &AppliedDiscount{
			Code:           quote.Discount.Code,
			AmountDeducted: quote.Discount.AmountDeducted,
		}
	}

	uc.logger.Info("QuotePrice: base=%.2f, final=%.2f", resp.BasePrice, resp.FinalPrice)

	return resp, nil
}
