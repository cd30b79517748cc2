package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	affiliateRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/affiliate"
	availabilityRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/booking"
	courseRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/course"
	discountRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/discount"
	stripeClient "github.com/teemx/GolfTee-BookingService/internal/integrations/stripe"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	courseRepo       CourseRepository
	availabilityRepo AvailabilityRepository
	discountRepo     DiscountRepository
	affiliateRepo    AffiliateRepository
	commissionRepo   CommissionRepository
	paymentClient    PaymentClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courseRepo CourseRepository,
	availabilityRepo AvailabilityRepository,
	discountRepo DiscountRepository,
	affiliateRepo AffiliateRepository,
	commissionRepo CommissionRepository,
	paymentClient PaymentClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		courseRepo:       courseRepo,
		availabilityRepo: availabilityRepo,
		discountRepo:     discountRepo,
		affiliateRepo:    affiliateRepo,
		commissionRepo:   commissionRepo,
		paymentClient:    paymentClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка платежа идёт до транзакции; резервирование места, списание
// использования промокода и начисление комиссии выполняются атомарно
// в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, course=%d, date=%s, time=%s, players=%d",
		req.UserID, req.CourseID, req.Date.Format(domain.DateFormat), req.TeeTime, req.Players)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем платёж в Stripe
	intent, err := uc.paymentClient.GetPaymentIntent(ctx, req.PaymentIntentID)
	if err != nil {
		if errors.Is(err, stripeClient.ErrPaymentNotFound) {
			uc.logger.Warn("CreateBooking: payment intent %s not found", req.PaymentIntentID)
			return nil, ErrPaymentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get payment intent %s: %v", req.PaymentIntentID, err)
		return nil, fmt.Errorf("%w: failed to get payment intent: %v", ErrInternal, err)
	}

	if intent.Status != stripeClient.StatusSucceeded {
		uc.logger.Warn("CreateBooking: payment intent %s has status %s", intent.ID, intent.Status)
		return nil, ErrPaymentNotConfirmed
	}

	// 5. Идемпотентный ретрай: если платёж уже привязан к бронированию,
	// возвращаем его без повторного резервирования
	if existing, err := uc.bookingRepo.GetByPaymentIntentID(ctx, req.PaymentIntentID); err == nil {
		uc.logger.Info("CreateBooking: payment intent %s already bound to booking id=%d", intent.ID, existing.ID)
		return toResponse(existing, true), nil
	} else if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
		uc.logger.Error("CreateBooking: failed to check existing booking: %v", err)
		return nil, fmt.Errorf("%w: failed to check existing booking: %v", ErrInternal, err)
	}

	// 6. Получаем поле
	course, err := uc.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			uc.logger.Warn("CreateBooking: course id=%d not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("CreateBooking: failed to get course id=%d: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	if !course.IsActive {
		uc.logger.Warn("CreateBooking: course id=%d is inactive", req.CourseID)
		return nil, ErrCourseNotFound
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем слот с блокировкой (FOR UPDATE)
		slot, err := uc.availabilityRepo.Get(txCtx, req.CourseID, req.Date, req.TeeTime)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: no slot for course=%d, date=%s, time=%s",
					req.CourseID, req.Date.Format(domain.DateFormat), req.TeeTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to get slot: %v", err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !slot.IsAvailable() {
			uc.logger.Warn("CreateBooking: slot id=%d has no available spots", slot.ID)
			return ErrSlotNotAvailable
		}

		// 7.2. Получаем промокод внутри транзакции (с блокировкой строки)
		// Неприменимый код не ошибка: цена считается без скидки
		var code *domain.DiscountCode
		if req.DiscountCode != nil {
			code, err = uc.discountRepo.GetByCode(txCtx, *req.DiscountCode)
			if err != nil && !errors.Is(err, discountRepo.ErrCodeNotFound) {
				uc.logger.Error("CreateBooking: failed to get discount code: %v", err)
				return fmt.Errorf("%w: failed to get discount code: %v", ErrInternal, err)
			}
		}

		// 7.3. Пересчитываем цену тем же кодом, что и котировка
		quote := domain.ComputeQuote(course, req.Date, req.Players, code, now)
		if quote.Rejection != "" {
			uc.logger.Info("CreateBooking: discount code not applied, reason=%s", quote.Rejection)
			code = nil
		}

		// 7.4. Сверяем оплаченную сумму с пересчитанной ценой (в центах)
		if domain.Cents(quote.FinalPrice) != intent.AmountCents {
			uc.logger.Warn("CreateBooking: amount mismatch: paid=%d, expected=%d",
				intent.AmountCents, domain.Cents(quote.FinalPrice))
			return ErrAmountMismatch
		}

		// 7.5. Резервируем место
		if err := uc.availabilityRepo.Decrement(txCtx, slot.ID); err != nil {
			if errors.Is(err, availabilityRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateBooking: slot id=%d was taken concurrently", slot.ID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to decrement slot: %v", err)
			return fmt.Errorf("%w: failed to decrement slot: %v", ErrInternal, err)
		}

		// 7.6. Списываем использование промокода
		var discountCodeID *int64
		if code != nil && quote.Discount != nil {
			if err := uc.discountRepo.IncrementUsage(txCtx, code.ID); err != nil {
				if errors.Is(err, discountRepo.ErrUsageExhausted) {
					// Лимит исчерпан между котировкой и бронированием:
					// сумма платежа уже не совпадёт с ценой без скидки
					uc.logger.Warn("CreateBooking: discount code id=%d exhausted concurrently", code.ID)
					return ErrAmountMismatch
				}
				uc.logger.Error("CreateBooking: failed to increment code usage: %v", err)
				return fmt.Errorf("%w: failed to increment code usage: %v", ErrInternal, err)
			}
			discountCodeID = &code.ID
		}

		// 7.7. Создаем бронирование с денормализацией данных поля
		booking := &domain.Booking{
			UserID:          req.UserID,
			CourseID:        req.CourseID,
			BookingDate:     req.Date,
			TeeTime:         req.TeeTime,
			NumberOfPlayers: req.Players,
			TotalPrice:      quote.FinalPrice,
			Status:          domain.StatusConfirmed,
			DiscountCodeID:  discountCodeID,
			PaymentIntentID: req.PaymentIntentID,
			CourseName:      course.Name,
			CourseCity:      &course.City,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicatePayment) {
				uc.logger.Warn("CreateBooking: payment intent %s bound concurrently", req.PaymentIntentID)
				return bookingRepo.ErrDuplicatePayment
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 7.8. Начисляем комиссию аффилиату, если передан реферальный код
		// Неизвестный код не блокирует бронирование
		if req.ReferralCode != nil {
			if err := uc.createCommission(txCtx, *req.ReferralCode, created); err != nil {
				return err
			}
		}

		result = created
		return nil
	})

	if err != nil {
		// Конкурентный ретрай успел создать бронирование первым
		if errors.Is(err, bookingRepo.ErrDuplicatePayment) {
			if existing, getErr := uc.bookingRepo.GetByPaymentIntentID(ctx, req.PaymentIntentID); getErr == nil {
				return toResponse(existing, true), nil
			}
			return nil, fmt.Errorf("%w: duplicate payment: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalPrice)

	return toResponse(result, false), nil
}

// createCommission начисляет комиссию аффилиату по реферальному коду
// База комиссии - итоговая цена бронирования после скидки
func (uc *UseCase) createCommission(ctx context.Context, referralCode string, booking *domain.Booking) error {
	affiliate, err := uc.affiliateRepo.GetByReferralCode(ctx, referralCode)
	if err != nil {
		if errors.Is(err, affiliateRepo.ErrAffiliateNotFound) {
			uc.logger.Info("CreateBooking: referral code %q not found, no commission", referralCode)
			return nil
		}
		uc.logger.Error("CreateBooking: failed to get affiliate: %v", err)
		return fmt.Errorf("%w: failed to get affiliate: %v", ErrInternal, err)
	}

	// Аффилиат не зарабатывает на собственных бронированиях
	if affiliate.UserID == booking.UserID {
		uc.logger.Info("CreateBooking: self-referral by user id=%d, no commission", booking.UserID)
		return nil
	}

	commission := &domain.Commission{
		AffiliateID: affiliate.ID,
		BookingID:   booking.ID,
		Amount:      affiliate.CommissionFor(booking.TotalPrice),
		Status:      domain.CommissionPending,
	}

	if _, err := uc.commissionRepo.Create(ctx, commission); err != nil {
		uc.logger.Error("CreateBooking: failed to create commission: %v", err)
		return fmt.Errorf("%w: failed to create commission: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: commission %.2f accrued to affiliate id=%d", commission.Amount, affiliate.ID)
	return nil
}

// toResponse конвертирует доменную модель в response
func toResponse(booking *domain.Booking, alreadyExisted bool) *Response {
	return &Response{
		ID:              booking.ID,
		UserID:          booking.UserID,
		CourseID:        booking.CourseID,
		BookingDate:     booking.BookingDate,
		TeeTime:         booking.TeeTime,
		Players:         booking.NumberOfPlayers,
		TotalPrice:      booking.TotalPrice,
		Status:          string(booking.Status),
		PaymentIntentID: booking.PaymentIntentID,
		CourseName:      booking.CourseName,
		CourseCity:      booking.CourseCity,
		AlreadyExisted:  alreadyExisted,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
