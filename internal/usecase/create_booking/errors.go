package create_booking

import "errors"

var (
	// ErrCourseNotFound возвращается, когда поле не найдено или неактивно
	ErrCourseNotFound = errors.New("create_booking: course not found")

	// ErrSlotNotAvailable возвращается, когда на выбранное время нет свободных мест
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrPaymentNotConfirmed возвращается, когда платёж не находится в статусе succeeded
	ErrPaymentNotConfirmed = errors.New("create_booking: payment is not confirmed")

	// ErrPaymentNotFound возвращается, когда платёжный интент не найден
	ErrPaymentNotFound = errors.New("create_booking: payment intent not found")

	// ErrAmountMismatch возвращается, когда оплаченная сумма не совпадает
	// с пересчитанной ценой бронирования
	ErrAmountMismatch = errors.New("create_booking: paid amount does not match booking price")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
