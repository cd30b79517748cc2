package quote_price

import "errors"

var (
	// ErrCourseNotFound возвращается, когда поле не найдено или неактивно
	ErrCourseNotFound = errors.New("quote_price: course not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
