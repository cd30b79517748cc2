package catalog

import "errors"

var (
	// ErrCourseNotFound возвращается, когда поле не найдено
	ErrCourseNotFound = errors.New("course not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
