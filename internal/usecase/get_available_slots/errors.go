package get_available_slots

import "errors"

var (
	// ErrCourseNotFound возвращается, когда поле не найдено или неактивно
	ErrCourseNotFound = errors.New("get_available_slots: course not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
