package commissions

import "errors"

var (
	// ErrCommissionNotFound возвращается, когда комиссия не найдена
	ErrCommissionNotFound = errors.New("commission not found")

	// ErrAffiliateNotFound возвращается, когда у пользователя нет аффилиатского профиля
	ErrAffiliateNotFound = errors.New("affiliate not found")

	// ErrInvalidStatus возвращается при недопустимом статусе комиссии
	ErrInvalidStatus = errors.New("invalid commission status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
