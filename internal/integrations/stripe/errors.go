package stripe

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платёжный интент не найден
	ErrPaymentNotFound = errors.New("stripe client: payment intent not found")

	// ErrCardDeclined возвращается, когда Stripe отклонил платёж
	ErrCardDeclined = errors.New("stripe client: card declined")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stripe client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Stripe
	ErrInvalidResponse = errors.New("stripe client: invalid response")
)
