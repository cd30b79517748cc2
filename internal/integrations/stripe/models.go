package stripe

// PaymentIntent платёжный интент Stripe
// AmountCents хранится в минимальных единицах валюты (центы, сентаво)
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	AmountCents  int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// apiError тело ошибки Stripe API
type apiError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

// Статусы интента, значимые для бронирования
const (
	StatusSucceeded       = "succeeded"
	StatusRequiresPayment = "requires_payment_method"
	StatusCanceled        = "canceled"
)
