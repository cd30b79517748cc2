package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinPlayers = 1
	MaxPlayers = 4 // Стандартный flight на поле - до четырёх игроков

	MaxCancellationReasonLength = 500
)

// DefaultCurrency валюта платежей по умолчанию
const DefaultCurrency = "mxn"

// ValidBookingStatuses допустимые статусы бронирования
var ValidBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ValidCommissionStatuses допустимые статусы комиссии
var ValidCommissionStatuses = []CommissionStatus{
	CommissionPending,
	CommissionPaid,
	CommissionCancelled,
}
