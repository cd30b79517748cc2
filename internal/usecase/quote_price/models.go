package quote_price

import "time"

// Request модель запроса на расчёт цены
type Request struct {
	CourseID     int64     // ID поля
	Date         time.Time // Дата игры (без времени)
	Players      int       // Количество игроков
	DiscountCode *string   // Промокод (опционально)
}

// AppliedDiscount применённая скидка
type AppliedDiscount struct {
	Code           string  // Код в верхнем регистре
	AmountDeducted float64 // Сумма скидки
}

// Response модель ответа с рассчитанной ценой
type Response struct {
	CourseID   int64
	Date       time.Time
	Players    int
	BasePrice  float64          // Цена за игроков по тарифу дня
	Discount   *AppliedDiscount // nil, если скидка не применена
	FinalPrice float64          // Итог к оплате

	// CodeRejection заполняется, когда код передан, но не применён
	// Отказ кода не ошибка: цена считается без скидки
	CodeRejection string
}
