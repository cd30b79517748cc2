package domain

import "time"

// Affiliate represents a promoter account earning commissions via a referral code
type Affiliate struct {
	ID             int64
	UserID         int64
	ReferralCode   string
	CommissionRate float64 // Доля от итоговой цены бронирования, [0,1]
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CommissionFor computes the commission amount for a booking total.
// База - итоговая (после скидки) цена; сумма фиксируется в момент создания
// комиссии и не пересчитывается при изменении ставки.
func (a *Affiliate) CommissionFor(bookingTotal float64) float64 {
	return RoundMoney(bookingTotal * a.CommissionRate)
}
