package domain

import "time"

// CommissionStatus represents the payout state of a commission
type CommissionStatus string

const (
	CommissionPending   CommissionStatus = "pending"
	CommissionPaid      CommissionStatus = "paid"
	CommissionCancelled CommissionStatus = "cancelled"
)

// Commission represents an affiliate's earning from one confirmed booking
type Commission struct {
	ID          int64
	AffiliateID int64
	BookingID   int64
	Amount      float64
	Status      CommissionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CommissionFilter фильтр для выборки комиссий
type CommissionFilter struct {
	AffiliateID *int64
	Status      *CommissionStatus
}

// CommissionSummary агрегаты по выборке комиссий
type CommissionSummary struct {
	Total   float64
	Pending float64
	Paid    float64
	Count   int
}
