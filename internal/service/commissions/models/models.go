package models

import (
	"errors"
	"time"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid commission status")
)

// Request модели

// ListCommissionsRequest запрос на получение комиссий
type ListCommissionsRequest struct {
	AffiliateID *int64  `json:"affiliateId,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListCommissionsRequest) ToDomainFilter() (domain.CommissionFilter, error) {
	filter := domain.CommissionFilter{
		AffiliateID: r.AffiliateID,
	}

	if r.Status != nil {
		status, err := ToDomainCommissionStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateCommissionStatusRequest запрос на смену статуса комиссии
type UpdateCommissionStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// CommissionResponse ответ с данными комиссии
type CommissionResponse struct {
	ID          int64     `json:"id"`
	AffiliateID int64     `json:"affiliateId"`
	BookingID   int64     `json:"bookingId"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CommissionSummary агрегаты по выборке комиссий
type CommissionSummary struct {
	Total   float64 `json:"total"`
	Pending float64 `json:"pending"`
	Paid    float64 `json:"paid"`
	Count   int     `json:"count"`
}

// CommissionListResponse ответ со списком комиссий и агрегатами
type CommissionListResponse struct {
	Commissions []CommissionResponse `json:"commissions"`
	Summary     CommissionSummary    `json:"summary"`
}

// Методы конвертации

// FromDomainCommission конвертирует domain модель в DTO
func FromDomainCommission(c *domain.Commission) *CommissionResponse {
	if c == nil {
		return nil
	}

	return &CommissionResponse{
		ID:          c.ID,
		AffiliateID: c.AffiliateID,
		BookingID:   c.BookingID,
		Amount:      c.Amount,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainCommissionList конвертирует список domain моделей в DTO
// Отменённые комиссии входят в список, но не в агрегаты
func FromDomainCommissionList(commissions []*domain.Commission) *CommissionListResponse {
	resp := &CommissionListResponse{
		Commissions: make([]CommissionResponse, 0, len(commissions)),
	}

	for _, commission := range commissions {
		commissionResp := FromDomainCommission(commission)
		if commissionResp == nil {
			continue
		}
		resp.Commissions = append(resp.Commissions, *commissionResp)

		switch commission.Status {
		case domain.CommissionPending:
			resp.Summary.Pending = domain.RoundMoney(resp.Summary.Pending + commission.Amount)
			resp.Summary.Total = domain.RoundMoney(resp.Summary.Total + commission.Amount)
		case domain.CommissionPaid:
			resp.Summary.Paid = domain.RoundMoney(resp.Summary.Paid + commission.Amount)
			resp.Summary.Total = domain.RoundMoney(resp.Summary.Total + commission.Amount)
		}
		resp.Summary.Count++
	}

	return resp
}

// ToDomainCommissionStatus конвертирует строку в domain.CommissionStatus с валидацией
func ToDomainCommissionStatus(status string) (domain.CommissionStatus, error) {
	s := domain.CommissionStatus(status)

	for _, valid := range domain.ValidCommissionStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
