package models

import (
	"time"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

// Request модели

// CreateAffiliateRequest запрос на создание аффилиатского профиля
type CreateAffiliateRequest struct {
	UserID         int64   `json:"userId"`
	ReferralCode   *string `json:"referralCode,omitempty"` // Если не указан, генерируется
	CommissionRate float64 `json:"commissionRate"`         // Доля от цены бронирования, [0,1]
}

// UpdateAffiliateRequest запрос на обновление аффилиата
type UpdateAffiliateRequest struct {
	CommissionRate *float64 `json:"commissionRate,omitempty"`
	ReferralCode   *string  `json:"referralCode,omitempty"`
}

// Response модели

// AffiliateResponse ответ с данными аффилиата
type AffiliateResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	ReferralCode   string    `json:"referralCode"`
	CommissionRate float64   `json:"commissionRate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AffiliateListResponse ответ со списком аффилиатов
type AffiliateListResponse struct {
	Affiliates []AffiliateResponse `json:"affiliates"`
}

// Методы конвертации

// FromDomainAffiliate конвертирует domain модель в DTO
func FromDomainAffiliate(a *domain.Affiliate) *AffiliateResponse {
	if a == nil {
		return nil
	}

	return &AffiliateResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		ReferralCode:   a.ReferralCode,
		CommissionRate: a.CommissionRate,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// FromDomainAffiliateList конвертирует список domain моделей в DTO
func FromDomainAffiliateList(affiliates []*domain.Affiliate) *AffiliateListResponse {
	if affiliates == nil {
		return &AffiliateListResponse{
			Affiliates: []AffiliateResponse{},
		}
	}

	resp := &AffiliateListResponse{
		Affiliates: make([]AffiliateResponse, len(affiliates)),
	}

	for i, affiliate := range affiliates {
		if affiliateResp := FromDomainAffiliate(affiliate); affiliateResp != nil {
			resp.Affiliates[i] = *affiliateResp
		}
	}

	return resp
}
