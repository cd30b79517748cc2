package get_affiliate_by_code

import (
	"context"

	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates/models"
)

type AffiliateService interface {
	GetByReferralCode(ctx context.Context, code string) (*models.AffiliateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
