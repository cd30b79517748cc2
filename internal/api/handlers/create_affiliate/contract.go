package create_affiliate

import (
	"context"

	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates/models"
)

type AffiliateService interface {
	Create(ctx context.Context, req *models.CreateAffiliateRequest) (*models.AffiliateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
