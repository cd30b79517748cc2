package update_affiliate

import (
	"context"

	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates/models"
)

type AffiliateService interface {
	Update(ctx context.Context, id int64, req *models.UpdateAffiliateRequest) (*models.AffiliateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
