package list_affiliates

import (
	"context"

	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates/models"
)

type AffiliateService interface {
	List(ctx context.Context) (*models.AffiliateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
