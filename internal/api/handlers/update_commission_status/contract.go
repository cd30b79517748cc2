package update_commission_status

import (
	"context"

	"github.com/teemx/GolfTee-BookingService/internal/service/commissions/models"
)

type CommissionService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateCommissionStatusRequest) (*models.CommissionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
