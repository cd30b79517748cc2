package commissions

import (
	"context"
	"errors"
	"fmt"

	affiliateRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/affiliate"
	commissionRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/commission"
	"github.com/teemx/GolfTee-BookingService/internal/service/commissions/models"
)

// Service сервис для работы с комиссиями аффилиатов
type Service struct {
	commissionRepo CommissionRepository
	affiliateRepo  AffiliateRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса комиссий
func NewService(
	commissionRepo CommissionRepository,
	affiliateRepo AffiliateRepository,
	logger Logger,
) *Service {
	return &Service{
		commissionRepo: commissionRepo,
		affiliateRepo:  affiliateRepo,
		logger:         logger,
	}
}

// List получает комиссии с фильтрацией и агрегатами
// Админ видит все комиссии, промоутер - только свои
func (s *Service) List(ctx context.Context, req *models.ListCommissionsRequest) (*models.CommissionListResponse, error) {
	s.logger.Info("List: fetching commissions, affiliate=%v, status=%v", req.AffiliateID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status=%s", *req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	commissions, err := s.commissionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d commissions", len(commissions))
	return models.FromDomainCommissionList(commissions), nil
}

// ListForUser получает комиссии аффилиата по его user ID
func (s *Service) ListForUser(ctx context.Context, userID int64, status *string) (*models.CommissionListResponse, error) {
	s.logger.Info("ListForUser: fetching commissions for user=%d", userID)

	affiliate, err := s.affiliateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, affiliateRepo.ErrAffiliateNotFound) {
			s.logger.Warn("ListForUser: no affiliate for user=%d", userID)
			return nil, ErrAffiliateNotFound
		}
		s.logger.Error("ListForUser: failed to get affiliate for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListForUser - failed to get affiliate: %v", ErrInternal, err)
	}

	return s.List(ctx, &models.ListCommissionsRequest{
		AffiliateID: &affiliate.ID,
		Status:      status,
	})
}

// UpdateStatus переводит комиссию в новый статус
// Доступно только админам; проверка роли выполняется на уровне handler
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateCommissionStatusRequest) (*models.CommissionResponse, error) {
	s.logger.Info("UpdateStatus: updating commission id=%d to status=%s", id, req.Status)

	status, err := models.ToDomainCommissionStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for commission id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	updated, err := s.commissionRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, commissionRepo.ErrCommissionNotFound) {
			s.logger.Warn("UpdateStatus: commission id=%d not found", id)
			return nil, ErrCommissionNotFound
		}
		s.logger.Error("UpdateStatus: repository error for commission id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated commission id=%d to status=%s", id, status)
	return models.FromDomainCommission(updated), nil
}
