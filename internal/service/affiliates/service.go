package affiliates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	affiliateRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/affiliate"
	userRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/user"
	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates/models"
)

// Service сервис для работы с аффилиатами
type Service struct {
	affiliateRepo AffiliateRepository
	userRepo      UserRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса аффилиатов
func NewService(
	affiliateRepo AffiliateRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		affiliateRepo: affiliateRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// Create создает аффилиатский профиль для промоутера
// Если реферальный код не указан, генерируется автоматически
func (s *Service) Create(ctx context.Context, req *models.CreateAffiliateRequest) (*models.AffiliateResponse, error) {
	s.logger.Info("Create: creating affiliate for user=%d", req.UserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CommissionRate <= 0 || req.CommissionRate > 1 {
		s.logger.Warn("Create: invalid commission rate %.4f for user=%d", req.CommissionRate, req.UserID)
		return nil, fmt.Errorf("%w: commissionRate must be in (0, 1]", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Create: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Create: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - failed to get user: %v", ErrInternal, err)
	}

	// Аффилиатский профиль доступен промоутерам и админам
	if user.Role != domain.RolePromoter && user.Role != domain.RoleAdmin {
		s.logger.Warn("Create: user id=%d has role %s, promoter required", req.UserID, user.Role)
		return nil, ErrNotPromoter
	}

	referralCode := generateReferralCode()
	if req.ReferralCode != nil {
		referralCode = strings.ToUpper(strings.TrimSpace(*req.ReferralCode))
		if referralCode == "" {
			return nil, fmt.Errorf("%w: referral code must not be blank", ErrInvalidInput)
		}
	}

	affiliate := &domain.Affiliate{
		UserID:         req.UserID,
		ReferralCode:   referralCode,
		CommissionRate: req.CommissionRate,
	}

	created, err := s.affiliateRepo.Create(ctx, affiliate)
	if err != nil {
		switch {
		case errors.Is(err, affiliateRepo.ErrDuplicateReferralCode):
			s.logger.Warn("Create: referral code %q already taken", referralCode)
			return nil, ErrReferralCodeTaken
		case errors.Is(err, affiliateRepo.ErrDuplicateUser):
			s.logger.Warn("Create: user id=%d already has an affiliate profile", req.UserID)
			return nil, ErrAlreadyAffiliate
		default:
			s.logger.Error("Create: repository error: %v", err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Create: successfully created affiliate id=%d, code=%s", created.ID, created.ReferralCode)
	return models.FromDomainAffiliate(created), nil
}

// List получает всех аффилиатов
func (s *Service) List(ctx context.Context) (*models.AffiliateListResponse, error) {
	s.logger.Info("List: fetching affiliates")

	affiliates, err := s.affiliateRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d affiliates", len(affiliates))
	return models.FromDomainAffiliateList(affiliates), nil
}

// GetByUserID получает аффилиатский профиль пользователя
func (s *Service) GetByUserID(ctx context.Context, userID int64) (*models.AffiliateResponse, error) {
	s.logger.Info("GetByUserID: fetching affiliate for user=%d", userID)

	affiliate, err := s.affiliateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, affiliateRepo.ErrAffiliateNotFound) {
			s.logger.Warn("GetByUserID: no affiliate for user=%d", userID)
			return nil, ErrAffiliateNotFound
		}
		s.logger.Error("GetByUserID: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByUserID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAffiliate(affiliate), nil
}

// GetByReferralCode получает аффилиата по реферальному коду
func (s *Service) GetByReferralCode(ctx context.Context, code string) (*models.AffiliateResponse, error) {
	s.logger.Info("GetByReferralCode: fetching affiliate for code=%s", code)

	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: referral code is required", ErrInvalidInput)
	}

	affiliate, err := s.affiliateRepo.GetByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, affiliateRepo.ErrAffiliateNotFound) {
			s.logger.Warn("GetByReferralCode: code %q not found", code)
			return nil, ErrAffiliateNotFound
		}
		s.logger.Error("GetByReferralCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByReferralCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAffiliate(affiliate), nil
}

// Update обновляет ставку и/или реферальный код аффилиата
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAffiliateRequest) (*models.AffiliateResponse, error) {
	s.logger.Info("Update: updating affiliate id=%d", id)

	if req.CommissionRate == nil && req.ReferralCode == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.CommissionRate != nil && (*req.CommissionRate <= 0 || *req.CommissionRate > 1) {
		s.logger.Warn("Update: invalid commission rate %.4f for affiliate id=%d", *req.CommissionRate, id)
		return nil, fmt.Errorf("%w: commissionRate must be in (0, 1]", ErrInvalidInput)
	}

	if req.ReferralCode != nil && strings.TrimSpace(*req.ReferralCode) == "" {
		return nil, fmt.Errorf("%w: referral code must not be blank", ErrInvalidInput)
	}

	updated, err := s.affiliateRepo.Update(ctx, id, req.CommissionRate, req.ReferralCode)
	if err != nil {
		switch {
		case errors.Is(err, affiliateRepo.ErrAffiliateNotFound):
			s.logger.Warn("Update: affiliate id=%d not found", id)
			return nil, ErrAffiliateNotFound
		case errors.Is(err, affiliateRepo.ErrDuplicateReferralCode):
			s.logger.Warn("Update: referral code already taken for affiliate id=%d", id)
			return nil, ErrReferralCodeTaken
		default:
			s.logger.Error("Update: repository error for affiliate id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated affiliate id=%d", id)
	return models.FromDomainAffiliate(updated), nil
}

// generateReferralCode генерирует короткий уникальный реферальный код
func generateReferralCode() string {
	return "GOLF-" + strings.ToUpper(uuid.NewString()[:8])
}
