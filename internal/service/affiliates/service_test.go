package affiliates

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	affiliateRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/affiliate"
	"github.com/teemx/GolfTee-BookingService/internal/service/affiliates/models"
)

type fakeAffiliateRepo struct {
	created   *domain.Affiliate
	createErr error
	affiliate *domain.Affiliate
	getErr    error
}

func (f *fakeAffiliateRepo) Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a := *affiliate
	a.ID = 5
	f.created = &a
	return &a, nil
}

func (f *fakeAffiliateRepo) GetByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	return f.affiliate, f.getErr
}

func (f *fakeAffiliateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Affiliate, error) {
	return f.affiliate, f.getErr
}

func (f *fakeAffiliateRepo) GetByReferralCode(ctx context.Context, code string) (*domain.Affiliate, error) {
	return f.affiliate, f.getErr
}

func (f *fakeAffiliateRepo) List(ctx context.Context) ([]*domain.Affiliate, error) {
	return nil, nil
}

func (f *fakeAffiliateRepo) Update(ctx context.Context, id int64, commissionRate *float64, referralCode *string) (*domain.Affiliate, error) {
	return f.affiliate, f.getErr
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.user, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func promoter() *domain.User {
	return &domain.User{
		ID:    42,
		Name:  "Ana",
		Email: "ana@example.com",
		Role:  domain.RolePromoter,
	}
}

func TestCreateAffiliate_GeneratesReferralCode(t *testing.T) {
	repo := &fakeAffiliateRepo{}
	svc := NewService(repo, &fakeUserRepo{user: promoter()}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateAffiliateRequest{
		UserID:         42,
		CommissionRate: 0.05,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.ReferralCode, "GOLF-"))
	assert.Len(t, resp.ReferralCode, len("GOLF-")+8)
	assert.Equal(t, resp.ReferralCode, strings.ToUpper(resp.ReferralCode))
}

func TestCreateAffiliate_CustomCodeNormalized(t *testing.T) {
	repo := &fakeAffiliateRepo{}
	svc := NewService(repo, &fakeUserRepo{user: promoter()}, nopLogger{})

	code := "  ana2026  "
	resp, err := svc.Create(context.Background(), &models.CreateAffiliateRequest{
		UserID:         42,
		ReferralCode:   &code,
		CommissionRate: 0.05,
	})

	require.NoError(t, err)
	assert.Equal(t, "ANA2026", resp.ReferralCode)
}

func TestCreateAffiliate_ClientRejected(t *testing.T) {
	client := promoter()
	client.Role = domain.RoleClient
	svc := NewService(&fakeAffiliateRepo{}, &fakeUserRepo{user: client}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateAffiliateRequest{
		UserID:         42,
		CommissionRate: 0.05,
	})

	assert.ErrorIs(t, err, ErrNotPromoter)
}

func TestCreateAffiliate_InvalidRate(t *testing.T) {
	svc := NewService(&fakeAffiliateRepo{}, &fakeUserRepo{user: promoter()}, nopLogger{})

	for _, rate := range []float64{0, -0.1, 1.5} {
		_, err := svc.Create(context.Background(), &models.CreateAffiliateRequest{
			UserID:         42,
			CommissionRate: rate,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestCreateAffiliate_DuplicateUser(t *testing.T) {
	repo := &fakeAffiliateRepo{createErr: affiliateRepo.ErrDuplicateUser}
	svc := NewService(repo, &fakeUserRepo{user: promoter()}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateAffiliateRequest{
		UserID:         42,
		CommissionRate: 0.05,
	})

	assert.ErrorIs(t, err, ErrAlreadyAffiliate)
}

func TestCreateAffiliate_ReferralCodeTaken(t *testing.T) {
	repo := &fakeAffiliateRepo{createErr: affiliateRepo.ErrDuplicateReferralCode}
	svc := NewService(repo, &fakeUserRepo{user: promoter()}, nopLogger{})

	code := "GOLF-TAKEN123"
	_, err := svc.Create(context.Background(), &models.CreateAffiliateRequest{
		UserID:         42,
		ReferralCode:   &code,
		CommissionRate: 0.05,
	})

	assert.ErrorIs(t, err, ErrReferralCodeTaken)
}
