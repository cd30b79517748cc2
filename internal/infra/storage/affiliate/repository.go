package affiliate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	"github.com/teemx/GolfTee-BookingService/pkg/dbmetrics"
	"github.com/teemx/GolfTee-BookingService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var affiliateColumns = []string{
	"id",
	"user_id",
	"referral_code",
	"commission_rate",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с аффилиатами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория аффилиатов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает аффилиатский профиль
func (r *Repository) Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("affiliates").
		Columns("user_id", "referral_code", "commission_rate").
		Values(affiliate.UserID, affiliate.ReferralCode, affiliate.CommissionRate).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&affiliate.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if uniqueErr := classifyUnique(err); uniqueErr != nil {
			return nil, uniqueErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	affiliate.CreatedAt = createdAt.Time
	affiliate.UpdatedAt = updatedAt.Time

	return affiliate, nil
}

// GetByID получает аффилиата по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByUserID получает аффилиатский профиль пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Affiliate, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID})
}

// GetByReferralCode получает аффилиата по реферальному коду
func (r *Repository) GetByReferralCode(ctx context.Context, code string) (*domain.Affiliate, error) {
	return r.getOne(ctx, squirrel.Eq{"referral_code": strings.ToUpper(strings.TrimSpace(code))})
}

// List получает всех аффилиатов, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Affiliate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(affiliateColumns...).
		From("affiliates").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	affiliates := make([]*domain.Affiliate, 0)
	for rows.Next() {
		affiliate, err := r.scanAffiliate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		affiliates = append(affiliates, affiliate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return affiliates, nil
}

// Update обновляет ставку и/или реферальный код аффилиата
func (r *Repository) Update(ctx context.Context, id int64, commissionRate *float64, referralCode *string) (*domain.Affiliate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("affiliates").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(affiliateColumns, ", "))

	if commissionRate != nil {
		updateBuilder = updateBuilder.Set("commission_rate", *commissionRate)
	}
	if referralCode != nil {
		updateBuilder = updateBuilder.Set("referral_code", strings.ToUpper(strings.TrimSpace(*referralCode)))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	affiliate, err := r.scanAffiliate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAffiliateNotFound
	}
	if err != nil {
		if uniqueErr := classifyUnique(err); uniqueErr != nil {
			return nil, uniqueErr
		}
		return nil, fmt.Errorf("%w: Update - scan affiliate: %v", ErrScanRow, err)
	}

	return affiliate, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Affiliate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(affiliateColumns...).
		From("affiliates").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	affiliate, err := r.scanAffiliate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAffiliateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan affiliate: %v", ErrScanRow, err)
	}

	return affiliate, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAffiliate(row rowScanner) (*domain.Affiliate, error) {
	var affiliate domain.Affiliate
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&affiliate.ID,
		&affiliate.UserID,
		&affiliate.ReferralCode,
		&affiliate.CommissionRate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	affiliate.CreatedAt = createdAt.Time
	affiliate.UpdatedAt = updatedAt.Time

	return &affiliate, nil
}

// classifyUnique разбирает нарушение уникальности по имени constraint
func classifyUnique(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pgUniqueViolation {
		return nil
	}
	if strings.Contains(pqErr.Constraint, "referral_code") {
		return ErrDuplicateReferralCode
	}
	return ErrDuplicateUser
}
