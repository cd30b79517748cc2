package commission

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

var commissionColumns = []string{
	"id",
	"affiliate_id",
	"booking_id",
	"amount",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с комиссиями аффилиатов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория комиссий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create начисляет комиссию за бронирование
func (r *Repository) Create(ctx context.Context, commission *domain.Commission) (*domain.Commission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("commissions").
		Columns("affiliate_id", "booking_id", "amount", "status").
		Values(commission.AffiliateID, commission.BookingID, commission.Amount, commission.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&commission.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateCommission
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	commission.CreatedAt = createdAt.Time
	commission.UpdatedAt = updatedAt.Time

	return commission, nil
}

// List получает комиссии с фильтрацией по аффилиату и статусу
func (r *Repository) List(ctx context.Context, filter domain.CommissionFilter) ([]*domain.Commission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(commissionColumns...).
		From("commissions").
		OrderBy("created_at DESC")

	if filter.AffiliateID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"affiliate_id": *filter.AffiliateID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	commissions := make([]*domain.Commission, 0)
	for rows.Next() {
		commission, err := r.scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		commissions = append(commissions, commission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return commissions, nil
}

// UpdateStatus переводит комиссию в новый статус
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.CommissionStatus) (*domain.Commission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("commissions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(commissionColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	commission, err := r.scanCommission(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCommissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - scan commission: %v", ErrScanRow, err)
	}

	return commission, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanCommission(row rowScanner) (*domain.Commission, error) {
	var commission domain.Commission
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&commission.ID,
		&commission.AffiliateID,
		&commission.BookingID,
		&commission.Amount,
		&commission.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	commission.CreatedAt = createdAt.Time
	commission.UpdatedAt = updatedAt.Time

	return &commission, nil
}
