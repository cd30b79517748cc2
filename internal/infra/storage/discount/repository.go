package discount

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	"github.com/teemx/GolfTee-BookingService/pkg/dbmetrics"
	"github.com/teemx/GolfTee-BookingService/pkg/psqlbuilder"
)

var codeColumns = []string{
	"id",
	"code",
	"description",
	"discount_type",
	"value",
	"expires_at",
	"max_uses",
	"current_uses",
	"min_booking_value",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с промокодами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает промокод по строке кода (без учёта регистра)
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(codeColumns...).
		From("discount_codes").
		Where(squirrel.Eq{"code": strings.ToUpper(strings.TrimSpace(code))})

	// Внутри транзакции блокируем строку, чтобы инкремент current_uses
	// не потерялся между конкурентными бронированиями
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var dc domain.DiscountCode
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dc.ID,
		&dc.Code,
		&dc.Description,
		&dc.DiscountType,
		&dc.Value,
		&dc.ExpiresAt,
		&dc.MaxUses,
		&dc.CurrentUses,
		&dc.MinBookingValue,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan code: %v", ErrScanRow, err)
	}

	dc.CreatedAt = createdAt.Time
	dc.UpdatedAt = updatedAt.Time

	return &dc, nil
}

// IncrementUsage увеличивает счётчик использований на 1
// Условие в WHERE не позволяет current_uses превысить max_uses:
// при исчерпанном лимите возвращается ErrUsageExhausted
func (r *Repository) IncrementUsage(ctx context.Context, codeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("discount_codes").
		Set("current_uses", squirrel.Expr("current_uses + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": codeID}).
		Where(squirrel.Expr("(max_uses IS NULL OR current_uses < max_uses)")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUsageExhausted
	}

	return nil
}
