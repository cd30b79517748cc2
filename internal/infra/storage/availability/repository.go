package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	"github.com/teemx/GolfTee-BookingService/pkg/dbmetrics"
	"github.com/teemx/GolfTee-BookingService/pkg/psqlbuilder"
	"github.com/teemx/GolfTee-BookingService/pkg/types"
)

var slotColumns = []string{
	"id",
	"course_id",
	"date",
	"tee_time",
	"available_slots",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами доступности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает слот по ключу (course, date, tee time)
func (r *Repository) Get(ctx context.Context, courseID int64, date time.Time, teeTime types.TimeString) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{
			"course_id": courseID,
			"date":      date,
			"tee_time":  teeTime,
		})

	// Внутри транзакции блокируем строку: проверка и уменьшение остатка
	// должны быть сериализованы по ключу слота
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.AvailabilitySlot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.CourseID,
		&slot.Date,
		&slot.TeeTime,
		&slot.AvailableSlots,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// ListByCourseDate получает все слоты поля на указанную дату
func (r *Repository) ListByCourseDate(ctx context.Context, courseID int64, date time.Time) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"course_id": courseID, "date": date}).
		OrderBy("tee_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourseDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourseDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.CourseID,
			&slot.Date,
			&slot.TeeTime,
			&slot.AvailableSlots,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCourseDate - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCourseDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Decrement уменьшает остаток мест на 1
// Условие available_slots > 0 в WHERE гарантирует, что остаток никогда
// не уйдёт ниже нуля: из двух конкурентных уменьшений последнего места
// пройдёт только одно, второе получит ErrSlotConflict
func (r *Repository) Decrement(ctx context.Context, slotID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("available_slots", squirrel.Expr("available_slots - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.Gt{"available_slots": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Decrement - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Decrement - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Decrement - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotConflict
	}

	return nil
}

// Increment возвращает место в слот (отмена бронирования)
func (r *Repository) Increment(ctx context.Context, courseID int64, date time.Time, teeTime types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("available_slots", squirrel.Expr("available_slots + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"course_id": courseID,
			"date":      date,
			"tee_time":  teeTime,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Increment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Increment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Increment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}
