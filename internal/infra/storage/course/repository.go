package course

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	"github.com/teemx/GolfTee-BookingService/pkg/dbmetrics"
	"github.com/teemx/GolfTee-BookingService/pkg/psqlbuilder"
)

var courseColumns = []string{
	"id",
	"name",
	"description",
	"address",
	"city",
	"state",
	"price_weekday",
	"price_weekend",
	"holes",
	"par",
	"length",
	"rating",
	"review_count",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом полей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает поле по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	course, err := r.scanCourse(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan course: %v", ErrScanRow, err)
	}

	return course, nil
}

// List получает поля из каталога с фильтрацией
// По умолчанию возвращаются только активные поля, отсортированные по рейтингу
func (r *Repository) List(ctx context.Context, filter domain.CourseFilter) ([]*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courseColumns...).
		From("courses").
		OrderBy("rating DESC, name ASC")

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}
	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.State != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"state": *filter.State})
	}
	if filter.Holes != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"holes": *filter.Holes})
	}
	if filter.MinPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"price_weekday": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"price_weekday": *filter.MaxPrice})
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

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		course, err := r.scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return courses, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanCourse(row rowScanner) (*domain.Course, error) {
	var course domain.Course
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.Address,
		&course.City,
		&course.State,
		&course.PriceWeekday,
		&course.PriceWeekend,
		&course.Holes,
		&course.Par,
		&course.Length,
		&course.Rating,
		&course.ReviewCount,
		&course.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	course.CreatedAt = createdAt.Time
	course.UpdatedAt = updatedAt.Time

	return &course, nil
}
