package course

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/pgerrors"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/psqlbuilder"
)

var courseColumns = []string{
	"id",
	"name",
	"description",
	"course_type",
	"duration_minutes",
	"max_participants",
	"price",
	"is_monthly",
	"sessions_per_month",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога курсов (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория курсов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает курс по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	course, err := scanCourse(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan course: %w", ErrScanRow, pgerrors.Classify(err))
	}

	return course, nil
}

// List получает все курсы каталога, отсортированные по цене
func (r *Repository) List(ctx context.Context) ([]*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courseColumns...).
		From("courses").
		OrderBy("price ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, pgerrors.Classify(err))
	}
	defer rows.Close()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, pgerrors.Classify(err))
	}

	return courses, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(row scanner) (*domain.Course, error) {
	var course domain.Course
	var maxParticipants, sessionsPerMonth sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.Type,
		&course.DurationMinutes,
		&maxParticipants,
		&course.Price,
		&course.IsMonthly,
		&sessionsPerMonth,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if maxParticipants.Valid {
		v := int(maxParticipants.Int64)
		course.MaxParticipants = &v
	}
	if sessionsPerMonth.Valid {
		v := int(sessionsPerMonth.Int64)
		course.SessionsPerMonth = &v
	}
	course.CreatedAt = createdAt.Time
	course.UpdatedAt = updatedAt.Time

	return &course, nil
}
