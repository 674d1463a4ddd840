package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/pgerrors"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"profile_id",
	"course_id",
	"start_time",
	"end_time",
	"status",
	"exclusive",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Пересечение подтвержденных персональных тренировок отклоняется ограничением
// bookings_exclusive_no_overlap (23P01), ошибка классифицируется как pgerrors.ErrConflict.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"profile_id",
			"course_id",
			"start_time",
			"end_time",
			"status",
			"exclusive",
		).
		Values(
			booking.ProfileID,
			booking.CourseID,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.Exclusive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, pgerrors.Classify(err))
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ProfileID,
		&booking.CourseID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.Exclusive,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, pgerrors.Classify(err))
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetConfirmedByCourse получает подтвержденные бронирования курса,
// пересекающиеся с интервалом [from, to)
//
// Внутри транзакции строки блокируются (FOR UPDATE): конкурирующее бронирование
// того же интервала ждет завершения текущей транзакции. Бронирования других курсов
// и непересекающихся интервалов не блокируются.
func (r *Repository) GetConfirmedByCourse(ctx context.Context, courseID int64, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"course_id": courseID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByCourse - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByCourse - execute query: %w", ErrExecQuery, pgerrors.Classify(err))
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByProfile получает бронирования профиля вместе с данными курса,
// отсортированные по времени начала
func (r *Repository) GetByProfile(ctx context.Context, filter domain.ProfileBookingsFilter) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.profile_id",
		"b.course_id",
		"b.start_time",
		"b.end_time",
		"b.status",
		"b.exclusive",
		"b.created_at",
		"b.updated_at",
		"c.name",
		"c.course_type",
	).
		From("bookings b").
		Join("courses c ON c.id = b.course_id").
		Where(squirrel.Eq{"b.profile_id": filter.ProfileID}).
		OrderBy("b.start_time ASC")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.start_time": *filter.From})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfile - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfile - execute query: %w", ErrExecQuery, pgerrors.Classify(err))
	}
	defer rows.Close()

	result := make([]*domain.BookingDetails, 0)
	for rows.Next() {
		var details domain.BookingDetails
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&details.ID,
			&details.ProfileID,
			&details.CourseID,
			&details.StartTime,
			&details.EndTime,
			&details.Status,
			&details.Exclusive,
			&createdAt,
			&updatedAt,
			&details.CourseName,
			&details.CourseType,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByProfile - scan row: %v", ErrScanRow, err)
		}

		details.CreatedAt = createdAt.Time
		details.UpdatedAt = updatedAt.Time
		result = append(result, &details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProfile - rows error: %w", ErrScanRow, pgerrors.Classify(err))
	}

	return result, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ProfileID,
			&booking.CourseID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.Exclusive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, pgerrors.Classify(err))
	}

	return bookings, nil
}
