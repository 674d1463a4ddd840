package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/pgerrors"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/psqlbuilder"
)

// Repository чтение профилей, которые ведет сервис идентификации
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "full_name", "email").
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var profile domain.Profile
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %w", ErrScanRow, pgerrors.Classify(err))
	}

	return &profile, nil
}
