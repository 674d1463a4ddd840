package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FitnessBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FitnessBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/pgerrors"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Профиль может видеть только своё бронирование.
func (s *Service) GetByID(ctx context.Context, id int64, profileID uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for profile=%s", id, profileID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, repositoryError("GetByID", err)
	}

	// Проверяем права доступа
	if booking.ProfileID != profileID {
		s.logger.Warn("GetByID: access denied for profile=%s to booking id=%d", profileID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetProfileBookings получает бронирования профиля с данными курса, по возрастанию времени начала.
// Upcoming оставляет только подтвержденные бронирования, начинающиеся не раньше текущего момента.
func (s *Service) GetProfileBookings(ctx context.Context, req *models.GetProfileBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetProfileBookings: fetching bookings for profile=%s, upcoming=%t", req.ProfileID, req.Upcoming)

	if req.ProfileID == uuid.Nil {
		return nil, fmt.Errorf("%w: profileID is required", ErrInvalidInput)
	}

	// Проверяем права доступа
	if req.RequesterID != req.ProfileID {
		s.logger.Warn("GetProfileBookings: access denied for profile=%s to bookings of profile=%s", req.RequesterID, req.ProfileID)
		return nil, ErrAccessDenied
	}

	filter := domain.ProfileBookingsFilter{ProfileID: req.ProfileID}

	switch {
	case req.Upcoming:
		now := s.timeProvider.Now()
		confirmed := domain.StatusConfirmed
		filter.From = &now
		filter.Status = &confirmed
	case req.Status != nil:
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetProfileBookings: invalid status=%s for profile=%s", *req.Status, req.ProfileID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByProfile(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfileBookings: repository error for profile=%s: %v", req.ProfileID, err)
		return nil, repositoryError("GetProfileBookings", err)
	}

	s.logger.Info("GetProfileBookings: successfully fetched %d bookings for profile=%s", len(bookings), req.ProfileID)
	return models.FromDomainBookingDetailsList(bookings), nil
}

func repositoryError(op string, err error) error {
	if pgerrors.IsUnavailable(err) {
		return fmt.Errorf("%w: %s - repository error: %v", ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
