package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetProfileBookingsRequest запрос на получение бронирований профиля
type GetProfileBookingsRequest struct {
	RequesterID uuid.UUID // Профиль из заголовка X-Profile-ID
	ProfileID   uuid.UUID // Профиль из пути запроса
	Upcoming    bool      // Только подтвержденные, начинающиеся не раньше текущего момента
	Status      *string   // Фильтр по статусу (игнорируется при Upcoming)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64     `json:"id"`
	ProfileID uuid.UUID `json:"profileId"`
	CourseID  int64     `json:"courseId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`

	// Данные курса (только в списках профиля)
	CourseName string `json:"courseName,omitempty"`
	CourseType string `json:"courseType,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		ProfileID: b.ProfileID,
		CourseID:  b.CourseID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingDetailsList конвертирует бронирования с данными курса в DTO
func FromDomainBookingDetailsList(list []*domain.BookingDetails) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(list)),
	}

	for _, d := range list {
		if d == nil {
			continue
		}
		item := FromDomainBooking(&d.Booking)
		item.CourseName = d.CourseName
		item.CourseType = string(d.CourseType)
		resp.Bookings = append(resp.Bookings, *item)
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
