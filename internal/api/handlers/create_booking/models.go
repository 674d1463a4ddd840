package create_booking

import (
	"time"

	"github.com/google/uuid"

	createBooking "github.com/m04kA/SMC-FitnessBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model, время в формате RFC 3339
type CreateBookingRequest struct {
	ProfileID string    `json:"profileId" validate:"required,uuid"`
	CourseID  int64     `json:"courseId" validate:"required,gt=0"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	ProfileID  string `json:"profileId"`
	CourseID   int64  `json:"courseId"`
	CourseName string `json:"courseName"`
	CourseType string `json:"courseType"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Вызывается после валидации, profileId - корректный UUID.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	profileID, err := uuid.Parse(r.ProfileID)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ProfileID: profileID,
		CourseID:  r.CourseID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		ProfileID:  resp.ProfileID.String(),
		CourseID:   resp.CourseID,
		CourseName: resp.CourseName,
		CourseType: resp.CourseType,
		StartTime:  resp.StartTime.Format(time.RFC3339),
		EndTime:    resp.EndTime.Format(time.RFC3339),
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
