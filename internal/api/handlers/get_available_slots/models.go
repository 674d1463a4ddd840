package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-FitnessBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CourseID   int64           `json:"courseId"`
	CourseType string          `json:"courseType"`
	Date       string          `json:"date"` // "2026-10-15"
	IsOpen     bool            `json:"isOpen"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot свободный слот
type AvailableSlot struct {
	StartTime      string `json:"startTime"` // RFC 3339 с часовым поясом клуба
	EndTime        string `json:"endTime"`
	AvailableSpots *int   `json:"availableSpots,omitempty"`
	TotalSpots     *int   `json:"totalSpots,omitempty"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(courseID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CourseID: courseID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, AvailableSlot{
			StartTime:      s.StartTime.Format(time.RFC3339),
			EndTime:        s.EndTime.Format(time.RFC3339),
			AvailableSpots: s.AvailableSpots,
			TotalSpots:     s.TotalSpots,
		})
	}

	return &AvailableSlotsResponse{
		CourseID:   resp.CourseID,
		CourseType: string(resp.CourseType),
		Date:       resp.Date.Format(domain.DateFormat),
		IsOpen:     resp.IsOpen,
		Slots:      slots,
	}
}
