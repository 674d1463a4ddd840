package models

import "github.com/m04kA/SMC-FitnessBookingService/internal/domain"

// CourseResponse ответ с данными курса
type CourseResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	CourseType       string  `json:"courseType"`
	DurationMinutes  int     `json:"durationMinutes,omitempty"`
	MaxParticipants  *int    `json:"maxParticipants,omitempty"`
	Price            float64 `json:"price"`
	IsMonthly        bool    `json:"isMonthly"`
	SessionsPerMonth *int    `json:"sessionsPerMonth,omitempty"`
}

// CourseListResponse ответ со списком курсов
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// FromDomainCourse конвертирует domain модель в DTO
func FromDomainCourse(c *domain.Course) *CourseResponse {
	if c == nil {
		return nil
	}

	return &CourseResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		CourseType:       string(c.Type),
		DurationMinutes:  c.DurationMinutes,
		MaxParticipants:  c.MaxParticipants,
		Price:            c.Price,
		IsMonthly:        c.IsMonthly,
		SessionsPerMonth: c.SessionsPerMonth,
	}
}

// FromDomainCourseList конвертирует список курсов в DTO
func FromDomainCourseList(list []*domain.Course) *CourseListResponse {
	resp := &CourseListResponse{
		Courses: make([]CourseResponse, 0, len(list)),
	}
	for _, c := range list {
		if item := FromDomainCourse(c); item != nil {
			resp.Courses = append(resp.Courses, *item)
		}
	}
	return resp
}
