package list_courses

import (
	"context"

	"github.com/m04kA/SMC-FitnessBookingService/internal/service/courses/models"
)

type CourseService interface {
	List(ctx context.Context) (*models.CourseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
