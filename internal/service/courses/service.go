package courses

import (
	"context"
	"errors"
	"fmt"

	courseRepo "github.com/m04kA/SMC-FitnessBookingService/internal/infra/storage/course"
	"github.com/m04kA/SMC-FitnessBookingService/internal/service/courses/models"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/pgerrors"
)

// Service сервис для чтения каталога курсов
type Service struct {
	courseRepo CourseRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса курсов
func NewService(courseRepo CourseRepository, logger Logger) *Service {
	return &Service{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// List возвращает каталог, упорядоченный по цене
func (s *Service) List(ctx context.Context) (*models.CourseListResponse, error) {
	list, err := s.courseRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCourses: repository error: %v", err)
		return nil, repositoryError("List", err)
	}

	s.logger.Info("ListCourses: successfully fetched %d courses", len(list))
	return models.FromDomainCourseList(list), nil
}

// GetByID возвращает курс по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			s.logger.Warn("GetCourse: course id=%d not found", id)
			return nil, ErrCourseNotFound
		}
		s.logger.Error("GetCourse: repository error for course id=%d: %v", id, err)
		return nil, repositoryError("GetByID", err)
	}

	return models.FromDomainCourse(course), nil
}

func repositoryError(op string, err error) error {
	if pgerrors.IsUnavailable(err) {
		return fmt.Errorf("%w: %s - repository error: %v", ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
