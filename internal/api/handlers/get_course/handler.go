package get_course

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FitnessBookingService/internal/service/courses"
)

const (
	msgInvalidCourseID  = "некорректный ID курса"
	msgNotFound         = "курс не найден"
	msgStoreUnavailable = "сервис временно недоступен, повторите запрос"
)

type Handler struct {
	service CourseService
	logger  Logger
}

func NewHandler(service CourseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses/{courseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.ParseInt(mux.Vars(r)["courseId"], 10, 64)
	if err != nil || courseID <= 0 {
		h.logger.Warn("GET /courses/{id} - Invalid course ID: %s", mux.Vars(r)["courseId"])
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	course, err := h.service.GetByID(r.Context(), courseID)
	if err != nil {
		switch {
		case errors.Is(err, courses.ErrCourseNotFound):
			h.logger.Warn("GET /courses/{id} - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, courses.ErrStoreUnavailable):
			h.logger.Error("GET /courses/{id} - Store unavailable: course_id=%d, error=%v", courseID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /courses/{id} - Failed to get course: course_id=%d, error=%v", courseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courses/{id} - Course retrieved successfully: course_id=%d", courseID)
	handlers.RespondJSON(w, http.StatusOK, course)
}
