package list_courses

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FitnessBookingService/internal/service/courses"
)

const msgStoreUnavailable = "сервис временно недоступен, повторите запрос"

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

// Handle GET /api/v1/courses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, courses.ErrStoreUnavailable) {
			h.logger.Error("GET /courses - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
			return
		}
		h.logger.Error("GET /courses - Failed to list courses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courses - Courses listed successfully: count=%d", len(result.Courses))
	handlers.RespondJSON(w, http.StatusOK, result)
}
