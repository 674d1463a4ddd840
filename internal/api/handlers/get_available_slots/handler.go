package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-FitnessBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCourseID  = "некорректный ID курса"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCourseNotFound   = "курс не найден"
	msgInvalidDateRange = "дата вне периода бронирования"
	msgStoreUnavailable = "сервис временно недоступен, повторите запрос"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses/{courseId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем courseId из URL
	courseID, err := strconv.ParseInt(mux.Vars(r)["courseId"], 10, 64)
	if err != nil || courseID <= 0 {
		h.logger.Warn("GET /courses/{id}/available-slots - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courses/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(courseID, dateStr)
	if err != nil {
		h.logger.Warn("GET /courses/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /courses/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourseID)

		case errors.Is(err, getAvailableSlots.ErrCourseNotFound):
			h.logger.Warn("GET /courses/{id}/available-slots - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDateRange):
			h.logger.Warn("GET /courses/{id}/available-slots - Date out of range: course_id=%d, date=%s", courseID, dateStr)
			handlers.RespondUnprocessable(w, msgInvalidDateRange)

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET /courses/{id}/available-slots - Store unavailable: course_id=%d, error=%v", courseID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /courses/{id}/available-slots - Failed to get slots: course_id=%d, date=%s, error=%v",
				courseID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courses/{id}/available-slots - Slots retrieved successfully: course_id=%d, date=%s, slots_count=%d",
		courseID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
