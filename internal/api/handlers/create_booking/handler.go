package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FitnessBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-FitnessBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingProfileID   = "отсутствует ID профиля"
	msgForbidden          = "нельзя бронировать от имени другого профиля"
	msgInvalidInput       = "некорректные данные бронирования"
	msgProfileNotFound    = "профиль не найден"
	msgCourseNotFound     = "курс не найден"
	msgInvalidDateRange   = "слот вне периода бронирования"
	msgHolidayBlackout    = "клуб закрыт на праздники"
	msgOutOfBusinessHours = "слот вне часов работы клуба"
	msgInvalidSlot        = "слот не совпадает с расписанием курса"
	msgCapacityExceeded   = "все места на занятие заняты"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
	msgStoreUnavailable   = "сервис временно недоступен, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем profileID из контекста (через middleware Auth)
	profileID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing profile ID")
		handlers.RespondUnauthorized(w, msgMissingProfileID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := handlers.ValidateStruct(&req); len(errs) > 0 {
		h.logger.Warn("POST /bookings - Validation failed: %d errors", len(errs))
		handlers.RespondValidationErrors(w, errs)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Бронировать можно только для себя
	if useCaseReq.ProfileID != profileID {
		h.logger.Warn("POST /bookings - Profile mismatch: header=%s, body=%s", profileID, useCaseReq.ProfileID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrProfileNotFound):
			h.logger.Warn("POST /bookings - Profile not found: profile_id=%s", profileID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, createBooking.ErrCourseNotFound):
			h.logger.Warn("POST /bookings - Course not found: course_id=%d", req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, createBooking.ErrHolidayBlackout):
			h.logger.Warn("POST /bookings - Holiday blackout: course_id=%d", req.CourseID)
			handlers.RespondUnprocessable(w, msgHolidayBlackout)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Date out of range: course_id=%d", req.CourseID)
			handlers.RespondUnprocessable(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrOutOfBusinessHours):
			h.logger.Warn("POST /bookings - Out of business hours: course_id=%d", req.CourseID)
			handlers.RespondUnprocessable(w, msgOutOfBusinessHours)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: course_id=%d", req.CourseID)
			handlers.RespondUnprocessable(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: profile_id=%s, course_id=%d", profileID, req.CourseID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot not available: profile_id=%s, course_id=%d", profileID, req.CourseID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: profile_id=%s, course_id=%d, error=%v", profileID, req.CourseID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: profile_id=%s, course_id=%d, error=%v",
				profileID, req.CourseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, profile_id=%s, course_id=%d",
		result.ID, profileID, req.CourseID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
