package get_profile_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FitnessBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-FitnessBookingService/internal/service/bookings/models"
)

const (
	msgInvalidProfileID = "некорректный ID профиля"
	msgMissingProfileID = "отсутствует ID профиля"
	msgInvalidUpcoming  = "параметр upcoming должен быть true или false"
	msgInvalidStatus    = "некорректный статус бронирования"
	msgForbidden        = "доступ запрещен"
	msgStoreUnavailable = "сервис временно недоступен, повторите запрос"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/profiles/{profileId}/bookings
// Query params: upcoming (optional, bool), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем profileId из URL
	profileID, err := uuid.Parse(mux.Vars(r)["profileId"])
	if err != nil {
		h.logger.Warn("GET /profiles/{id}/bookings - Invalid profile ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfileID)
		return
	}

	requesterID, ok := middleware.GetProfileID(r.Context())
	if !ok {
		h.logger.Warn("GET /profiles/{id}/bookings - Missing profile ID")
		handlers.RespondUnauthorized(w, msgMissingProfileID)
		return
	}

	serviceReq := &models.GetProfileBookingsRequest{
		RequesterID: requesterID,
		ProfileID:   profileID,
	}

	if raw := r.URL.Query().Get("upcoming"); raw != "" {
		upcoming, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /profiles/{id}/bookings - Invalid upcoming flag: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUpcoming)
			return
		}
		serviceReq.Upcoming = upcoming
	}

	if status := r.URL.Query().Get("status"); status != "" {
		serviceReq.Status = &status
	}

	result, err := h.service.GetProfileBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /profiles/{id}/bookings - Access denied: profile_id=%s, requester=%s", profileID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /profiles/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrStoreUnavailable):
			h.logger.Error("GET /profiles/{id}/bookings - Store unavailable: profile_id=%s, error=%v", profileID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /profiles/{id}/bookings - Failed to get bookings: profile_id=%s, error=%v", profileID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /profiles/{id}/bookings - Bookings retrieved successfully: profile_id=%s, count=%d",
		profileID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
