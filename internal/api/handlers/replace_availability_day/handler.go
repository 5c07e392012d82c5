package replace_availability_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability"
)

const (
	msgInvalidWeekday     = "некорректный день недели, ожидается число от 0 (воскресенье) до 6"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgOverlapping        = "интервалы рабочего времени пересекаются"
	msgInvalidData        = "некорректные интервалы рабочего времени"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professionals/me/availability/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weekday, err := strconv.Atoi(mux.Vars(r)["weekday"])
	if err != nil {
		h.logger.Warn("PUT /professionals/me/availability/{weekday} - Invalid weekday: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ReplaceDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/me/availability/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceDay(r.Context(), req.ToServiceRequest(identity, weekday))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrOverlappingRanges):
			handlers.RespondBadRequest(w, msgOverlapping)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/me/availability/{weekday} - Invalid data: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /professionals/me/availability/{weekday} - Failed to replace day: user_id=%s, weekday=%d, error=%v",
				identity.UserID, weekday, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("PUT /professionals/me/availability/{weekday} - Day replaced: user_id=%s, weekday=%d, ranges=%d",
		identity.UserID, weekday, len(result.Ranges))
	handlers.RespondJSON(w, http.StatusOK, result)
}
