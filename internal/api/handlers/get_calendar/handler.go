package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getCalendar "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_calendar"
)

const (
	msgMissingMonth         = "месяц обязателен"
	msgInvalidMonth         = "некорректный формат месяца, ожидается YYYY-MM"
	msgProfessionalNotFound = "мастер не найден"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: month (required, YYYY-MM), professionalId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := domain.ParseMonth(monthStr)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %q", monthStr)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	req := &getCalendar.Request{Month: month}
	if professionalID := handlers.QueryString(r, "professionalId"); professionalID != nil {
		req.ProfessionalID = *professionalID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrProfessionalNotFound):
			h.logger.Warn("GET /calendar - Professional not found: professional_id=%s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("GET /calendar - Failed to evaluate month=%s professional_id=%s: %v", monthStr, req.ProfessionalID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
