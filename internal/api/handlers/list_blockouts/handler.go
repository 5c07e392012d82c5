package list_blockouts

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/professionals/me/blockouts
// Query params: from, to (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.ListBlockoutsRequest{Identity: identity}
	for name, dst := range map[string]**time.Time{"from": &req.From, "to": &req.To} {
		raw := handlers.QueryString(r, name)
		if raw == nil {
			continue
		}
		date, err := domain.ParseDate(*raw)
		if err != nil {
			h.logger.Warn("GET /professionals/me/blockouts - Invalid %s: %q", name, *raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		*dst = &date
	}

	result, err := h.service.ListBlockouts(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /professionals/me/blockouts - Failed to list blockouts: user_id=%s, error=%v", identity.UserID, err)
		handlers.RespondDomainError(w, err, "")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
