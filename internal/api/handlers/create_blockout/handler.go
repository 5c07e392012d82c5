package create_blockout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAlreadyBlocked     = "день уже закрыт"
	msgInvalidData        = "некорректные данные закрытого дня"
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

// Handle POST /api/v1/professionals/me/blockouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBlockoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals/me/blockouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(identity)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateBlockout(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrBlockoutExists):
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /professionals/me/blockouts - Invalid data: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /professionals/me/blockouts - Failed to create blockout: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /professionals/me/blockouts - Blockout created: user_id=%s, blockout_id=%d, date=%s",
		identity.UserID, result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
