package delete_blockout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability"
)

const (
	msgInvalidBlockoutID = "некорректный ID закрытого дня"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "закрытый день не найден"
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

// Handle DELETE /api/v1/professionals/me/blockouts/{blockoutId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockoutID, err := handlers.PathInt64(r, "blockoutId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBlockoutID)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteBlockout(r.Context(), identity, blockoutID); err != nil {
		switch {
		case errors.Is(err, availability.ErrBlockoutNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /professionals/me/blockouts/{id} - Failed to delete blockout: blockout_id=%d, error=%v", blockoutID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("DELETE /professionals/me/blockouts/{id} - Blockout deleted: user_id=%s, blockout_id=%d", identity.UserID, blockoutID)
	w.WriteHeader(http.StatusNoContent)
}
