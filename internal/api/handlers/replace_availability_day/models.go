package replace_availability_day

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
)

// ReplaceDayRequest HTTP request model. Пустой ranges закрывает день.
type ReplaceDayRequest struct {
	Ranges []models.TimeRange `json:"ranges" validate:"dive"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *ReplaceDayRequest) ToServiceRequest(identity domain.Identity, weekday int) *models.ReplaceDayRequest {
	return &models.ReplaceDayRequest{
		Identity: identity,
		Weekday:  weekday,
		Ranges:   r.Ranges,
	}
}
