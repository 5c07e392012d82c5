package cancel_appointment

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model, тело необязательно
type CancelAppointmentRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(identity domain.Identity) *models.CancelRequest {
	return &models.CancelRequest{
		Identity:           identity,
		CancellationReason: r.CancellationReason,
	}
}
