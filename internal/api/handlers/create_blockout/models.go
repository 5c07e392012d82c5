package create_blockout

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
)

// CreateBlockoutRequest HTTP request model
type CreateBlockoutRequest struct {
	Date   string  `json:"date" validate:"required"` // "2025-06-10"
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=200"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateBlockoutRequest) ToServiceRequest(identity domain.Identity) (*models.CreateBlockoutRequest, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &models.CreateBlockoutRequest{
		Identity: identity,
		Date:     date,
		Reason:   r.Reason,
	}, nil
}
