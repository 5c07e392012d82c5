package models

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           string  `json:"price"` // "120.00"
	ImageURL        *string `json:"imageUrl,omitempty"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ProfessionalResponse мастер, публичные данные
type ProfessionalResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProfessionalListResponse список мастеров
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price.StringFixed(2),
		ImageURL:        s.ImageURL,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		if item := FromDomainService(s); item != nil {
			resp.Services = append(resp.Services, *item)
		}
	}
	return resp
}

// FromDomainProfessionalList конвертирует список профилей мастеров
func FromDomainProfessionalList(profiles []*domain.Profile) *ProfessionalListResponse {
	resp := &ProfessionalListResponse{Professionals: make([]ProfessionalResponse, 0, len(profiles))}
	for _, p := range profiles {
		resp.Professionals = append(resp.Professionals, ProfessionalResponse{ID: p.ID, Name: p.Name})
	}
	return resp
}
