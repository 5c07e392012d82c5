package get_agenda

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	identity domain.Identity,
	professionalID *string,
	statusStr string,
	dateStr string,
	startDateStr string,
	endDateStr string,
	includeInactiveStr string,
) (*models.AgendaRequest, error) {
	req := &models.AgendaRequest{
		Identity:       identity,
		ProfessionalID: professionalID,
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	// date задает один день, startDate/endDate задают период
	if dateStr != "" {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		start, err := parseOptionalDate(startDateStr)
		if err != nil {
			return nil, err
		}
		end, err := parseOptionalDate(endDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = start
		req.EndDate = end
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	date, err := domain.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
