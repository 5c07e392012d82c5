package get_calendar

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getCalendar "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_calendar"
)

// CalendarResponse сетка месяца 6x7
type CalendarResponse struct {
	Month          string        `json:"month"`
	ProfessionalID string        `json:"professionalId,omitempty"`
	Days           []CalendarDay `json:"days"`
}

// CalendarDay ячейка сетки
type CalendarDay struct {
	Date       string `json:"date"`
	InMonth    bool   `json:"inMonth"`
	Selectable bool   `json:"selectable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = CalendarDay{
			Date:       d.Date.Format(domain.DateFormat),
			InMonth:    d.InMonth,
			Selectable: d.Selectable,
		}
	}

	return &CalendarResponse{
		Month:          resp.Month.Format(domain.MonthFormat),
		ProfessionalID: resp.ProfessionalID,
		Days:           days,
	}
}
