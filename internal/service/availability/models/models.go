package models

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модели

// TimeRange интервал "HH:MM"-"HH:MM"
type TimeRange struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// ReplaceDayRequest запрос на замену всех интервалов дня недели
type ReplaceDayRequest struct {
	Identity domain.Identity
	Weekday  int         // 0 = воскресенье
	Ranges   []TimeRange `json:"ranges"` // Пусто = нерабочий день
}

// CreateBlockoutRequest запрос на закрытие дня
type CreateBlockoutRequest struct {
	Identity domain.Identity
	Date     time.Time
	Reason   *string `json:"reason,omitempty"`
}

// ListBlockoutsRequest запрос закрытых дней за период
type ListBlockoutsRequest struct {
	Identity domain.Identity
	From     *time.Time
	To       *time.Time
}

// Response модели

// DayAvailability рабочие интервалы одного дня недели
type DayAvailability struct {
	Weekday   int         `json:"weekday"`
	Available bool        `json:"available"`
	Ranges    []TimeRange `json:"ranges"`
}

// WeeklyAvailabilityResponse неделя мастера, с воскресенья
type WeeklyAvailabilityResponse struct {
	ProfessionalID string            `json:"professionalId"`
	Days           []DayAvailability `json:"days"`
}

// BlockoutResponse закрытый день
type BlockoutResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockoutListResponse список закрытых дней
type BlockoutListResponse struct {
	Blockouts []BlockoutResponse `json:"blockouts"`
}

// Методы конвертации

// FromDomainDay собирает интервалы одного дня недели
func FromDomainDay(weekday time.Weekday, rules []*domain.AvailabilityRule) DayAvailability {
	day := DayAvailability{Weekday: int(weekday), Ranges: []TimeRange{}}

	active := make([]*domain.AvailabilityRule, 0, len(rules))
	for _, r := range rules {
		if r.Weekday == weekday && r.IsActive() {
			active = append(active, r)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].StartTime.IsBefore(active[j].StartTime)
	})

	for _, r := range active {
		day.Ranges = append(day.Ranges, TimeRange{Start: r.StartTime.String(), End: r.EndTime.String()})
	}
	day.Available = len(day.Ranges) > 0
	return day
}

// FromDomainRules собирает неделю из правил
func FromDomainRules(professionalID string, rules []*domain.AvailabilityRule) *WeeklyAvailabilityResponse {
	resp := &WeeklyAvailabilityResponse{
		ProfessionalID: professionalID,
		Days:           make([]DayAvailability, 0, domain.DaysInWeek),
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		resp.Days = append(resp.Days, FromDomainDay(wd, rules))
	}
	return resp
}

// FromDomainBlockout конвертирует domain модель в DTO
func FromDomainBlockout(b *domain.Blockout) *BlockoutResponse {
	if b == nil {
		return nil
	}
	return &BlockoutResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockoutList конвертирует список
func FromDomainBlockoutList(blockouts []*domain.Blockout) *BlockoutListResponse {
	resp := &BlockoutListResponse{Blockouts: make([]BlockoutResponse, 0, len(blockouts))}
	for _, b := range blockouts {
		if item := FromDomainBlockout(b); item != nil {
			resp.Blockouts = append(resp.Blockouts, *item)
		}
	}
	return resp
}
