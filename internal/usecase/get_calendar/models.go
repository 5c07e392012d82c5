package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса сетки календаря
type Request struct {
	Month          time.Time // Любая дата внутри месяца
	ProfessionalID string    // Пусто, если мастер не выбран
}

// Response модель ответа: 42 дня, начиная с воскресенья
type Response struct {
	Month          time.Time
	ProfessionalID string
	Days           []domain.CalendarDay
}
