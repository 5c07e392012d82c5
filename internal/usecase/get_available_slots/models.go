package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	ProfessionalID string    // ID мастера
	ServiceID      int64     // ID услуги
	Date           time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time
	ProfessionalID  string
	ServiceID       int64
	DurationMinutes int
	// Slots все кандидаты дня по возрастанию, занятые помечены Available=false
	Slots []domain.Slot
}
