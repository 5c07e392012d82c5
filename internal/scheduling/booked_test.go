package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func TestFullyBookedDates(t *testing.T) {
	g := NewSlotGenerator(30)
	rules := []*domain.AvailabilityRule{
		rule(time.Monday, "09:00", "11:00"),
		rule(time.Tuesday, "09:00", "11:00"),
	}

	tuesday := date(2025, time.June, 10)
	thursday := date(2025, time.June, 12)

	appointments := []*domain.Appointment{
		// Понедельник занят полностью
		appointment(monday, "09:00", 60, domain.StatusConfirmed),
		appointment(monday, "10:00", 60, domain.StatusPending),
		// Вторник: остается 10:30
		appointment(tuesday, "09:00", 90, domain.StatusConfirmed),
		// Отмененная запись не занимает время
		appointment(date(2025, time.June, 16), "09:00", 120, domain.StatusCancelled),
	}
	blockouts := []*domain.Blockout{{ProfessionalID: "pro-1", Date: thursday}}

	booked := g.FullyBookedDates(date(2025, time.June, 1), date(2025, time.June, 30), rules, appointments, blockouts)

	assert.ElementsMatch(t, []time.Time{monday, thursday}, booked)
}
