package domain

import "time"

// Blockout день, закрытый мастером для записи (отпуск, больничный)
type Blockout struct {
	ID             int64
	ProfessionalID string
	Date           time.Time
	Reason         *string
	CreatedAt      time.Time
}
