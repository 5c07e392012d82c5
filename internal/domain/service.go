package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service услуга салона. Справочные данные, редактируются вне этого сервиса.
type Service struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int
	Price           decimal.Decimal
	ImageURL        *string
	CreatedAt       time.Time
}

// IsLong услуга длиннее 6 часов
func (s *Service) IsLong() bool {
	return s.DurationMinutes > LongServiceThresholdMinutes
}

// DepositAmount сумма предоплаты (sinal), округляется до копеек
func (s *Service) DepositAmount(percent int) decimal.Decimal {
	return s.Price.
		Mul(decimal.NewFromInt(int64(percent))).
		Div(decimal.NewFromInt(100)).
		Round(2)
}
