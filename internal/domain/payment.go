package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus статус предоплаты
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

const PaymentMethodPix = "pix"

// MapGatewayStatus переводит статус платежного шлюза в статус предоплаты
func MapGatewayStatus(status string) PaymentStatus {
	switch status {
	case "approved":
		return PaymentApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentRejected
	default:
		return PaymentPending
	}
}

// AppointmentStatusFor статус записи, в который переводит изменение платежа.
// Для pending перехода нет.
func AppointmentStatusFor(status PaymentStatus) (AppointmentStatus, bool) {
	switch status {
	case PaymentApproved:
		return StatusConfirmed, true
	case PaymentRejected:
		return StatusCancelled, true
	}
	return "", false
}

// Payment предоплата за запись. Одна на запись.
type Payment struct {
	ID                int64
	AppointmentID     int64
	Amount            decimal.Decimal
	Status            PaymentStatus
	Method            string
	ExternalID        string
	ExternalReference string
	PixCode           string
	ExpiresAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ExternalReferenceFor формат ссылки для шлюза: appointment_<id>_<unix>
func ExternalReferenceFor(appointmentID int64, now time.Time) string {
	return fmt.Sprintf("appointment_%d_%d", appointmentID, now.Unix())
}

// ParseExternalReference достает id записи из ссылки шлюза
func ParseExternalReference(ref string) (int64, error) {
	var id, ts int64
	if _, err := fmt.Sscanf(ref, "appointment_%d_%d", &id, &ts); err != nil {
		return 0, fmt.Errorf("%w: malformed external reference %q", ErrValidation, ref)
	}
	return id, nil
}

// PaymentNotification журнал уведомлений шлюза
type PaymentNotification struct {
	ID                int64
	PaymentID         int64
	ExternalPaymentID string
	Status            PaymentStatus
	RawData           []byte
	CreatedAt         time.Time
}
