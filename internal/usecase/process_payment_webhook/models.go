package process_payment_webhook

// NotificationTypePayment единственный обрабатываемый тип уведомлений
const NotificationTypePayment = "payment"

// Request уведомление шлюза {type, data.id}
type Request struct {
	Type      string
	PaymentID string // ID платежа в шлюзе
	RawBody   []byte // Тело уведомления для журнала
}

// Response результат обработки
type Response struct {
	Ignored           bool
	PaymentID         int64
	AppointmentID     int64
	PaymentStatus     string
	AppointmentStatus string
}
