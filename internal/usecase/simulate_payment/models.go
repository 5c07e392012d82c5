package simulate_payment

// Request модель запроса эмуляции оплаты
type Request struct {
	PaymentID int64  // ID платежа в сервисе
	Status    string // Статус шлюза: approved, rejected, ...
}

// Response результат обработки, как после настоящего уведомления
type Response struct {
	PaymentID         int64
	AppointmentID     int64
	PaymentStatus     string
	AppointmentStatus string
}
