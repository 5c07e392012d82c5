package paymentgateway

import "errors"

var (
	// ErrPaymentNotFound платеж не найден в шлюзе
	ErrPaymentNotFound = errors.New("paymentgateway: payment not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("paymentgateway client: invalid response")

	// ErrUnavailable шлюз недоступен, запрос можно повторить
	ErrUnavailable = errors.New("paymentgateway: unavailable")

	// ErrInvalidStatus недопустимый статус для эмуляции
	ErrInvalidStatus = errors.New("paymentgateway: invalid status")
)
