package payment_webhook

import (
	"encoding/json"
	"net/url"
	"strings"

	processPaymentWebhook "github.com/m04kA/SMC-SalonBooking/internal/usecase/process_payment_webhook"
)

// Notification уведомление шлюза. data.id приходит и строкой, и числом.
type Notification struct {
	Type   string `json:"type"`
	Action string `json:"action,omitempty"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// WebhookResponse HTTP response model
type WebhookResponse struct {
	Received          bool   `json:"received"`
	Ignored           bool   `json:"ignored,omitempty"`
	PaymentID         int64  `json:"paymentId,omitempty"`
	AppointmentID     int64  `json:"appointmentId,omitempty"`
	PaymentStatus     string `json:"paymentStatus,omitempty"`
	AppointmentStatus string `json:"appointmentStatus,omitempty"`
}

// ToUseCaseRequest собирает запрос из тела и query параметров (type, data.id)
func ToUseCaseRequest(body []byte, query url.Values) (*processPaymentWebhook.Request, error) {
	req := &processPaymentWebhook.Request{RawBody: body}

	if len(strings.TrimSpace(string(body))) > 0 {
		var n Notification
		if err := json.Unmarshal(body, &n); err != nil {
			return nil, err
		}
		req.Type = n.Type
		req.PaymentID = strings.Trim(string(n.Data.ID), `"`)
		if req.PaymentID == "null" {
			req.PaymentID = ""
		}
	}

	if req.Type == "" {
		req.Type = query.Get("type")
	}
	if req.PaymentID == "" {
		req.PaymentID = query.Get("data.id")
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *processPaymentWebhook.Response) *WebhookResponse {
	return &WebhookResponse{
		Received:          true,
		Ignored:           resp.Ignored,
		PaymentID:         resp.PaymentID,
		AppointmentID:     resp.AppointmentID,
		PaymentStatus:     resp.PaymentStatus,
		AppointmentStatus: resp.AppointmentStatus,
	}
}
