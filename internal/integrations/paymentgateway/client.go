package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Client HTTP клиент платежного шлюза (REST API в формате Mercado Pago)
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента шлюза
func NewClient(baseURL, accessToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreatePixCharge создает PIX-платеж
func (c *Client) CreatePixCharge(ctx context.Context, req CreateChargeRequest) (*Charge, error) {
	body, err := json.Marshal(paymentRequest{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		PaymentMethodID:   methodPix,
		ExternalReference: req.ExternalReference,
		Payer:             payer{Email: req.PayerEmail},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	// Повтор того же запроса не создаст второй платеж
	httpReq.Header.Set("X-Idempotency-Key", req.ExternalReference)

	c.log.Info("PaymentGateway: creating pix charge ref=%s amount=%s", req.ExternalReference, req.Amount.StringFixed(2))
	return c.do(httpReq)
}

// GetPayment получает платеж по ID в шлюзе
func (c *Client) GetPayment(ctx context.Context, id string) (*Charge, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/payments/%s", c.baseURL, id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	return c.do(httpReq)
}

func (c *Client) do(req *http.Request) (*Charge, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrPaymentNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payment paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &Charge{
		ID:                strconv.FormatInt(payment.ID, 10),
		Status:            payment.Status,
		Amount:            payment.TransactionAmount,
		ExternalReference: payment.ExternalReference,
		PixCode:           payment.PointOfInteraction.TransactionData.QRCode,
		ExpiresAt:         payment.DateOfExpiration,
	}, nil
}
