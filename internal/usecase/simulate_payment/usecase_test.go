package simulate_payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/paymentgateway"
	paymentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/payment"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/process_payment_webhook"
)

type fakePayments map[int64]*domain.Payment

func (f fakePayments) GetByID(_ context.Context, id int64) (*domain.Payment, error) {
	p, ok := f[id]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return p, nil
}

type recordingWebhook struct {
	requests []*process_payment_webhook.Request
}

func (r *recordingWebhook) Execute(_ context.Context, req *process_payment_webhook.Request) (*process_payment_webhook.Response, error) {
	r.requests = append(r.requests, req)
	return &process_payment_webhook.Response{
		PaymentID:         5,
		AppointmentID:     10,
		PaymentStatus:     string(domain.PaymentApproved),
		AppointmentStatus: string(domain.StatusConfirmed),
	}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func setup(t *testing.T) (*UseCase, *paymentgateway.MockGateway, *recordingWebhook, string) {
	t.Helper()

	gw := paymentgateway.NewMockGateway(time.Hour)
	charge, err := gw.CreatePixCharge(context.Background(), paymentgateway.CreateChargeRequest{
		Amount:            decimal.NewFromInt(60),
		ExternalReference: "appointment_10_1718000000",
	})
	require.NoError(t, err)

	webhook := &recordingWebhook{}
	uc := NewUseCase(fakePayments{5: {ID: 5, AppointmentID: 10, ExternalID: charge.ID}}, gw, webhook, noopLogger{})
	return uc, gw, webhook, charge.ID
}

func TestExecute_SettlesAndRunsWebhook(t *testing.T) {
	uc, gw, webhook, chargeID := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{PaymentID: 5, Status: paymentgateway.StatusApproved})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.AppointmentStatus)

	charge, err := gw.GetPayment(context.Background(), chargeID)
	require.NoError(t, err)
	assert.Equal(t, paymentgateway.StatusApproved, charge.Status)

	require.Len(t, webhook.requests, 1)
	assert.Equal(t, process_payment_webhook.NotificationTypePayment, webhook.requests[0].Type)
	assert.Equal(t, chargeID, webhook.requests[0].PaymentID)
	assert.JSONEq(t, `{"type":"payment","data":{"id":"`+chargeID+`"}}`, string(webhook.requests[0].RawBody))
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"missing id", &Request{Status: "approved"}, domain.ErrValidation},
		{"missing status", &Request{PaymentID: 5}, domain.ErrValidation},
		{"unknown status", &Request{PaymentID: 5, Status: "paid"}, domain.ErrValidation},
		{"unknown payment", &Request{PaymentID: 6, Status: "approved"}, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, webhook, _ := setup(t)

			_, err := uc.Execute(context.Background(), tt.req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, webhook.requests)
		})
	}
}
