package payment_webhook

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUseCaseRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		query    url.Values
		wantType string
		wantID   string
		wantErr  bool
	}{
		{
			name:     "numeric id",
			body:     `{"type":"payment","action":"payment.updated","data":{"id":123456}}`,
			wantType: "payment",
			wantID:   "123456",
		},
		{
			name:     "string id",
			body:     `{"type":"payment","data":{"id":"6f1c"}}`,
			wantType: "payment",
			wantID:   "6f1c",
		},
		{
			name:     "query fallback",
			query:    url.Values{"type": {"payment"}, "data.id": {"42"}},
			wantType: "payment",
			wantID:   "42",
		},
		{
			name:     "other type",
			body:     `{"type":"merchant_order","data":{"id":1}}`,
			wantType: "merchant_order",
			wantID:   "1",
		},
		{
			name:     "null id",
			body:     `{"type":"payment","data":{"id":null}}`,
			wantType: "payment",
		},
		{
			name:    "malformed",
			body:    `{"type":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ToUseCaseRequest([]byte(tt.body), tt.query)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, req.Type)
			assert.Equal(t, tt.wantID, req.PaymentID)
			assert.Equal(t, tt.body, string(req.RawBody))
		})
	}
}
