package paymentgateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// mockPixPrefix начало тестового PIX-кода "copia e cola"
const mockPixPrefix = "00020126580014BR.GOV.BCB.PIX0136"

// MockGateway эмуляция шлюза в памяти. Платежи создаются в статусе pending
// и меняют статус только через Settle.
type MockGateway struct {
	mu      sync.RWMutex
	charges map[string]*Charge
	expiry  time.Duration
	now     func() time.Time
}

// NewMockGateway создает эмулятор шлюза
func NewMockGateway(expiry time.Duration) *MockGateway {
	return &MockGateway{
		charges: make(map[string]*Charge),
		expiry:  expiry,
		now:     time.Now,
	}
}

func (m *MockGateway) CreatePixCharge(_ context.Context, req CreateChargeRequest) (*Charge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.charges {
		if existing.ExternalReference == req.ExternalReference {
			copied := *existing
			return &copied, nil
		}
	}

	id := uuid.NewString()
	expiresAt := m.now().Add(m.expiry)
	charge := &Charge{
		ID:                id,
		Status:            StatusPending,
		Amount:            req.Amount,
		ExternalReference: req.ExternalReference,
		PixCode:           fmt.Sprintf("%s%s5204000053039865406%s", mockPixPrefix, id, req.Amount.StringFixed(2)),
		ExpiresAt:         &expiresAt,
	}
	m.charges[id] = charge

	copied := *charge
	return &copied, nil
}

func (m *MockGateway) GetPayment(_ context.Context, id string) (*Charge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	charge, ok := m.charges[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}

	copied := *charge
	return &copied, nil
}

// Settle меняет статус платежа, как это сделал бы шлюз после оплаты
func (m *MockGateway) Settle(_ context.Context, id, status string) (*Charge, error) {
	switch status {
	case StatusApproved, StatusRejected, StatusCancelled, StatusRefunded, StatusChargedBack, StatusPending:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	charge, ok := m.charges[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	charge.Status = status

	copied := *charge
	return &copied, nil
}
