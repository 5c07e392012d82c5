package paymentgateway

import (
	"context"
	"errors"
)

// RetryingGateway повторяет вызовы шлюза, пока он недоступен
type RetryingGateway struct {
	next    Gateway
	retrier Retrier
}

// WithRetry оборачивает шлюз политикой повторов
func WithRetry(next Gateway, retrier Retrier) *RetryingGateway {
	return &RetryingGateway{next: next, retrier: retrier}
}

// IsRetryable шлюз недоступен, запрос можно повторить
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// CreatePixCharge повтор безопасен: шлюз дедуплицирует запросы по external reference
func (g *RetryingGateway) CreatePixCharge(ctx context.Context, req CreateChargeRequest) (*Charge, error) {
	var charge *Charge
	err := g.retrier.Retry(ctx, func() error {
		c, err := g.next.CreatePixCharge(ctx, req)
		if err != nil {
			return err
		}
		charge = c
		return nil
	}, IsRetryable)
	if err != nil {
		return nil, err
	}
	return charge, nil
}

func (g *RetryingGateway) GetPayment(ctx context.Context, id string) (*Charge, error) {
	var charge *Charge
	err := g.retrier.Retry(ctx, func() error {
		c, err := g.next.GetPayment(ctx, id)
		if err != nil {
			return err
		}
		charge = c
		return nil
	}, IsRetryable)
	if err != nil {
		return nil, err
	}
	return charge, nil
}
