package services

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Receipt is what the gateway hands back for a successful charge.
type Receipt struct {
	TransactionID string `json:"transaction_id"`
	PaidAt        string `json:"paid_at"`
}

// PaymentGateway is the checkout boundary. The real platform would talk to a
// PSP here; the mock below stands in for it.
type PaymentGateway interface {
	Charge(ctx context.Context, amount int, currency, method string) (Receipt, error)
}

type mockGateway struct {
	delay time.Duration
}

// NewMockGateway returns a gateway that waits for the given delay and then
// approves every charge. Tests pass 0.
func NewMockGateway(delay time.Duration) PaymentGateway {
	return &mockGateway{delay: delay}
}

func (g *mockGateway) Charge(ctx context.Context, amount int, currency, method string) (Receipt, error) {
	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-time.After(g.delay):
		}
	}

	return Receipt{
		TransactionID: "TXN-" + uuid.NewString(),
		PaidAt:        time.Now().UTC().Format(time.RFC3339),
	}, nil
}
