package mock

import (
	"context"
	"fmt"

	"spectra-directory/domain/payment"
)

// PaymentGateway is a fake payment.Gateway for tests. Sessions maps a
// session ID to the status the provider would report for it.
type PaymentGateway struct {
	Configured bool
	Sessions   map[string]payment.Status

	OpenErr   error
	StatusErr error

	opened int
}

func NewPaymentGateway(configured bool) *PaymentGateway {
	return &PaymentGateway{
		Configured: configured,
		Sessions:   make(map[string]payment.Status),
	}
}

func (g *PaymentGateway) Enabled() bool {
	return g.Configured
}

func (g *PaymentGateway) OpenSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error) {
	if !g.Configured {
		return nil, payment.ErrNotConfigured
	}
	if g.OpenErr != nil {
		return nil, g.OpenErr
	}
	g.opened++
	id := fmt.Sprintf("cs_test_%d", g.opened)
	g.Sessions[id] = payment.StatusUnpaid
	return &payment.Session{
		ID:          id,
		RedirectURL: "https://checkout.example.com/" + id,
	}, nil
}

func (g *PaymentGateway) SessionStatus(ctx context.Context, sessionID string) (payment.Status, error) {
	if g.StatusErr != nil {
		return payment.StatusError, g.StatusErr
	}
	status, ok := g.Sessions[sessionID]
	if !ok {
		return payment.StatusNotFound, nil
	}
	return status, nil
}

// MarkPaid flips a session to paid, as if the visitor completed the
// hosted checkout.
func (g *PaymentGateway) MarkPaid(sessionID string) {
	g.Sessions[sessionID] = payment.StatusPaid
}
