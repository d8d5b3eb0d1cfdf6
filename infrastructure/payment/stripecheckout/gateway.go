// Package stripecheckout implements the payment gateway boundary on
// Stripe Checkout hosted sessions.
package stripecheckout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"spectra-directory/domain/payment"
	pkgerrors "spectra-directory/pkg/errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const defaultTimeout = 10 * time.Second

// Config carries the Stripe credentials and redirect targets.
type Config struct {
	SecretKey  string
	PriceID    string
	SuccessURL string
	CancelURL  string
	Timeout    time.Duration
}

// Enabled reports whether both the secret key and the price reference
// are present. Without either, payment is treated as disabled.
func (c Config) Enabled() bool {
	return c.SecretKey != "" && c.PriceID != ""
}

// Gateway opens and inspects Stripe Checkout sessions. All calls run
// with a bounded timeout; any transport or API failure degrades to
// StatusError and never to paid.
type Gateway struct {
	cfg Config
	api *client.API
}

func New(cfg Config) *Gateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	g := &Gateway{cfg: cfg}
	if cfg.Enabled() {
		backends := stripe.NewBackends(&http.Client{Timeout: cfg.Timeout})
		g.api = &client.API{}
		g.api.Init(cfg.SecretKey, backends)
	}
	return g
}

func (g *Gateway) Enabled() bool {
	return g.cfg.Enabled()
}

// OpenSession creates a one-off payment session for a single unit of
// the configured price, tagged with the listing slug and name. The
// success URL carries the slug plus Stripe's session id placeholder so
// the confirmation callback can poll the session.
func (g *Gateway) OpenSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error) {
	if !g.Enabled() {
		return nil, payment.ErrNotConfigured
	}

	successURL := fmt.Sprintf("%s?slug=%s&session_id={CHECKOUT_SESSION_ID}",
		g.cfg.SuccessURL, url.QueryEscape(req.Slug))

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(g.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(g.cfg.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("tool_slug", req.Slug)
	params.AddMetadata("tool_name", req.Name)

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, pkgerrors.Gateway(err, "failed to create checkout session")
	}

	return &payment.Session{ID: sess.ID, RedirectURL: sess.URL}, nil
}

// SessionStatus polls Stripe for the current payment status of a
// session. A missing session maps to StatusNotFound; everything the
// provider does not report as exactly paid maps to unpaid.
func (g *Gateway) SessionStatus(ctx context.Context, sessionID string) (payment.Status, error) {
	if !g.Enabled() {
		return payment.StatusError, payment.ErrNotConfigured
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return payment.StatusNotFound, nil
		}
		return payment.StatusError, pkgerrors.Gateway(err, "failed to retrieve checkout session")
	}

	if sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		return payment.StatusPaid, nil
	}
	return payment.StatusUnpaid, nil
}
