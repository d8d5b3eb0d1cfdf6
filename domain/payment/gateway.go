package payment

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when a payment operation is attempted
// while the gateway credentials are absent.
var ErrNotConfigured = errors.New("payment gateway is not configured")

// Status is the point-in-time payment state of a checkout session as
// reported by the provider. It must not be cached or assumed durable.
type Status string

const (
	StatusPaid     Status = "paid"
	StatusUnpaid   Status = "unpaid"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
)

// Session is a hosted payment flow opened with the provider.
type Session struct {
	ID          string
	RedirectURL string
}

// SessionRequest identifies the listing a session is opened for. Slug
// and name travel to the provider as opaque metadata only.
type SessionRequest struct {
	Slug string
	Name string
}

// Gateway is the boundary to the external payment provider.
type Gateway interface {
	// Enabled reports whether the gateway holds both a secret
	// credential and a price reference. When false the caller must
	// treat payment as disabled and publish immediately.
	Enabled() bool

	// OpenSession creates a hosted payment flow for one unit purchase
	// and returns the redirect target plus the session identifier.
	OpenSession(ctx context.Context, req SessionRequest) (*Session, error)

	// SessionStatus reports the current payment status of a session.
	// Transport or provider failures map to StatusError alongside the
	// returned error; callers must never publish on anything but
	// StatusPaid.
	SessionStatus(ctx context.Context, sessionID string) (Status, error)
}
