// Package payment wraps the payment processor behind a narrow interface:
// create a hosted checkout session, verify a signed webhook event.
package payment

import (
	"context"
	"errors"

	"github.com/example/foodcourt/pkg/pricing"
)

var (
	// ErrNoSessionURL is returned when the processor creates a session
	// without a usable redirect target.
	ErrNoSessionURL = errors.New("payment session has no redirect url")
	// ErrSignature is returned when a webhook event fails signature
	// verification against the shared secret.
	ErrSignature = errors.New("webhook signature verification failed")
)

// EventCheckoutCompleted is the only event type that settles an order.
const EventCheckoutCompleted = "checkout.session.completed"

// SessionInput describes one checkout session request.
type SessionInput struct {
	LineItems         []pricing.LineItem
	ShippingCountries []string
	SuccessURL        string
	CancelURL         string
	Metadata          map[string]string
}

// Session is the processor's handle for a created checkout session.
type Session struct {
	ID  string
	URL string
}

// Event is a verified webhook notification. AmountTotal is in minor currency
// units and only meaningful for EventCheckoutCompleted.
type Event struct {
	Type        string
	SessionID   string
	AmountTotal int64
	Metadata    map[string]string
}

// Provider is the processor contract consumed by the checkout flow.
type Provider interface {
	CreateSession(ctx context.Context, in SessionInput) (*Session, error)
	// VerifyWebhook authenticates the raw request body against the signature
	// header. The body must be the exact bytes received; re-serializing a
	// parsed form would invalidate the signature.
	VerifyWebhook(payload []byte, sigHeader string) (*Event, error)
}
