package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	// SignatureHeader carries the signature of webhook requests.
	SignatureHeader = "Stripe-Signature"

	// DefaultTolerance is the maximum age of a signed notification.
	DefaultTolerance = webhook.DefaultTolerance

	EventCheckoutCompleted = "checkout.session.completed"
	PaymentStatusPaid      = string(stripe.CheckoutSessionPaymentStatusPaid)
)

// Event is a notification sent by the payment provider.
type Event struct {
	stripe.Event
}

// Completion is a payment that the provider confirmed as paid.
type Completion struct {
	TransactionID string // Unique per payment, used as idempotency key
	GoalID        string
	AmountMinor   int64
	Currency      string // Upper case ISO 4217 code
	DonorName     string
	Message       string
}

// ConstructEvent verifies the signature header of a notification and
// decodes its payload.
//
// The timestamp of the signature must not be further than tolerance away
// from now. A tolerance of zero uses DefaultTolerance.
func ConstructEvent(payload []byte, header, secret string, tolerance time.Duration) (Event, error) {
	if secret == "" {
		return Event{}, fmt.Errorf("%w: no webhook secret is configured", ErrSignatureInvalid)
	}

	e, err := webhook.ConstructEventWithOptions(payload, header, secret, webhook.ConstructEventOptions{
		Tolerance: tolerance,

		// Completion only reads fields that are stable across versions
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isSignatureError(err) {
			return Event{}, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
		}

		return Event{}, fmt.Errorf("%w: %v", ErrEventInvalid, err)
	}

	if e.Type == "" {
		return Event{}, fmt.Errorf("%w: the event type is missing", ErrEventInvalid)
	}

	return Event{e}, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

// Completion returns the confirmed payment of the event. ok is false for
// all events that do not confirm a payment.
func (e Event) Completion() (c Completion, ok bool, err error) {
	if string(e.Type) != EventCheckoutCompleted {
		return Completion{}, false, nil
	}

	if e.Data == nil {
		return Completion{}, false, fmt.Errorf("%w: the event has no data", ErrEventInvalid)
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(e.Data.Raw, &s); err != nil {
		return Completion{}, false, fmt.Errorf("%w: %v", ErrEventInvalid, err)
	}

	// Delayed payment methods complete the session before the money arrives
	if string(s.PaymentStatus) != PaymentStatusPaid {
		return Completion{}, false, nil
	}

	transactionID := s.ID
	if s.PaymentIntent != nil && s.PaymentIntent.ID != "" {
		transactionID = s.PaymentIntent.ID
	}

	if transactionID == "" {
		return Completion{}, false, fmt.Errorf("%w: the session has no ID", ErrEventInvalid)
	}

	return Completion{
		TransactionID: transactionID,
		GoalID:        s.Metadata[MetadataGoalID],
		AmountMinor:   s.AmountTotal,
		Currency:      strings.ToUpper(string(s.Currency)),
		DonorName:     s.Metadata[MetadataDonorName],
		Message:       s.Metadata[MetadataMessage],
	}, true, nil
}

// Sign returns the signature header value for the payload at time t.
func Sign(payload []byte, secret string, t time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: t,
	}).Header
}
