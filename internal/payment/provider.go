// Package payment talks to the payment provider: it creates checkout
// sessions on behalf of creators and authenticates the notifications
// the provider sends back.
package payment

import (
	"context"
)

// Provider is the part of the payment provider API that the backend uses.
type Provider interface {
	// Account returns the connected account of a creator.
	Account(ctx context.Context, id string) (Account, error)

	// CreateAccountLink returns a link to the provider's onboarding flow
	// for the account.
	CreateAccountLink(ctx context.Context, id, refreshURL, returnURL string) (AccountLink, error)

	// CreateCheckoutSession starts a hosted checkout that pays out to
	// the account in the request.
	CreateCheckoutSession(ctx context.Context, r CheckoutRequest) (CheckoutSession, error)
}

// Account is a creator's account at the payment provider.
type Account struct {
	ID               string `json:"id"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	DetailsSubmitted bool   `json:"details_submitted"`
}

// Active reports if the account can receive donations.
func (a Account) Active() bool {
	return a.ChargesEnabled && a.DetailsSubmitted
}

type AccountLink struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// CheckoutRequest describes a single donation to be paid through
// the provider's hosted checkout.
type CheckoutRequest struct {
	Account     string            // Connected account receiving the funds
	Currency    string            // ISO 4217 code
	AmountMinor int64             // Amount in minor units
	Description string            // Shown to the donor on the checkout page
	SuccessURL  string            // Redirect after a successful payment
	CancelURL   string            // Redirect when the donor cancels
	Metadata    map[string]string // Returned unchanged in the completion event
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Metadata keys set on checkout sessions
const (
	MetadataGoalID    = "goal_id"
	MetadataDonorName = "donor_name"
	MetadataMessage   = "message"
)
