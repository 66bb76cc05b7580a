package v1

import (
	"github.com/shopspring/decimal"
)

type CheckoutCreate struct {
	Amount     decimal.Decimal `json:"amount" example:"25" minimum:"0.01" multipleOf:"0.01"`                                // Amount to donate
	DonorName  string          `json:"donorName" binding:"max=100" example:"Jane" default:""`                               // Name shown with the donation. Leave empty to donate anonymously.
	Message    string          `json:"message" binding:"max=500" example:"Have fun!" default:""`                            // Message shown with the donation
	SuccessURL string          `json:"successUrl" example:"https://example.com/goals/438cc6c0?donation=success" default:""` // Where to send the donor after the payment
	CancelURL  string          `json:"cancelUrl" example:"https://example.com/goals/438cc6c0" default:""`                   // Where to send the donor when they cancel the payment
}

type Checkout struct {
	ID  string `json:"id" example:"cs_test_a1b2c3"`                                    // ID of the checkout session
	URL string `json:"url" example:"https://checkout.stripe.com/c/pay/cs_test_a1b2c3"` // Hosted checkout page to redirect the donor to
}

type CheckoutResponse struct {
	Data          *Checkout `json:"data"`                                                                            // The checkout session
	Error         *string   `json:"error" example:"the payout account of the goal has not completed onboarding yet"` // The error, if any occurred
	OnboardingURL *string   `json:"onboardingUrl,omitempty" example:"https://connect.stripe.com/setup/s/acct_1/abc"` // Set when the payout account needs to complete onboarding
}
