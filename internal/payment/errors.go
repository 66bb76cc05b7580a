package payment

import "errors"

var (
	ErrSignatureInvalid     = errors.New("the payment notification signature is invalid")
	ErrUpstreamUnavailable  = errors.New("the payment provider is currently unavailable, please try again later")
	ErrUpstreamRejected     = errors.New("the payment provider rejected the request")
	ErrOnboardingIncomplete = errors.New("the creator of this goal has not finished setting up payments yet")
	ErrEventInvalid         = errors.New("the payment notification could not be parsed")
)
