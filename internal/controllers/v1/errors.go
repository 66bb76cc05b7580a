package v1

import (
	"errors"
	"net/http"

	"github.com/goalpost-app/backend/internal/httputil"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/goalpost-app/backend/internal/payment"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidSecret):
		return http.StatusForbidden
	case errors.Is(err, httputil.ErrBearerMissing):
		return http.StatusUnauthorized
	case errors.Is(err, payment.ErrOnboardingIncomplete):
		return http.StatusConflict
	case errors.Is(err, payment.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	}

	return http.StatusBadRequest
}

// Checkout errors
var (
	errRedirectNotAllowed = errors.New("the redirect URL is not allowed")
)

// Webhook errors
var (
	errCurrencyMismatch = errors.New("the payment currency does not match the configured currency")
)
