package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const (
	// DefaultAPIURL is the base URL of the provider API.
	DefaultAPIURL = stripe.APIURL
	clientTimeout = 10 * time.Second
)

// Client is a Provider backed by the provider's API.
type Client struct {
	api *client.API
}

// NewClient returns a new Client. An empty baseURL uses DefaultAPIURL.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:           stripe.String(strings.TrimRight(baseURL, "/")),
		HTTPClient:    &http.Client{Timeout: clientTimeout},
		LeveledLogger: sdkLogger{},

		// A failed checkout is retried by the donor
		MaxNetworkRetries: stripe.Int64(0),
	})

	api := &client.API{}
	api.Init(apiKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})

	return &Client{api: api}
}

func (c *Client) Account(ctx context.Context, id string) (Account, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := c.api.Accounts.GetByID(id, params)
	if err != nil {
		return Account{}, providerError(err)
	}

	return Account{
		ID:               account.ID,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
	}, nil
}

func (c *Client) CreateAccountLink(ctx context.Context, id, refreshURL, returnURL string) (AccountLink, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(id),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := c.api.AccountLinks.New(params)
	if err != nil {
		return AccountLink{}, providerError(err)
	}

	return AccountLink{
		URL:       link.URL,
		ExpiresAt: link.ExpiresAt,
	}, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, r CheckoutRequest) (CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(r.SuccessURL),
		CancelURL:  stripe.String(r.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(r.Currency)),
					UnitAmount: stripe.Int64(r.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(r.Description),
					},
				},
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(r.Account),
			},
			Metadata: map[string]string{},
		},
	}
	params.Context = ctx

	// Sorted for a stable request body
	keys := make([]string, 0, len(r.Metadata))
	for k := range r.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// The session metadata is in the completion event, the payment
	// intent metadata shows up in the provider's dashboard
	for _, k := range keys {
		params.AddMetadata(k, r.Metadata[k])
		params.PaymentIntentData.Metadata[k] = r.Metadata[k]
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return CheckoutSession{}, providerError(err)
	}

	return CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// providerError maps errors of the API to ErrUpstreamUnavailable for
// transport and server errors and ErrUpstreamRejected for all other errors
// the API responds with.
func providerError(err error) error {
	var apiErr *stripe.Error
	if !errors.As(err, &apiErr) {
		log.Error().Err(err).Msg("payment provider request failed")
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if apiErr.HTTPStatusCode >= http.StatusInternalServerError || apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		log.Error().Int("status", apiErr.HTTPStatusCode).Str("code", string(apiErr.Code)).Msg("payment provider unavailable")
		return fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, apiErr.HTTPStatusCode)
	}

	return fmt.Errorf("%w: %s", ErrUpstreamRejected, apiErr.Msg)
}

// sdkLogger writes the log output of the provider SDK with zerolog.
type sdkLogger struct{}

func (sdkLogger) Debugf(format string, v ...any) {
	log.Debug().Msgf(format, v...)
}

func (sdkLogger) Infof(format string, v ...any) {
	log.Debug().Msgf(format, v...)
}

func (sdkLogger) Warnf(format string, v ...any) {
	log.Warn().Msgf(format, v...)
}

func (sdkLogger) Errorf(format string, v ...any) {
	log.Warn().Msgf(format, v...)
}
