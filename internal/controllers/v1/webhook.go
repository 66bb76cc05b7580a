package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/goalpost-app/backend/internal/httputil"
	"github.com/goalpost-app/backend/internal/live"
	"github.com/goalpost-app/backend/internal/metrics"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/goalpost-app/backend/internal/payment"
	"github.com/goalpost-app/backend/internal/uuid"
	"github.com/rs/zerolog/log"
)

// Notifications larger than this are cut off and fail verification.
const maxWebhookSize = 64 << 10

// WebhookResponse acknowledges a notification of the payment provider.
type WebhookResponse struct {
	Received bool    `json:"received" example:"true"`                                           // Was the notification accepted?
	Ignored  bool    `json:"ignored,omitempty" example:"false"`                                 // Set for notifications that do not confirm a payment
	Created  *bool   `json:"created,omitempty" example:"true"`                                  // Was a donation recorded? false for repeated notifications
	Donation string  `json:"donation,omitempty" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the donation
	Error    *string `json:"error,omitempty" example:"the payment notification signature is invalid"`
}

// RegisterWebhookRoutes registers the routes for payment provider
// notifications with the RouterGroup that is passed.
func (co Controller) RegisterWebhookRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/payments", co.OptionsPaymentWebhook)
	r.POST("/payments", co.ReceivePaymentWebhook)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Webhooks
// @Success		204
// @Router			/v1/webhooks/payments [options]
func (co Controller) OptionsPaymentWebhook(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Payment notification
// @Description	Receives signed notifications from the payment provider. Confirmed payments are recorded as donations.
// @Description	Notifications are processed idempotently, the provider may deliver them more than once.
// @Tags			Webhooks
// @Accept			json
// @Produce		json
// @Success		200					{object}	WebhookResponse
// @Failure		400					{object}	WebhookResponse
// @Failure		500					{object}	WebhookResponse
// @Param			Stripe-Signature	header		string	true	"Signature of the payload"
// @Router			/v1/webhooks/payments [post]
func (co Controller) ReceivePaymentWebhook(c *gin.Context) {
	logger := log.With().Str("request-id", requestid.Get(c)).Logger()

	reject := func(code int, outcome string, err error) {
		metrics.Webhooks.WithLabelValues(outcome).Inc()
		s := err.Error()
		c.JSON(code, WebhookResponse{Error: &s})
	}

	// The signature is computed over the raw body, it must not be bound
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookSize))
	if err != nil {
		logger.Warn().Err(err).Msg("could not read payment notification")
		reject(http.StatusBadRequest, metrics.WebhookInvalid, httputil.ErrInvalidBody)
		return
	}

	event, err := payment.ConstructEvent(payload, c.GetHeader(payment.SignatureHeader), co.Config.WebhookSecret, co.Config.WebhookTolerance)
	switch {
	case errors.Is(err, payment.ErrSignatureInvalid):
		logger.Warn().Err(err).Str("ip", c.ClientIP()).Msg("rejected payment notification")
		reject(http.StatusBadRequest, metrics.WebhookSignatureInvalid, err)
		return
	case err != nil:
		logger.Warn().Err(err).Msg("rejected payment notification")
		reject(http.StatusBadRequest, metrics.WebhookInvalid, err)
		return
	}

	logger = logger.With().Str("event", event.ID).Str("type", string(event.Type)).Logger()

	completion, ok, err := event.Completion()
	if err != nil {
		logger.Warn().Err(err).Msg("rejected payment notification")
		reject(http.StatusBadRequest, metrics.WebhookInvalid, err)
		return
	}

	if !ok {
		logger.Debug().Msg("ignored payment notification")
		metrics.Webhooks.WithLabelValues(metrics.WebhookIgnored).Inc()
		c.JSON(http.StatusOK, WebhookResponse{Received: true, Ignored: true})
		return
	}

	logger = logger.With().Str("transaction", completion.TransactionID).Str("goal", completion.GoalID).Logger()

	// From here on, errors are acknowledged unless a retry can succeed.
	// The provider would retry permanent failures for days otherwise.
	acknowledge := func(outcome string, err error) {
		metrics.Webhooks.WithLabelValues(outcome).Inc()
		s := err.Error()
		c.JSON(http.StatusOK, WebhookResponse{Received: true, Error: &s})
	}

	if completion.Currency != co.Config.Currency.Code() {
		logger.Error().Str("currency", completion.Currency).Msg(errCurrencyMismatch.Error())
		acknowledge(metrics.WebhookInvalid, errCurrencyMismatch)
		return
	}

	goalID, err := uuid.Parse(completion.GoalID)
	if err != nil {
		logger.Error().Err(err).Msg("payment for unknown goal")
		acknowledge(metrics.WebhookUnknownGoal, models.ErrResourceNotFound)
		return
	}

	donation, created, err := models.RecordCompletedDonation(models.DB, models.Donation{
		GoalID:                goalID,
		Amount:                co.Config.Currency.FromMinorUnits(completion.AmountMinor),
		DonorName:             completion.DonorName,
		Message:               completion.Message,
		ProviderTransactionID: completion.TransactionID,
	})
	if err != nil {
		metrics.Donations.WithLabelValues(metrics.DonationFailed).Inc()

		// Only errors that a retry cannot fix are acknowledged. For all
		// others, the provider has to deliver the notification again.
		switch {
		case errors.Is(err, models.ErrResourceNotFound):
			logger.Error().Err(err).Msg("payment for unknown goal")
			acknowledge(metrics.WebhookUnknownGoal, err)
		case errors.Is(err, models.ErrDonationAmountNotPositive), errors.Is(err, models.ErrDonationTransactionEmpty):
			logger.Error().Err(err).Msg("payment cannot be recorded as donation")
			acknowledge(metrics.WebhookInvalid, err)
		default:
			logger.Error().Err(err).Msg("could not record donation")
			reject(http.StatusInternalServerError, metrics.WebhookError, models.ErrGeneral)
		}
		return
	}

	metrics.Webhooks.WithLabelValues(metrics.WebhookProcessed).Inc()
	if created {
		metrics.Donations.WithLabelValues(metrics.DonationCreated).Inc()
		logger.Info().Str("donation", donation.ID.String()).Str("amount", donation.Amount.String()).Msg("donation recorded")

		// The donation is committed at this point
		co.Hub.Publish(donation.GoalID, live.ReasonDonation)
	} else {
		metrics.Donations.WithLabelValues(metrics.DonationDuplicate).Inc()
		logger.Info().Str("donation", donation.ID.String()).Msg("repeated notification for recorded donation")
	}

	c.JSON(http.StatusOK, WebhookResponse{
		Received: true,
		Created:  &created,
		Donation: donation.ID.String(),
	})
}
