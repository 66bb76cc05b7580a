package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/goalpost-app/backend/internal/httputil"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/goalpost-app/backend/internal/payment"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/checkout [options]
func (co Controller) OptionsGoalCheckout(c *gin.Context) {
	optionsForGoal(c, httputil.OptionsPost)
}

// goalPage returns the URL of the public page of the goal in the frontend.
func (co Controller) goalPage(id uuid.UUID) string {
	return fmt.Sprintf("%s/goals/%s", strings.TrimRight(co.Config.PublicURL.String(), "/"), id)
}

// redirectAllowed checks the URL against the allowed redirect patterns.
func (co Controller) redirectAllowed(u string) bool {
	return slices.ContainsFunc(co.Config.CheckoutRedirectAllow, func(pattern string) bool {
		return glob.Glob(pattern, u)
	})
}

// validate normalizes the request and converts the amount to minor units.
// Text lengths are checked when binding.
func (co Controller) validate(goalID uuid.UUID, r *CheckoutCreate) (int64, error) {
	minor, err := co.Config.Currency.ToMinorUnits(r.Amount)
	if err != nil {
		return 0, err
	}

	r.DonorName = strings.TrimSpace(r.DonorName)
	r.Message = strings.TrimSpace(r.Message)

	if r.SuccessURL == "" {
		r.SuccessURL = co.goalPage(goalID) + "?donation=success"
	} else if !co.redirectAllowed(r.SuccessURL) {
		return 0, fmt.Errorf("%w: %s", errRedirectNotAllowed, r.SuccessURL)
	}

	if r.CancelURL == "" {
		r.CancelURL = co.goalPage(goalID)
	} else if !co.redirectAllowed(r.CancelURL) {
		return 0, fmt.Errorf("%w: %s", errRedirectNotAllowed, r.CancelURL)
	}

	return minor, nil
}

// @Summary		Start a donation
// @Description	Creates a checkout session at the payment provider. The donor needs to be redirected to the returned URL.
// @Description	If the payout account of the goal has not completed onboarding, the response contains the onboarding URL instead.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201			{object}	CheckoutResponse
// @Failure		400			{object}	CheckoutResponse
// @Failure		404			{object}	CheckoutResponse
// @Failure		409			{object}	CheckoutResponse
// @Failure		500			{object}	CheckoutResponse
// @Failure		503			{object}	CheckoutResponse
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			checkout	body		CheckoutCreate	true	"Donation"
// @Router			/v1/goals/{id}/checkout [post]
func (co Controller) CreateCheckout(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CheckoutResponse{
			Error: &s,
		})
		return
	}

	var request CheckoutCreate
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CheckoutResponse{
			Error: &s,
		})
		return
	}

	var goal models.Goal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CheckoutResponse{
			Error: &s,
		})
		return
	}

	minor, err := co.validate(goal.ID, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CheckoutResponse{
			Error: &s,
		})
		return
	}

	ctx := c.Request.Context()
	logger := log.With().Str("request-id", requestid.Get(c)).Str("goal", goal.ID.String()).Logger()

	account, err := co.Payments.Account(ctx, goal.PayoutAccount)
	if err != nil {
		logger.Warn().Err(err).Msg("could not retrieve payout account")
		s := err.Error()
		c.JSON(status(err), CheckoutResponse{
			Error: &s,
		})
		return
	}

	if !account.Active() {
		link, err := co.Payments.CreateAccountLink(ctx, account.ID, co.goalPage(goal.ID), co.goalPage(goal.ID))
		if err != nil {
			logger.Warn().Err(err).Msg("could not create onboarding link")
			s := err.Error()
			c.JSON(status(err), CheckoutResponse{
				Error: &s,
			})
			return
		}

		s := payment.ErrOnboardingIncomplete.Error()
		c.JSON(status(payment.ErrOnboardingIncomplete), CheckoutResponse{
			Error:         &s,
			OnboardingURL: &link.URL,
		})
		return
	}

	session, err := co.Payments.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		Account:     account.ID,
		Currency:    co.Config.Currency.Code(),
		AmountMinor: minor,
		Description: goal.Name,
		SuccessURL:  request.SuccessURL,
		CancelURL:   request.CancelURL,
		Metadata: map[string]string{
			payment.MetadataGoalID:    goal.ID.String(),
			payment.MetadataDonorName: request.DonorName,
			payment.MetadataMessage:   request.Message,
		},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("could not create checkout session")
		s := err.Error()
		c.JSON(status(err), CheckoutResponse{
			Error: &s,
		})
		return
	}

	logger.Info().Str("session", session.ID).Msg("checkout session created")

	c.JSON(http.StatusCreated, CheckoutResponse{Data: &Checkout{
		ID:  session.ID,
		URL: session.URL,
	}})
}
