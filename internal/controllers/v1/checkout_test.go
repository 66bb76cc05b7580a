package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/goalpost-app/backend/internal/controllers/v1"
	"github.com/goalpost-app/backend/internal/payment"
	"github.com/goalpost-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCheckoutCreate() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	r := test.Request(suite.T(), suite.co, http.MethodPost, g.Data.Links.Checkout, v1.CheckoutCreate{
		Amount:    decimal.RequireFromString("25.50"),
		DonorName: " Jane ",
		Message:   "Have fun!",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CheckoutResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("cs_test_1", response.Data.ID)
	suite.Assert().NotEmpty(response.Data.URL)
	suite.Assert().Nil(response.OnboardingURL)

	suite.Require().Len(suite.payments.requests, 1)
	request := suite.payments.requests[0]
	suite.Assert().Equal("acct_test", request.Account)
	suite.Assert().Equal("EUR", request.Currency)
	suite.Assert().Equal(int64(2550), request.AmountMinor)
	suite.Assert().Equal(g.Data.ID.String(), request.Metadata[payment.MetadataGoalID])
	suite.Assert().Equal("Jane", request.Metadata[payment.MetadataDonorName])
	suite.Assert().Equal("Have fun!", request.Metadata[payment.MetadataMessage])

	// Redirects default to the goal page
	page := fmt.Sprintf("https://goals.example.com/goals/%s", g.Data.ID)
	suite.Assert().Equal(page+"?donation=success", request.SuccessURL)
	suite.Assert().Equal(page, request.CancelURL)
}

func (suite *TestSuiteStandard) TestCheckoutRedirects() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	r := test.Request(suite.T(), suite.co, http.MethodPost, g.Data.Links.Checkout, v1.CheckoutCreate{
		Amount:     decimal.NewFromInt(10),
		SuccessURL: "https://goals.example.com/thanks",
		CancelURL:  "https://goals.example.com/sorry",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	suite.Require().Len(suite.payments.requests, 1)
	suite.Assert().Equal("https://goals.example.com/thanks", suite.payments.requests[0].SuccessURL)
	suite.Assert().Equal("https://goals.example.com/sorry", suite.payments.requests[0].CancelURL)
}

func (suite *TestSuiteStandard) TestCheckoutCreateFails() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	tests := []struct {
		name   string
		url    string
		body   any
		status int
		err    string
	}{
		{"Unknown goal", fmt.Sprintf("http://example.com/v1/goals/%s/checkout", uuid.New()), v1.CheckoutCreate{Amount: decimal.NewFromInt(10)}, http.StatusNotFound, "there is no goal"},
		{"Empty body", g.Data.Links.Checkout, "", http.StatusBadRequest, "must not be empty"},
		{"Zero amount", g.Data.Links.Checkout, v1.CheckoutCreate{}, http.StatusBadRequest, ""},
		{"Negative amount", g.Data.Links.Checkout, v1.CheckoutCreate{Amount: decimal.NewFromInt(-1)}, http.StatusBadRequest, ""},
		{"Too many decimal places", g.Data.Links.Checkout, v1.CheckoutCreate{Amount: decimal.RequireFromString("1.001")}, http.StatusBadRequest, ""},
		{"Donor name too long", g.Data.Links.Checkout, v1.CheckoutCreate{Amount: decimal.NewFromInt(10), DonorName: strings.Repeat("a", 101)}, http.StatusBadRequest, "DonorName cannot be longer than 100 characters"},
		{"Message too long", g.Data.Links.Checkout, v1.CheckoutCreate{Amount: decimal.NewFromInt(10), Message: strings.Repeat("a", 501)}, http.StatusBadRequest, "Message cannot be longer than 500 characters"},
		{"Foreign success URL", g.Data.Links.Checkout, v1.CheckoutCreate{Amount: decimal.NewFromInt(10), SuccessURL: "https://evil.example.org/"}, http.StatusBadRequest, "evil.example.org"},
		{"Foreign cancel URL", g.Data.Links.Checkout, v1.CheckoutCreate{Amount: decimal.NewFromInt(10), CancelURL: "javascript:alert(1)"}, http.StatusBadRequest, "javascript"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CheckoutResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.err)
		})
	}

	suite.Assert().Empty(suite.payments.requests, "No checkout must be started for invalid requests")
}

func (suite *TestSuiteStandard) TestCheckoutOnboardingIncomplete() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{GoalEditable: v1.GoalEditable{PayoutAccount: "acct_new"}})
	suite.payments.account.DetailsSubmitted = false

	r := test.Request(suite.T(), suite.co, http.MethodPost, g.Data.Links.Checkout, v1.CheckoutCreate{Amount: decimal.NewFromInt(10)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.CheckoutResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Nil(response.Data)
	suite.Assert().Equal(payment.ErrOnboardingIncomplete.Error(), *response.Error)
	suite.Require().NotNil(response.OnboardingURL)
	suite.Assert().Equal("https://connect.example.com/setup/acct_new", *response.OnboardingURL)
	suite.Assert().Empty(suite.payments.requests)
}

func (suite *TestSuiteStandard) TestCheckoutProviderErrors() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	tests := []struct {
		name        string
		accountErr  error
		checkoutErr error
		status      int
	}{
		{"Account lookup unavailable", payment.ErrUpstreamUnavailable, nil, http.StatusServiceUnavailable},
		{"Account lookup rejected", payment.ErrUpstreamRejected, nil, http.StatusBadRequest},
		{"Checkout unavailable", nil, payment.ErrUpstreamUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.payments.accountErr = tt.accountErr
			suite.payments.checkoutErr = tt.checkoutErr

			r := test.Request(t, suite.co, http.MethodPost, g.Data.Links.Checkout, v1.CheckoutCreate{Amount: decimal.NewFromInt(10)})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CheckoutResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
		})
	}
}
