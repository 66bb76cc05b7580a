package v1_test

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/goalpost-app/backend/internal/controllers/v1"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/goalpost-app/backend/internal/payment"
	"github.com/goalpost-app/backend/test"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const webhookURL = "http://example.com/v1/webhooks/payments"

func (suite *TestSuiteStandard) TestWebhookCompletion() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	sub := suite.co.Hub.Subscribe(g.Data.ID)
	defer sub.Close()

	response := suite.donate(suite.T(), g.Data.ID, "pi_3Nv0FGQ9RKHgCVdK", 2550)
	suite.Assert().True(response.Received)
	suite.Require().NotNil(response.Created)
	suite.Assert().True(*response.Created)
	suite.Assert().NotEmpty(response.Donation)
	suite.Assert().Nil(response.Error)

	var donation models.Donation
	suite.Require().Nil(models.DB.First(&donation, uuid.MustParse(response.Donation)).Error)
	suite.Assert().Equal(models.DonationStatusCompleted, donation.Status)
	suite.Assert().True(decimal.RequireFromString("25.5").Equal(donation.Amount), donation.Amount.String())
	suite.Assert().Equal("Jane", donation.DonorName)
	suite.Assert().Equal("pi_3Nv0FGQ9RKHgCVdK", donation.ProviderTransactionID)

	select {
	case e := <-sub.C:
		suite.Assert().Equal(g.Data.ID, e.GoalID)
	default:
		suite.Fail("No live event was published for the donation")
	}
}

// TestWebhookRepeated verifies that repeated notifications for the same
// payment only record one donation.
func (suite *TestSuiteStandard) TestWebhookRepeated() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	first := suite.donate(suite.T(), g.Data.ID, "pi_repeat", 1000)
	suite.Require().True(*first.Created)

	sub := suite.co.Hub.Subscribe(g.Data.ID)
	defer sub.Close()

	second := suite.donate(suite.T(), g.Data.ID, "pi_repeat", 1000)
	suite.Assert().True(second.Received)
	suite.Assert().False(*second.Created)
	suite.Assert().Equal(first.Donation, second.Donation)

	current, err := models.CurrentAmount(models.DB, g.Data.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(10).Equal(current), current.String())

	select {
	case <-sub.C:
		suite.Fail("A repeated notification must not publish a live event")
	default:
	}
}

func (suite *TestSuiteStandard) TestWebhookRejected() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})
	payload := completionEvent(suite.T(), g.Data.ID.String(), "pi_rejected", 1000, "eur")

	tests := []struct {
		name    string
		body    []byte
		headers map[string]string
		err     string
	}{
		{"No signature", payload, map[string]string{}, payment.ErrSignatureInvalid.Error()},
		{"Wrong secret", payload, map[string]string{payment.SignatureHeader: payment.Sign(payload, "whsec_wrong", time.Now())}, payment.ErrSignatureInvalid.Error()},
		{"Too old", payload, map[string]string{payment.SignatureHeader: payment.Sign(payload, webhookSecret, time.Now().Add(-time.Hour))}, payment.ErrSignatureInvalid.Error()},
		{"Signature of other payload", completionEvent(suite.T(), g.Data.ID.String(), "pi_other", 100000, "eur"), signature(payload), payment.ErrSignatureInvalid.Error()},
		{"Not JSON", []byte("hello"), signature([]byte("hello")), payment.ErrEventInvalid.Error()},
		{"No type", []byte(`{"id": "evt_1"}`), signature([]byte(`{"id": "evt_1"}`)), payment.ErrEventInvalid.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, webhookURL, tt.body, tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.WebhookResponse
			test.DecodeResponse(t, &r, &response)
			assert.False(t, response.Received)
			assert.Contains(t, *response.Error, tt.err)
		})
	}

	current, err := models.CurrentAmount(models.DB, g.Data.ID)
	suite.Require().Nil(err)
	suite.Assert().True(current.IsZero(), "No donation must be recorded for rejected notifications")
}

func (suite *TestSuiteStandard) TestWebhookIgnored() {
	tests := []struct {
		name    string
		payload string
	}{
		{"Other event type", `{"id": "evt_1", "type": "payment_intent.created", "data": {"object": {}}}`},
		{"Unpaid session", `{"id": "evt_2", "type": "checkout.session.completed", "data": {"object": {"id": "cs_1", "payment_status": "unpaid", "amount_total": 1000, "currency": "eur"}}}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			payload := []byte(tt.payload)

			r := test.Request(t, suite.co, http.MethodPost, webhookURL, payload, signature(payload))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.WebhookResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Received)
			assert.True(t, response.Ignored)
			assert.Nil(t, response.Created)
		})
	}
}

// TestWebhookAcknowledged verifies that notifications that can never be
// processed are acknowledged so that the provider stops retrying them.
func (suite *TestSuiteStandard) TestWebhookAcknowledged() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	tests := []struct {
		name    string
		payload []byte
	}{
		{"Unknown goal", completionEvent(suite.T(), uuid.NewString(), "pi_unknown", 1000, "eur")},
		{"Goal ID not a UUID", completionEvent(suite.T(), "goal-1", "pi_no_uuid", 1000, "eur")},
		{"Goal ID missing", completionEvent(suite.T(), "", "pi_no_goal", 1000, "eur")},
		{"Other currency", completionEvent(suite.T(), g.Data.ID.String(), "pi_usd", 1000, "usd")},
		{"Zero amount", completionEvent(suite.T(), g.Data.ID.String(), "pi_zero", 0, "eur")},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, webhookURL, tt.payload, signature(tt.payload))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.WebhookResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Received)
			assert.Nil(t, response.Created)
			assert.NotNil(t, response.Error)
		})
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Donation{}).Count(&count).Error)
	suite.Assert().Zero(count)
}

func (suite *TestSuiteStandard) TestWebhookDBClosed() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})
	suite.CloseDB()

	payload := completionEvent(suite.T(), g.Data.ID.String(), "pi_closed", 1000, "eur")
	r := test.Request(suite.T(), suite.co, http.MethodPost, webhookURL, payload, signature(payload))

	// The provider has to retry
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

// TestWebhookDatabaseErrors verifies that only errors a retry cannot fix
// are acknowledged. Everything else must be delivered again.
func (suite *TestSuiteStandard) TestWebhookDatabaseErrors() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	var injected error
	err := models.DB.Callback().Create().Before("gorm:create").Register("goalpost_test:inject", func(db *gorm.DB) {
		_ = db.AddError(injected)
	})
	suite.Require().Nil(err)

	tests := []struct {
		name string
		err  error
	}{
		{"PostgreSQL connection lost", &pgconn.PgError{Severity: "FATAL", Code: "57P01", Message: "terminating connection due to administrator command"}},
		{"Bad connection", driver.ErrBadConn},
		{"Unknown error", errors.New("something unexpected happened")},
	}

	for i, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			injected = tt.err

			payload := completionEvent(t, g.Data.ID.String(), fmt.Sprintf("pi_db_%d", i), 1000, "eur")
			r := test.Request(t, suite.co, http.MethodPost, webhookURL, payload, signature(payload))
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)

			var response v1.WebhookResponse
			test.DecodeResponse(t, &r, &response)
			assert.False(t, response.Received)
			assert.Equal(t, models.ErrGeneral.Error(), *response.Error)
		})
	}

	injected = nil
	current, err := models.CurrentAmount(models.DB, g.Data.ID)
	suite.Require().Nil(err)
	suite.Assert().True(current.IsZero())
}

func (suite *TestSuiteStandard) TestWebhookOptions() {
	r := test.Request(suite.T(), suite.co, http.MethodOptions, webhookURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}
