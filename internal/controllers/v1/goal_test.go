package v1_test

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/goalpost-app/backend/internal/controllers/v1"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/goalpost-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func milestones(amounts ...int64) []v1.MilestoneEditable {
	m := make([]v1.MilestoneEditable, 0, len(amounts))
	for i, a := range amounts {
		m = append(m, v1.MilestoneEditable{
			Name:   fmt.Sprintf("Milestone %d", i+1),
			Amount: decimal.NewFromInt(a),
		})
	}

	return m
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{
		GoalEditable: v1.GoalEditable{
			Name:        "  Trip to Japan ",
			Description: "Two weeks in Tokyo and Kyoto",
			Amount:      decimal.NewFromInt(1000),
		},
		Milestones: milestones(600, 400),
	})

	suite.Assert().Nil(g.Error)
	suite.Assert().NotEmpty(g.Data.Secret)
	suite.Assert().Equal("Trip to Japan", g.Data.Name)
	suite.Assert().Equal("EUR", g.Data.Currency)
	suite.Assert().Equal("acct_test", g.Data.PayoutAccount)
	suite.Assert().True(g.Data.CurrentAmount.IsZero())
	suite.Assert().True(g.Data.MilestoneDiscrepancy.IsZero())
	suite.Assert().Len(g.Data.Milestones, 2)
	suite.Assert().Equal(1, g.Data.Milestones[0].Position)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(g.Data.Milestones[1].Threshold))
	suite.Assert().Empty(g.Data.Donations)

	suite.Require().NotNil(g.Data.EditLinks)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/goals/%s/edit/%s", g.Data.ID, g.Data.Secret), g.Data.EditLinks.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/goals/%s/events", g.Data.ID), g.Data.Links.Events)
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	tests := []struct {
		name        string
		goal        any
		status      int
		err         string
		discrepancy string
	}{
		{"Broken body", `{ "name": "Bike"`, http.StatusBadRequest, "invalid or un-parseable", ""},
		{"Wrong type", `{ "name": 2 }`, http.StatusBadRequest, "cannot unmarshal", ""},
		{"Empty body", "", http.StatusBadRequest, "must not be empty", ""},
		{"Negative amount", v1.GoalCreate{GoalEditable: v1.GoalEditable{Name: "Bike", Amount: decimal.NewFromInt(-5), PayoutAccount: "acct_test"}}, http.StatusBadRequest, models.ErrGoalAmountNotPositive.Error(), ""},
		{"No payout account", v1.GoalCreate{GoalEditable: v1.GoalEditable{Name: "Bike", Amount: decimal.NewFromInt(5)}}, http.StatusBadRequest, models.ErrGoalPayoutAccountEmpty.Error(), ""},
		{
			"Milestones do not add up",
			v1.GoalCreate{
				GoalEditable: v1.GoalEditable{Name: "Bike", Amount: decimal.NewFromInt(1000), PayoutAccount: "acct_test"},
				Milestones:   milestones(600, 300),
			},
			http.StatusBadRequest,
			models.ErrMilestoneSumMismatch.Error(),
			"100",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, "http://example.com/v1/goals", tt.goal)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.GoalCreateResponse
			test.DecodeResponse(t, &r, &response)

			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.err)

			if tt.discrepancy == "" {
				assert.Nil(t, response.Discrepancy)
				return
			}

			if assert.NotNil(t, response.Discrepancy) {
				assert.Equal(t, tt.discrepancy, response.Discrepancy.String())
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGet() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{Milestones: milestones(600, 400)})

	suite.donate(suite.T(), g.Data.ID, "pi_1", 25000)
	suite.donate(suite.T(), g.Data.ID, "pi_2", 50000)

	r := test.Request(suite.T(), suite.co, http.MethodGet, g.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The public view never contains the secret or the payout account
	suite.Assert().NotContains(r.Body.String(), g.Data.Secret)
	suite.Assert().NotContains(r.Body.String(), "acct_test")
	suite.Assert().NotContains(r.Body.String(), "editLinks")

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)

	goal := response.Data
	suite.Assert().True(decimal.NewFromInt(750).Equal(goal.CurrentAmount), goal.CurrentAmount.String())
	suite.Assert().True(decimal.NewFromInt(75).Equal(goal.Percent), goal.Percent.String())
	suite.Assert().Equal(int64(2), goal.DonationCount)
	suite.Assert().True(goal.Milestones[0].Reached)
	suite.Assert().False(goal.Milestones[1].Reached)

	suite.Require().Len(goal.Donations, 2)
	suite.Assert().Equal("Jane", goal.Donations[0].DonorName)
	suite.Assert().Equal("Have fun!", goal.Donations[0].Message)
}

func (suite *TestSuiteStandard) TestGoalsGetFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "not-a-uuid", http.StatusBadRequest},
		{"Nil UUID", uuid.Nil.String(), http.StatusBadRequest},
		{"Unknown goal", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, "http://example.com/v1/goals/"+tt.id, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.GoalResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.NotEmpty(t, *response.Error)
		})
	}
}

// TestGoalsReadInTransaction verifies that milestones and donations of a
// goal view are read in one transaction, so that the amounts in the view
// match each other even when donations arrive while it is read.
func (suite *TestSuiteStandard) TestGoalsReadInTransaction() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{Milestones: milestones(600, 400)})
	suite.donate(suite.T(), g.Data.ID, "pi_1", 25000)

	var inTransaction, outside int
	err := models.DB.Callback().Query().Before("gorm:query").Register("goalpost_test:transaction", func(db *gorm.DB) {
		if db.Statement.Table != "milestones" && db.Statement.Table != "donations" {
			return
		}

		if _, ok := db.Statement.ConnPool.(*sql.Tx); ok {
			inTransaction++
		} else {
			outside++
		}
	})
	suite.Require().Nil(err)

	for _, u := range []string{g.Data.Links.Self, g.Data.EditLinks.Self} {
		inTransaction, outside = 0, 0

		r := test.Request(suite.T(), suite.co, http.MethodGet, u, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		suite.Assert().Zero(outside, u)
		suite.Assert().GreaterOrEqual(inTransaction, 3, u)
	}
}

// TestGoalsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestGoalsDBClosed() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	suite.CloseDB()

	r := test.Request(suite.T(), suite.co, http.MethodGet, g.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestGoalsDonations() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})
	other := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	for i := range 5 {
		suite.donate(suite.T(), g.Data.ID, fmt.Sprintf("pi_%d", i), 1000)
	}
	suite.donate(suite.T(), other.Data.ID, "pi_other", 1000)

	tests := []struct {
		name   string
		query  string
		count  int
		offset uint
		limit  int
	}{
		{"All", "", 5, 0, 50},
		{"Limit", "limit=2", 2, 0, 2},
		{"Offset", "offset=4", 1, 4, 50},
		{"Offset and limit", "offset=1&limit=3", 3, 1, 3},
		{"No limit", "limit=-1", 5, 0, -1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, fmt.Sprintf("%s?%s", g.Data.Links.Donations, tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.DonationListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
			assert.Equal(t, tt.count, response.Pagination.Count)
			assert.Equal(t, int64(5), response.Pagination.Total)
			assert.Equal(t, tt.offset, response.Pagination.Offset)
			assert.Equal(t, tt.limit, response.Pagination.Limit)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsDonationsFails() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Unknown goal", fmt.Sprintf("http://example.com/v1/goals/%s/donations", uuid.New()), http.StatusNotFound},
		{"Invalid offset", g.Data.Links.Donations + "?offset=-1", http.StatusBadRequest},
		{"Invalid limit", g.Data.Links.Donations + "?limit=ten", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsOptions() {
	g := suite.createTestGoal(suite.T(), v1.GoalCreate{})

	tests := []struct {
		name   string
		url    string
		status int
		allow  string
	}{
		{"Collection", "http://example.com/v1/goals", http.StatusNoContent, "OPTIONS, POST"},
		{"Goal", g.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH"},
		{"Donations", g.Data.Links.Donations, http.StatusNoContent, "OPTIONS, GET"},
		{"Events", g.Data.Links.Events, http.StatusNoContent, "OPTIONS, GET"},
		{"Checkout", g.Data.Links.Checkout, http.StatusNoContent, "OPTIONS, POST"},
		{"Milestones", g.Data.Links.Self + "/milestones", http.StatusNoContent, "OPTIONS, PUT"},
		{"Unknown goal", fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), http.StatusNotFound, ""},
		{"Invalid ID", "http://example.com/v1/goals/nope", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsMethodNotAllowed() {
	r := test.Request(suite.T(), suite.co, http.MethodDelete, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
	suite.Assert().True(strings.Contains(r.Body.String(), "not allowed"))
}
