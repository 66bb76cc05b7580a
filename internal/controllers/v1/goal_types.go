package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// latestDonations is the number of donations in the goal view.
const latestDonations = 50

type GoalEditable struct {
	Name          string          `json:"name" example:"Trip to Japan"`                                                                                   // Name of the goal
	Description   string          `json:"description" example:"Two weeks in Tokyo and Kyoto" default:""`                                                  // Description of the goal
	Amount        decimal.Decimal `json:"amount" example:"1000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Target amount of the goal
	PayoutAccount string          `json:"payoutAccount" example:"acct_1Nv0FGQ9RKHgCVdK"`                                                                  // Account of the creator at the payment provider
}

// model returns the database resource for the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:          editable.Name,
		Description:   editable.Description,
		Amount:        editable.Amount,
		PayoutAccount: editable.PayoutAccount,
	}
}

type MilestoneEditable struct {
	Name   string          `json:"name" example:"Flights"`                                                                            // Name of the milestone
	Amount decimal.Decimal `json:"amount" example:"600" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount of the milestone on top of all milestones before it
}

func milestoneModels(editables []MilestoneEditable) []models.Milestone {
	milestones := make([]models.Milestone, 0, len(editables))
	for _, e := range editables {
		milestones = append(milestones, models.Milestone{
			Name:   e.Name,
			Amount: e.Amount,
		})
	}

	return milestones
}

// GoalCreate is the request body for goal creation.
type GoalCreate struct {
	GoalEditable
	Milestones []MilestoneEditable `json:"milestones"` // Milestones in ascending order
}

type Milestone struct {
	Name      string          `json:"name" example:"Flights"`  // Name of the milestone
	Amount    decimal.Decimal `json:"amount" example:"600"`    // Amount of the milestone on top of all milestones before it
	Position  int             `json:"position" example:"1"`    // Position of the milestone, starting at 1
	Threshold decimal.Decimal `json:"threshold" example:"600"` // Total amount that needs to be raised to reach the milestone
	Marker    decimal.Decimal `json:"marker" example:"60"`     // Position of the threshold on the progress bar, in percent
	Reached   bool            `json:"reached" example:"false"` // Is the milestone reached?
}

type Donation struct {
	ID        uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the donation
	CreatedAt time.Time       `json:"createdAt" example:"2024-05-03T13:51:09.125781Z"`   // Time the payment was confirmed
	Amount    decimal.Decimal `json:"amount" example:"25"`                               // Amount of the donation
	DonorName string          `json:"donorName" example:"Anonymous"`                     // Name of the donor, "Anonymous" if none was given
	Message   string          `json:"message" example:"Have fun!"`                       // Message of the donor
}

func newDonation(model models.Donation) Donation {
	return Donation{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		Amount:    model.Amount,
		DonorName: model.DisplayName(),
		Message:   model.Message,
	}
}

type GoalLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                // The goal itself
	Donations string `json:"donations" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/donations"` // Completed donations for the goal
	Events    string `json:"events" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/events"`       // Live updates for the goal
	Checkout  string `json:"checkout" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/checkout"`   // Starts a donation
}

// Goal is the public representation of a goal.
type Goal struct {
	ID            uuid.UUID       `json:"id" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
	CreatedAt     time.Time       `json:"createdAt" example:"2024-05-01T09:12:44.125781Z"`
	UpdatedAt     time.Time       `json:"updatedAt" example:"2024-05-02T10:33:05.125781Z"`
	Name          string          `json:"name" example:"Trip to Japan"`
	Description   string          `json:"description" example:"Two weeks in Tokyo and Kyoto"`
	Amount        decimal.Decimal `json:"amount" example:"1000"`       // Target amount
	Currency      string          `json:"currency" example:"EUR"`      // Currency of all amounts
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"700"` // Sum of all completed donations
	Percent       decimal.Decimal `json:"percent" example:"70"`        // Progress towards the target amount, capped at 100
	Milestones    []Milestone     `json:"milestones"`
	Donations     []Donation      `json:"donations"`                  // The latest completed donations, newest first
	DonationCount int64           `json:"donationCount" example:"12"` // Number of completed donations
	Links         GoalLinks       `json:"links"`
}

// newGoal returns the public representation of the goal with all values
// derived from the donation ledger.
func (co Controller) newGoal(c *gin.Context, model models.Goal) (Goal, error) {
	var goal Goal
	err := models.ReadTransaction(models.DB, func(tx *gorm.DB) (err error) {
		goal, _, _, err = co.readGoal(c, tx, model.ID)
		return err
	})

	return goal, err
}

// readGoal reads the goal and everything derived from its donations with db.
// It also returns the goal and its milestones as read.
func (co Controller) readGoal(c *gin.Context, db *gorm.DB, id uuid.UUID) (Goal, models.Goal, []models.Milestone, error) {
	url := c.GetString(string(models.DBContextURL))

	var model models.Goal
	err := db.First(&model, id).Error
	if err != nil {
		return Goal{}, models.Goal{}, nil, err
	}

	milestones, err := model.LoadMilestones(db)
	if err != nil {
		return Goal{}, models.Goal{}, nil, err
	}

	p, err := model.Progress(db, milestones)
	if err != nil {
		return Goal{}, models.Goal{}, nil, err
	}

	donations, total, err := models.ListCompletedDonations(db, model.ID, 0, latestDonations)
	if err != nil {
		return Goal{}, models.Goal{}, nil, err
	}

	goal := Goal{
		ID:            model.ID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
		Name:          model.Name,
		Description:   model.Description,
		Amount:        model.Amount,
		Currency:      co.Config.Currency.Code(),
		CurrentAmount: p.Current,
		Percent:       p.Percent,
		Milestones:    make([]Milestone, 0, len(p.Milestones)),
		Donations:     make([]Donation, 0, len(donations)),
		DonationCount: total,
		Links: GoalLinks{
			Self:      fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Donations: fmt.Sprintf("%s/v1/goals/%s/donations", url, model.ID),
			Events:    fmt.Sprintf("%s/v1/goals/%s/events", url, model.ID),
			Checkout:  fmt.Sprintf("%s/v1/goals/%s/checkout", url, model.ID),
		},
	}

	for _, m := range p.Milestones {
		goal.Milestones = append(goal.Milestones, Milestone{
			Name:      m.Name,
			Amount:    m.Amount,
			Position:  m.Position,
			Threshold: m.Threshold,
			Marker:    m.Marker,
			Reached:   m.Reached,
		})
	}

	for _, d := range donations {
		goal.Donations = append(goal.Donations, newDonation(d))
	}

	return goal, model, milestones, nil
}

type EditLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/edit/hJ3y0Qk1v7Xx"`                  // Edit view of the goal
	Milestones string `json:"milestones" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/edit/hJ3y0Qk1v7Xx/milestones"` // Replaces the milestones
	Token      string `json:"token" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/edit/hJ3y0Qk1v7Xx/token"`           // Issues an edit token
}

func newEditLinks(c *gin.Context, id uuid.UUID, secret string) EditLinks {
	edit := fmt.Sprintf("%s/v1/goals/%s/edit/%s", c.GetString(string(models.DBContextURL)), id, secret)

	return EditLinks{
		Self:       edit,
		Milestones: edit + "/milestones",
		Token:      edit + "/token",
	}
}

// EditGoal is the representation of a goal for its creator.
type EditGoal struct {
	Goal
	PayoutAccount        string          `json:"payoutAccount" example:"acct_1Nv0FGQ9RKHgCVdK"` // Account of the creator at the payment provider
	MilestoneDiscrepancy decimal.Decimal `json:"milestoneDiscrepancy" example:"0"`              // Goal amount minus the sum of all milestone amounts
	EditLinks            *EditLinks      `json:"editLinks,omitempty"`                           // Only set when the goal is edited with the edit secret
}

// newEditGoal returns the creator's representation of the goal. The edit links
// are only set if secret is not empty.
func (co Controller) newEditGoal(c *gin.Context, model models.Goal, secret string) (EditGoal, error) {
	var edit EditGoal
	err := models.ReadTransaction(models.DB, func(tx *gorm.DB) error {
		goal, current, milestones, err := co.readGoal(c, tx, model.ID)
		if err != nil {
			return err
		}

		edit = EditGoal{
			Goal:                 goal,
			PayoutAccount:        current.PayoutAccount,
			MilestoneDiscrepancy: current.MilestoneDiscrepancy(milestones),
		}
		return nil
	})
	if err != nil {
		return EditGoal{}, err
	}

	if secret != "" {
		links := newEditLinks(c, model.ID, secret)
		edit.EditLinks = &links
	}

	return edit, nil
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EditGoalResponse struct {
	Data        *EditGoal        `json:"data"`                                                                // Data for the goal
	Error       *string          `json:"error" example:"the edit secret or token is not valid for this goal"` // The error, if any occurred
	Discrepancy *decimal.Decimal `json:"discrepancy,omitempty" example:"-25"`                                 // Goal amount minus the sum of the submitted milestones, set when they do not match
}

// CreatedGoal is returned once when a goal is created. The edit secret is
// never returned again.
type CreatedGoal struct {
	EditGoal
	Secret string `json:"secret" example:"hJ3y0Qk1v7Xx0s9D2b5bJ3m4pE1wq8tY9zA6cV2nR0k"` // The edit secret of the goal
}

type GoalCreateResponse struct {
	Data        *CreatedGoal     `json:"data"`                                            // Data for the goal
	Error       *string          `json:"error" example:"the goal name must not be empty"` // The error, if any occurred
	Discrepancy *decimal.Decimal `json:"discrepancy,omitempty" example:"-25"`             // Goal amount minus the sum of the submitted milestones, set when they do not match
}

type DonationListResponse struct {
	Data       []Donation  `json:"data"`                                                          // List of donations
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DonationQueryFilter struct {
	Offset uint `form:"offset"` // The offset of the first donation returned. Defaults to 0.
	Limit  int  `form:"limit"`  // Maximum number of donations to return. Defaults to 50.
}

type Token struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.x"` // Bearer token for edits
	ExpiresAt time.Time `json:"expiresAt" example:"2024-05-03T14:51:09Z"`                   // Time after which the token is not accepted anymore
}

type TokenResponse struct {
	Data  *Token  `json:"data"`                                                                // The token
	Error *string `json:"error" example:"the edit secret or token is not valid for this goal"` // The error, if any occurred
}
