package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goalpost-app/backend/internal/progress"
	"github.com/goalpost-app/backend/internal/secret"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MilestoneTolerance is the absolute difference between the goal amount and
// the sum of its milestones that is still accepted.
var MilestoneTolerance = decimal.NewFromFloat(0.01)

// Goal is a fundraising target.
type Goal struct {
	DefaultModel
	Name           string
	Description    string
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The target for the goal
	PayoutAccount  string          // Reference to the creator's account at the payment provider
	EditSecretHash string          `json:"-"`
	Milestones     []Milestone     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Donations      []Donation      `json:"-"`
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Description = strings.TrimSpace(g.Description)
	g.PayoutAccount = strings.TrimSpace(g.PayoutAccount)

	return nil
}

// validate checks the invariants of the fields that can be set by the creator.
func (g Goal) validate() error {
	if g.Name == "" {
		return ErrGoalNameEmpty
	}

	if !g.Amount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	if g.PayoutAccount == "" {
		return ErrGoalPayoutAccountEmpty
	}

	return nil
}

// CreateGoal persists a new goal with its milestones.
//
// The plaintext edit secret is only returned here, the database only
// stores its hash.
func CreateGoal(db *gorm.DB, goal Goal, milestones []Milestone) (Goal, string, error) {
	goal.ID = uuid.Nil
	goal.Name = strings.TrimSpace(goal.Name)
	goal.PayoutAccount = strings.TrimSpace(goal.PayoutAccount)
	goal.Milestones = nil
	goal.Donations = nil

	err := goal.validate()
	if err != nil {
		return Goal{}, "", err
	}

	plain, err := secret.Generate()
	if err != nil {
		return Goal{}, "", err
	}

	goal.EditSecretHash, err = secret.Hash(plain)
	if err != nil {
		return Goal{}, "", err
	}

	err = transaction(db, func(tx *gorm.DB) error {
		err := tx.Create(&goal).Error
		if err != nil {
			return err
		}

		if len(milestones) == 0 {
			return nil
		}

		return goal.replaceMilestones(tx, milestones)
	})
	if err != nil {
		return Goal{}, "", err
	}

	return goal, plain, nil
}

// Authorize verifies the edit secret for the goal.
func (g Goal) Authorize(editSecret string) error {
	err := secret.Verify(g.EditSecretHash, editSecret)
	if errors.Is(err, secret.ErrMismatch) {
		return ErrInvalidSecret
	}

	return err
}

// Update updates the listed fields of the goal with the values from update.
//
// The milestones are not checked against a changed amount, the discrepancy
// is reported by MilestoneDiscrepancy instead.
func (g *Goal) Update(db *gorm.DB, update Goal, fields ...any) error {
	if len(fields) == 0 {
		return nil
	}

	// Validate the goal as it would look like after the update
	merged := *g
	for _, f := range fields {
		switch f {
		case "Name":
			merged.Name = strings.TrimSpace(update.Name)
		case "Description":
			merged.Description = strings.TrimSpace(update.Description)
		case "Amount":
			merged.Amount = update.Amount
		case "PayoutAccount":
			merged.PayoutAccount = strings.TrimSpace(update.PayoutAccount)
		default:
			return fmt.Errorf("the field %v cannot be updated", f)
		}
	}

	err := merged.validate()
	if err != nil {
		return err
	}

	err = db.Model(g).Select("", fields...).Updates(merged).Error
	if err != nil {
		return err
	}

	return db.First(g, g.ID).Error
}

// LoadMilestones returns the milestones of the goal, ordered by position.
func (g Goal) LoadMilestones(db *gorm.DB) ([]Milestone, error) {
	var milestones []Milestone
	err := db.Where(&Milestone{GoalID: g.ID}).Order("position ASC").Find(&milestones).Error
	if err != nil {
		return nil, err
	}

	return milestones, nil
}

// ReplaceMilestones replaces all milestones of the goal with the ones passed
// in. Their order in the slice becomes their position.
//
// Either all old milestones are replaced or nothing is written.
func (g Goal) ReplaceMilestones(db *gorm.DB, milestones []Milestone) error {
	return transaction(db, func(tx *gorm.DB) error {
		// Lock in the goal so that we fail on unknown IDs before deleting anything
		var current Goal
		err := tx.First(&current, g.ID).Error
		if err != nil {
			return err
		}

		return current.replaceMilestones(tx, milestones)
	})
}

// replaceMilestones must be called inside a transaction.
func (g Goal) replaceMilestones(tx *gorm.DB, milestones []Milestone) error {
	replacement := make([]Milestone, 0, len(milestones))
	amounts := make([]decimal.Decimal, 0, len(milestones))

	for i, m := range milestones {
		m.DefaultModel = DefaultModel{}
		m.GoalID = g.ID
		m.Position = i + 1
		m.Name = strings.TrimSpace(m.Name)

		err := m.validate()
		if err != nil {
			return err
		}

		replacement = append(replacement, m)
		amounts = append(amounts, m.Amount)
	}

	if len(replacement) > 0 {
		sum := progress.Sum(amounts...)
		if sum.Sub(g.Amount).Abs().GreaterThan(MilestoneTolerance) {
			return &MilestoneSumError{
				Target:      g.Amount,
				Sum:         sum,
				Discrepancy: g.Amount.Sub(sum),
			}
		}
	}

	err := tx.Where("goal_id = ?", g.ID).Delete(&Milestone{}).Error
	if err != nil {
		return err
	}

	if len(replacement) == 0 {
		return nil
	}

	return tx.Create(&replacement).Error
}

// MilestoneDiscrepancy returns the goal amount minus the sum of the milestone
// amounts. It is zero when there are no milestones.
func (g Goal) MilestoneDiscrepancy(milestones []Milestone) decimal.Decimal {
	if len(milestones) == 0 {
		return decimal.Zero
	}

	amounts := make([]decimal.Decimal, 0, len(milestones))
	for _, m := range milestones {
		amounts = append(amounts, m.Amount)
	}

	return g.Amount.Sub(progress.Sum(amounts...))
}

// Progress computes the derived state of the goal from the ledger.
func (g Goal) Progress(db *gorm.DB, milestones []Milestone) (progress.Progress, error) {
	current, err := CurrentAmount(db, g.ID)
	if err != nil {
		return progress.Progress{}, err
	}

	steps := make([]progress.Step, 0, len(milestones))
	for _, m := range milestones {
		steps = append(steps, m.step())
	}

	return progress.Compute(g.Amount, current, steps), nil
}
