package models

import (
	"github.com/goalpost-app/backend/internal/progress"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Milestone is an incremental sub-target of a goal.
//
// Its amount is the increment on top of all milestones before it, not the
// cumulative total.
type Milestone struct {
	DefaultModel
	GoalID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_milestone_goal_position"`
	Goal     Goal            `json:"-"`
	Name     string          `gorm:"not null"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Position int             `gorm:"not null;uniqueIndex:idx_milestone_goal_position"`
}

func (m Milestone) validate() error {
	if m.Name == "" {
		return ErrMilestoneNameEmpty
	}

	if !m.Amount.IsPositive() {
		return ErrMilestoneAmountNotPositive
	}

	return nil
}

func (m Milestone) step() progress.Step {
	return progress.Step{
		Name:     m.Name,
		Amount:   m.Amount,
		Position: m.Position,
	}
}
