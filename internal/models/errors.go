package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrInvalidSecret    = errors.New("the edit secret or token is not valid for this goal")
)

// Goal errors
var (
	ErrGoalNameEmpty          = errors.New("the goal name must not be empty")
	ErrGoalAmountNotPositive  = errors.New("goal amounts must be larger than zero")
	ErrGoalPayoutAccountEmpty = errors.New("the payout account must be set")
)

// Milestone errors
var (
	ErrMilestoneNameEmpty         = errors.New("milestone names must not be empty")
	ErrMilestoneAmountNotPositive = errors.New("milestone amounts must be larger than zero")
	ErrMilestonePositionNotUnique = errors.New("milestone positions must be unique per goal")
	ErrMilestoneSumMismatch       = errors.New("the sum of all milestone amounts must equal the goal amount")
)

// Donation errors
var (
	ErrDonationAmountNotPositive = errors.New("donation amounts must be larger than zero")
	ErrDonationTransactionEmpty  = errors.New("the provider transaction ID must be set")
	ErrDuplicateTransaction      = errors.New("a donation for this provider transaction already exists")
	ErrDonationImmutable         = errors.New("donations cannot be changed or deleted")
)

// MilestoneSumError is returned when the milestones of a goal do not add up to
// the goal amount. Discrepancy is Target - Sum.
type MilestoneSumError struct {
	Target      decimal.Decimal
	Sum         decimal.Decimal
	Discrepancy decimal.Decimal
}

func (e *MilestoneSumError) Error() string {
	return fmt.Sprintf("%s: goal amount is %s, milestones add up to %s (difference %s)", ErrMilestoneSumMismatch, e.Target, e.Sum, e.Discrepancy)
}

func (e *MilestoneSumError) Unwrap() error {
	return ErrMilestoneSumMismatch
}
