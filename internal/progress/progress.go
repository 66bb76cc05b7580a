// Package progress derives the raised amount, the percentage and the
// milestone ladder of a goal. Everything here is pure: no I/O, no locking.
package progress

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Step is a milestone as seen by the calculator.
type Step struct {
	Name     string
	Amount   decimal.Decimal // Incremental amount of this milestone
	Position int
}

// StepProgress is the derived state of one milestone.
type StepProgress struct {
	Step
	Threshold decimal.Decimal // Cumulative amount needed to reach this milestone
	Marker    decimal.Decimal // Position of the threshold on a 0 to 100 axis
	Reached   bool
}

// Progress is the derived state of a goal.
type Progress struct {
	Current    decimal.Decimal
	Target     decimal.Decimal
	Percent    decimal.Decimal
	Milestones []StepProgress
}

// Sum adds up all amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}

	return sum
}

// Percent returns 100 * part / whole, capped to [0, 100] and rounded to two
// decimal places. A non-positive whole yields zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}

	p := part.Mul(hundred).Div(whole)
	if p.GreaterThan(hundred) {
		p = hundred
	}

	if p.IsNegative() {
		p = decimal.Zero
	}

	return p.Round(2)
}

// Compute derives the progress of a goal with the given target from the
// current amount.
//
// Steps are ordered by position. A step is reached when the current amount
// covers its cumulative threshold, so step n can never be reached before
// step n-1.
func Compute(target, current decimal.Decimal, steps []Step) Progress {
	ordered := make([]Step, len(steps))
	copy(ordered, steps)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	p := Progress{
		Current:    current,
		Target:     target,
		Percent:    Percent(current, target),
		Milestones: make([]StepProgress, 0, len(ordered)),
	}

	threshold := decimal.Zero
	for _, s := range ordered {
		threshold = threshold.Add(s.Amount)

		p.Milestones = append(p.Milestones, StepProgress{
			Step:      s,
			Threshold: threshold,
			Marker:    Percent(threshold, target),
			Reached:   current.GreaterThanOrEqual(threshold),
		})
	}

	return p
}
