// Package models defines data structures for Advisor
package models

import (
	"fmt"
	"math"
	"strings"
)

// Profile holds the financial details the advisor scores.
type Profile struct {
	Age            int     `json:"age"`
	AnnualIncome   float64 `json:"annual_income"`
	AnnualExpenses float64 `json:"annual_expenses"`
	Savings        float64 `json:"savings"`
	RiskTolerance  float64 `json:"risk_tolerance"`
	Goals          []Goal  `json:"goals,omitempty"`
}

// Goal is a savings target with a timeframe.
type Goal struct {
	Description    string  `json:"description"`
	TargetAmount   float64 `json:"target_amount"`
	TimeframeYears int     `json:"timeframe_years"`
}

// InvestableAmount returns the portion of savings used for allocation
// breakdowns (80% of current savings).
func (p *Profile) InvestableAmount() float64 {
	return p.Savings * 0.8
}

// MonthlyContribution returns the level monthly saving that reaches the goal
// amount over its timeframe, compounding monthly at the given annual return.
// A zero rate falls back to straight division.
func (g Goal) MonthlyContribution(annualReturn float64) float64 {
	months := float64(g.TimeframeYears * 12)
	if months <= 0 {
		return 0
	}

	monthlyReturn := annualReturn / 12
	if monthlyReturn == 0 {
		return g.TargetAmount / months
	}

	return g.TargetAmount * monthlyReturn / (math.Pow(1+monthlyReturn, months) - 1)
}

// Validate returns per-field messages for every invalid value, or an empty
// slice when the profile is acceptable.
func (p *Profile) Validate() []string {
	var msgs []string

	if p.Age < 18 || p.Age > 100 {
		msgs = append(msgs, "age must be between 18 and 100")
	}
	if p.AnnualIncome < 0 {
		msgs = append(msgs, "annual_income must be non-negative")
	}
	if p.AnnualExpenses < 0 {
		msgs = append(msgs, "annual_expenses must be non-negative")
	}
	if p.Savings < 0 {
		msgs = append(msgs, "savings must be non-negative")
	}
	if p.RiskTolerance < 0 || p.RiskTolerance > 1 {
		msgs = append(msgs, "risk_tolerance must be between 0 and 1")
	}
	for i, g := range p.Goals {
		if g.TargetAmount <= 0 {
			msgs = append(msgs, fmt.Sprintf("goals[%d]: target_amount must be positive", i))
		}
		if g.TimeframeYears < 1 {
			msgs = append(msgs, fmt.Sprintf("goals[%d]: timeframe_years must be at least 1", i))
		}
	}

	return msgs
}

// ValidationError carries the per-field messages from a failed profile
// validation so handlers can distinguish bad input from internal failures.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid profile: " + strings.Join(e.Messages, "; ")
}
