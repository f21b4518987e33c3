// Package models defines data structures for Advisor
package models

import (
	"time"
)

// Risk categories derived from the risk score thresholds.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Analysis is the scored risk assessment of a profile.
type Analysis struct {
	RiskScore      float64   `json:"risk_score"`
	RiskCategory   string    `json:"risk_category"`
	ExpectedReturn float64   `json:"expected_return"`
	Features       []float64 `json:"features,omitempty"` // raw inputs: age, income, expenses, savings, tolerance
}

// Allocation maps instrument categories to portfolio fractions. A valid
// allocation sums to 1.0 within rounding tolerance.
type Allocation map[string]float64

// Sum returns the total of all fractions.
func (a Allocation) Sum() float64 {
	var total float64
	for _, v := range a {
		total += v
	}
	return total
}

// Advice is the composed recommendation set for one analysis.
type Advice struct {
	Summary         string                   `json:"summary"`
	Recommendations []string                 `json:"recommendations"`
	Breakdown       map[string]BreakdownItem `json:"investment_breakdown"`
	MarketSnapshot  map[string]Quote         `json:"market_insights,omitempty"`
}

// BreakdownItem is the dollar view of one allocated category.
type BreakdownItem struct {
	Percentage  float64 `json:"percentage"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Bundle carries one complete advice run: the profile that was scored, the
// resulting analysis, allocation and advice. It is the unit the session
// store serializes and the report renderers consume.
type Bundle struct {
	Profile     Profile    `json:"profile"`
	Analysis    Analysis   `json:"analysis"`
	Allocation  Allocation `json:"allocation"`
	Advice      Advice     `json:"advice"`
	GeneratedAt time.Time  `json:"generated_at"`
}
