// Package models defines data structures for Advisor
package models

import (
	"time"
)

// Report variants.
const (
	ReportFull    = "full"
	ReportSummary = "summary"
)

// Report is a rendered markdown report for one advice bundle.
type Report struct {
	Variant     string    `json:"variant"`
	Markdown    string    `json:"markdown"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Chart names accepted by the chart renderers.
const (
	ChartAllocation = "allocation"
	ChartRiskReturn = "risk-return"
	ChartMarket     = "market"
	ChartAgeRisk    = "age-risk"
	ChartOverview   = "overview"
	ChartGoals      = "goals"
)

// ChartNames lists every renderable chart.
var ChartNames = []string{
	ChartAllocation,
	ChartRiskReturn,
	ChartMarket,
	ChartAgeRisk,
	ChartOverview,
	ChartGoals,
}
