// Package interfaces defines service contracts for Advisor
package interfaces

import (
	"context"

	"github.com/bobmcallan/advisor/internal/models"
)

// AdvisorService runs the profile-to-advice pipeline
type AdvisorService interface {
	// Analyze validates and scores a profile, allocates the portfolio and
	// composes advice. A failed market fetch degrades to advice without a
	// snapshot; only validation or internal errors fail the call.
	Analyze(ctx context.Context, profile models.Profile, opts AnalyzeOptions) (*models.Bundle, error)

	// Score computes the risk analysis for a profile without composing advice.
	Score(profile models.Profile) models.Analysis

	// Allocate returns the age-adjusted, normalized allocation for a profile.
	Allocate(profile models.Profile, analysis models.Analysis) models.Allocation
}

// AnalyzeOptions configures advice composition
type AnalyzeOptions struct {
	IncludeMarket bool     // Attach a market snapshot to the advice
	Symbols       []string // Snapshot symbols; empty selects the configured set
}

// MarketService provides quote snapshots
type MarketService interface {
	// GetQuotes returns a snapshot per requested symbol. A symbol that
	// cannot be fetched yields a zeroed quote; the batch never fails.
	GetQuotes(ctx context.Context, symbols []string) map[string]models.Quote
}

// ReportService renders advice bundles into reports and charts
type ReportService interface {
	// Generate renders the markdown report for a bundle.
	// Variant is "full" or "summary".
	Generate(ctx context.Context, bundle *models.Bundle, variant string) (*models.Report, error)

	// RenderChart renders one named chart as PNG bytes. Unknown names fail;
	// charts with insufficient data render a placeholder image instead.
	RenderChart(ctx context.Context, bundle *models.Bundle, name string) ([]byte, error)
}
