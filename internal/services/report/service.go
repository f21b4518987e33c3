// Package report renders advice bundles into markdown reports and PNG charts.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/models"
)

// Service implements ReportService
type Service struct {
	logger *common.Logger
}

// NewService creates a new report service.
func NewService(logger *common.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Generate renders the markdown report for a bundle. An empty variant
// selects the full report.
func (s *Service) Generate(ctx context.Context, bundle *models.Bundle, variant string) (*models.Report, error) {
	if bundle == nil {
		return nil, fmt.Errorf("nil bundle")
	}

	var markdown string
	switch variant {
	case "", models.ReportFull:
		variant = models.ReportFull
		markdown = formatReportFull(bundle)
	case models.ReportSummary:
		markdown = formatReportSummary(bundle)
	default:
		return nil, fmt.Errorf("unknown report variant %q", variant)
	}

	s.logger.Debug().
		Str("variant", variant).
		Int("bytes", len(markdown)).
		Msg("Report generated")

	return &models.Report{
		Variant:     variant,
		Markdown:    markdown,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// RenderChart renders one named chart as PNG bytes. Unknown names fail;
// a chart that cannot be drawn from the bundle degrades to a placeholder
// image rather than failing the call.
func (s *Service) RenderChart(ctx context.Context, bundle *models.Bundle, name string) ([]byte, error) {
	if bundle == nil {
		return nil, fmt.Errorf("nil bundle")
	}

	var (
		data []byte
		err  error
	)
	switch name {
	case models.ChartAllocation:
		data, err = renderAllocationPie(bundle)
	case models.ChartRiskReturn:
		data, err = renderRiskReturn(bundle)
	case models.ChartMarket:
		data, err = renderMarketOverview(bundle)
	case models.ChartAgeRisk:
		data, err = renderAgeRisk(bundle)
	case models.ChartOverview:
		data, err = renderFinancialOverview(bundle)
	case models.ChartGoals:
		data, err = renderGoalTimeline(bundle)
	default:
		return nil, fmt.Errorf("unknown chart %q", name)
	}

	if err != nil {
		s.logger.Warn().Err(err).Str("chart", name).Msg("Chart degraded to placeholder")
		return placeholderPNG(), nil
	}
	return data, nil
}

// Ensure Service implements ReportService
var _ interfaces.ReportService = (*Service)(nil)
