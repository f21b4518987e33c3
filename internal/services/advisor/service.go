package advisor

import (
	"context"
	"time"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/models"
)

// Service implements AdvisorService
type Service struct {
	config *common.Config
	market interfaces.MarketService
	logger *common.Logger
}

// NewService creates a new advisor service. The market service may be nil;
// advice is then composed without snapshots.
func NewService(config *common.Config, market interfaces.MarketService, logger *common.Logger) *Service {
	return &Service{
		config: config,
		market: market,
		logger: logger,
	}
}

// Score computes the risk analysis for a profile without composing advice.
func (s *Service) Score(profile models.Profile) models.Analysis {
	return scoreProfile(profile)
}

// Allocate returns the age-adjusted, normalized allocation for a profile.
func (s *Service) Allocate(profile models.Profile, analysis models.Analysis) models.Allocation {
	return allocateProfile(profile, analysis)
}

// Analyze runs the full pipeline: validate, score, allocate, compose.
func (s *Service) Analyze(ctx context.Context, profile models.Profile, opts interfaces.AnalyzeOptions) (*models.Bundle, error) {
	if msgs := profile.Validate(); len(msgs) > 0 {
		return nil, &models.ValidationError{Messages: msgs}
	}

	analysis := scoreProfile(profile)
	allocation := allocateProfile(profile, analysis)

	if violations := checkBounds(allocation, analysis.RiskCategory); len(violations) > 0 {
		s.logger.Debug().
			Strs("violations", violations).
			Msg("Allocation outside advisory bounds")
	}

	var snapshot map[string]models.Quote
	if opts.IncludeMarket {
		if s.market == nil {
			s.logger.Warn().Msg("Market service unavailable, composing advice without snapshot")
		} else {
			symbols := opts.Symbols
			if len(symbols) == 0 {
				symbols = s.config.DefaultSymbols()
			}
			snapshot = s.market.GetQuotes(ctx, symbols)
		}
	}

	bundle := &models.Bundle{
		Profile:     profile,
		Analysis:    analysis,
		Allocation:  allocation,
		Advice:      composeAdvice(profile, analysis, allocation, snapshot),
		GeneratedAt: time.Now().UTC(),
	}

	s.logger.Info().
		Float64("risk_score", analysis.RiskScore).
		Str("risk_category", analysis.RiskCategory).
		Float64("expected_return", analysis.ExpectedReturn).
		Bool("market_snapshot", snapshot != nil).
		Msg("Profile analyzed")

	return bundle, nil
}

// Ensure Service implements AdvisorService
var _ interfaces.AdvisorService = (*Service)(nil)
