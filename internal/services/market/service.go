// Package market summarizes daily price history into quote snapshots.
package market

import (
	"context"
	"math"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/models"
)

// Service implements MarketService on top of a daily-bars client.
type Service struct {
	client interfaces.QuoteClient
	logger *common.Logger
}

// NewService creates a new market service. The client may be nil; every
// symbol then resolves to a zero quote.
func NewService(client interfaces.QuoteClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetQuotes summarizes recent daily bars for each requested symbol. A batch
// never fails: a symbol whose history cannot be fetched maps to a zero quote
// so one bad ticker does not sink the snapshot.
func (s *Service) GetQuotes(ctx context.Context, symbols []string) map[string]models.Quote {
	quotes := make(map[string]models.Quote, len(symbols))

	if s.client == nil {
		s.logger.Warn().Msg("Quote client unavailable, returning zero quotes")
		for _, symbol := range symbols {
			quotes[symbol] = models.Quote{}
		}
		return quotes
	}

	for _, symbol := range symbols {
		quotes[symbol] = s.getQuote(ctx, symbol)
	}
	return quotes
}

func (s *Service) getQuote(ctx context.Context, symbol string) models.Quote {
	bars, err := s.client.GetDailyBars(ctx, symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Quote lookup failed")
		return models.Quote{}
	}
	if len(bars) == 0 {
		s.logger.Warn().Str("symbol", symbol).Msg("No price history returned")
		return models.Quote{}
	}

	last := bars[len(bars)-1]
	quote := models.Quote{
		CurrentPrice: round2(last.Close),
		Volume:       last.Volume,
	}

	if len(bars) > 1 {
		prior := bars[len(bars)-2]
		if prior.Close > 0 {
			quote.ChangePercent = round2((last.Close - prior.Close) / prior.Close * 100)
		}
	}

	high := bars[0].Close
	low := bars[0].Close
	for _, bar := range bars[1:] {
		if bar.Close > high {
			high = bar.Close
		}
		if bar.Close < low {
			low = bar.Close
		}
	}
	quote.High52W = round2(high)
	quote.Low52W = round2(low)

	return quote
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ensure Service implements MarketService
var _ interfaces.MarketService = (*Service)(nil)
