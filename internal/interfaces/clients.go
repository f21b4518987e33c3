// Package interfaces defines service contracts for Advisor
package interfaces

import (
	"context"

	"github.com/bobmcallan/advisor/internal/models"
)

// QuoteClient provides daily price history for symbols
type QuoteClient interface {
	// GetDailyBars retrieves the recent daily bars for a symbol over the
	// client's lookback window, oldest first.
	GetDailyBars(ctx context.Context, symbol string) ([]models.Bar, error)
}
