// Package yahoo provides a quote client backed by Yahoo Finance chart data.
package yahoo

import (
	"context"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"golang.org/x/time/rate"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/models"
)

const (
	DefaultLookbackDays = 30
	DefaultRateLimit    = 5 // requests per second
	DefaultTimeout      = 30 * time.Second
)

// Client implements the QuoteClient interface over Yahoo Finance daily charts.
type Client struct {
	lookbackDays int
	timeout      time.Duration
	logger       *common.Logger
	limiter      *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithLookbackDays sets the history window requested per symbol
func WithLookbackDays(days int) ClientOption {
	return func(c *Client) {
		if days > 0 {
			c.lookbackDays = days
		}
	}
}

// WithTimeout bounds each chart request with a deadline
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewClient creates a new Yahoo Finance quote client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		lookbackDays: DefaultLookbackDays,
		timeout:      DefaultTimeout,
		limiter:      rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:       common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetDailyBars retrieves daily bars for a symbol over the lookback window,
// oldest first.
func (c *Client) GetDailyBars(ctx context.Context, symbol string) ([]models.Bar, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	now := time.Now()
	start := now.AddDate(0, 0, -c.lookbackDays)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	params.Context = &ctx

	c.logger.Debug().
		Str("symbol", symbol).
		Int("lookback_days", c.lookbackDays).
		Msg("Yahoo chart request")

	iter := chart.Get(params)

	var bars []models.Bar
	for iter.Next() {
		bar := iter.Bar()
		bars = append(bars, models.Bar{
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Close:  bar.Close.InexactFloat64(),
			Volume: int64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return bars, nil
}

// Ensure Client implements QuoteClient
var _ interfaces.QuoteClient = (*Client)(nil)
