// Package models defines data structures for Advisor
package models

import "strings"

// Instrument categories forming the fixed allocation vocabulary.
const (
	CategoryFixedDeposits    = "fixed_deposits"
	CategoryGovernmentBonds  = "government_bonds"
	CategoryMoneyMarketFunds = "money_market_funds"
	CategoryMutualFunds      = "mutual_funds"
	CategoryETFs             = "etfs"
	CategoryStocks           = "stocks"
	CategoryCrypto           = "crypto"
	CategoryCommodities      = "commodities"
)

// Categories lists the allocation vocabulary in display order.
var Categories = []string{
	CategoryFixedDeposits,
	CategoryGovernmentBonds,
	CategoryMoneyMarketFunds,
	CategoryMutualFunds,
	CategoryETFs,
	CategoryStocks,
	CategoryCrypto,
	CategoryCommodities,
}

// DefaultCategoryDescription is used for categories without a curated entry.
const DefaultCategoryDescription = "Investment category"

var categoryDescriptions = map[string]string{
	CategoryFixedDeposits:    "Low-risk, guaranteed returns from banks",
	CategoryGovernmentBonds:  "Very safe, backed by government",
	CategoryMoneyMarketFunds: "Short-term, low-risk investments",
	CategoryMutualFunds:      "Diversified portfolio managed by professionals",
	CategoryETFs:             "Exchange-traded funds tracking market indices",
	CategoryStocks:           "Individual company shares with higher volatility",
	CategoryCrypto:           "Cryptocurrency investments with high volatility",
}

// DescribeCategory returns the curated description for a category, or the
// default when no entry exists.
func DescribeCategory(category string) string {
	if desc, ok := categoryDescriptions[category]; ok {
		return desc
	}
	return DefaultCategoryDescription
}

var categoryDisplayNames = map[string]string{
	CategoryFixedDeposits:    "Fixed Deposits",
	CategoryGovernmentBonds:  "Government Bonds",
	CategoryMoneyMarketFunds: "Money Market Funds",
	CategoryMutualFunds:      "Mutual Funds",
	CategoryETFs:             "ETFs",
	CategoryStocks:           "Stocks",
	CategoryCrypto:           "Crypto",
	CategoryCommodities:      "Commodities",
}

// DisplayCategory returns the human-readable name for a category key.
// Unknown keys fall back to the raw key with underscores spaced out.
func DisplayCategory(category string) string {
	if name, ok := categoryDisplayNames[category]; ok {
		return name
	}
	return strings.ReplaceAll(category, "_", " ")
}

// AllocationBound is an advisory min/max fraction for one category within a
// risk band. Bounds are published through the catalog and usable as
// validation hooks; the allocation pipeline itself does not enforce them.
type AllocationBound struct {
	Min float64 `json:"min_allocation"`
	Max float64 `json:"max_allocation"`
}

// AllocationBounds groups advisory bounds by risk band. The band contents
// predate the current allocation tables and are kept as published.
var AllocationBounds = map[string]map[string]AllocationBound{
	"low_risk": {
		CategoryFixedDeposits:    {Min: 0.1, Max: 0.4},
		CategoryGovernmentBonds:  {Min: 0.1, Max: 0.3},
		CategoryMoneyMarketFunds: {Min: 0.05, Max: 0.2},
	},
	"medium_risk": {
		CategoryMutualFunds: {Min: 0.2, Max: 0.6},
		CategoryETFs:        {Min: 0.1, Max: 0.4},
		"corporate_bonds":   {Min: 0.1, Max: 0.3},
	},
	"high_risk": {
		CategoryStocks:      {Min: 0.1, Max: 0.5},
		CategoryCrypto:      {Min: 0.05, Max: 0.2},
		CategoryCommodities: {Min: 0.05, Max: 0.15},
	},
}

// RiskLabels maps tolerance labels accepted by the API to numeric values.
var RiskLabels = map[string]float64{
	"conservative": 0.2,
	"moderate":     0.5,
	"aggressive":   0.8,
}

// AgeBand is an age range with its advisory risk multiplier.
type AgeBand struct {
	Name           string  `json:"name"`
	MinAge         int     `json:"min_age"`
	MaxAge         int     `json:"max_age"`
	RiskMultiplier float64 `json:"risk_multiplier"`
}

// AgeBands lists advisory age-based risk multipliers, youngest first.
var AgeBands = []AgeBand{
	{Name: "young", MinAge: 18, MaxAge: 35, RiskMultiplier: 1.2},
	{Name: "middle", MinAge: 36, MaxAge: 50, RiskMultiplier: 1.0},
	{Name: "senior", MinAge: 51, MaxAge: 65, RiskMultiplier: 0.8},
	{Name: "retired", MinAge: 66, MaxAge: 100, RiskMultiplier: 0.6},
}

// Catalog is the published advisory metadata: category descriptions,
// advisory allocation bounds, risk tolerance labels and age bands.
type Catalog struct {
	Categories   []string                              `json:"categories"`
	Descriptions map[string]string                     `json:"descriptions"`
	Bounds       map[string]map[string]AllocationBound `json:"allocation_bounds"`
	RiskLabels   map[string]float64                    `json:"risk_labels"`
	AgeBands     []AgeBand                             `json:"age_bands"`
}

// NewCatalog assembles the published catalog.
func NewCatalog() *Catalog {
	descriptions := make(map[string]string, len(Categories))
	for _, c := range Categories {
		descriptions[c] = DescribeCategory(c)
	}
	return &Catalog{
		Categories:   Categories,
		Descriptions: descriptions,
		Bounds:       AllocationBounds,
		RiskLabels:   RiskLabels,
		AgeBands:     AgeBands,
	}
}
