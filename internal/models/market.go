// Package models defines data structures for Advisor
package models

import (
	"time"
)

// Quote is a point-in-time price/volume/range snapshot for one symbol.
// High/Low cover the fetched history window. A symbol that could not be
// fetched is reported as an all-zero Quote rather than an error.
type Quote struct {
	CurrentPrice  float64 `json:"current_price"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	High52W       float64 `json:"high_52w"`
	Low52W        float64 `json:"low_52w"`
}

// Bar is a single day's price data from the history provider.
type Bar struct {
	Date   time.Time `json:"date"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}
