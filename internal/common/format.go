package common

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatMoney renders a dollar amount with thousands separators, e.g. $12,345.67.
func FormatMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%s", humanize.FormatFloat("#,###.##", -v))
	}
	return fmt.Sprintf("$%s", humanize.FormatFloat("#,###.##", v))
}

// FormatSignedMoney renders a dollar amount with an explicit sign, e.g. +$12.34.
func FormatSignedMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%s", humanize.FormatFloat("#,###.##", -v))
	}
	return fmt.Sprintf("+$%s", humanize.FormatFloat("#,###.##", v))
}

// FormatPct renders a fraction as a percentage, e.g. 0.064 -> 6.4%.
func FormatPct(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// FormatSignedPct renders a percentage value with an explicit sign, e.g. +1.25%.
func FormatSignedPct(pct float64) string {
	if pct < 0 {
		return fmt.Sprintf("%.2f%%", pct)
	}
	return fmt.Sprintf("+%.2f%%", pct)
}
