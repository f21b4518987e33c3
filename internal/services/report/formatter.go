package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/models"
)

// allocationRow pairs a category with its breakdown for sorted rendering.
type allocationRow struct {
	Category string
	Fraction float64
	Amount   float64
}

// sortedAllocation returns the non-zero allocation rows, largest first.
// Ties break alphabetically so rendering stays deterministic.
func sortedAllocation(bundle *models.Bundle) []allocationRow {
	investable := bundle.Profile.InvestableAmount()

	rows := make([]allocationRow, 0, len(bundle.Allocation))
	for category, fraction := range bundle.Allocation {
		if fraction <= 0 {
			continue
		}
		rows = append(rows, allocationRow{
			Category: category,
			Fraction: fraction,
			Amount:   investable * fraction,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Fraction != rows[j].Fraction {
			return rows[i].Fraction > rows[j].Fraction
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// formatReportFull generates the complete advisory report markdown.
func formatReportFull(bundle *models.Bundle) string {
	var sb strings.Builder

	profile := bundle.Profile
	analysis := bundle.Analysis

	// Header
	sb.WriteString("# Investment Advisory Report\n\n")
	sb.WriteString(fmt.Sprintf("**Date:** %s\n", bundle.GeneratedAt.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("**Risk Category:** %s\n", analysis.RiskCategory))
	sb.WriteString(fmt.Sprintf("**Risk Score:** %.2f\n", analysis.RiskScore))
	sb.WriteString(fmt.Sprintf("**Expected Annual Return:** %s\n\n", common.FormatPct(analysis.ExpectedReturn)))

	// Profile
	sb.WriteString("## Profile\n\n")
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Age | %d |\n", profile.Age))
	sb.WriteString(fmt.Sprintf("| Annual Income | %s |\n", common.FormatMoney(profile.AnnualIncome)))
	sb.WriteString(fmt.Sprintf("| Annual Expenses | %s |\n", common.FormatMoney(profile.AnnualExpenses)))
	sb.WriteString(fmt.Sprintf("| Savings | %s |\n", common.FormatMoney(profile.Savings)))
	sb.WriteString(fmt.Sprintf("| Risk Tolerance | %.2f |\n", profile.RiskTolerance))
	sb.WriteString(fmt.Sprintf("| Investable Amount | %s |\n", common.FormatMoney(profile.InvestableAmount())))
	sb.WriteString("\n")

	// Allocation
	rows := sortedAllocation(bundle)
	if len(rows) > 0 {
		sb.WriteString("## Recommended Allocation\n\n")
		sb.WriteString("| Category | Weight | Amount | Notes |\n")
		sb.WriteString("|----------|--------|--------|-------|\n")
		for _, row := range rows {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				models.DisplayCategory(row.Category),
				common.FormatPct(row.Fraction),
				common.FormatMoney(row.Amount),
				models.DescribeCategory(row.Category),
			))
		}
		sb.WriteString(fmt.Sprintf("| **Total** | | **%s** | |\n\n", common.FormatMoney(profile.InvestableAmount())))
	}

	// Advice
	sb.WriteString("## Advice\n\n")
	sb.WriteString(bundle.Advice.Summary)
	sb.WriteString("\n\n")
	if len(bundle.Advice.Recommendations) > 0 {
		sb.WriteString("### Recommendations\n\n")
		for i, rec := range bundle.Advice.Recommendations {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
		sb.WriteString("\n")
	}

	// Goals
	if len(profile.Goals) > 0 {
		sb.WriteString("## Goals\n\n")
		sb.WriteString("| Goal | Target | Timeframe | Monthly Investment |\n")
		sb.WriteString("|------|--------|-----------|--------------------|\n")
		for _, goal := range profile.Goals {
			sb.WriteString(fmt.Sprintf("| %s | %s | %d years | %s |\n",
				goal.Description,
				common.FormatMoney(goal.TargetAmount),
				goal.TimeframeYears,
				common.FormatMoney(goal.MonthlyContribution(analysis.ExpectedReturn)),
			))
		}
		sb.WriteString("\n")
	}

	// Market Snapshot
	sb.WriteString(formatMarketSnapshot(bundle.Advice.MarketSnapshot))

	// Disclaimer
	sb.WriteString("---\n\n")
	sb.WriteString("*Generated from statistical heuristics over your stated profile. Not financial advice.*\n")

	return sb.String()
}

// formatReportSummary generates the condensed markdown: the risk position
// and the top three allocations only.
func formatReportSummary(bundle *models.Bundle) string {
	var sb strings.Builder

	analysis := bundle.Analysis

	sb.WriteString("# Investment Summary\n\n")
	sb.WriteString(fmt.Sprintf("**Risk:** %s (score %.2f)\n", analysis.RiskCategory, analysis.RiskScore))
	sb.WriteString(fmt.Sprintf("**Expected Annual Return:** %s\n", common.FormatPct(analysis.ExpectedReturn)))
	sb.WriteString(fmt.Sprintf("**Investable Amount:** %s\n\n", common.FormatMoney(bundle.Profile.InvestableAmount())))

	rows := sortedAllocation(bundle)
	if len(rows) > 3 {
		rows = rows[:3]
	}
	if len(rows) > 0 {
		sb.WriteString("## Top Allocations\n\n")
		for i, row := range rows {
			sb.WriteString(fmt.Sprintf("%d. %s: %s (%s)\n",
				i+1,
				models.DisplayCategory(row.Category),
				common.FormatPct(row.Fraction),
				common.FormatMoney(row.Amount),
			))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(bundle.Advice.Summary)
	sb.WriteString("\n")

	return sb.String()
}

// formatMarketSnapshot renders the quote table for stored reports. Returns
// an empty string when no snapshot was captured.
func formatMarketSnapshot(snapshot map[string]models.Quote) string {
	if len(snapshot) == 0 {
		return ""
	}

	symbols := make([]string, 0, len(snapshot))
	for symbol := range snapshot {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var sb strings.Builder
	sb.WriteString("## Market Snapshot\n\n")
	sb.WriteString("| Symbol | Price | Change | Volume | High | Low |\n")
	sb.WriteString("|--------|-------|--------|--------|------|-----|\n")
	for _, symbol := range symbols {
		quote := snapshot[symbol]
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %s | %s |\n",
			symbol,
			common.FormatMoney(quote.CurrentPrice),
			common.FormatSignedPct(quote.ChangePercent),
			quote.Volume,
			common.FormatMoney(quote.High52W),
			common.FormatMoney(quote.Low52W),
		))
	}
	sb.WriteString("\n")

	return sb.String()
}
