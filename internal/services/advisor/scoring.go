// Package advisor implements the profile scoring, allocation and advice
// pipeline.
package advisor

import (
	"github.com/bobmcallan/advisor/internal/models"
)

// Feature normalization ranges. Values outside a range clamp to its edge.
const (
	ageMin     = 18.0
	ageMax     = 70.0
	incomeMin  = 30000.0
	incomeMax  = 200000.0
	savingsMin = 5000.0
	savingsMax = 100000.0
)

// Risk weights: 50% stated tolerance, 30% age factor (younger scores
// higher), 20% financial cushion.
const (
	weightTolerance = 0.5
	weightAge       = 0.3
	weightCushion   = 0.2
)

// Expected return rises linearly with risk from the risk-free base.
const (
	returnBase        = 0.03
	returnRiskPremium = 0.12
)

// Risk category thresholds on the risk score.
const (
	lowRiskCeiling    = 0.33
	mediumRiskCeiling = 0.66
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func normalizeRange(v, min, max float64) float64 {
	return clamp01((v - min) / (max - min))
}

// scoreProfile computes the deterministic risk analysis for a profile.
func scoreProfile(profile models.Profile) models.Analysis {
	normAge := normalizeRange(float64(profile.Age), ageMin, ageMax)
	normIncome := normalizeRange(profile.AnnualIncome, incomeMin, incomeMax)
	normSavings := normalizeRange(profile.Savings, savingsMin, savingsMax)

	risk := clamp01(weightTolerance*profile.RiskTolerance +
		weightAge*(1-normAge) +
		weightCushion*(normIncome+normSavings)/2)

	return models.Analysis{
		RiskScore:      risk,
		RiskCategory:   categorize(risk),
		ExpectedReturn: returnBase + risk*returnRiskPremium,
		Features: []float64{
			float64(profile.Age),
			profile.AnnualIncome,
			profile.AnnualExpenses,
			profile.Savings,
			profile.RiskTolerance,
		},
	}
}

func categorize(risk float64) string {
	switch {
	case risk < lowRiskCeiling:
		return models.RiskLow
	case risk < mediumRiskCeiling:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}
