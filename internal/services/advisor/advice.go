package advisor

import (
	"fmt"

	"github.com/bobmcallan/advisor/internal/models"
)

// recommendationsFor returns the two curated recommendations for a risk
// category.
func recommendationsFor(riskCategory string) []string {
	switch riskCategory {
	case models.RiskLow:
		return []string{
			"Focus on capital preservation with fixed deposits and government bonds.",
			"Consider a small allocation to mutual funds for growth.",
		}
	case models.RiskMedium:
		return []string{
			"Balance between growth and stability with mutual funds and ETFs.",
			"Include some individual stocks for potential higher returns.",
		}
	default:
		return []string{
			"Embrace growth opportunities with higher stock allocation.",
			"Consider crypto for diversification, but limit exposure.",
		}
	}
}

// composeAdvice builds the advice for a scored, allocated profile. The
// snapshot may be nil; advice is complete without it.
func composeAdvice(profile models.Profile, analysis models.Analysis, allocation models.Allocation, snapshot map[string]models.Quote) models.Advice {
	investable := profile.InvestableAmount()

	advice := models.Advice{
		Summary: fmt.Sprintf(
			"Based on your profile, you have a %s risk tolerance with an expected annual return of %.1f%%.",
			analysis.RiskCategory, analysis.ExpectedReturn*100),
		Recommendations: recommendationsFor(analysis.RiskCategory),
		Breakdown:       make(map[string]models.BreakdownItem),
		MarketSnapshot:  snapshot,
	}

	for category, fraction := range allocation {
		if fraction <= 0 {
			continue
		}
		advice.Breakdown[category] = models.BreakdownItem{
			Percentage:  fraction * 100,
			Amount:      investable * fraction,
			Description: models.DescribeCategory(category),
		}
	}

	return advice
}
