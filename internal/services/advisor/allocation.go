package advisor

import (
	"fmt"
	"math"

	"github.com/bobmcallan/advisor/internal/models"
)

// Age tilt boundaries and limits. Younger investors lean into growth,
// older investors into preservation.
const (
	youngAgeLimit = 35
	oldAgeLimit   = 60

	youngStocksBoost = 0.10
	youngStocksCap   = 0.40
	youngCryptoBoost = 0.05
	youngCryptoCap   = 0.15

	oldFixedDepositsBoost = 0.20
	oldFixedDepositsCap   = 0.60
	oldBondsBoost         = 0.10
	oldBondsCap           = 0.40
	oldStocksCut          = 0.10
)

// baseAllocation returns the starting table for a risk category. The key
// sets differ deliberately: the low table carries zeroed growth slots but
// no ETF slot at all.
func baseAllocation(riskCategory string) models.Allocation {
	switch riskCategory {
	case models.RiskLow:
		return models.Allocation{
			models.CategoryFixedDeposits:    0.4,
			models.CategoryGovernmentBonds:  0.3,
			models.CategoryMoneyMarketFunds: 0.2,
			models.CategoryMutualFunds:      0.1,
			models.CategoryStocks:           0.0,
			models.CategoryCrypto:           0.0,
		}
	case models.RiskMedium:
		return models.Allocation{
			models.CategoryFixedDeposits:    0.2,
			models.CategoryGovernmentBonds:  0.2,
			models.CategoryMoneyMarketFunds: 0.1,
			models.CategoryMutualFunds:      0.3,
			models.CategoryETFs:             0.15,
			models.CategoryStocks:           0.05,
			models.CategoryCrypto:           0.0,
		}
	default:
		return models.Allocation{
			models.CategoryFixedDeposits:    0.1,
			models.CategoryGovernmentBonds:  0.1,
			models.CategoryMoneyMarketFunds: 0.05,
			models.CategoryMutualFunds:      0.25,
			models.CategoryETFs:             0.2,
			models.CategoryStocks:           0.25,
			models.CategoryCrypto:           0.05,
		}
	}
}

// applyAgeTilt shifts the allocation toward growth for investors under 35
// and toward preservation for investors over 60. Ages 35 to 60 pass
// through unchanged.
func applyAgeTilt(allocation models.Allocation, age int) {
	if age < youngAgeLimit {
		allocation[models.CategoryStocks] = math.Min(
			allocation[models.CategoryStocks]+youngStocksBoost, youngStocksCap)
		allocation[models.CategoryCrypto] = math.Min(
			allocation[models.CategoryCrypto]+youngCryptoBoost, youngCryptoCap)
	} else if age > oldAgeLimit {
		allocation[models.CategoryFixedDeposits] = math.Min(
			allocation[models.CategoryFixedDeposits]+oldFixedDepositsBoost, oldFixedDepositsCap)
		allocation[models.CategoryGovernmentBonds] = math.Min(
			allocation[models.CategoryGovernmentBonds]+oldBondsBoost, oldBondsCap)
		allocation[models.CategoryStocks] = math.Max(
			allocation[models.CategoryStocks]-oldStocksCut, 0.0)
	}
}

// normalizeAllocation scales fractions to sum to 1. An all-zero table is
// left untouched rather than divided by zero.
func normalizeAllocation(allocation models.Allocation) {
	total := allocation.Sum()
	if total == 0 {
		return
	}
	for category, fraction := range allocation {
		allocation[category] = fraction / total
	}
}

// allocateProfile builds the final allocation for a scored profile.
func allocateProfile(profile models.Profile, analysis models.Analysis) models.Allocation {
	allocation := baseAllocation(analysis.RiskCategory)
	applyAgeTilt(allocation, profile.Age)
	normalizeAllocation(allocation)
	return allocation
}

// checkBounds reports categories falling outside the published advisory
// bounds for the risk band. Violations are informational; the pipeline
// never rejects an allocation over them.
func checkBounds(allocation models.Allocation, riskCategory string) []string {
	bounds, ok := models.AllocationBounds[riskCategory+"_risk"]
	if !ok {
		return nil
	}

	var violations []string
	for category, bound := range bounds {
		fraction, ok := allocation[category]
		if !ok {
			continue
		}
		if fraction < bound.Min {
			violations = append(violations,
				fmt.Sprintf("%s %.3f below advisory min %.2f", category, fraction, bound.Min))
		} else if fraction > bound.Max {
			violations = append(violations,
				fmt.Sprintf("%s %.3f above advisory max %.2f", category, fraction, bound.Max))
		}
	}
	return violations
}
