package advisor

import (
	"testing"

	"github.com/bobmcallan/advisor/internal/models"
)

func TestBaseAllocation_LowHasNoETFSlot(t *testing.T) {
	allocation := baseAllocation(models.RiskLow)

	if _, ok := allocation[models.CategoryETFs]; ok {
		t.Error("low risk table should not carry an etfs slot")
	}
	if allocation[models.CategoryStocks] != 0 {
		t.Errorf("stocks = %v, want 0", allocation[models.CategoryStocks])
	}
	if allocation[models.CategoryCrypto] != 0 {
		t.Errorf("crypto = %v, want 0", allocation[models.CategoryCrypto])
	}
	if allocation[models.CategoryFixedDeposits] != 0.4 {
		t.Errorf("fixed_deposits = %v, want 0.4", allocation[models.CategoryFixedDeposits])
	}
}

func TestBaseAllocation_TablesSumToOne(t *testing.T) {
	for _, category := range []string{models.RiskLow, models.RiskMedium, models.RiskHigh} {
		allocation := baseAllocation(category)
		if sum := allocation.Sum(); !almostEqual(sum, 1.0, 1e-9) {
			t.Errorf("%s table sums to %v, want 1.0", category, sum)
		}
	}
}

func TestBaseAllocation_UnknownFallsBackToHigh(t *testing.T) {
	unknown := baseAllocation("extreme")

	if unknown[models.CategoryStocks] != 0.25 {
		t.Errorf("stocks = %v, want high-table 0.25", unknown[models.CategoryStocks])
	}
	if unknown[models.CategoryCrypto] != 0.05 {
		t.Errorf("crypto = %v, want high-table 0.05", unknown[models.CategoryCrypto])
	}
}

func TestAllocateProfile_YoungGrowthTilt(t *testing.T) {
	// Low risk at age 30: stocks and crypto are boosted from zero, then
	// the whole map renormalizes over total 1.15.
	profile := models.Profile{Age: 30}
	analysis := models.Analysis{RiskCategory: models.RiskLow}

	allocation := allocateProfile(profile, analysis)

	if !almostEqual(allocation.Sum(), 1.0, 1e-9) {
		t.Errorf("sum = %v, want 1.0", allocation.Sum())
	}
	if !almostEqual(allocation[models.CategoryStocks], 0.10/1.15, 1e-9) {
		t.Errorf("stocks = %v, want %v", allocation[models.CategoryStocks], 0.10/1.15)
	}
	if !almostEqual(allocation[models.CategoryCrypto], 0.05/1.15, 1e-9) {
		t.Errorf("crypto = %v, want %v", allocation[models.CategoryCrypto], 0.05/1.15)
	}
	if !almostEqual(allocation[models.CategoryFixedDeposits], 0.40/1.15, 1e-9) {
		t.Errorf("fixed_deposits = %v, want %v", allocation[models.CategoryFixedDeposits], 0.40/1.15)
	}
}

func TestAllocateProfile_YoungTiltCaps(t *testing.T) {
	// High risk at age 30: stocks 0.25+0.10 and crypto 0.05+0.05 stay
	// under their caps, so the boost lands in full.
	profile := models.Profile{Age: 30}
	analysis := models.Analysis{RiskCategory: models.RiskHigh}

	allocation := allocateProfile(profile, analysis)

	if !almostEqual(allocation[models.CategoryStocks], 0.35/1.15, 1e-9) {
		t.Errorf("stocks = %v, want %v", allocation[models.CategoryStocks], 0.35/1.15)
	}
	if !almostEqual(allocation[models.CategoryCrypto], 0.10/1.15, 1e-9) {
		t.Errorf("crypto = %v, want %v", allocation[models.CategoryCrypto], 0.10/1.15)
	}
	if allocation[models.CategoryStocks] > 0.40 {
		t.Errorf("stocks %v breached the 0.40 cap", allocation[models.CategoryStocks])
	}
	if allocation[models.CategoryCrypto] > 0.15 {
		t.Errorf("crypto %v breached the 0.15 cap", allocation[models.CategoryCrypto])
	}
}

func TestAllocateProfile_OlderDefensiveTilt(t *testing.T) {
	// Low risk at age 65: fixed deposits cap at 0.60, bonds at 0.40,
	// stocks floor at zero. Total before normalization is 1.30.
	profile := models.Profile{Age: 65}
	analysis := models.Analysis{RiskCategory: models.RiskLow}

	allocation := allocateProfile(profile, analysis)

	if !almostEqual(allocation.Sum(), 1.0, 1e-9) {
		t.Errorf("sum = %v, want 1.0", allocation.Sum())
	}
	if !almostEqual(allocation[models.CategoryFixedDeposits], 0.60/1.30, 1e-9) {
		t.Errorf("fixed_deposits = %v, want %v", allocation[models.CategoryFixedDeposits], 0.60/1.30)
	}
	if !almostEqual(allocation[models.CategoryGovernmentBonds], 0.40/1.30, 1e-9) {
		t.Errorf("government_bonds = %v, want %v", allocation[models.CategoryGovernmentBonds], 0.40/1.30)
	}
	if allocation[models.CategoryStocks] != 0 {
		t.Errorf("stocks = %v, want 0", allocation[models.CategoryStocks])
	}
}

func TestAllocateProfile_OlderTiltFloorsStocks(t *testing.T) {
	// Medium risk at age 65: stocks 0.05-0.10 floors at zero rather
	// than going negative.
	profile := models.Profile{Age: 65}
	analysis := models.Analysis{RiskCategory: models.RiskMedium}

	allocation := allocateProfile(profile, analysis)

	if allocation[models.CategoryStocks] != 0 {
		t.Errorf("stocks = %v, want 0", allocation[models.CategoryStocks])
	}
	if !almostEqual(allocation.Sum(), 1.0, 1e-9) {
		t.Errorf("sum = %v, want 1.0", allocation.Sum())
	}
}

func TestAllocateProfile_BoundaryAgesGetNoTilt(t *testing.T) {
	// Ages 35 and 60 sit outside both tilt windows.
	for _, age := range []int{35, 60} {
		profile := models.Profile{Age: age}
		analysis := models.Analysis{RiskCategory: models.RiskMedium}

		allocation := allocateProfile(profile, analysis)
		base := baseAllocation(models.RiskMedium)

		for category, fraction := range base {
			if !almostEqual(allocation[category], fraction, 1e-9) {
				t.Errorf("age %d: %s = %v, want untouched %v", age, category, allocation[category], fraction)
			}
		}
	}
}

func TestAllocateProfile_TiltEdgeAges(t *testing.T) {
	// 34 is the last age that gets the growth tilt, 61 the first that
	// gets the defensive one.
	young := allocateProfile(models.Profile{Age: 34}, models.Analysis{RiskCategory: models.RiskHigh})
	if !almostEqual(young[models.CategoryStocks], 0.35/1.15, 1e-9) {
		t.Errorf("age 34 stocks = %v, want %v", young[models.CategoryStocks], 0.35/1.15)
	}
	if young[models.CategoryStocks] > 0.40 || young[models.CategoryCrypto] > 0.15 {
		t.Errorf("age 34 breached growth caps: stocks %v, crypto %v",
			young[models.CategoryStocks], young[models.CategoryCrypto])
	}

	old := allocateProfile(models.Profile{Age: 61}, models.Analysis{RiskCategory: models.RiskLow})
	if !almostEqual(old[models.CategoryFixedDeposits], 0.60/1.30, 1e-9) {
		t.Errorf("age 61 fixed_deposits = %v, want %v", old[models.CategoryFixedDeposits], 0.60/1.30)
	}
	if old[models.CategoryFixedDeposits] > 0.60 {
		t.Errorf("age 61 fixed_deposits %v breached the 0.60 cap", old[models.CategoryFixedDeposits])
	}
	if old[models.CategoryStocks] < 0 {
		t.Errorf("age 61 stocks went negative: %v", old[models.CategoryStocks])
	}
}

func TestAllocateProfile_AlwaysSumsToOne(t *testing.T) {
	for _, category := range []string{models.RiskLow, models.RiskMedium, models.RiskHigh} {
		for _, age := range []int{18, 25, 34, 35, 45, 60, 61, 80, 100} {
			profile := models.Profile{Age: age}
			analysis := models.Analysis{RiskCategory: category}

			allocation := allocateProfile(profile, analysis)
			if sum := allocation.Sum(); !almostEqual(sum, 1.0, 1e-9) {
				t.Errorf("%s age %d: sum = %v, want 1.0", category, age, sum)
			}
			for slot, fraction := range allocation {
				if fraction < 0 {
					t.Errorf("%s age %d: %s went negative (%v)", category, age, slot, fraction)
				}
			}
		}
	}
}

func TestNormalizeAllocation_ZeroTotalLeftUntouched(t *testing.T) {
	allocation := models.Allocation{
		models.CategoryStocks: 0,
		models.CategoryCrypto: 0,
	}
	normalizeAllocation(allocation)

	if allocation[models.CategoryStocks] != 0 || allocation[models.CategoryCrypto] != 0 {
		t.Errorf("zero-total map was rescaled: %v", allocation)
	}
}

func TestCheckBounds(t *testing.T) {
	// An allocation holding fixed deposits below the published low-risk
	// floor produces an advisory violation, nothing more.
	allocation := models.Allocation{
		models.CategoryFixedDeposits:   0.05,
		models.CategoryGovernmentBonds: 0.2,
	}

	violations := checkBounds(allocation, models.RiskLow)
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1: %v", len(violations), violations)
	}
	want := "fixed_deposits 0.050 below advisory min 0.10"
	if violations[0] != want {
		t.Errorf("violation = %q, want %q", violations[0], want)
	}
}

func TestCheckBounds_CleanAllocation(t *testing.T) {
	profile := models.Profile{Age: 45}
	analysis := models.Analysis{RiskCategory: models.RiskMedium}
	allocation := allocateProfile(profile, analysis)

	if violations := checkBounds(allocation, models.RiskMedium); len(violations) != 0 {
		t.Errorf("unexpected violations: %v", violations)
	}
}

func TestCheckBounds_UnknownCategory(t *testing.T) {
	allocation := models.Allocation{models.CategoryStocks: 0.5}
	if violations := checkBounds(allocation, "extreme"); violations != nil {
		t.Errorf("unknown band should yield nil, got %v", violations)
	}
}
