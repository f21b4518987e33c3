package advisor

import (
	"math"
	"testing"

	"github.com/bobmcallan/advisor/internal/models"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestScoreProfile_WeightedFormula(t *testing.T) {
	// normAge = (30-18)/52, normIncome = (80000-30000)/170000,
	// normSavings = (20000-5000)/95000
	profile := models.Profile{
		Age:            30,
		AnnualIncome:   80000,
		AnnualExpenses: 40000,
		Savings:        20000,
		RiskTolerance:  0.6,
	}

	normAge := (30.0 - 18.0) / 52.0
	normIncome := 50000.0 / 170000.0
	normSavings := 15000.0 / 95000.0
	want := 0.5*0.6 + 0.3*(1-normAge) + 0.2*(normIncome+normSavings)/2

	analysis := scoreProfile(profile)
	if !almostEqual(analysis.RiskScore, want, 1e-9) {
		t.Errorf("RiskScore = %v, want %v", analysis.RiskScore, want)
	}
	if !almostEqual(analysis.ExpectedReturn, 0.03+0.12*want, 1e-9) {
		t.Errorf("ExpectedReturn = %v, want %v", analysis.ExpectedReturn, 0.03+0.12*want)
	}
}

func TestScoreProfile_FeaturesEchoInputs(t *testing.T) {
	profile := models.Profile{
		Age:            45,
		AnnualIncome:   120000,
		AnnualExpenses: 80000,
		Savings:        150000,
		RiskTolerance:  0.3,
	}

	analysis := scoreProfile(profile)
	want := []float64{45, 120000, 80000, 150000, 0.3}
	if len(analysis.Features) != len(want) {
		t.Fatalf("Features has %d entries, want %d", len(analysis.Features), len(want))
	}
	for i, v := range want {
		if analysis.Features[i] != v {
			t.Errorf("Features[%d] = %v, want %v", i, analysis.Features[i], v)
		}
	}
}

func TestScoreProfile_ScoreAlwaysInRange(t *testing.T) {
	profiles := []models.Profile{
		{Age: 18, AnnualIncome: 0, AnnualExpenses: 0, Savings: 0, RiskTolerance: 0},
		{Age: 18, AnnualIncome: 500000, AnnualExpenses: 0, Savings: 1000000, RiskTolerance: 1},
		{Age: 100, AnnualIncome: 0, AnnualExpenses: 0, Savings: 0, RiskTolerance: 1},
		{Age: 70, AnnualIncome: 200000, AnnualExpenses: 150000, Savings: 100000, RiskTolerance: 0.5},
	}

	for _, p := range profiles {
		analysis := scoreProfile(p)
		if analysis.RiskScore < 0 || analysis.RiskScore > 1 {
			t.Errorf("RiskScore %v out of [0,1] for profile %+v", analysis.RiskScore, p)
		}
		if analysis.ExpectedReturn < 0.03-1e-9 || analysis.ExpectedReturn > 0.15+1e-9 {
			t.Errorf("ExpectedReturn %v out of [0.03,0.15] for profile %+v", analysis.ExpectedReturn, p)
		}
	}
}

func TestScoreProfile_NormalizationClamps(t *testing.T) {
	// Extreme values clamp to the normalization edges: a 100-year-old with
	// income and savings far above the ranges scores the same as one at
	// the range maxima.
	extreme := scoreProfile(models.Profile{
		Age: 100, AnnualIncome: 10000000, Savings: 10000000, RiskTolerance: 0.5,
	})
	atEdge := scoreProfile(models.Profile{
		Age: 70, AnnualIncome: 200000, Savings: 100000, RiskTolerance: 0.5,
	})
	if !almostEqual(extreme.RiskScore, atEdge.RiskScore, 1e-9) {
		t.Errorf("clamped score %v != edge score %v", extreme.RiskScore, atEdge.RiskScore)
	}
}

func TestCategorize_Thresholds(t *testing.T) {
	tests := []struct {
		risk float64
		want string
	}{
		{0.0, models.RiskLow},
		{0.32999, models.RiskLow},
		{0.33, models.RiskMedium},
		{0.5, models.RiskMedium},
		{0.65999, models.RiskMedium},
		{0.66, models.RiskHigh},
		{1.0, models.RiskHigh},
	}
	for _, tt := range tests {
		if got := categorize(tt.risk); got != tt.want {
			t.Errorf("categorize(%v) = %q, want %q", tt.risk, got, tt.want)
		}
	}
}

func TestYoungerScoresHigher(t *testing.T) {
	young := scoreProfile(models.Profile{Age: 25, AnnualIncome: 80000, Savings: 30000, RiskTolerance: 0.5})
	old := scoreProfile(models.Profile{Age: 65, AnnualIncome: 80000, Savings: 30000, RiskTolerance: 0.5})

	if young.RiskScore <= old.RiskScore {
		t.Errorf("younger profile should score higher: young=%v old=%v", young.RiskScore, old.RiskScore)
	}
}
