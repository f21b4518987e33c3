package models

import (
	"testing"
)

func TestDescribeCategory(t *testing.T) {
	if got := DescribeCategory(CategoryStocks); got != "Individual company shares with higher volatility" {
		t.Errorf("DescribeCategory(stocks) = %q", got)
	}
	if got := DescribeCategory("commodities"); got != DefaultCategoryDescription {
		t.Errorf("DescribeCategory(commodities) = %q, want default", got)
	}
	if got := DescribeCategory("unknown"); got != DefaultCategoryDescription {
		t.Errorf("DescribeCategory(unknown) = %q, want default", got)
	}
}

func TestNewCatalog(t *testing.T) {
	c := NewCatalog()

	if len(c.Categories) != 8 {
		t.Errorf("Categories = %d entries, want 8", len(c.Categories))
	}
	for _, cat := range c.Categories {
		if c.Descriptions[cat] == "" {
			t.Errorf("category %q missing description", cat)
		}
	}
	if len(c.Bounds) != 3 {
		t.Errorf("Bounds = %d bands, want 3", len(c.Bounds))
	}
	if b, ok := c.Bounds["medium_risk"]["corporate_bonds"]; !ok || b.Max != 0.3 {
		t.Errorf("medium_risk corporate_bonds bound = %+v, ok=%v", b, ok)
	}
	if len(c.RiskLabels) != 3 || c.RiskLabels["moderate"] != 0.5 {
		t.Errorf("RiskLabels = %v", c.RiskLabels)
	}
	if len(c.AgeBands) != 4 {
		t.Fatalf("AgeBands = %d entries, want 4", len(c.AgeBands))
	}
	if c.AgeBands[0].Name != "young" || c.AgeBands[0].RiskMultiplier != 1.2 {
		t.Errorf("first age band = %+v", c.AgeBands[0])
	}
}

func TestAllocation_Sum(t *testing.T) {
	a := Allocation{"stocks": 0.25, "etfs": 0.25, "mutual_funds": 0.5}
	if got := a.Sum(); got != 1.0 {
		t.Errorf("Sum() = %v, want 1.0", got)
	}
	if got := (Allocation{}).Sum(); got != 0 {
		t.Errorf("empty Sum() = %v, want 0", got)
	}
}
