// Command advisor-demo runs canned profiles through the advice pipeline and
// prints their summary reports to stdout. No server, storage, or market data
// is involved.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/models"
	"github.com/bobmcallan/advisor/internal/services/advisor"
	"github.com/bobmcallan/advisor/internal/services/report"
)

var demoProfiles = map[string]models.Profile{
	"young-professional": {
		Age:            28,
		AnnualIncome:   75000,
		AnnualExpenses: 45000,
		Savings:        25000,
		RiskTolerance:  0.70,
		Goals: []models.Goal{
			{Description: "House deposit", TargetAmount: 100000, TimeframeYears: 5},
		},
	},
	"mid-career": {
		Age:            45,
		AnnualIncome:   120000,
		AnnualExpenses: 80000,
		Savings:        150000,
		RiskTolerance:  0.30,
		Goals: []models.Goal{
			{Description: "University fund", TargetAmount: 80000, TimeframeYears: 8},
		},
	},
	"near-retirement": {
		Age:            62,
		AnnualIncome:   100000,
		AnnualExpenses: 70000,
		Savings:        500000,
		RiskTolerance:  0.20,
	},
}

// demoOrder runs youngest to oldest when no profile is selected.
var demoOrder = []string{"young-professional", "mid-career", "near-retirement"}

func profileNames() string {
	names := make([]string, 0, len(demoProfiles))
	for name := range demoProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	profileFlag := flag.String("profile", "", "run a single profile (default: all)")
	variantFlag := flag.String("variant", "summary", "report variant: full or summary")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		common.LoadVersionFromFile()
		fmt.Println(common.GetFullVersion())
		return
	}

	selected := demoOrder
	if *profileFlag != "" {
		if _, ok := demoProfiles[*profileFlag]; !ok {
			fmt.Fprintf(os.Stderr, "unknown profile %q (available: %s)\n", *profileFlag, profileNames())
			os.Exit(2)
		}
		selected = []string{*profileFlag}
	}

	config := common.NewDefaultConfig()
	logger := common.NewLogger("warn")

	advisorService := advisor.NewService(config, nil, logger)
	reportService := report.NewService(logger)

	ctx := context.Background()

	for i, name := range selected {
		bundle, err := advisorService.Analyze(ctx, demoProfiles[name], interfaces.AnalyzeOptions{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "analysis failed for %s: %v\n", name, err)
			os.Exit(1)
		}

		rep, err := reportService.Generate(ctx, bundle, *variantFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "report failed for %s: %v\n", name, err)
			os.Exit(1)
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("<!-- profile: %s -->\n\n", name)
		fmt.Println(rep.Markdown)
	}
}
