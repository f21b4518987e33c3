package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/models"
)

const (
	chartWidth  = 900
	chartHeight = 400
	pieSize     = 400
)

// Age bands plotted by the age-risk curve, matched against the profile age
// to place the marker.
var ageRiskBands = []struct {
	Label  string
	MaxAge int
	Risk   float64
}{
	{"18-25", 25, 0.7},
	{"26-35", 35, 0.6},
	{"36-45", 45, 0.5},
	{"46-55", 55, 0.4},
	{"56-65", 65, 0.3},
	{"65+", 200, 0.2},
}

// renderAllocationPie renders the allocation as a pie of the non-zero slices.
func renderAllocationPie(bundle *models.Bundle) ([]byte, error) {
	rows := sortedAllocation(bundle)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no positive allocations to plot")
	}

	values := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %s", models.DisplayCategory(row.Category), common.FormatPct(row.Fraction)),
			Value: row.Fraction,
		})
	}

	graph := chart.PieChart{
		Title:  "Recommended Investment Allocation",
		Width:  pieSize,
		Height: pieSize,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// renderRiskReturn renders the model's risk-return surface with the
// profile's position marked on it.
func renderRiskReturn(bundle *models.Bundle) ([]byte, error) {
	const points = 100

	xValues := make([]float64, points)
	yValues := make([]float64, points)
	for i := 0; i < points; i++ {
		risk := float64(i) / float64(points-1)
		xValues[i] = risk
		yValues[i] = 3 + 12*risk
	}

	surface := chart.ContinuousSeries{
		Name: "Expected Return",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: yValues,
	}

	profilePoint := chart.ContinuousSeries{
		Name: "Your Profile",
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    8,
			DotColor:    drawing.ColorFromHex("ef4444"), // red-500
		},
		XValues: []float64{bundle.Analysis.RiskScore},
		YValues: []float64{bundle.Analysis.ExpectedReturn * 100},
	}

	marker := chart.AnnotationSeries{
		Annotations: []chart.Value2{
			{
				XValue: bundle.Analysis.RiskScore,
				YValue: bundle.Analysis.ExpectedReturn * 100,
				Label:  "Your Profile",
			},
		},
	}

	graph := chart.Chart{
		Title:  "Risk-Return Profile",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name: "Risk Score",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 1,
			},
		},
		YAxis: chart.YAxis{
			Name: "Expected Annual Return (%)",
		},
		Series: []chart.Series{
			surface,
			profilePoint,
			marker,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// renderMarketOverview renders per-symbol prices with the day's percent
// change overlaid on a secondary axis.
func renderMarketOverview(bundle *models.Bundle) ([]byte, error) {
	snapshot := bundle.Advice.MarketSnapshot
	if len(snapshot) == 0 {
		return nil, fmt.Errorf("no market snapshot to plot")
	}

	symbols := make([]string, 0, len(snapshot))
	for symbol := range snapshot {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	xValues := make([]float64, len(symbols))
	prices := make([]float64, len(symbols))
	changes := make([]float64, len(symbols))
	ticks := make([]chart.Tick, len(symbols))
	var maxPrice, minChange, maxChange float64
	for i, symbol := range symbols {
		quote := snapshot[symbol]
		xValues[i] = float64(i)
		prices[i] = quote.CurrentPrice
		changes[i] = quote.ChangePercent
		ticks[i] = chart.Tick{Value: float64(i), Label: symbol}
		if quote.CurrentPrice > maxPrice {
			maxPrice = quote.CurrentPrice
		}
		if quote.ChangePercent < minChange {
			minChange = quote.ChangePercent
		}
		if quote.ChangePercent > maxChange {
			maxChange = quote.ChangePercent
		}
	}
	if maxPrice <= 0 {
		maxPrice = 1
	}

	priceSeries := chart.ContinuousSeries{
		Name: "Price",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
			DotWidth:    6,
			DotColor:    drawing.ColorFromHex("2563eb"),
		},
		XValues: xValues,
		YValues: prices,
	}

	changeSeries := chart.ContinuousSeries{
		Name:  "Change %",
		YAxis: chart.YAxisSecondary,
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("10b981"), // emerald-500
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
			DotWidth:        4,
			DotColor:        drawing.ColorFromHex("10b981"),
		},
		XValues: xValues,
		YValues: changes,
	}

	// Explicit ranges keep single-symbol and flat snapshots renderable.
	graph := chart.Chart{
		Title:  "Market Overview",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  "Symbol",
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(symbols)-1) + 0.5},
		},
		YAxis: chart.YAxis{
			Name:  "Price",
			Range: &chart.ContinuousRange{Min: 0, Max: maxPrice * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		YAxisSecondary: chart.YAxis{
			Name:  "Change %",
			Range: &chart.ContinuousRange{Min: minChange - 1, Max: maxChange + 1},
		},
		Series: []chart.Series{
			priceSeries,
			changeSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// renderAgeRisk renders the advisory age-risk glide path with the profile's
// band marked.
func renderAgeRisk(bundle *models.Bundle) ([]byte, error) {
	xValues := make([]float64, len(ageRiskBands))
	yValues := make([]float64, len(ageRiskBands))
	for i, band := range ageRiskBands {
		xValues[i] = float64(i)
		yValues[i] = band.Risk
	}

	curve := chart.ContinuousSeries{
		Name: "Advisory Risk Level",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("8b5cf6"), // violet-500
			StrokeWidth: 2.5,
			DotWidth:    4,
			DotColor:    drawing.ColorFromHex("8b5cf6"),
		},
		XValues: xValues,
		YValues: yValues,
	}

	bandIndex := ageBandIndex(bundle.Profile.Age)
	profilePoint := chart.ContinuousSeries{
		Name: "Your Profile",
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    8,
			DotColor:    drawing.ColorFromHex("ef4444"), // red-500
		},
		XValues: []float64{float64(bandIndex)},
		YValues: []float64{bundle.Analysis.RiskScore},
	}

	graph := chart.Chart{
		Title:  "Risk Level by Age",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  "Age Band",
			Ticks: ageBandTicks(),
		},
		YAxis: chart.YAxis{
			Name: "Risk Score",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 1,
			},
		},
		Series: []chart.Series{
			curve,
			profilePoint,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// renderFinancialOverview renders the profile's money picture: income,
// expenses, savings and the derived emergency and investable buckets.
func renderFinancialOverview(bundle *models.Bundle) ([]byte, error) {
	profile := bundle.Profile

	blue := drawing.ColorFromHex("2563eb")    // blue-600
	red := drawing.ColorFromHex("ef4444")     // red-500
	emerald := drawing.ColorFromHex("10b981") // emerald-500
	amber := drawing.ColorFromHex("f59e0b")   // amber-500
	violet := drawing.ColorFromHex("8b5cf6")  // violet-500

	bars := []chart.Value{
		{Label: "Income", Value: profile.AnnualIncome, Style: chart.Style{FillColor: blue, StrokeColor: blue}},
		{Label: "Expenses", Value: profile.AnnualExpenses, Style: chart.Style{FillColor: red, StrokeColor: red}},
		{Label: "Savings", Value: profile.Savings, Style: chart.Style{FillColor: emerald, StrokeColor: emerald}},
		{Label: "Emergency Fund", Value: profile.Savings * 0.2, Style: chart.Style{FillColor: amber, StrokeColor: amber}},
		{Label: "Investable", Value: profile.InvestableAmount(), Style: chart.Style{FillColor: violet, StrokeColor: violet}},
	}

	graph := chart.BarChart{
		Title:        "Financial Overview",
		Width:        chartWidth,
		Height:       chartHeight,
		BarWidth:     80,
		UseBaseValue: true,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0fk", f/1000)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// renderGoalTimeline renders the monthly contribution each goal requires at
// the profile's expected return.
func renderGoalTimeline(bundle *models.Bundle) ([]byte, error) {
	goals := bundle.Profile.Goals
	if len(goals) == 0 {
		return nil, fmt.Errorf("no goals to plot")
	}

	blue := drawing.ColorFromHex("2563eb") // blue-600
	bars := make([]chart.Value, 0, len(goals))
	for _, goal := range goals {
		bars = append(bars, chart.Value{
			Label: truncateLabel(goal.Description, 15),
			Value: goal.MonthlyContribution(bundle.Analysis.ExpectedReturn),
			Style: chart.Style{FillColor: blue, StrokeColor: blue},
		})
	}

	graph := chart.BarChart{
		Title:        "Monthly Investment Required for Goals",
		Width:        chartWidth,
		Height:       chartHeight,
		BarWidth:     80,
		UseBaseValue: true,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// placeholderPNG builds a neutral image for charts that cannot be rendered.
// It deliberately avoids the chart pipeline so it cannot fail the same way.
func placeholderPNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
	fill := color.RGBA{R: 0xf3, G: 0xf4, B: 0xf6, A: 0xff} // gray-100
	for y := 0; y < chartHeight; y++ {
		for x := 0; x < chartWidth; x++ {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

// ageBandIndex returns the index of the age-risk band containing age.
func ageBandIndex(age int) int {
	for i, band := range ageRiskBands {
		if age <= band.MaxAge {
			return i
		}
	}
	return len(ageRiskBands) - 1
}

func ageBandTicks() []chart.Tick {
	ticks := make([]chart.Tick, 0, len(ageRiskBands))
	for i, band := range ageRiskBands {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: band.Label})
	}
	return ticks
}

func truncateLabel(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

