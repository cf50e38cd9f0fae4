// Package chart renders the fixed set of balance-sheet charts as PNG images.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rishabh931/balsheet/internal/common"
	"github.com/rishabh931/balsheet/internal/interfaces"
	"github.com/rishabh931/balsheet/internal/models"
)

const (
	chartWidth  = 900
	chartHeight = 400
)

// Series colors
var (
	colorAssets      = drawing.ColorFromHex("2563eb") // blue-600
	colorLiabilities = drawing.ColorFromHex("dc2626") // red-600
	colorEquity      = drawing.ColorFromHex("16a34a") // green-600
	colorCash        = drawing.ColorFromHex("0891b2") // cyan-600
	colorRatio       = drawing.ColorFromHex("7c3aed") // violet-600
	colorRatioAlt    = drawing.ColorFromHex("9ca3af") // gray-400
)

// Service renders the fixed chart set
type Service struct {
	logger *common.Logger
}

// NewService creates a new chart service
func NewService(logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{logger: logger}
}

// Render produces one PNG artifact per chart type, in models.ChartTypes order.
func (s *Service) Render(snapshot *models.BalanceSheetSnapshot, ratios []models.RatioSet) (*models.ChartSet, error) {
	periods := snapshot.Chronological()

	// Ratio sets arrive most recent first; flip to match the periods.
	chronoRatios := make([]models.RatioSet, len(ratios))
	for i, r := range ratios {
		chronoRatios[len(ratios)-1-i] = r
	}

	renderers := map[models.ChartType]func() ([]byte, error){
		models.ChartBalanceStructure:    func() ([]byte, error) { return RenderBalanceStructure(periods) },
		models.ChartAssetsVsLiabilities: func() ([]byte, error) { return RenderAssetsVsLiabilities(periods) },
		models.ChartEquityTrend:         func() ([]byte, error) { return RenderEquityTrend(periods) },
		models.ChartCashTrend:           func() ([]byte, error) { return RenderCashTrend(periods) },
		models.ChartLeverage:            func() ([]byte, error) { return RenderLeverage(chronoRatios) },
		models.ChartLiquidity:           func() ([]byte, error) { return RenderLiquidity(chronoRatios) },
	}

	set := &models.ChartSet{Charts: make([]models.ChartArtifact, 0, len(models.ChartTypes))}
	for _, ct := range models.ChartTypes {
		png, err := renderers[ct]()
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", ct, err)
		}
		s.logger.Debug().Str("chart", string(ct)).Int("bytes", len(png)).Msg("Chart rendered")
		set.Charts = append(set.Charts, models.ChartArtifact{
			Type:     ct,
			Filename: fmt.Sprintf("%s.png", ct),
			PNG:      png,
		})
	}

	return set, nil
}

// amountFormatter renders balance-sheet amounts in billions.
func amountFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.1fB", f/1e9)
	}
	return ""
}

// ratioFormatter renders dimensionless ratio values.
func ratioFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return ""
}

// renderTimeSeries renders a line chart with the shared axis treatment.
func renderTimeSeries(title string, yFormatter chart.ValueFormatter, series ...chart.Series) ([]byte, error) {
	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: yFormatter,
		},
		Series: series,
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

// lineSeries builds one solid time series.
func lineSeries(name string, color drawing.Color, xs []time.Time, ys []float64) chart.TimeSeries {
	return chart.TimeSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2.5,
		},
		XValues: xs,
		YValues: ys,
	}
}

// RenderBalanceStructure renders a stacked bar per period showing the split
// of financing between liabilities and equity. Negative values are clamped
// to zero (stacked bars render proportions).
func RenderBalanceStructure(periods []models.BalanceSheetPeriod) ([]byte, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("need at least 1 period, got 0")
	}

	bars := make([]chart.StackedBar, 0, len(periods))
	for _, p := range periods {
		liabilities := p.TotalLiabilities
		equity := p.TotalStockholdersEquity
		if liabilities < 0 {
			liabilities = 0
		}
		if equity < 0 {
			equity = 0
		}
		if liabilities == 0 && equity == 0 {
			continue
		}
		bars = append(bars, chart.StackedBar{
			Name: p.Date.Format("2006"),
			Values: []chart.Value{
				{
					Label: "Liabilities",
					Value: liabilities,
					Style: chart.Style{FillColor: colorLiabilities, StrokeColor: colorLiabilities},
				},
				{
					Label: "Equity",
					Value: equity,
					Style: chart.Style{FillColor: colorEquity, StrokeColor: colorEquity},
				},
			},
		})
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("no periods with reported liabilities or equity")
	}

	graph := chart.StackedBarChart{
		Title:  "Financing Structure: Liabilities vs Equity",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.Style{},
		YAxis: chart.Style{},
		Bars:  bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderAssetsVsLiabilities renders total assets against total liabilities.
func RenderAssetsVsLiabilities(periods []models.BalanceSheetPeriod) ([]byte, error) {
	if len(periods) < 2 {
		return nil, fmt.Errorf("need at least 2 periods, got %d", len(periods))
	}

	xs := make([]time.Time, len(periods))
	assets := make([]float64, len(periods))
	liabilities := make([]float64, len(periods))
	for i, p := range periods {
		xs[i] = p.Date
		assets[i] = p.TotalAssets
		liabilities[i] = p.TotalLiabilities
	}

	return renderTimeSeries("Total Assets vs Total Liabilities", amountFormatter,
		lineSeries("Total Assets", colorAssets, xs, assets),
		lineSeries("Total Liabilities", colorLiabilities, xs, liabilities),
	)
}

// RenderEquityTrend renders stockholders' equity over the reported periods.
func RenderEquityTrend(periods []models.BalanceSheetPeriod) ([]byte, error) {
	if len(periods) < 2 {
		return nil, fmt.Errorf("need at least 2 periods, got %d", len(periods))
	}

	xs := make([]time.Time, len(periods))
	ys := make([]float64, len(periods))
	for i, p := range periods {
		xs[i] = p.Date
		ys[i] = p.TotalStockholdersEquity
	}

	return renderTimeSeries("Stockholders' Equity", amountFormatter,
		lineSeries("Equity", colorEquity, xs, ys),
	)
}

// RenderCashTrend renders cash and cash equivalents over the reported periods.
func RenderCashTrend(periods []models.BalanceSheetPeriod) ([]byte, error) {
	if len(periods) < 2 {
		return nil, fmt.Errorf("need at least 2 periods, got %d", len(periods))
	}

	xs := make([]time.Time, len(periods))
	ys := make([]float64, len(periods))
	for i, p := range periods {
		xs[i] = p.Date
		ys[i] = p.CashAndCashEquivalents
	}

	return renderTimeSeries("Cash & Cash Equivalents", amountFormatter,
		lineSeries("Cash", colorCash, xs, ys),
	)
}

// ratioPoints extracts the available values of one ratio across periods.
func ratioPoints(sets []models.RatioSet, name string) ([]time.Time, []float64) {
	var xs []time.Time
	var ys []float64
	for _, set := range sets {
		r := set.Get(name)
		if !r.Available {
			continue
		}
		xs = append(xs, set.Date)
		ys = append(ys, r.Value)
	}
	return xs, ys
}

// renderUnavailable renders a placeholder artifact for a ratio chart whose
// line items were not reported. The run still produces the full chart set;
// the placeholder carries a flat zero series whose legend states the gap.
func renderUnavailable(title, label string, sets []models.RatioSet) ([]byte, error) {
	xs := make([]time.Time, len(sets))
	ys := make([]float64, len(sets))
	for i, set := range sets {
		xs[i] = set.Date
	}

	placeholder := chart.TimeSeries{
		Name: label + " (no reported data)",
		Style: chart.Style{
			StrokeColor:     colorRatioAlt,
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xs,
		YValues: ys,
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			// Flat series needs an explicit range
			Range:          &chart.ContinuousRange{Min: 0, Max: 1},
			ValueFormatter: ratioFormatter,
		},
		Series: []chart.Series{placeholder},
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

// RenderLeverage renders the debt-to-equity trend. Periods where the ratio
// is unavailable are skipped; if the ratio is unavailable across the whole
// snapshot the artifact degrades to a placeholder rather than failing the run.
func RenderLeverage(sets []models.RatioSet) ([]byte, error) {
	if len(sets) < 2 {
		return nil, fmt.Errorf("need at least 2 periods, got %d", len(sets))
	}

	xs, ys := ratioPoints(sets, models.RatioDebtToEquity)
	if len(xs) < 2 {
		return renderUnavailable("Debt-to-Equity", "Debt/Equity", sets)
	}

	return renderTimeSeries("Debt-to-Equity", ratioFormatter,
		lineSeries("Debt/Equity", colorRatio, xs, ys),
	)
}

// RenderLiquidity renders the current and quick ratio trends. Periods where
// a ratio is unavailable are skipped per series; when neither series has
// enough points the artifact degrades to a placeholder.
func RenderLiquidity(sets []models.RatioSet) ([]byte, error) {
	if len(sets) < 2 {
		return nil, fmt.Errorf("need at least 2 periods, got %d", len(sets))
	}

	var series []chart.Series

	if currentX, currentY := ratioPoints(sets, models.RatioCurrentRatio); len(currentX) >= 2 {
		series = append(series, lineSeries("Current Ratio", colorRatio, currentX, currentY))
	}

	if quickX, quickY := ratioPoints(sets, models.RatioQuickRatio); len(quickX) >= 2 {
		quick := lineSeries("Quick Ratio", colorRatioAlt, quickX, quickY)
		quick.Style.StrokeDashArray = []float64{5.0, 3.0}
		quick.Style.StrokeWidth = 1.5
		series = append(series, quick)
	}

	if len(series) == 0 {
		return renderUnavailable("Liquidity Ratios", "Current Ratio", sets)
	}

	return renderTimeSeries("Liquidity Ratios", ratioFormatter, series...)
}

// Ensure Service implements ChartRenderer
var _ interfaces.ChartRenderer = (*Service)(nil)
