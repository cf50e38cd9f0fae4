package models

import "time"

// ChartType identifies one of the fixed chart renderings.
type ChartType string

const (
	ChartBalanceStructure    ChartType = "balance-structure"
	ChartAssetsVsLiabilities ChartType = "assets-vs-liabilities"
	ChartEquityTrend         ChartType = "equity-trend"
	ChartCashTrend           ChartType = "cash-trend"
	ChartLeverage            ChartType = "leverage"
	ChartLiquidity           ChartType = "liquidity"
)

// ChartTypes is the fixed set rendered on every run, in output order.
var ChartTypes = []ChartType{
	ChartBalanceStructure,
	ChartAssetsVsLiabilities,
	ChartEquityTrend,
	ChartCashTrend,
	ChartLeverage,
	ChartLiquidity,
}

// ChartArtifact is one rendered chart image.
type ChartArtifact struct {
	Type     ChartType
	Filename string
	PNG      []byte
}

// ChartSet is the collection of rendered charts for a run.
type ChartSet struct {
	Charts []ChartArtifact
}

// AnalysisReport is the assembled output of one run.
type AnalysisReport struct {
	RunID       string
	Symbol      string
	Profile     *CompanyProfile
	Snapshot    *BalanceSheetSnapshot
	RatioSets   []RatioSet // same order as Snapshot.Periods
	Charts      *ChartSet
	Commentary  string // empty when the AI call was skipped
	GeneratedAt time.Time
}
