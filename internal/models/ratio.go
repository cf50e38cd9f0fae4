package models

import (
	"fmt"
	"time"
)

// Ratio names computed for every period. WorkingCapital is an absolute
// amount rather than a quotient but travels with the set.
const (
	RatioCurrentRatio     = "current_ratio"
	RatioQuickRatio       = "quick_ratio"
	RatioCashRatio        = "cash_ratio"
	RatioDebtToEquity     = "debt_to_equity"
	RatioDebtToAssets     = "debt_to_assets"
	RatioEquityMultiplier = "equity_multiplier"
	RatioWorkingCapital   = "working_capital"
)

// RatioOrder is the display order for ratio tables and prompts.
var RatioOrder = []string{
	RatioCurrentRatio,
	RatioQuickRatio,
	RatioCashRatio,
	RatioDebtToEquity,
	RatioDebtToAssets,
	RatioEquityMultiplier,
	RatioWorkingCapital,
}

// Ratio is a single computed ratio. Available is false when a required
// line item was missing or a denominator was zero.
type Ratio struct {
	Name      string
	Value     float64
	Available bool
}

// Format renders the ratio for reports: "n/a" when unavailable.
func (r Ratio) Format() string {
	if !r.Available {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", r.Value)
}

// RatioSet holds the ratios derived from one balance-sheet period.
type RatioSet struct {
	Date   time.Time
	Ratios map[string]Ratio
}

// Get returns the named ratio; a missing entry is an unavailable ratio.
func (s *RatioSet) Get(name string) Ratio {
	if r, ok := s.Ratios[name]; ok {
		return r
	}
	return Ratio{Name: name}
}
