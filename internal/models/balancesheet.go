// Package models defines the data structures used across Balsheet
package models

import "time"

// CompanyProfile holds the company-level metadata returned by the data provider.
type CompanyProfile struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Sector      string  `json:"sector"`
	Industry    string  `json:"industry"`
	Exchange    string  `json:"exchangeShortName"`
	Currency    string  `json:"currency"`
	MarketCap   float64 `json:"mktCap"`
}

// BalanceSheetPeriod holds the balance-sheet line items for one reporting period.
// Field names follow the provider's statement schema; a zero value means the
// line item was not reported for the period.
type BalanceSheetPeriod struct {
	Date                    time.Time
	Period                  string // "FY", "Q1".."Q4"
	Currency                string
	CashAndCashEquivalents  float64
	NetReceivables          float64
	Inventory               float64
	TotalCurrentAssets      float64
	TotalNonCurrentAssets   float64
	TotalAssets             float64
	ShortTermDebt           float64
	TotalCurrentLiabilities float64
	LongTermDebt            float64
	TotalLiabilities        float64
	TotalDebt               float64
	RetainedEarnings        float64
	TotalStockholdersEquity float64
}

// BalanceSheetSnapshot is the immutable result of one fetch: the reported
// periods for a symbol, ordered most recent first.
type BalanceSheetSnapshot struct {
	Symbol  string
	Periods []BalanceSheetPeriod
}

// Latest returns the most recent reporting period, or nil if the snapshot is empty.
func (s *BalanceSheetSnapshot) Latest() *BalanceSheetPeriod {
	if len(s.Periods) == 0 {
		return nil
	}
	return &s.Periods[0]
}

// Chronological returns the periods ordered oldest first, for trend charts.
func (s *BalanceSheetSnapshot) Chronological() []BalanceSheetPeriod {
	out := make([]BalanceSheetPeriod, len(s.Periods))
	for i, p := range s.Periods {
		out[len(s.Periods)-1-i] = p
	}
	return out
}
