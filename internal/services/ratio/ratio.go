// Package ratio derives liquidity and leverage ratios from balance-sheet
// line items. All functions are pure; a zero or missing denominator yields
// an unavailable ratio, never an error.
package ratio

import (
	"github.com/rishabh931/balsheet/internal/models"
)

// safeDiv divides, reporting availability. A zero denominator is treated as
// a missing line item (the provider reports unavailable items as 0).
func safeDiv(num, den float64) models.Ratio {
	if den == 0 {
		return models.Ratio{}
	}
	return models.Ratio{Value: num / den, Available: true}
}

// CurrentRatio = current assets / current liabilities
func CurrentRatio(p *models.BalanceSheetPeriod) models.Ratio {
	r := safeDiv(p.TotalCurrentAssets, p.TotalCurrentLiabilities)
	r.Name = models.RatioCurrentRatio
	return r
}

// QuickRatio = (current assets - inventory) / current liabilities.
// Unavailable when current assets are missing, even if liabilities are not.
func QuickRatio(p *models.BalanceSheetPeriod) models.Ratio {
	if p.TotalCurrentAssets == 0 {
		return models.Ratio{Name: models.RatioQuickRatio}
	}
	r := safeDiv(p.TotalCurrentAssets-p.Inventory, p.TotalCurrentLiabilities)
	r.Name = models.RatioQuickRatio
	return r
}

// CashRatio = cash and equivalents / current liabilities
func CashRatio(p *models.BalanceSheetPeriod) models.Ratio {
	r := safeDiv(p.CashAndCashEquivalents, p.TotalCurrentLiabilities)
	r.Name = models.RatioCashRatio
	return r
}

// DebtToEquity = total liabilities / stockholders' equity
func DebtToEquity(p *models.BalanceSheetPeriod) models.Ratio {
	r := safeDiv(p.TotalLiabilities, p.TotalStockholdersEquity)
	r.Name = models.RatioDebtToEquity
	return r
}

// DebtToAssets = total liabilities / total assets
func DebtToAssets(p *models.BalanceSheetPeriod) models.Ratio {
	r := safeDiv(p.TotalLiabilities, p.TotalAssets)
	r.Name = models.RatioDebtToAssets
	return r
}

// EquityMultiplier = total assets / stockholders' equity
func EquityMultiplier(p *models.BalanceSheetPeriod) models.Ratio {
	r := safeDiv(p.TotalAssets, p.TotalStockholdersEquity)
	r.Name = models.RatioEquityMultiplier
	return r
}

// WorkingCapital = current assets - current liabilities. Unavailable when
// both inputs are missing.
func WorkingCapital(p *models.BalanceSheetPeriod) models.Ratio {
	if p.TotalCurrentAssets == 0 && p.TotalCurrentLiabilities == 0 {
		return models.Ratio{Name: models.RatioWorkingCapital}
	}
	return models.Ratio{
		Name:      models.RatioWorkingCapital,
		Value:     p.TotalCurrentAssets - p.TotalCurrentLiabilities,
		Available: true,
	}
}

// ComputeSet derives all ratios for one reporting period.
func ComputeSet(p *models.BalanceSheetPeriod) models.RatioSet {
	set := models.RatioSet{
		Date:   p.Date,
		Ratios: make(map[string]models.Ratio, len(models.RatioOrder)),
	}
	for _, r := range []models.Ratio{
		CurrentRatio(p),
		QuickRatio(p),
		CashRatio(p),
		DebtToEquity(p),
		DebtToAssets(p),
		EquityMultiplier(p),
		WorkingCapital(p),
	} {
		set.Ratios[r.Name] = r
	}
	return set
}

// ComputeHistory derives one RatioSet per period, preserving snapshot order
// (most recent first).
func ComputeHistory(snapshot *models.BalanceSheetSnapshot) []models.RatioSet {
	sets := make([]models.RatioSet, len(snapshot.Periods))
	for i := range snapshot.Periods {
		sets[i] = ComputeSet(&snapshot.Periods[i])
	}
	return sets
}
