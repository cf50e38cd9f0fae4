package gemini

import (
	"fmt"
	"strings"

	"github.com/rishabh931/balsheet/internal/models"
)

// BuildAnalysisPrompt creates the commentary prompt: four focus points,
// the reported periods as CSV, and the computed ratio table.
func BuildAnalysisPrompt(symbol string, snapshot *models.BalanceSheetSnapshot, ratios []models.RatioSet) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `Analyze the balance sheet trends for %s (Indian Stock) below. Focus on:
1. Asset-Liability health
2. Debt-to-Equity trends
3. Liquidity risks
4. Overall financial stability

Balance Sheet Data (most recent first):
`, symbol)

	sb.WriteString(snapshotCSV(snapshot))

	if len(ratios) > 0 {
		sb.WriteString("\nComputed Ratios (most recent first, n/a = not available):\n")
		sb.WriteString(ratioCSV(ratios))
	}

	sb.WriteString("\nProvide your analysis in a concise, actionable format.")

	return sb.String()
}

// snapshotCSV renders the key line items as CSV rows, one per period.
func snapshotCSV(snapshot *models.BalanceSheetSnapshot) string {
	var sb strings.Builder
	sb.WriteString("date,totalAssets,totalLiabilities,totalStockholdersEquity,cashAndCashEquivalents,totalCurrentAssets,totalCurrentLiabilities\n")
	for _, p := range snapshot.Periods {
		fmt.Fprintf(&sb, "%s,%.0f,%.0f,%.0f,%.0f,%.0f,%.0f\n",
			p.Date.Format("2006-01-02"),
			p.TotalAssets,
			p.TotalLiabilities,
			p.TotalStockholdersEquity,
			p.CashAndCashEquivalents,
			p.TotalCurrentAssets,
			p.TotalCurrentLiabilities,
		)
	}
	return sb.String()
}

func ratioCSV(ratios []models.RatioSet) string {
	var sb strings.Builder
	sb.WriteString("date," + strings.Join(models.RatioOrder, ",") + "\n")
	for _, set := range ratios {
		sb.WriteString(set.Date.Format("2006-01-02"))
		for _, name := range models.RatioOrder {
			sb.WriteString("," + set.Get(name).Format())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
