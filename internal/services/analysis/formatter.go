package analysis

import (
	"fmt"
	"strings"

	"github.com/rishabh931/balsheet/internal/models"
)

// FormatReport renders the analysis report as markdown.
func FormatReport(report *models.AnalysisReport) string {
	var sb strings.Builder

	name := report.Symbol
	if report.Profile != nil && report.Profile.CompanyName != "" {
		name = report.Profile.CompanyName
	}

	fmt.Fprintf(&sb, "# Balance Sheet Analysis: %s\n\n", name)
	fmt.Fprintf(&sb, "- Symbol: %s\n", report.Symbol)
	if report.Profile != nil {
		if report.Profile.Sector != "" {
			fmt.Fprintf(&sb, "- Sector: %s\n", report.Profile.Sector)
		}
		if report.Profile.Industry != "" {
			fmt.Fprintf(&sb, "- Industry: %s\n", report.Profile.Industry)
		}
		if report.Profile.MarketCap > 0 {
			fmt.Fprintf(&sb, "- Market Cap: %.2fB %s\n", report.Profile.MarketCap/1e9, report.Profile.Currency)
		}
	}
	fmt.Fprintf(&sb, "- Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&sb, "- Run ID: %s\n\n", report.RunID)

	sb.WriteString("## Balance Sheet\n\n")
	sb.WriteString("| Period | Total Assets | Total Liabilities | Equity | Cash | Current Assets | Current Liabilities |\n")
	sb.WriteString("|---|---|---|---|---|---|---|\n")
	for _, p := range report.Snapshot.Periods {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s | %s |\n",
			p.Date.Format("2006-01-02"),
			formatAmount(p.TotalAssets),
			formatAmount(p.TotalLiabilities),
			formatAmount(p.TotalStockholdersEquity),
			formatAmount(p.CashAndCashEquivalents),
			formatAmount(p.TotalCurrentAssets),
			formatAmount(p.TotalCurrentLiabilities),
		)
	}
	sb.WriteString("\n")

	sb.WriteString("## Ratios\n\n")
	sb.WriteString("| Period |")
	for _, ratioName := range models.RatioOrder {
		fmt.Fprintf(&sb, " %s |", strings.ReplaceAll(ratioName, "_", " "))
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", len(models.RatioOrder)))
	sb.WriteString("\n")
	for _, set := range report.RatioSets {
		fmt.Fprintf(&sb, "| %s |", set.Date.Format("2006-01-02"))
		for _, ratioName := range models.RatioOrder {
			r := set.Get(ratioName)
			if ratioName == models.RatioWorkingCapital && r.Available {
				fmt.Fprintf(&sb, " %s |", formatAmount(r.Value))
				continue
			}
			fmt.Fprintf(&sb, " %s |", r.Format())
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Charts\n\n")
	for _, artifact := range report.Charts.Charts {
		fmt.Fprintf(&sb, "![%s](%s)\n\n", artifact.Type, artifact.Filename)
	}

	if report.Commentary != "" {
		sb.WriteString("## AI Commentary\n\n")
		sb.WriteString(strings.TrimSpace(report.Commentary))
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatAmount renders balance-sheet amounts in billions, or "n/a" for
// unreported items.
func formatAmount(v float64) string {
	if v == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2fB", v/1e9)
}
