package interfaces

import (
	"context"

	"github.com/rishabh931/balsheet/internal/models"
)

// ChartRenderer renders the fixed chart set for a snapshot
type ChartRenderer interface {
	// Render produces one artifact per chart type
	Render(snapshot *models.BalanceSheetSnapshot, ratios []models.RatioSet) (*models.ChartSet, error)
}

// AnalysisService runs the fetch → compute → plot → commentary pipeline
type AnalysisService interface {
	// Analyze runs the full pipeline for a user-supplied symbol
	Analyze(ctx context.Context, symbol string, skipAI bool) (*models.AnalysisReport, error)

	// WriteArtifacts writes the chart PNGs and the markdown report,
	// returning the paths written
	WriteArtifacts(report *models.AnalysisReport, outputDir string) ([]string, error)
}
