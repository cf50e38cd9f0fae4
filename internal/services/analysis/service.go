// Package analysis sequences the fetch → compute → plot → commentary pipeline.
package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rishabh931/balsheet/internal/common"
	"github.com/rishabh931/balsheet/internal/interfaces"
	"github.com/rishabh931/balsheet/internal/models"
	"github.com/rishabh931/balsheet/internal/services/ratio"
	"github.com/rishabh931/balsheet/internal/services/symbol"
)

// ReportFilename is the markdown report written next to the chart PNGs.
const ReportFilename = "analysis.md"

// Service implements the AnalysisService interface
type Service struct {
	fmpClient   interfaces.FMPClient
	genaiClient interfaces.GenAIClient
	charts      interfaces.ChartRenderer
	logger      *common.Logger
	period      string
	limit       int
}

// NewService creates a new analysis service. genaiClient may be nil when
// commentary is disabled.
func NewService(
	fmpClient interfaces.FMPClient,
	genaiClient interfaces.GenAIClient,
	charts interfaces.ChartRenderer,
	logger *common.Logger,
	period string,
	limit int,
) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		fmpClient:   fmpClient,
		genaiClient: genaiClient,
		charts:      charts,
		logger:      logger,
		period:      period,
		limit:       limit,
	}
}

// Analyze runs the full pipeline for a user-supplied symbol.
func (s *Service) Analyze(ctx context.Context, input string, skipAI bool) (*models.AnalysisReport, error) {
	canonical, err := symbol.Normalize(input)
	if err != nil {
		return nil, fmt.Errorf("normalize symbol %q: %w", input, err)
	}

	runID := uuid.NewString()
	logger := s.logger.With().Str("run_id", runID).Str("symbol", canonical).Logger()
	logger.Info().Msg("Starting analysis")

	profile, err := s.fmpClient.GetProfile(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	snapshot, err := s.fmpClient.GetBalanceSheet(ctx, canonical, s.period, s.limit)
	if err != nil {
		return nil, fmt.Errorf("fetch balance sheet: %w", err)
	}
	logger.Info().Int("periods", len(snapshot.Periods)).Msg("Balance sheet fetched")

	ratioSets := ratio.ComputeHistory(snapshot)

	chartSet, err := s.charts.Render(snapshot, ratioSets)
	if err != nil {
		return nil, fmt.Errorf("render charts: %w", err)
	}
	logger.Info().Int("charts", len(chartSet.Charts)).Msg("Charts rendered")

	commentary := ""
	if !skipAI {
		if s.genaiClient == nil {
			return nil, fmt.Errorf("AI commentary requested but no client configured")
		}
		commentary, err = s.genaiClient.AnalyzeBalanceSheet(ctx, canonical, snapshot, ratioSets)
		if err != nil {
			return nil, fmt.Errorf("generate commentary: %w", err)
		}
		logger.Info().Int("chars", len(commentary)).Msg("Commentary generated")
	}

	return &models.AnalysisReport{
		RunID:       runID,
		Symbol:      canonical,
		Profile:     profile,
		Snapshot:    snapshot,
		RatioSets:   ratioSets,
		Charts:      chartSet,
		Commentary:  commentary,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// WriteArtifacts writes the chart PNGs and the markdown report to
// <outputDir>/<SYMBOL>/, returning the paths written.
func (s *Service) WriteArtifacts(report *models.AnalysisReport, outputDir string) ([]string, error) {
	dir := filepath.Join(outputDir, report.Symbol)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var paths []string
	for _, artifact := range report.Charts.Charts {
		path := filepath.Join(dir, artifact.Filename)
		if err := os.WriteFile(path, artifact.PNG, 0o644); err != nil {
			return nil, fmt.Errorf("write chart %s: %w", artifact.Type, err)
		}
		paths = append(paths, path)
	}

	reportPath := filepath.Join(dir, ReportFilename)
	if err := os.WriteFile(reportPath, []byte(FormatReport(report)), 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	paths = append(paths, reportPath)

	s.logger.Info().Str("dir", dir).Int("files", len(paths)).Msg("Artifacts written")
	return paths, nil
}

// Ensure Service implements AnalysisService
var _ interfaces.AnalysisService = (*Service)(nil)
