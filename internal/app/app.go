// Package app wires configuration, clients, and services into a runnable core.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rishabh931/balsheet/internal/clients/fmp"
	"github.com/rishabh931/balsheet/internal/clients/gemini"
	"github.com/rishabh931/balsheet/internal/common"
	"github.com/rishabh931/balsheet/internal/interfaces"
	"github.com/rishabh931/balsheet/internal/services/analysis"
	"github.com/rishabh931/balsheet/internal/services/chart"
)

// App holds all initialized clients and services.
type App struct {
	Config          *common.Config
	Logger          *common.Logger
	FMPClient       interfaces.FMPClient
	GenAIClient     interfaces.GenAIClient
	ChartService    interfaces.ChartRenderer
	AnalysisService interfaces.AnalysisService
}

// Options control optional parts of app construction. OutputDir and Limit,
// when set, override the loaded config (command-line flags win).
type Options struct {
	ConfigPath string
	OutputDir  string
	Limit      int
	SkipAI     bool // skip the Gemini client entirely
}

// NewApp initializes config, logger, clients, and services.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	config, err := common.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.OutputDir != "" {
		config.OutputDir = opts.OutputDir
	}
	if opts.Limit > 0 {
		config.Clients.FMP.Limit = opts.Limit
	}

	if missing := config.ValidateRequired(opts.SkipAI); len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	logger := common.NewLogger(config.Logging.Level)

	fmpClient := fmp.NewClient(config.Clients.FMP.APIKey,
		fmp.WithBaseURL(config.Clients.FMP.BaseURL),
		fmp.WithRateLimit(config.Clients.FMP.RateLimit),
		fmp.WithTimeout(config.Clients.FMP.GetTimeout()),
		fmp.WithLogger(logger),
	)

	var genaiClient interfaces.GenAIClient
	if !opts.SkipAI {
		client, err := gemini.NewClient(ctx, config.Clients.Gemini.APIKey,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		genaiClient = client
	}

	chartService := chart.NewService(logger)

	analysisService := analysis.NewService(
		fmpClient,
		genaiClient,
		chartService,
		logger,
		config.Clients.FMP.Period,
		config.Clients.FMP.Limit,
	)

	return &App{
		Config:          config,
		Logger:          logger,
		FMPClient:       fmpClient,
		GenAIClient:     genaiClient,
		ChartService:    chartService,
		AnalysisService: analysisService,
	}, nil
}

// Run analyzes one symbol and writes the artifacts, returning the paths written.
func (a *App) Run(ctx context.Context, symbol string, skipAI bool) ([]string, error) {
	report, err := a.AnalysisService.Analyze(ctx, symbol, skipAI)
	if err != nil {
		return nil, err
	}
	return a.AnalysisService.WriteArtifacts(report, a.Config.OutputDir)
}
