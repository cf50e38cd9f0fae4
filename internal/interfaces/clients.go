// Package interfaces defines service contracts for Balsheet
package interfaces

import (
	"context"

	"github.com/rishabh931/balsheet/internal/models"
)

// FMPClient provides access to the Financial Modeling Prep API
type FMPClient interface {
	// GetProfile retrieves the company profile for a symbol
	GetProfile(ctx context.Context, symbol string) (*models.CompanyProfile, error)

	// GetBalanceSheet retrieves balance-sheet statements, most recent first
	GetBalanceSheet(ctx context.Context, symbol, period string, limit int) (*models.BalanceSheetSnapshot, error)
}

// GenAIClient provides access to the generative-AI commentary service
type GenAIClient interface {
	// GenerateContent generates text from a prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)

	// AnalyzeBalanceSheet generates a fundamental-analysis narrative for a
	// balance-sheet snapshot and its computed ratios
	AnalyzeBalanceSheet(ctx context.Context, symbol string, snapshot *models.BalanceSheetSnapshot, ratios []models.RatioSet) (string, error)
}
