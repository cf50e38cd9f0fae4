package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishabh931/balsheet/internal/models"
	"github.com/rishabh931/balsheet/internal/services/ratio"
)

var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47}

func fiveYearSnapshot() *models.BalanceSheetSnapshot {
	snapshot := &models.BalanceSheetSnapshot{Symbol: "INFY.NS"}
	for year := 2024; year >= 2020; year-- {
		scale := float64(year - 2015)
		snapshot.Periods = append(snapshot.Periods, models.BalanceSheetPeriod{
			Date:                    time.Date(year, 3, 31, 0, 0, 0, 0, time.UTC),
			Period:                  "FY",
			CashAndCashEquivalents:  scale * 20e9,
			Inventory:               scale * 5e9,
			TotalCurrentAssets:      scale * 100e9,
			TotalCurrentLiabilities: scale * 60e9,
			TotalAssets:             scale * 400e9,
			TotalLiabilities:        scale * 150e9,
			TotalStockholdersEquity: scale * 250e9,
		})
	}
	return snapshot
}

func TestRender_ExactlySixArtifacts(t *testing.T) {
	snapshot := fiveYearSnapshot()
	sets := ratio.ComputeHistory(snapshot)

	svc := NewService(nil)
	chartSet, err := svc.Render(snapshot, sets)
	require.NoError(t, err)
	require.Len(t, chartSet.Charts, 6)

	for i, artifact := range chartSet.Charts {
		assert.Equal(t, models.ChartTypes[i], artifact.Type)
		assert.Equal(t, string(artifact.Type)+".png", artifact.Filename)
		assert.True(t, bytes.HasPrefix(artifact.PNG, pngHeader), "%s should be a PNG", artifact.Type)
	}
}

func TestRender_SinglePeriodFails(t *testing.T) {
	snapshot := fiveYearSnapshot()
	snapshot.Periods = snapshot.Periods[:1]
	sets := ratio.ComputeHistory(snapshot)

	svc := NewService(nil)
	_, err := svc.Render(snapshot, sets)
	require.Error(t, err)
}

func TestRenderBalanceStructure_SinglePeriod(t *testing.T) {
	periods := fiveYearSnapshot().Chronological()[:1]
	png, err := RenderBalanceStructure(periods)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestRenderBalanceStructure_NoReportedValues(t *testing.T) {
	periods := []models.BalanceSheetPeriod{
		{Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
	}
	_, err := RenderBalanceStructure(periods)
	require.Error(t, err)
}

func TestRenderLeverage_SkipsUnavailablePoints(t *testing.T) {
	snapshot := fiveYearSnapshot()
	// Equity missing in the middle period: debt-to-equity n/a there.
	snapshot.Periods[2].TotalStockholdersEquity = 0
	sets := ratio.ComputeHistory(snapshot)

	png, err := RenderLeverage(sets)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestRenderLeverage_UnreportedEquityDegrades(t *testing.T) {
	// Equity missing in every period: the ratio is n/a throughout, but the
	// artifact still renders as a placeholder instead of failing the run.
	snapshot := fiveYearSnapshot()
	for i := range snapshot.Periods {
		snapshot.Periods[i].TotalStockholdersEquity = 0
	}
	sets := ratio.ComputeHistory(snapshot)

	png, err := RenderLeverage(sets)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestRenderLeverage_SinglePeriodFails(t *testing.T) {
	snapshot := fiveYearSnapshot()
	snapshot.Periods = snapshot.Periods[:1]
	sets := ratio.ComputeHistory(snapshot)

	_, err := RenderLeverage(sets)
	require.Error(t, err)
}

func TestRender_UnreportedEquityStillSixArtifacts(t *testing.T) {
	snapshot := fiveYearSnapshot()
	for i := range snapshot.Periods {
		snapshot.Periods[i].TotalStockholdersEquity = 0
	}
	sets := ratio.ComputeHistory(snapshot)

	svc := NewService(nil)
	chartSet, err := svc.Render(snapshot, sets)
	require.NoError(t, err)
	require.Len(t, chartSet.Charts, 6)

	for _, artifact := range chartSet.Charts {
		assert.True(t, bytes.HasPrefix(artifact.PNG, pngHeader), "%s should be a PNG", artifact.Type)
	}
}

func TestRenderLiquidity_UnreportedCurrentItemsDegrade(t *testing.T) {
	snapshot := fiveYearSnapshot()
	for i := range snapshot.Periods {
		snapshot.Periods[i].TotalCurrentAssets = 0
		snapshot.Periods[i].TotalCurrentLiabilities = 0
		snapshot.Periods[i].CashAndCashEquivalents = 0
		snapshot.Periods[i].Inventory = 0
	}
	sets := ratio.ComputeHistory(snapshot)

	png, err := RenderLiquidity(sets)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestRenderLiquidity_QuickRatioOptional(t *testing.T) {
	snapshot := fiveYearSnapshot()
	sets := ratio.ComputeHistory(snapshot)

	// Drop quick ratio everywhere; current ratio alone still renders.
	for i := range sets {
		delete(sets[i].Ratios, models.RatioQuickRatio)
	}

	png, err := RenderLiquidity(sets)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}
