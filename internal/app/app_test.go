package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_MissingKeys(t *testing.T) {
	t.Setenv("FMP_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := NewApp(context.Background(), Options{SkipAI: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required configuration")
}

func TestNewApp_SkipAIOnlyNeedsFMPKey(t *testing.T) {
	t.Setenv("FMP_API_KEY", "test-key")
	t.Setenv("GEMINI_API_KEY", "")

	a, err := NewApp(context.Background(), Options{SkipAI: true})
	require.NoError(t, err)

	assert.NotNil(t, a.FMPClient)
	assert.Nil(t, a.GenAIClient)
	assert.NotNil(t, a.AnalysisService)
}

func TestNewApp_FlagOverrides(t *testing.T) {
	t.Setenv("FMP_API_KEY", "test-key")

	a, err := NewApp(context.Background(), Options{
		SkipAI:    true,
		OutputDir: "custom-out",
		Limit:     3,
	})
	require.NoError(t, err)

	assert.Equal(t, "custom-out", a.Config.OutputDir)
	assert.Equal(t, 3, a.Config.Clients.FMP.Limit)
}
