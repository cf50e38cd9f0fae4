package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Clients.FMP.BaseURL != "https://financialmodelingprep.com/api/v3" {
		t.Errorf("FMP.BaseURL default = %q", cfg.Clients.FMP.BaseURL)
	}
	if cfg.Clients.FMP.Limit != 5 {
		t.Errorf("FMP.Limit default = %d, want 5", cfg.Clients.FMP.Limit)
	}
	if cfg.Clients.FMP.Period != "annual" {
		t.Errorf("FMP.Period default = %q, want annual", cfg.Clients.FMP.Period)
	}
	if cfg.OutputDir != "reports" {
		t.Errorf("OutputDir default = %q, want reports", cfg.OutputDir)
	}
}

func TestConfig_FMPKeyEnvOverride(t *testing.T) {
	t.Setenv("FMP_API_KEY", "from-env")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Clients.FMP.APIKey != "from-env" {
		t.Errorf("FMP.APIKey = %q, want %q", cfg.Clients.FMP.APIKey, "from-env")
	}
}

func TestConfig_GeminiKeyEnvOverride(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-from-env")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Clients.Gemini.APIKey != "gem-from-env" {
		t.Errorf("Gemini.APIKey = %q, want %q", cfg.Clients.Gemini.APIKey, "gem-from-env")
	}
}

func TestConfig_PeriodLimitEnvOverride(t *testing.T) {
	t.Setenv("BALSHEET_PERIOD_LIMIT", "10")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Clients.FMP.Limit != 10 {
		t.Errorf("FMP.Limit = %d after env override, want 10", cfg.Clients.FMP.Limit)
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balsheet.toml")
	content := `
environment = "production"
output_dir = "out"

[clients.fmp]
api_key = "file-key"
limit = 3

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want production", cfg.Environment)
	}
	if cfg.Clients.FMP.APIKey != "file-key" {
		t.Errorf("FMP.APIKey = %q, want file-key", cfg.Clients.FMP.APIKey)
	}
	if cfg.Clients.FMP.Limit != 3 {
		t.Errorf("FMP.Limit = %d, want 3", cfg.Clients.FMP.Limit)
	}
	// Unset fields keep defaults
	if cfg.Clients.FMP.BaseURL != "https://financialmodelingprep.com/api/v3" {
		t.Errorf("FMP.BaseURL = %q, want default", cfg.Clients.FMP.BaseURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestConfig_LoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("does/not/exist.toml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Clients.FMP.Limit != 5 {
		t.Errorf("FMP.Limit = %d, want default 5", cfg.Clients.FMP.Limit)
	}
}

func TestConfig_ValidateRequired(t *testing.T) {
	cfg := NewDefaultConfig()

	missing := cfg.ValidateRequired(false)
	if len(missing) != 2 {
		t.Errorf("expected 2 missing fields, got %d: %v", len(missing), missing)
	}

	missing = cfg.ValidateRequired(true)
	if len(missing) != 1 {
		t.Errorf("expected 1 missing field with skipAI, got %d: %v", len(missing), missing)
	}

	cfg.Clients.FMP.APIKey = "k1"
	cfg.Clients.Gemini.APIKey = "k2"
	if missing := cfg.ValidateRequired(false); len(missing) != 0 {
		t.Errorf("expected 0 missing fields, got %v", missing)
	}
}

func TestFMPConfig_GetTimeout(t *testing.T) {
	c := FMPConfig{Timeout: "10s"}
	if c.GetTimeout().Seconds() != 10 {
		t.Errorf("GetTimeout = %v, want 10s", c.GetTimeout())
	}

	c.Timeout = "bogus"
	if c.GetTimeout().Seconds() != 30 {
		t.Errorf("GetTimeout fallback = %v, want 30s", c.GetTimeout())
	}
}
