package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		BaseURL:    "https://puckpedia.com",
		OutputPath: "trades.csv",
		Format:     FormatCSV,
		Delay:      time.Second,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	jsonCfg := validConfig()
	jsonCfg.Format = FormatJSON
	require.NoError(t, jsonCfg.Validate())
}

func TestValidateRejectsBadFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestValidateRejectsEmptyOutputPath(t *testing.T) {
	cfg := validConfig()
	cfg.OutputPath = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNegativeLimits(t *testing.T) {
	cfg := validConfig()
	cfg.MaxPages = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Delay = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://puckpedia.com", cfg.BaseURL)
	assert.Equal(t, FormatCSV, cfg.Format)
	assert.Equal(t, 0, cfg.MaxPages)
	assert.NoError(t, cfg.Validate())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("OUTPUT_FORMAT", "json")
	t.Setenv("MAX_PAGES", "5")
	t.Setenv("PAGE_DELAY_MS", "250")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 5, cfg.MaxPages)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
}
