package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeoscan/aeoscan/internal/adapters/outbound/config"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".aeoscan.yaml"), []byte(content), 0644))
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Timeouts.PageSpeedSeconds)
	assert.Equal(t, 60, cfg.Timeouts.OverallSeconds)
	assert.Equal(t, 15, cfg.CacheTTLMinutes)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
pagespeed_api_key: file-key
cache_ttl_minutes: 5
timeouts:
  pagespeed_seconds: 45
  crawler_seconds: 15
  authority_seconds: 10
  overall_seconds: 90
authority:
  enabled: true
  competitors:
    - rival.com
business:
  name: Acme Plumbing
  location: Springfield
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.PageSpeedAPIKey)
	assert.Equal(t, 45, cfg.Timeouts.PageSpeedSeconds)
	assert.Equal(t, 90, cfg.Timeouts.OverallSeconds)
	assert.Equal(t, 5, cfg.CacheTTLMinutes)
	assert.True(t, cfg.Authority.Enabled)
	assert.Equal(t, []string{"rival.com"}, cfg.Authority.Competitors)
	assert.Equal(t, "Acme Plumbing", cfg.Business.Name)
}

func TestLoad_EnvFallbackForAPIKeys(t *testing.T) {
	t.Setenv("AEOSCAN_PAGESPEED_API_KEY", "env-psi-key")
	t.Setenv("AEOSCAN_OPENPAGERANK_API_KEY", "env-opr-key")

	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-psi-key", cfg.PageSpeedAPIKey)
	assert.Equal(t, "env-opr-key", cfg.OpenPageRankAPIKey)
}

func TestLoad_FileKeyWinsOverEnv(t *testing.T) {
	t.Setenv("AEOSCAN_PAGESPEED_API_KEY", "env-key")
	dir := t.TempDir()
	writeConfig(t, dir, "pagespeed_api_key: file-key\n")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.PageSpeedAPIKey)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "timeouts: [not a map\n")

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "timeouts:\n  overall_seconds: -1\n")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overall_seconds")
}
