package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigDir creates a temp config dir with the given maestro.yaml and
// llm-providers.yaml contents.
func writeConfigDir(t *testing.T, maestroYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte(maestroYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	return dir
}

const minimalProvidersYAML = `
llm_providers:
  test-fast:
    type: openai-compatible
    model: test-small
    base_url: http://localhost:8000/v1
    max_context_tokens: 32000
  test-big:
    type: openai-compatible
    model: test-large
    base_url: http://localhost:8000/v1
    max_context_tokens: 128000
`

const minimalMaestroYAML = `
llm:
  tiers:
    fast: test-fast
    mid: test-big
    intelligent: test-big
    verifier: test-fast
`

func TestInitialize_Minimal(t *testing.T) {
	dir := writeConfigDir(t, minimalMaestroYAML, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// User providers plus built-ins
	assert.True(t, cfg.LLMProviderRegistry.Has("test-fast"))
	assert.True(t, cfg.LLMProviderRegistry.Has("test-big"))
	assert.True(t, cfg.LLMProviderRegistry.Has("openai-fast"), "built-in providers should survive the merge")

	// Defaults applied for everything unspecified
	assert.Equal(t, 200, cfg.LLM.MaxConcurrentCalls)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, 24*time.Hour, cfg.Tools.WebFetch.CacheTTL)
	assert.Equal(t, 2, cfg.MissionDefaults.StructuredResearchRounds)
	assert.Equal(t, 365, cfg.Retention.MissionRetentionDays)
	assert.Equal(t, "http://localhost:5173", cfg.DashboardURL)

	// Tier resolution works end to end
	p, err := cfg.ProviderForTier(TierIntelligent)
	require.NoError(t, err)
	assert.Equal(t, "test-large", p.Model)
}

func TestInitialize_Overrides(t *testing.T) {
	maestroYAML := minimalMaestroYAML + `
system:
  dashboard_url: https://research.example.com
  retention:
    mission_retention_days: 30
queue:
  worker_count: 2
  max_concurrent_missions: 3
tools:
  web_fetch:
    cache_ttl: 1h
    max_concurrent_fetches: 5
mission_defaults:
  structured_research_rounds: 3
  writing_passes: 1
`
	dir := writeConfigDir(t, maestroYAML, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "https://research.example.com", cfg.DashboardURL)
	assert.Equal(t, 30, cfg.Retention.MissionRetentionDays)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 3, cfg.Queue.MaxConcurrentMissions)
	// Unset queue fields keep their defaults after the merge
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 1*time.Hour, cfg.Tools.WebFetch.CacheTTL)
	assert.Equal(t, 5, cfg.Tools.WebFetch.MaxConcurrentFetches)
	assert.Equal(t, 3, cfg.MissionDefaults.StructuredResearchRounds)
	assert.Equal(t, 1, cfg.MissionDefaults.WritingPasses)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_LLM_BASE_URL", "http://vllm.internal:8000/v1")

	providersYAML := `
llm_providers:
  test-fast:
    type: openai-compatible
    model: test-small
    base_url: "{{.TEST_LLM_BASE_URL}}"
    max_context_tokens: 32000
`
	maestroYAML := `
llm:
  tiers:
    fast: test-fast
    mid: test-fast
    intelligent: test-fast
    verifier: test-fast
`
	dir := writeConfigDir(t, maestroYAML, providersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	p, err := cfg.GetLLMProvider("test-fast")
	require.NoError(t, err)
	assert.Equal(t, "http://vllm.internal:8000/v1", p.BaseURL)
}

func TestInitialize_MissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, "llm: [not: valid", minimalProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_UnboundTier(t *testing.T) {
	maestroYAML := `
llm:
  tiers:
    fast: test-fast
    mid: test-fast
    intelligent: no-such-provider
    verifier: test-fast
`
	dir := writeConfigDir(t, maestroYAML, minimalProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-provider")
}
