package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/models"
)

// validTestConfig builds a config that passes validation, for tests to break
// one field at a time.
func validTestConfig() *Config {
	providers := map[string]*LLMProviderConfig{
		"local": {
			Type:             LLMProviderTypeCompatible,
			Model:            "test-model",
			BaseURL:          "http://localhost:8000/v1",
			MaxContextTokens: 32000,
		},
	}
	return &Config{
		MissionDefaults: models.DefaultMissionSettings(),
		Queue:           DefaultQueueConfig(),
		LLM: &LLMConfig{
			MaxConcurrentCalls: 200,
			MaxRetries:         4,
			Tiers: map[ModelTier]string{
				TierFast:        "local",
				TierMid:         "local",
				TierIntelligent: "local",
				TierVerifier:    "local",
			},
		},
		Tools:               DefaultToolsConfig(),
		Retention:           DefaultRetentionConfig(),
		LLMProviderRegistry: NewLLMProviderRegistry(providers),
	}
}

func TestValidator_ValidConfig(t *testing.T) {
	cfg := validTestConfig()
	assert.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidator_Providers(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{
			name: "invalid provider type",
			mutate: func(c *Config) {
				p, _ := c.LLMProviderRegistry.Get("local")
				p.Type = "grpc"
			},
			errContains: "invalid provider type",
		},
		{
			name: "missing model",
			mutate: func(c *Config) {
				p, _ := c.LLMProviderRegistry.Get("local")
				p.Model = ""
			},
			errContains: "model required",
		},
		{
			name: "compatible provider without base_url",
			mutate: func(c *Config) {
				p, _ := c.LLMProviderRegistry.Get("local")
				p.BaseURL = ""
			},
			errContains: "base_url required",
		},
		{
			name: "context window too small",
			mutate: func(c *Config) {
				p, _ := c.LLMProviderRegistry.Get("local")
				p.MaxContextTokens = 100
			},
			errContains: "at least 1000",
		},
		{
			name: "unused provider does not require api key",
			mutate: func(c *Config) {
				all := c.LLMProviderRegistry.GetAll()
				all["unused"] = &LLMProviderConfig{
					Type:             LLMProviderTypeOpenAI,
					Model:            "gpt-4o",
					APIKeyEnv:        "DEFINITELY_NOT_SET_IN_TESTS",
					MaxContextTokens: 128000,
				}
				c.LLMProviderRegistry = NewLLMProviderRegistry(all)
			},
		},
		{
			name: "bound provider requires api key",
			mutate: func(c *Config) {
				p, _ := c.LLMProviderRegistry.Get("local")
				p.APIKeyEnv = "DEFINITELY_NOT_SET_IN_TESTS"
			},
			errContains: "DEFINITELY_NOT_SET_IN_TESTS is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			if tt.errContains == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestValidator_Tiers(t *testing.T) {
	t.Run("missing tier binding", func(t *testing.T) {
		cfg := validTestConfig()
		delete(cfg.LLM.Tiers, TierVerifier)
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "verifier")
	})

	t.Run("unknown tier name", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.LLM.Tiers["turbo"] = "local"
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown tier")
	})

	t.Run("zero concurrency cap", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.LLM.MaxConcurrentCalls = 0
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_concurrent_calls")
	})
}

func TestValidator_QueueAndTools(t *testing.T) {
	t.Run("zero workers", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Queue.WorkerCount = 0
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("non-positive poll interval", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Queue.PollInterval = 0
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("web fetch cache ttl", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Tools.WebFetch.CacheTTL = -time.Second
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("doc store embedder must exist", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Tools.DocStore.EmbeddingProvider = "ghost"
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})
}

func TestValidator_MissionDefaults(t *testing.T) {
	t.Run("zero writing passes rejected as default", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.MissionDefaults.WritingPasses = 0
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("zero research rounds is a legal default", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.MissionDefaults.StructuredResearchRounds = 0
		assert.NoError(t, NewValidator(cfg).ValidateAll())
	})
}
