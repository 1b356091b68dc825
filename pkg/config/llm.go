package config

import (
	"fmt"
	"sync"
)

// LLMProviderConfig defines LLM provider configuration
type LLMProviderConfig struct {
	// Provider type (required)
	Type LLMProviderType `yaml:"type" validate:"required"`

	// Model name (required)
	Model string `yaml:"model" validate:"required"`

	// Environment variable name for API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL (required for openai-compatible)
	BaseURL string `yaml:"base_url,omitempty"`

	// Context window of the model, used to budget prompt assembly
	MaxContextTokens int `yaml:"max_context_tokens" validate:"required,min=1000"`

	// Per-million-token pricing for stats accounting. Zero means free/unmetered.
	InputCostPerMTok  float64 `yaml:"input_cost_per_mtok,omitempty"`
	OutputCostPerMTok float64 `yaml:"output_cost_per_mtok,omitempty"`

	// Default sampling temperature. Nil uses the API default.
	Temperature *float32 `yaml:"temperature,omitempty"`
}

// LLMConfig groups global LLM dispatch settings: the concurrency cap shared
// by every mission and the tier-to-provider bindings.
type LLMConfig struct {
	// MaxConcurrentCalls is the global in-flight LLM request limit across
	// all missions on this replica.
	MaxConcurrentCalls int `yaml:"max_concurrent_calls"`

	// MaxRetries bounds retry attempts for transient provider errors.
	MaxRetries int `yaml:"max_retries"`

	// Tiers maps each model tier to a provider name from llm-providers.yaml.
	Tiers map[ModelTier]string `yaml:"tiers"`
}

// DefaultLLMConfig returns the built-in LLM dispatch defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		MaxConcurrentCalls: 200,
		MaxRetries:         4,
		Tiers: map[ModelTier]string{
			TierFast:        "openai-fast",
			TierMid:         "openai-mid",
			TierIntelligent: "openai-intelligent",
			TierVerifier:    "openai-fast",
		},
	}
}

// LLMProviderRegistry stores LLM provider configurations in memory with thread-safe access
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{
		providers: copied,
	}
}

// Get retrieves an LLM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns all LLM provider configurations (thread-safe, returns copy)
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if an LLM provider exists in the registry (thread-safe)
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LLM providers in the registry (thread-safe)
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
