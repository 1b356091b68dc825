package config

import (
	"fmt"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: providers → tiers → queue → tools
	// This ensures dependencies are validated before dependents

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateTiers(); err != nil {
		return fmt.Errorf("model tier validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateTools(); err != nil {
		return fmt.Errorf("tools validation failed: %w", err)
	}

	if err := v.validateMissionDefaults(); err != nil {
		return fmt.Errorf("mission defaults validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		// Validate provider type
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		// Validate model is not empty
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", fmt.Errorf("model required"))
		}

		// Compatible endpoints have no well-known default URL
		if provider.Type == LLMProviderTypeCompatible && provider.BaseURL == "" {
			return NewValidationError("llm_provider", name, "base_url", fmt.Errorf("base_url required for %s providers", LLMProviderTypeCompatible))
		}

		// Validate API key environment variable is set, but only for providers
		// actually in use. Unused built-ins must not require their keys.
		if provider.APIKeyEnv != "" && v.providerInUse(name) {
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("llm_provider", name, "api_key_env", fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}

		// Validate context window
		if provider.MaxContextTokens < 1000 {
			return NewValidationError("llm_provider", name, "max_context_tokens", fmt.Errorf("must be at least 1000"))
		}

		if provider.InputCostPerMTok < 0 || provider.OutputCostPerMTok < 0 {
			return NewValidationError("llm_provider", name, "cost", fmt.Errorf("costs cannot be negative"))
		}
	}

	return nil
}

// providerInUse reports whether a provider is referenced by a tier binding
// or by the doc store embedder.
func (v *ConfigValidator) providerInUse(name string) bool {
	if v.cfg.LLM != nil {
		for _, bound := range v.cfg.LLM.Tiers {
			if bound == name {
				return true
			}
		}
	}
	if v.cfg.Tools != nil && v.cfg.Tools.DocStore != nil && v.cfg.Tools.DocStore.EmbeddingProvider == name {
		return true
	}
	return false
}

func (v *ConfigValidator) validateTiers() error {
	llm := v.cfg.LLM

	if llm.MaxConcurrentCalls < 1 {
		return NewValidationError("llm", "dispatch", "max_concurrent_calls", fmt.Errorf("must be at least 1"))
	}
	if llm.MaxRetries < 0 {
		return NewValidationError("llm", "dispatch", "max_retries", fmt.Errorf("cannot be negative"))
	}

	// Every tier must be bound to a known provider
	for _, tier := range AllModelTiers {
		providerName, ok := llm.Tiers[tier]
		if !ok || providerName == "" {
			return NewValidationError("tier", string(tier), "", fmt.Errorf("no provider bound"))
		}
		if !v.cfg.LLMProviderRegistry.Has(providerName) {
			return NewValidationError("tier", string(tier), "", fmt.Errorf("LLM provider '%s' not found", providerName))
		}
	}

	// Reject bindings for unknown tiers (likely typos)
	for tier := range llm.Tiers {
		if !tier.IsValid() {
			return NewValidationError("tier", string(tier), "", fmt.Errorf("unknown tier"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q.WorkerCount < 1 {
		return NewValidationError("queue", "workers", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if q.MaxConcurrentMissions < 1 {
		return NewValidationError("queue", "workers", "max_concurrent_missions", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "workers", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.MissionTimeout <= 0 {
		return NewValidationError("queue", "workers", "mission_timeout", fmt.Errorf("must be positive"))
	}
	if q.OrphanThreshold <= 0 {
		return NewValidationError("queue", "workers", "orphan_threshold", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateTools() error {
	t := v.cfg.Tools

	if t.WebSearch != nil {
		if t.WebSearch.Provider == "" {
			return NewValidationError("tools", "web_search", "provider", fmt.Errorf("provider required"))
		}
		if t.WebSearch.MaxResults < 1 {
			return NewValidationError("tools", "web_search", "max_results", fmt.Errorf("must be at least 1"))
		}
	}

	if t.WebFetch != nil {
		if t.WebFetch.MaxConcurrentFetches < 1 {
			return NewValidationError("tools", "web_fetch", "max_concurrent_fetches", fmt.Errorf("must be at least 1"))
		}
		if t.WebFetch.CacheTTL <= 0 {
			return NewValidationError("tools", "web_fetch", "cache_ttl", fmt.Errorf("must be positive"))
		}
		if t.WebFetch.CacheSize < 1 {
			return NewValidationError("tools", "web_fetch", "cache_size", fmt.Errorf("must be at least 1"))
		}
	}

	if t.DocStore != nil {
		if t.DocStore.TopK < 1 {
			return NewValidationError("tools", "doc_store", "top_k", fmt.Errorf("must be at least 1"))
		}
		if t.DocStore.EmbeddingProvider != "" && !v.cfg.LLMProviderRegistry.Has(t.DocStore.EmbeddingProvider) {
			return NewValidationError("tools", "doc_store", "embedding_provider", fmt.Errorf("LLM provider '%s' not found", t.DocStore.EmbeddingProvider))
		}
	}

	return nil
}

func (v *ConfigValidator) validateMissionDefaults() error {
	d := v.cfg.MissionDefaults

	if d.InitialResearchMaxDepth < 1 {
		return NewValidationError("mission_defaults", "settings", "initial_research_max_depth", fmt.Errorf("must be at least 1"))
	}
	if d.StructuredResearchRounds < 0 {
		return NewValidationError("mission_defaults", "settings", "structured_research_rounds", fmt.Errorf("cannot be negative"))
	}
	if d.WritingPasses < 1 {
		return NewValidationError("mission_defaults", "settings", "writing_passes", fmt.Errorf("must be at least 1"))
	}
	if d.ThoughtPadContextLimit < 1 {
		return NewValidationError("mission_defaults", "settings", "thought_pad_context_limit", fmt.Errorf("must be at least 1"))
	}
	if d.MaxConcurrentRequests < 1 {
		return NewValidationError("mission_defaults", "settings", "max_concurrent_requests", fmt.Errorf("must be at least 1"))
	}

	return nil
}
