package config

import "github.com/maestro-research/maestro/pkg/models"

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// MissionDefaults are server-side defaults merged into per-mission settings.
	MissionDefaults models.MissionSettings

	// Queue and worker pool configuration
	Queue *QueueConfig

	// LLM dispatch configuration (concurrency cap, tier bindings)
	LLM *LLMConfig

	// Retrieval tool configuration
	Tools *ToolsConfig

	// Retention / cleanup configuration
	Retention *RetentionConfig

	// DashboardURL is the frontend base URL (CORS, links in responses).
	DashboardURL string

	// AllowedWSOrigins are additional WebSocket origin patterns.
	AllowedWSOrigins []string

	// Component registries
	LLMProviderRegistry *LLMProviderRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders int
	Tiers        int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	if c.LLM != nil {
		s.Tiers = len(c.LLM.Tiers)
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// ProviderForTier resolves a model tier to its bound provider configuration.
func (c *Config) ProviderForTier(tier ModelTier) (*LLMProviderConfig, error) {
	name, ok := c.LLM.Tiers[tier]
	if !ok {
		return nil, NewValidationError("tier", string(tier), "", ErrInvalidReference)
	}
	return c.LLMProviderRegistry.Get(name)
}
