package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
// This provides default LLM providers so a fresh install only needs API keys.
type BuiltinConfig struct {
	LLMProviders map[string]LLMProviderConfig
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		LLMProviders: initBuiltinLLMProviders(),
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai-fast": {
			Type:              LLMProviderTypeOpenAI,
			Model:             "gpt-4o-mini",
			APIKeyEnv:         "OPENAI_API_KEY",
			MaxContextTokens:  128000,
			InputCostPerMTok:  0.15,
			OutputCostPerMTok: 0.60,
		},
		"openai-mid": {
			Type:              LLMProviderTypeOpenAI,
			Model:             "gpt-4o",
			APIKeyEnv:         "OPENAI_API_KEY",
			MaxContextTokens:  128000,
			InputCostPerMTok:  2.50,
			OutputCostPerMTok: 10.00,
		},
		"openai-intelligent": {
			Type:              LLMProviderTypeOpenAI,
			Model:             "o4-mini",
			APIKeyEnv:         "OPENAI_API_KEY",
			MaxContextTokens:  200000,
			InputCostPerMTok:  1.10,
			OutputCostPerMTok: 4.40,
		},
		"openrouter-default": {
			Type:              LLMProviderTypeOpenRouter,
			Model:             "deepseek/deepseek-chat-v3",
			APIKeyEnv:         "OPENROUTER_API_KEY",
			BaseURL:           "https://openrouter.ai/api/v1",
			MaxContextTokens:  64000,
			InputCostPerMTok:  0.30,
			OutputCostPerMTok: 0.88,
		},
	}
}
