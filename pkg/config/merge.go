package config

// mergeLLMProviders layers user-defined providers from llm-providers.yaml
// over the built-in catalog. A user entry with a built-in name replaces it
// wholesale; partial overrides are not supported for provider entries.
func mergeLLMProviders(builtin, user map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	merged := make(map[string]*LLMProviderConfig, len(builtin)+len(user))
	for name, p := range builtin {
		p := p
		merged[name] = &p
	}
	for name, p := range user {
		p := p
		merged[name] = &p
	}
	return merged
}
