package config

// LLMProviderType defines supported LLM provider API families.
// All types speak the OpenAI chat completions wire format; the type mainly
// selects the default base URL and auth convention.
type LLMProviderType string

const (
	// LLMProviderTypeOpenAI is the OpenAI API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeOpenRouter is the OpenRouter aggregation API
	LLMProviderTypeOpenRouter LLMProviderType = "openrouter"
	// LLMProviderTypeCompatible is any self-hosted OpenAI-compatible endpoint
	// (vLLM, Ollama, LiteLLM proxy, ...); requires base_url
	LLMProviderTypeCompatible LLMProviderType = "openai-compatible"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeOpenAI, LLMProviderTypeOpenRouter, LLMProviderTypeCompatible:
		return true
	default:
		return false
	}
}

// ModelTier names a capability class that agent code requests instead of a
// concrete model. Tier-to-provider bindings live in LLMConfig.
type ModelTier string

const (
	// TierFast handles cheap high-volume calls (query generation, triage)
	TierFast ModelTier = "fast"
	// TierMid handles note extraction and section drafting
	TierMid ModelTier = "mid"
	// TierIntelligent handles planning, reflection, and final synthesis
	TierIntelligent ModelTier = "intelligent"
	// TierVerifier handles verification passes (citations, consistency)
	TierVerifier ModelTier = "verifier"
)

// IsValid checks if the model tier is valid
func (t ModelTier) IsValid() bool {
	switch t {
	case TierFast, TierMid, TierIntelligent, TierVerifier:
		return true
	default:
		return false
	}
}

// AllModelTiers lists every tier a binding must exist for.
var AllModelTiers = []ModelTier{TierFast, TierMid, TierIntelligent, TierVerifier}
