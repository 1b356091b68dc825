// Package llm implements the Model Dispatcher: tier-routed chat completions
// against OpenAI-compatible providers with schema-constrained JSON output,
// a repair pipeline for malformed model output, bounded retries, and usage
// accounting into mission stats.
package llm

import (
	"github.com/maestro-research/maestro/pkg/config"
)

// Role values follow the OpenAI chat convention.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes one dispatch. Tier selects the provider binding; a
// mission may override individual tiers via TierOverrides (override wins
// when the named provider exists).
type Request struct {
	Tier     config.ModelTier
	Messages []Message

	// Schema, when set, requests strict JSON output validated against this
	// JSON Schema document. Use CompleteJSON for schema'd calls.
	Schema map[string]any

	// TierOverrides maps tiers to provider names for this mission.
	TierOverrides map[config.ModelTier]string

	// MaxTokens caps the completion length. Zero uses the provider default.
	MaxTokens int

	// Temperature overrides the provider's configured default when non-nil.
	Temperature *float32
}

// Usage is the accounting record for one successful call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	NativeTokens     int // provider-reported total, when available
	Cost             float64
	Estimated        bool // true when the provider omitted usage and tokens were counted locally
}

// Response is the result of Complete.
type Response struct {
	Text     string
	Model    string // concrete model name that served the call
	Provider string // provider name from llm-providers.yaml
	Usage    Usage
}

// JSONResponse is the result of CompleteJSON: the parsed value plus the raw
// response it was recovered from.
type JSONResponse struct {
	Value    any
	Raw      string
	Repaired bool // true when the strict parse failed and the repair pipeline recovered it
	Response
}
