package config

import "time"

// ToolsConfig groups retrieval tool configuration.
type ToolsConfig struct {
	WebSearch *WebSearchConfig `yaml:"web_search"`
	WebFetch  *WebFetchConfig  `yaml:"web_fetch"`
	DocStore  *DocStoreConfig  `yaml:"doc_store"`
}

// WebSearchConfig holds web search backend settings.
type WebSearchConfig struct {
	// Provider selects the search backend ("tavily", "searxng", ...).
	Provider string `yaml:"provider"`

	// APIKeyEnv is the env var holding the search API key.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// BaseURL overrides the backend endpoint (required for searxng).
	BaseURL string `yaml:"base_url,omitempty"`

	// MaxResults caps results per query when the caller does not specify.
	MaxResults int `yaml:"max_results"`
}

// WebFetchConfig holds full-page fetch settings.
type WebFetchConfig struct {
	// CacheTTL is how long fetched pages stay in the in-memory cache.
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// CacheSize is the maximum number of cached pages.
	CacheSize int `yaml:"cache_size"`

	// MaxConcurrentFetches bounds simultaneous outbound page fetches.
	MaxConcurrentFetches int `yaml:"max_concurrent_fetches"`

	// MaxContentBytes truncates extracted page text.
	MaxContentBytes int `yaml:"max_content_bytes"`

	// RequestTimeout is the per-fetch HTTP timeout.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// UserAgent is sent on outbound requests.
	UserAgent string `yaml:"user_agent,omitempty"`
}

// DocStoreConfig holds local document vector store settings.
type DocStoreConfig struct {
	// Path is the on-disk location of the vector store. Empty means in-memory.
	Path string `yaml:"path,omitempty"`

	// EmbeddingProvider names an llm-providers.yaml entry used for embeddings.
	EmbeddingProvider string `yaml:"embedding_provider,omitempty"`

	// EmbeddingModel overrides the provider's model for embedding calls.
	EmbeddingModel string `yaml:"embedding_model,omitempty"`

	// TopK caps chunk results per query when the caller does not specify.
	TopK int `yaml:"top_k"`
}

// DefaultToolsConfig returns the built-in tool defaults.
func DefaultToolsConfig() *ToolsConfig {
	return &ToolsConfig{
		WebSearch: &WebSearchConfig{
			Provider:   "tavily",
			APIKeyEnv:  "TAVILY_API_KEY",
			MaxResults: 5,
		},
		WebFetch: &WebFetchConfig{
			CacheTTL:             24 * time.Hour,
			CacheSize:            512,
			MaxConcurrentFetches: 3,
			MaxContentBytes:      256 * 1024,
			RequestTimeout:       30 * time.Second,
			UserAgent:            "maestro-research/1.0",
		},
		DocStore: &DocStoreConfig{
			EmbeddingModel: "text-embedding-3-small",
			TopK:           5,
		},
	}
}
