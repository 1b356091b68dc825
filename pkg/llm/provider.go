package llm

import (
	"context"
	"fmt"
	"os"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"github.com/maestro-research/maestro/pkg/config"
)

// openRouterBaseURL is used for openrouter providers that don't set base_url.
const openRouterBaseURL = "https://openrouter.ai/api/v1"

// ChatClient captures the subset of the go-openai client the dispatcher uses.
// Tests substitute a fake.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (
		openai.ChatCompletionResponse, error)
}

// clientFactory builds and caches one ChatClient per provider name.
// All three provider types speak the OpenAI chat protocol; only the base URL
// and key differ.
type clientFactory struct {
	mu      sync.Mutex
	clients map[string]ChatClient

	// newClient is swapped in tests.
	newClient func(name string, cfg *config.LLMProviderConfig) (ChatClient, error)
}

func newClientFactory() *clientFactory {
	return &clientFactory{
		clients:   make(map[string]ChatClient),
		newClient: buildOpenAIClient,
	}
}

func (f *clientFactory) clientFor(name string, cfg *config.LLMProviderConfig) (ChatClient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[name]; ok {
		return c, nil
	}
	c, err := f.newClient(name, cfg)
	if err != nil {
		return nil, err
	}
	f.clients[name] = c
	return c, nil
}

// buildOpenAIClient constructs the real go-openai client for a provider.
// Missing keys and endpoints surface as configuration errors so the mission
// fails fast with a user-facing message.
func buildOpenAIClient(name string, cfg *config.LLMProviderConfig) (ChatClient, error) {
	apiKey := ""
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}

	switch cfg.Type {
	case config.LLMProviderTypeOpenAI:
		if apiKey == "" {
			return nil, &Error{
				Kind:     KindConfiguration,
				Provider: name,
				Message:  fmt.Sprintf("API key env %s is not set; update your model settings", cfg.APIKeyEnv),
			}
		}
		return openai.NewClient(apiKey), nil

	case config.LLMProviderTypeOpenRouter:
		if apiKey == "" {
			return nil, &Error{
				Kind:     KindConfiguration,
				Provider: name,
				Message:  fmt.Sprintf("API key env %s is not set; update your model settings", cfg.APIKeyEnv),
			}
		}
		c := openai.DefaultConfig(apiKey)
		c.BaseURL = cfg.BaseURL
		if c.BaseURL == "" {
			c.BaseURL = openRouterBaseURL
		}
		return openai.NewClientWithConfig(c), nil

	case config.LLMProviderTypeCompatible:
		if cfg.BaseURL == "" {
			return nil, &Error{
				Kind:     KindConfiguration,
				Provider: name,
				Message:  "openai-compatible provider has no base_url; update your model settings",
			}
		}
		c := openai.DefaultConfig(apiKey)
		c.BaseURL = cfg.BaseURL
		return openai.NewClientWithConfig(c), nil

	default:
		return nil, &Error{
			Kind:     KindConfiguration,
			Provider: name,
			Message:  fmt.Sprintf("unknown provider type %q", cfg.Type),
		}
	}
}
