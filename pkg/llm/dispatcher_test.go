package llm

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/config"
)

// fakeChat scripts provider responses. Each call consumes the next scripted
// result; calls past the script return the last one.
type fakeChat struct {
	mu       sync.Mutex
	requests []openai.ChatCompletionRequest
	script   []fakeResult
}

type fakeResult struct {
	resp openai.ChatCompletionResponse
	err  error
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	idx := len(f.requests) - 1
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	return f.script[idx].resp, f.script[idx].err
}

func (f *fakeChat) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeChat) request(i int) openai.ChatCompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[i]
}

func textResponse(text string, promptTokens, completionTokens int) fakeResult {
	return fakeResult{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: text}},
			},
			Usage: openai.Usage{
				PromptTokens:     promptTokens,
				CompletionTokens: completionTokens,
				TotalTokens:      promptTokens + completionTokens,
			},
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		LLM: &config.LLMConfig{
			MaxConcurrentCalls: 4,
			MaxRetries:         2,
			Tiers: map[config.ModelTier]string{
				config.TierFast:        "fast-provider",
				config.TierIntelligent: "smart-provider",
			},
		},
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"fast-provider": {
				Type:              config.LLMProviderTypeOpenAI,
				Model:             "gpt-4o-mini",
				MaxContextTokens:  128000,
				InputCostPerMTok:  0.15,
				OutputCostPerMTok: 0.6,
			},
			"smart-provider": {
				Type:              config.LLMProviderTypeOpenAI,
				Model:             "gpt-4o",
				MaxContextTokens:  128000,
				InputCostPerMTok:  2.5,
				OutputCostPerMTok: 10,
			},
		}),
	}
}

func newTestDispatcher(t *testing.T, fake *fakeChat) *Dispatcher {
	t.Helper()
	d := NewDispatcher(testConfig())
	d.factory.newClient = func(string, *config.LLMProviderConfig) (ChatClient, error) {
		return fake, nil
	}
	return d
}

func TestDispatcher_Complete(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{textResponse("hello there", 1000, 500)}}
	d := newTestDispatcher(t, fake)

	resp, err := d.Complete(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello there", resp.Text)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, "fast-provider", resp.Provider)
	assert.Equal(t, 1000, resp.Usage.PromptTokens)
	assert.Equal(t, 500, resp.Usage.CompletionTokens)
	assert.False(t, resp.Usage.Estimated)
	// 1000 * 0.15/1M + 500 * 0.6/1M
	assert.InDelta(t, 0.00045, resp.Usage.Cost, 1e-9)

	assert.Equal(t, 1, fake.callCount())
	assert.Equal(t, "gpt-4o-mini", fake.request(0).Model)
	assert.Nil(t, fake.request(0).ResponseFormat)
}

func TestDispatcher_Complete_TierOverride(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{textResponse("ok", 10, 5)}}
	d := newTestDispatcher(t, fake)

	resp, err := d.Complete(context.Background(), "mission-1", Request{
		Tier:          config.TierFast,
		TierOverrides: map[config.ModelTier]string{config.TierFast: "smart-provider"},
		Messages:      []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "smart-provider", resp.Provider)
	assert.Equal(t, "gpt-4o", fake.request(0).Model)
}

func TestDispatcher_Complete_UnboundTier(t *testing.T) {
	d := newTestDispatcher(t, &fakeChat{script: []fakeResult{{}}})

	_, err := d.Complete(context.Background(), "mission-1", Request{
		Tier:     config.TierVerifier,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Equal(t, KindConfiguration, KindOf(err))
	assert.Contains(t, err.Error(), "verifier")
}

func TestDispatcher_Complete_UnknownProvider(t *testing.T) {
	d := newTestDispatcher(t, &fakeChat{script: []fakeResult{{}}})

	_, err := d.Complete(context.Background(), "mission-1", Request{
		Tier:          config.TierFast,
		TierOverrides: map[config.ModelTier]string{config.TierFast: "nonexistent"},
		Messages:      []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Equal(t, KindConfiguration, KindOf(err))
}

func TestDispatcher_Complete_RetriesTransient(t *testing.T) {
	rateLimited := &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "rate limit"}
	fake := &fakeChat{script: []fakeResult{
		{err: rateLimited},
		{err: rateLimited},
		textResponse("recovered", 10, 5),
	}}
	d := newTestDispatcher(t, fake)

	resp, err := d.Complete(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Text)
	assert.Equal(t, 3, fake.callCount())
}

func TestDispatcher_Complete_RetriesExhausted(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{
		{err: &openai.APIError{HTTPStatusCode: http.StatusServiceUnavailable, Message: "overloaded"}},
	}}
	d := newTestDispatcher(t, fake)

	_, err := d.Complete(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Equal(t, KindTransient, KindOf(err))
	// MaxRetries=2 means 3 attempts total.
	assert.Equal(t, 3, fake.callCount())
}

func TestDispatcher_Complete_NoRetryOnConfigurationError(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{
		{err: &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "bad key"}},
	}}
	d := newTestDispatcher(t, fake)

	_, err := d.Complete(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Equal(t, KindConfiguration, KindOf(err))
	assert.Equal(t, 1, fake.callCount())
}

func TestDispatcher_Complete_EstimatesMissingUsage(t *testing.T) {
	resp := textResponse("four words of output", 0, 0)
	resp.resp.Usage = openai.Usage{}
	fake := &fakeChat{script: []fakeResult{resp}}
	d := newTestDispatcher(t, fake)

	got, err := d.Complete(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "count my tokens please"}},
	})
	require.NoError(t, err)
	assert.True(t, got.Usage.Estimated)
	assert.Greater(t, got.Usage.PromptTokens, 0)
	assert.Greater(t, got.Usage.CompletionTokens, 0)
}

func TestDispatcher_Complete_UsageOnResponse(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{textResponse("ok", 100, 50)}}
	d := newTestDispatcher(t, fake)

	resp, err := d.Complete(context.Background(), "mission-7", Request{
		Tier:     config.TierIntelligent,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", resp.Model)
	assert.Equal(t, "smart-provider", resp.Provider)
	assert.Equal(t, 100, resp.Usage.PromptTokens)
	assert.Equal(t, 50, resp.Usage.CompletionTokens)
	assert.InDelta(t, 100*2.5/1e6+50*10/1e6, resp.Usage.Cost, 1e-9)
}

func TestDispatcher_Complete_TemperaturePrecedence(t *testing.T) {
	reqTemp := float32(0.2)
	provTemp := float32(0.9)

	cfg := testConfig()
	p, err := cfg.GetLLMProvider("fast-provider")
	require.NoError(t, err)
	p.Temperature = &provTemp

	fake := &fakeChat{script: []fakeResult{textResponse("ok", 1, 1), textResponse("ok", 1, 1)}}
	d := NewDispatcher(cfg)
	d.factory.newClient = func(string, *config.LLMProviderConfig) (ChatClient, error) {
		return fake, nil
	}

	_, err = d.Complete(context.Background(), "", Request{
		Tier:        config.TierFast,
		Messages:    []Message{{Role: RoleUser, Content: "hi"}},
		Temperature: &reqTemp,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, fake.request(0).Temperature, 1e-6)

	_, err = d.Complete(context.Background(), "", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, fake.request(1).Temperature, 1e-6)
}

func TestDispatcher_Complete_ClientBuildFailure(t *testing.T) {
	d := NewDispatcher(testConfig())
	d.factory.newClient = func(name string, _ *config.LLMProviderConfig) (ChatClient, error) {
		return nil, &Error{Kind: KindConfiguration, Provider: name, Message: "no key"}
	}

	_, err := d.Complete(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Equal(t, KindConfiguration, KindOf(err))
}

func TestDispatcher_CompleteJSON_StrictMode(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{textResponse(`{"summary": "done", "score": 7}`, 20, 10)}}
	d := newTestDispatcher(t, fake)

	resp, err := d.CompleteJSON(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "summarize"}},
		Schema: map[string]any{
			"type":     "object",
			"required": []any{"summary"},
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"score":   map[string]any{"type": "number"},
			},
		},
	})
	require.NoError(t, err)

	assert.False(t, resp.Repaired)
	obj, ok := resp.Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "done", obj["summary"])

	// First attempt must request strict JSON output.
	require.NotNil(t, fake.request(0).ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, fake.request(0).ResponseFormat.Type)
}

func TestDispatcher_CompleteJSON_RepairsFencedOutput(t *testing.T) {
	fenced := "Here is the result:\n```json\n{\"summary\": \"wrapped\"}\n```"
	fake := &fakeChat{script: []fakeResult{textResponse(fenced, 20, 10)}}
	d := newTestDispatcher(t, fake)

	resp, err := d.CompleteJSON(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "summarize"}},
		Schema: map[string]any{
			"type":     "object",
			"required": []any{"summary"},
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
			},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Repaired)
	obj := resp.Value.(map[string]any)
	assert.Equal(t, "wrapped", obj["summary"])
	// Repair succeeded on the first call; no guided retry needed.
	assert.Equal(t, 1, fake.callCount())
}

func TestDispatcher_CompleteJSON_GuidedRetryAfterInvalidOutput(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{
		textResponse(`{"wrong_field": true}`, 20, 10),
		textResponse(`{"summary": "second try"}`, 25, 10),
	}}
	d := newTestDispatcher(t, fake)

	resp, err := d.CompleteJSON(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "summarize"}},
		Schema: map[string]any{
			"type":     "object",
			"required": []any{"summary"},
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "second try", resp.Value.(map[string]any)["summary"])

	require.Equal(t, 2, fake.callCount())
	// The guided retry inlines the schema in an extra user message.
	second := fake.request(1)
	last := second.Messages[len(second.Messages)-1]
	assert.Contains(t, last.Content, "JSON Schema")
	assert.Contains(t, last.Content, "summary")
	assert.Nil(t, second.ResponseFormat)
}

func TestDispatcher_CompleteJSON_SchemaFailureAfterRetry(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{
		textResponse("not json at all", 20, 10),
		textResponse("still not json", 20, 10),
	}}
	d := newTestDispatcher(t, fake)

	_, err := d.CompleteJSON(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "summarize"}},
		Schema: map[string]any{
			"type":     "object",
			"required": []any{"result"},
			"properties": map[string]any{
				"result": map[string]any{"type": "number"},
			},
		},
	})
	require.Error(t, err)
	assert.Equal(t, KindSchema, KindOf(err))
	assert.Equal(t, 2, fake.callCount())
}

func TestDispatcher_CompleteJSON_CoercesLoneString(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{textResponse(`"just the answer text"`, 20, 10)}}
	d := newTestDispatcher(t, fake)

	resp, err := d.CompleteJSON(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "answer"}},
		Schema: map[string]any{
			"type":     "object",
			"required": []any{"answer"},
			"properties": map[string]any{
				"answer": map[string]any{"type": "string"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "just the answer text", resp.Value.(map[string]any)["answer"])
}

func TestDispatcher_CompleteJSON_RequiresSchema(t *testing.T) {
	d := newTestDispatcher(t, &fakeChat{script: []fakeResult{{}}})

	_, err := d.CompleteJSON(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Equal(t, KindFatal, KindOf(err))
}

func TestDispatcher_CompleteJSON_PropagatesProviderError(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{
		{err: &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "bad key"}},
	}}
	d := newTestDispatcher(t, fake)

	_, err := d.CompleteJSON(context.Background(), "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		Schema:   map[string]any{"type": "object"},
	})
	require.Error(t, err)
	assert.Equal(t, KindConfiguration, KindOf(err))
	assert.Equal(t, 1, fake.callCount())
}

func TestDispatcher_Complete_ContextCancelled(t *testing.T) {
	fake := &fakeChat{script: []fakeResult{{err: context.Canceled}}}
	d := newTestDispatcher(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Complete(ctx, "mission-1", Request{
		Tier:     config.TierFast,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || KindOf(err) == KindFatal)
}
