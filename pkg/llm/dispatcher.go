package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/sync/semaphore"

	"github.com/maestro-research/maestro/pkg/config"
)

// completionTimeout bounds a single provider call when the caller's context
// carries no deadline. Long completions (writing passes) stay under this.
const completionTimeout = 120 * time.Second

// Dispatcher routes completions to tier-bound providers under a process-wide
// concurrency cap.
//
// All callers share one Dispatcher per process; the semaphore is what keeps
// a burst of concurrent missions from overrunning provider rate limits.
//
// The Dispatcher does not touch mission stats itself: usage travels back on
// the Response and reaches the stats exactly once, through the model details
// on the caller's execution log entry.
type Dispatcher struct {
	cfg     *config.Config
	factory *clientFactory
	sem     *semaphore.Weighted
	logger  *slog.Logger
}

// NewDispatcher creates a Dispatcher using the configured concurrency cap.
func NewDispatcher(cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		cfg:     cfg,
		factory: newClientFactory(),
		sem:     semaphore.NewWeighted(int64(cfg.LLM.MaxConcurrentCalls)),
		logger:  slog.With("component", "llm.dispatcher"),
	}
}

// resolveProvider maps the request's tier to a provider config, honoring
// mission-level tier overrides.
func (d *Dispatcher) resolveProvider(req *Request) (string, *config.LLMProviderConfig, error) {
	name := ""
	if req.TierOverrides != nil {
		name = req.TierOverrides[req.Tier]
	}
	if name == "" {
		var ok bool
		name, ok = d.cfg.LLM.Tiers[req.Tier]
		if !ok {
			return "", nil, &Error{
				Kind:    KindConfiguration,
				Message: fmt.Sprintf("no provider bound for tier %q; update your model settings", req.Tier),
			}
		}
	}
	provider, err := d.cfg.GetLLMProvider(name)
	if err != nil {
		return "", nil, &Error{
			Kind:     KindConfiguration,
			Provider: name,
			Message:  fmt.Sprintf("provider %q is not configured; update your model settings", name),
			Err:      err,
		}
	}
	return name, provider, nil
}

// Complete dispatches a plain-text completion. missionID attributes usage to
// a mission's stats; pass "" for unattributed calls.
func (d *Dispatcher) Complete(ctx context.Context, missionID string, req Request) (*Response, error) {
	name, provider, err := d.resolveProvider(&req)
	if err != nil {
		return nil, err
	}
	return d.complete(ctx, missionID, name, provider, req, false)
}

// CompleteJSON dispatches a schema-constrained completion and parses the
// result. Strict JSON mode is requested first; if the output fails to parse
// or validate, one more call is made with the schema inlined into the prompt
// and the repair pipeline applied to its output. A value that still fails
// validation after string coercion returns a KindSchema error.
func (d *Dispatcher) CompleteJSON(ctx context.Context, missionID string, req Request) (*JSONResponse, error) {
	if req.Schema == nil {
		return nil, &Error{Kind: KindFatal, Message: "CompleteJSON requires a schema"}
	}
	name, provider, err := d.resolveProvider(&req)
	if err != nil {
		return nil, err
	}

	validator, err := compileSchema(req.Schema)
	if err != nil {
		return nil, &Error{Kind: KindFatal, Provider: name, Message: "invalid schema", Err: err}
	}

	// Attempt 1: strict JSON response format.
	var firstUsage Usage
	resp, err := d.complete(ctx, missionID, name, provider, req, true)
	if err == nil {
		if parsed, repaired, ok := parseJSONWithRepair(resp.Text); ok {
			parsed = coerceToSchema(req.Schema, parsed)
			if validator.Validate(parsed) == nil {
				return &JSONResponse{Value: parsed, Raw: resp.Text, Repaired: repaired, Response: *resp}, nil
			}
		}
		// The retry's response carries the combined usage so the caller's
		// single log entry accounts for both calls.
		firstUsage = resp.Usage
		d.logger.Warn("Strict JSON output failed validation, retrying with schema guidance",
			"mission_id", missionID, "tier", req.Tier)
	} else if KindOf(err) != KindSchema {
		return nil, err
	}

	// Attempt 2: unconstrained output with the schema appended to the prompt.
	guided := req
	schemaJSON, _ := json.Marshal(req.Schema)
	guided.Messages = append(append([]Message{}, req.Messages...), Message{
		Role: RoleUser,
		Content: "Respond with a single JSON value matching this JSON Schema exactly. " +
			"No prose, no code fences.\n" + string(schemaJSON),
	})
	resp, err = d.complete(ctx, missionID, name, provider, guided, false)
	if err != nil {
		return nil, err
	}
	resp.Usage.PromptTokens += firstUsage.PromptTokens
	resp.Usage.CompletionTokens += firstUsage.CompletionTokens
	resp.Usage.NativeTokens += firstUsage.NativeTokens
	resp.Usage.Cost += firstUsage.Cost

	parsed, repaired, ok := parseJSONWithRepair(resp.Text)
	if ok {
		parsed = coerceToSchema(req.Schema, parsed)
		if verr := validator.Validate(parsed); verr == nil {
			return &JSONResponse{Value: parsed, Raw: resp.Text, Repaired: repaired, Response: *resp}, nil
		}
	}
	return nil, &Error{
		Kind:     KindSchema,
		Provider: name,
		Message:  "model output did not match the requested schema after repair",
	}
}

// complete runs the provider call with the global semaphore held and bounded
// retries for transient failures.
func (d *Dispatcher) complete(ctx context.Context, missionID, name string, provider *config.LLMProviderConfig, req Request, strictJSON bool) (*Response, error) {
	client, err := d.factory.clientFor(name, provider)
	if err != nil {
		return nil, err
	}

	if err := d.sem.Acquire(ctx, 1); err != nil {
		return nil, &Error{Kind: KindFatal, Provider: name, Message: "cancelled while waiting for an LLM slot", Err: err}
	}
	defer d.sem.Release(1)

	chatReq := buildChatRequest(provider, req, strictJSON)

	var resp openai.ChatCompletionResponse
	var lastErr error
	maxAttempts := d.cfg.LLM.MaxRetries + 1
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &Error{Kind: KindFatal, Provider: name, Message: "cancelled during retry wait", Err: ctx.Err()}
			case <-time.After(backoffDelay(attempt - 1)):
			}
			d.logger.Info("Retrying LLM call",
				"mission_id", missionID, "provider", name, "attempt", attempt+1)
		}

		callCtx := ctx
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, completionTimeout)
			defer cancel()
		}

		resp, lastErr = client.CreateChatCompletion(callCtx, chatReq)
		if lastErr == nil {
			return d.buildResponse(name, provider, req, resp), nil
		}

		classified := classifyProviderError(name, lastErr)
		if classified.Kind != KindTransient || ctx.Err() != nil {
			return nil, classified
		}
		lastErr = classified
	}
	return nil, lastErr
}

func buildChatRequest(provider *config.LLMProviderConfig, req Request, strictJSON bool) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	chatReq := openai.ChatCompletionRequest{
		Model:    provider.Model,
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = req.MaxTokens
	}
	switch {
	case req.Temperature != nil:
		chatReq.Temperature = *req.Temperature
	case provider.Temperature != nil:
		chatReq.Temperature = *provider.Temperature
	}
	if strictJSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return chatReq
}

// buildResponse extracts text and usage, estimating tokens locally when the
// provider omitted usage.
func (d *Dispatcher) buildResponse(name string, provider *config.LLMProviderConfig, req Request, resp openai.ChatCompletionResponse) *Response {
	text := ""
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	usage := Usage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		NativeTokens:     resp.Usage.TotalTokens,
	}
	if usage.PromptTokens == 0 && usage.CompletionTokens == 0 {
		for _, m := range req.Messages {
			usage.PromptTokens += countTokens(m.Content)
		}
		usage.CompletionTokens = countTokens(text)
		usage.Estimated = true
	}
	usage.Cost = float64(usage.PromptTokens)*provider.InputCostPerMTok/1e6 +
		float64(usage.CompletionTokens)*provider.OutputCostPerMTok/1e6

	return &Response{Text: text, Model: provider.Model, Provider: name, Usage: usage}
}

// compileSchema compiles a JSON Schema document for output validation.
func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schema); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
}
