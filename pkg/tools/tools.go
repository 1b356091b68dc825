// Package tools provides the retrieval and utility tools available to
// mission agents: local document search over a vector store, web search with
// query-aware parameter derivation, cached page fetching, and a calculator.
// Tools are registered by name and executed through the Registry, which
// emits tool_call progress events and bumps mission retrieval counters.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-research/maestro/pkg/events"
)

var (
	// ErrToolNotFound is returned when no tool is registered under a name.
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidArguments is returned when a tool rejects its arguments.
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

// Tool is a named operation an agent can invoke with free-form arguments.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]any
	Execute(ctx context.Context, missionID string, args map[string]any) (any, error)
}

// ProgressPublisher receives tool progress events. Satisfied by
// events.EventPublisher.
type ProgressPublisher interface {
	PublishToolCall(ctx context.Context, missionID string, payload events.ToolCallPayload) error
	PublishWebFetch(ctx context.Context, missionID string, payload events.WebFetchPayload) error
}

// CallCounter bumps per-mission retrieval counters. Satisfied by the context
// store; nil disables counting.
type CallCounter interface {
	RecordToolCall(ctx context.Context, missionID, toolName string) error
}

// Registry holds the registered tools and wraps execution with progress
// events and stats accounting.
type Registry struct {
	publisher ProgressPublisher
	counter   CallCounter
	logger    *slog.Logger

	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty registry. publisher and counter may be nil.
func NewRegistry(publisher ProgressPublisher, counter CallCounter) *Registry {
	return &Registry{
		publisher: publisher,
		counter:   counter,
		logger:    slog.With("component", "tools"),
		tools:     make(map[string]Tool),
	}
}

// Register adds a tool, replacing any previous tool with the same name.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return t, nil
}

// List returns the registered tool names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Execute runs a tool by name, emitting tool_call_start/complete events
// around the call and bumping the mission's retrieval counters. agentName
// labels the events for the dashboard.
func (r *Registry) Execute(ctx context.Context, missionID, agentName, toolName string, args map[string]any) (any, error) {
	tool, err := r.Get(toolName)
	if err != nil {
		return nil, err
	}

	callID := uuid.New().String()
	r.publishToolCall(ctx, missionID, events.ToolCallPayload{
		Type:      events.EventTypeToolCallStarted,
		CallID:    callID,
		MissionID: missionID,
		ToolName:  toolName,
		AgentName: agentName,
		Arguments: args,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})

	result, execErr := tool.Execute(ctx, missionID, args)

	completed := events.ToolCallPayload{
		Type:      events.EventTypeToolCallCompleted,
		CallID:    callID,
		MissionID: missionID,
		ToolName:  toolName,
		AgentName: agentName,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if execErr != nil {
		completed.Error = execErr.Error()
	} else {
		completed.ResultSize = resultSize(result)
	}
	r.publishToolCall(ctx, missionID, completed)

	if execErr == nil && r.counter != nil && missionID != "" {
		if err := r.counter.RecordToolCall(ctx, missionID, toolName); err != nil {
			r.logger.Warn("Failed to record tool call",
				"mission_id", missionID, "tool", toolName, "error", err)
		}
	}

	return result, execErr
}

func (r *Registry) publishToolCall(ctx context.Context, missionID string, payload events.ToolCallPayload) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.PublishToolCall(ctx, missionID, payload); err != nil {
		r.logger.Warn("Failed to publish tool call event",
			"mission_id", missionID, "tool", payload.ToolName, "error", err)
	}
}

func resultSize(result any) int {
	switch v := result.(type) {
	case string:
		return len(v)
	case []byte:
		return len(v)
	default:
		return 0
	}
}

// stringArg extracts a required string argument.
func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidArguments, key)
	}
	return v, nil
}

// intArg extracts an optional integer argument, tolerating the float64 that
// JSON decoding produces.
func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}
