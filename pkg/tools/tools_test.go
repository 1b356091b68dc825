package tools

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/events"
)

type fakePublisher struct {
	mu        sync.Mutex
	toolCalls []events.ToolCallPayload
	fetches   []events.WebFetchPayload
	err       error
}

func (f *fakePublisher) PublishToolCall(_ context.Context, _ string, payload events.ToolCallPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toolCalls = append(f.toolCalls, payload)
	return f.err
}

func (f *fakePublisher) PublishWebFetch(_ context.Context, _ string, payload events.WebFetchPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches = append(f.fetches, payload)
	return f.err
}

func (f *fakePublisher) toolCallTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, len(f.toolCalls))
	for i, p := range f.toolCalls {
		types[i] = p.Type
	}
	return types
}

func (f *fakePublisher) fetchTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, len(f.fetches))
	for i, p := range f.fetches {
		types[i] = p.Type
	}
	return types
}

type recordedCall struct {
	missionID string
	toolName  string
}

type fakeCounter struct {
	mu    sync.Mutex
	calls []recordedCall
	err   error
}

func (f *fakeCounter) RecordToolCall(_ context.Context, missionID, toolName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{missionID, toolName})
	return f.err
}

type echoTool struct {
	name    string
	result  any
	err     error
	gotArgs map[string]any
}

func (t *echoTool) Name() string                 { return t.name }
func (t *echoTool) Description() string          { return "test tool" }
func (t *echoTool) InputSchema() map[string]any  { return map[string]any{"type": "object"} }
func (t *echoTool) Execute(_ context.Context, _ string, args map[string]any) (any, error) {
	t.gotArgs = args
	return t.result, t.err
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry(nil, nil)
	tool := &echoTool{name: "echo"}
	r.Register(tool)

	got, err := r.Get("echo")
	require.NoError(t, err)
	assert.Equal(t, tool, got)
	assert.Contains(t, r.List(), "echo")

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestRegistry_ExecuteEmitsEventsAndCounts(t *testing.T) {
	publisher := &fakePublisher{}
	counter := &fakeCounter{}
	r := NewRegistry(publisher, counter)
	r.Register(&echoTool{name: "web_search", result: "ten results"})

	result, err := r.Execute(context.Background(), "mission-1", "ResearchAgent", "web_search",
		map[string]any{"query": "solid state batteries"})
	require.NoError(t, err)
	assert.Equal(t, "ten results", result)

	require.Equal(t, []string{events.EventTypeToolCallStarted, events.EventTypeToolCallCompleted},
		publisher.toolCallTypes())

	started := publisher.toolCalls[0]
	completed := publisher.toolCalls[1]
	assert.NotEmpty(t, started.CallID)
	assert.Equal(t, started.CallID, completed.CallID)
	assert.Equal(t, "ResearchAgent", started.AgentName)
	assert.Equal(t, "solid state batteries", started.Arguments["query"])
	assert.Equal(t, len("ten results"), completed.ResultSize)
	assert.Empty(t, completed.Error)

	require.Len(t, counter.calls, 1)
	assert.Equal(t, recordedCall{"mission-1", "web_search"}, counter.calls[0])
}

func TestRegistry_ExecuteToolFailure(t *testing.T) {
	publisher := &fakePublisher{}
	counter := &fakeCounter{}
	r := NewRegistry(publisher, counter)
	toolErr := errors.New("backend down")
	r.Register(&echoTool{name: "web_search", err: toolErr})

	_, err := r.Execute(context.Background(), "mission-1", "ResearchAgent", "web_search", nil)
	assert.ErrorIs(t, err, toolErr)

	require.Len(t, publisher.toolCalls, 2)
	assert.Equal(t, "backend down", publisher.toolCalls[1].Error)
	// Failed calls do not bump retrieval counters.
	assert.Empty(t, counter.calls)
}

func TestRegistry_ExecuteUnknownTool(t *testing.T) {
	publisher := &fakePublisher{}
	r := NewRegistry(publisher, nil)

	_, err := r.Execute(context.Background(), "mission-1", "agent", "ghost", nil)
	assert.ErrorIs(t, err, ErrToolNotFound)
	assert.Empty(t, publisher.toolCalls)
}

func TestRegistry_ExecuteWithoutPublisherOrCounter(t *testing.T) {
	r := NewRegistry(nil, nil)
	r.Register(&echoTool{name: "calculator", result: float64(4)})

	result, err := r.Execute(context.Background(), "mission-1", "agent", "calculator", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(4), result)
}

func TestRegistry_ExecuteWithoutMissionSkipsCounting(t *testing.T) {
	counter := &fakeCounter{}
	r := NewRegistry(nil, counter)
	r.Register(&echoTool{name: "calculator", result: "ok"})

	_, err := r.Execute(context.Background(), "", "agent", "calculator", nil)
	require.NoError(t, err)
	assert.Empty(t, counter.calls)
}

func TestStringArg(t *testing.T) {
	v, err := stringArg(map[string]any{"query": "hello"}, "query")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = stringArg(map[string]any{"query": ""}, "query")
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = stringArg(map[string]any{"query": 42}, "query")
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = stringArg(map[string]any{}, "query")
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestIntArg(t *testing.T) {
	assert.Equal(t, 7, intArg(map[string]any{"k": 7}, "k", 3))
	// JSON decoding produces float64.
	assert.Equal(t, 7, intArg(map[string]any{"k": float64(7)}, "k", 3))
	assert.Equal(t, 3, intArg(map[string]any{}, "k", 3))
	assert.Equal(t, 3, intArg(map[string]any{"k": "nope"}, "k", 3))
}

func TestResultSize(t *testing.T) {
	assert.Equal(t, 5, resultSize("hello"))
	assert.Equal(t, 3, resultSize([]byte("abc")))
	assert.Equal(t, 0, resultSize(map[string]any{"a": 1}))
	assert.Equal(t, 0, resultSize(nil))
}
