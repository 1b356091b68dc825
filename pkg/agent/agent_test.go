package agent

import (
	"context"
	"sync"

	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

// scripted fakes shared by the agent tests. Calls past the end of a script
// reuse its last entry.

type jsonStep struct {
	value any
	err   error
}

type textStep struct {
	text string
	err  error
}

type fakeCompleter struct {
	mu        sync.Mutex
	jsonSteps []jsonStep
	textSteps []textStep
	jsonCalls []llm.Request
	textCalls []llm.Request
}

func (f *fakeCompleter) CompleteJSON(_ context.Context, _ string, req llm.Request) (*llm.JSONResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jsonCalls = append(f.jsonCalls, req)

	step := jsonStep{err: &llm.Error{Kind: llm.KindFatal, Message: "no scripted response"}}
	if len(f.jsonSteps) > 0 {
		idx := len(f.jsonCalls) - 1
		if idx >= len(f.jsonSteps) {
			idx = len(f.jsonSteps) - 1
		}
		step = f.jsonSteps[idx]
	}
	if step.err != nil {
		return nil, step.err
	}
	return &llm.JSONResponse{
		Value: step.value,
		Response: llm.Response{
			Model:    "test-model",
			Provider: "test-provider",
			Usage:    llm.Usage{PromptTokens: 10, CompletionTokens: 5, Cost: 0.001},
		},
	}, nil
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, req llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.textCalls = append(f.textCalls, req)

	step := textStep{err: &llm.Error{Kind: llm.KindFatal, Message: "no scripted response"}}
	if len(f.textSteps) > 0 {
		idx := len(f.textCalls) - 1
		if idx >= len(f.textSteps) {
			idx = len(f.textSteps) - 1
		}
		step = f.textSteps[idx]
	}
	if step.err != nil {
		return nil, step.err
	}
	return &llm.Response{
		Text:     step.text,
		Model:    "test-model",
		Provider: "test-provider",
		Usage:    llm.Usage{PromptTokens: 10, CompletionTokens: 5, Cost: 0.001},
	}, nil
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []models.ExecutionRecord
}

func (f *fakeRecorder) AppendLog(_ context.Context, _ string, rec models.ExecutionRecord) (*models.ExecutionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeRecorder) lastRecord() (models.ExecutionRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.records) == 0 {
		return models.ExecutionRecord{}, false
	}
	return f.records[len(f.records)-1], true
}

type fakeToolRunner struct {
	mu      sync.Mutex
	results map[string]any   // tool name → result
	errs    map[string]error // tool name → error
	calls   []struct {
		Tool string
		Args map[string]any
	}
}

func newFakeToolRunner() *fakeToolRunner {
	return &fakeToolRunner{results: make(map[string]any), errs: make(map[string]error)}
}

func (f *fakeToolRunner) Execute(_ context.Context, _, _, toolName string, args map[string]any) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, struct {
		Tool string
		Args map[string]any
	}{toolName, args})
	if err := f.errs[toolName]; err != nil {
		return nil, err
	}
	return f.results[toolName], nil
}

func (f *fakeToolRunner) callsFor(tool string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Tool == tool {
			n++
		}
	}
	return n
}

func testMission() *models.MissionContext {
	return &models.MissionContext{
		MissionID:   "mission-1",
		UserRequest: "Write a short summary of the CAP theorem.",
		Status:      models.StatusPlanning,
		Metadata: models.MissionMetadata{
			ToolSelection:   models.ToolSelection{LocalRAG: true, WebSearch: true},
			MissionSettings: models.DefaultMissionSettings(),
		},
	}
}

func testSection() *models.ReportSection {
	return &models.ReportSection{
		SectionID:        "sec_intro",
		Title:            "CAP theorem fundamentals",
		Description:      "Consistency, availability, and partition tolerance trade-offs in distributed systems.",
		ResearchStrategy: models.StrategyResearchBased,
	}
}
