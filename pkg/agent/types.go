// Package agent implements the mission agent set: request analysis, outline
// planning, research cycles, reflection, note assignment, section writing,
// and citation processing. Agents read mission snapshots and return typed
// result objects; only the controller mutates mission state. Errors cross
// the controller boundary only when fatal; everything else is carried in the
// result's status.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

// Agent name labels used in execution log entries and progress events.
const (
	AgentMessenger  = "MessengerAgent"
	AgentPlanner    = "PlannerAgent"
	AgentResearch   = "ResearchAgent"
	AgentReflection = "ReflectionAgent"
	AgentAssignment = "NoteAssignmentAgent"
	AgentWriting    = "WritingAgent"
	AgentCitation   = "CitationAgent"
)

// Completer is the slice of the model dispatcher the agents use.
type Completer interface {
	Complete(ctx context.Context, missionID string, req llm.Request) (*llm.Response, error)
	CompleteJSON(ctx context.Context, missionID string, req llm.Request) (*llm.JSONResponse, error)
}

// ToolRunner executes a registered tool on behalf of an agent. Satisfied by
// tools.Registry.
type ToolRunner interface {
	Execute(ctx context.Context, missionID, agentName, toolName string, args map[string]any) (any, error)
}

// Recorder appends execution log entries. Satisfied by the context store;
// nil disables logging in tests.
type Recorder interface {
	AppendLog(ctx context.Context, missionID string, rec models.ExecutionRecord) (*models.ExecutionRecord, error)
}

// record appends a log entry, swallowing append failures: a logging failure
// must never fail the step it describes.
func record(ctx context.Context, recorder Recorder, missionID string, rec models.ExecutionRecord) {
	if recorder == nil {
		return
	}
	_, _ = recorder.AppendLog(ctx, missionID, rec)
}

// modelDetails converts dispatcher usage into a log entry attachment.
// Estimated usage still counts toward stats; all-zero usage does not.
func modelDetails(resp *llm.Response) *models.ModelDetails {
	if resp == nil {
		return nil
	}
	return &models.ModelDetails{
		ModelName:        resp.Model,
		Provider:         resp.Provider,
		Cost:             resp.Usage.Cost,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		NativeTokens:     resp.Usage.NativeTokens,
	}
}

// decodeValue re-marshals a parsed JSON value into a typed struct.
func decodeValue(value any, out any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to re-encode model output: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("model output does not match the expected shape: %w", err)
	}
	return nil
}

// summarize truncates free text for log entry summaries.
func summarize(text string, limit int) string {
	if limit <= 0 {
		limit = 200
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
