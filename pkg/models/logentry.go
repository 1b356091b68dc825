package models

import "time"

// RecordStatus is the outcome of one agent or tool action.
type RecordStatus string

const (
	RecordSuccess RecordStatus = "success"
	RecordFailure RecordStatus = "failure"
	RecordWarning RecordStatus = "warning"
)

// ModelDetails captures the model call behind a log entry. Usage from a
// retried call that returned cached usage (all zeros) contributes nothing
// to mission stats.
type ModelDetails struct {
	ModelName        string  `json:"model_name"`
	Provider         string  `json:"provider"`
	Cost             float64 `json:"cost"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	NativeTokens     int     `json:"native_tokens,omitempty"`
}

// ToolCallRecord summarizes a single tool invocation made during the action.
type ToolCallRecord struct {
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// FileInteraction records a file read or write performed by a tool.
type FileInteraction struct {
	Path      string `json:"path"`
	Operation string `json:"operation"` // "read" or "write"
}

// ExecutionRecord is one append-only execution log entry. Sequence is
// assigned by the context store and is strictly increasing per mission.
type ExecutionRecord struct {
	EntryID          string            `json:"entry_id"`
	MissionID        string            `json:"mission_id"`
	Sequence         int               `json:"sequence"`
	Timestamp        time.Time         `json:"timestamp"`
	AgentName        string            `json:"agent_name"`
	Action           string            `json:"action"`
	InputSummary     string            `json:"input_summary,omitempty"`
	OutputSummary    string            `json:"output_summary,omitempty"`
	Status           RecordStatus      `json:"status"`
	ErrorMessage     string            `json:"error_message,omitempty"`
	FullInput        string            `json:"full_input,omitempty"`
	FullOutput       string            `json:"full_output,omitempty"`
	ModelDetails     *ModelDetails     `json:"model_details,omitempty"`
	ToolCalls        []ToolCallRecord  `json:"tool_calls,omitempty"`
	FileInteractions []FileInteraction `json:"file_interactions,omitempty"`
}
