package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

// RequestProfile classifies a research request along the axes the planner
// and writer condition on.
type RequestProfile struct {
	Tone              string   `json:"tone"`
	Audience          string   `json:"audience"`
	Length            string   `json:"length"`
	Format            string   `json:"format"`
	SourcePreferences []string `json:"source_preferences,omitempty"`
	Goals             []string `json:"goals"`
}

// Goal renders the profile as a single goal pad entry.
func (p *RequestProfile) Goal() string {
	parts := []string{}
	if p.Tone != "" {
		parts = append(parts, "tone: "+p.Tone)
	}
	if p.Audience != "" {
		parts = append(parts, "audience: "+p.Audience)
	}
	if p.Length != "" {
		parts = append(parts, "length: "+p.Length)
	}
	if p.Format != "" {
		parts = append(parts, "format: "+p.Format)
	}
	if len(parts) == 0 {
		return "Produce a report answering the request."
	}
	return "Produce a report with " + strings.Join(parts, ", ") + "."
}

var requestProfileSchema = map[string]any{
	"type":     "object",
	"required": []any{"tone", "audience", "length", "format", "goals"},
	"properties": map[string]any{
		"tone":               map[string]any{"type": "string"},
		"audience":           map[string]any{"type": "string"},
		"length":             map[string]any{"type": "string"},
		"format":             map[string]any{"type": "string"},
		"source_preferences": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"goals":              map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
}

// AnalysisAgent classifies the user request before planning starts.
type AnalysisAgent struct {
	completer Completer
	recorder  Recorder
}

// NewAnalysisAgent builds the analysis agent. recorder may be nil.
func NewAnalysisAgent(completer Completer, recorder Recorder) *AnalysisAgent {
	return &AnalysisAgent{completer: completer, recorder: recorder}
}

// Analyze profiles the request. A schema failure degrades to a neutral
// default profile rather than failing the mission.
func (a *AnalysisAgent) Analyze(ctx context.Context, mc *models.MissionContext) (*RequestProfile, error) {
	req := llm.Request{
		Tier:   config.TierFast,
		Schema: requestProfileSchema,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: analysisSystemPrompt},
			{Role: llm.RoleUser, Content: analysisUserPrompt(mc)},
		},
	}

	resp, err := a.completer.CompleteJSON(ctx, missionIDOf(mc), req)
	if err != nil {
		if llm.KindOf(err) == llm.KindSchema {
			record(ctx, a.recorder, mc.MissionID, models.ExecutionRecord{
				AgentName:     AgentMessenger,
				Action:        "Analyze request",
				InputSummary:  summarize(mc.UserRequest, 200),
				OutputSummary: "Unparseable profile; using defaults",
				Status:        models.RecordWarning,
				ErrorMessage:  err.Error(),
			})
			return defaultProfile(), nil
		}
		return nil, fmt.Errorf("request analysis failed: %w", err)
	}

	var profile RequestProfile
	if err := decodeValue(resp.Value, &profile); err != nil {
		return defaultProfile(), nil
	}

	record(ctx, a.recorder, mc.MissionID, models.ExecutionRecord{
		AgentName:     AgentMessenger,
		Action:        "Analyze request",
		InputSummary:  summarize(mc.UserRequest, 200),
		OutputSummary: summarize(profile.Goal(), 200),
		Status:        models.RecordSuccess,
		ModelDetails:  modelDetails(&resp.Response),
	})
	return &profile, nil
}

func defaultProfile() *RequestProfile {
	return &RequestProfile{
		Tone:     "neutral",
		Audience: "general",
		Length:   "medium",
		Format:   "report",
	}
}

func missionIDOf(mc *models.MissionContext) string {
	if mc == nil {
		return ""
	}
	return mc.MissionID
}
