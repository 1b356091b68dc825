package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/llm"
	"github.com/maestro-research/maestro/pkg/models"
)

func TestAnalysisAgent_Analyze(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{{value: map[string]any{
		"tone":     "technical",
		"audience": "engineers",
		"length":   "short",
		"format":   "summary",
		"goals":    []any{"Explain the CAP trade-off"},
	}}}}
	recorder := &fakeRecorder{}
	agent := NewAnalysisAgent(completer, recorder)

	profile, err := agent.Analyze(context.Background(), testMission())
	require.NoError(t, err)

	assert.Equal(t, "technical", profile.Tone)
	assert.Equal(t, []string{"Explain the CAP trade-off"}, profile.Goals)
	assert.Contains(t, profile.Goal(), "tone: technical")

	require.Len(t, completer.jsonCalls, 1)
	assert.Equal(t, config.TierFast, completer.jsonCalls[0].Tier)
	assert.NotNil(t, completer.jsonCalls[0].Schema)

	rec, ok := recorder.lastRecord()
	require.True(t, ok)
	assert.Equal(t, AgentMessenger, rec.AgentName)
	assert.Equal(t, models.RecordSuccess, rec.Status)
	require.NotNil(t, rec.ModelDetails)
	assert.Equal(t, "test-model", rec.ModelDetails.ModelName)
}

func TestAnalysisAgent_SchemaFailureDegradesToDefaults(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{err: &llm.Error{Kind: llm.KindSchema, Message: "unparseable"}},
	}}
	recorder := &fakeRecorder{}
	agent := NewAnalysisAgent(completer, recorder)

	profile, err := agent.Analyze(context.Background(), testMission())
	require.NoError(t, err)
	assert.Equal(t, "neutral", profile.Tone)

	rec, ok := recorder.lastRecord()
	require.True(t, ok)
	assert.Equal(t, models.RecordWarning, rec.Status)
}

func TestAnalysisAgent_ProviderErrorPropagates(t *testing.T) {
	completer := &fakeCompleter{jsonSteps: []jsonStep{
		{err: &llm.Error{Kind: llm.KindConfiguration, Message: "missing key"}},
	}}
	agent := NewAnalysisAgent(completer, nil)

	_, err := agent.Analyze(context.Background(), testMission())
	require.Error(t, err)
	assert.Equal(t, llm.KindConfiguration, llm.KindOf(err))
}

func TestRequestProfile_Goal(t *testing.T) {
	empty := &RequestProfile{}
	assert.Equal(t, "Produce a report answering the request.", empty.Goal())

	full := &RequestProfile{Tone: "formal", Audience: "executives", Length: "long", Format: "whitepaper"}
	goal := full.Goal()
	assert.Contains(t, goal, "audience: executives")
	assert.Contains(t, goal, "format: whitepaper")
}
