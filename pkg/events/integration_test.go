package events_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/pkg/database"
	. "github.com/maestro-research/maestro/pkg/events"
	"github.com/maestro-research/maestro/pkg/models"
	"github.com/maestro-research/maestro/pkg/services"
	testdb "github.com/maestro-research/maestro/test/database"
	"github.com/maestro-research/maestro/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	missionID    string // Pre-created Mission (satisfies FK on events)
	channel      string // mission:<missionID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create Mission required by FK on events table
	missionID := uuid.New().String()
	_, err := dbClient.Mission.Create().
		SetID(missionID).
		SetChatID("chat-integration").
		SetUserID("user-integration").
		SetUserRequest("integration test mission").
		SetStatus(mission.StatusPending).
		SetContextData(&models.MissionContext{MissionID: missionID}).
		Save(ctx)
	require.NoError(t, err)

	channel := MissionChannel(missionID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		missionID:    missionID,
		channel:      channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the connection.
// The connection is automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.IsListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishLogEntry(ctx, env.missionID, LogEntryPayload{
		Type:          EventTypeLogEntry,
		EntryID:       uuid.New().String(),
		MissionID:     env.missionID,
		Sequence:      1,
		AgentName:     "AnalysisAgent",
		Action:        "analyze_request",
		OutputSummary: "first event",
		Status:        models.RecordSuccess,
		Timestamp:     time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	err = env.publisher.PublishSectionUpdated(ctx, env.missionID, SectionUpdatedPayload{
		Type:      EventTypeSectionUpdate,
		MissionID: env.missionID,
		SectionID: "sec-1",
		Title:     "second event",
		Pass:      1,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, env.missionID, events[0].MissionID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeLogEntry, events[0].Payload["type"])
	assert.Equal(t, "first event", events[0].Payload["output_summary"])

	assert.Equal(t, EventTypeSectionUpdate, events[1].Payload["type"])
	assert.Equal(t, "second event", events[1].Payload["title"])

	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishToolCall(ctx, env.missionID, ToolCallPayload{
		Type:      EventTypeToolCallStarted,
		CallID:    uuid.New().String(),
		MissionID: env.missionID,
		ToolName:  "web_search",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishPlanUpdated(ctx, env.missionID, PlanUpdatedPayload{
		Type:      EventTypePlanUpdated,
		MissionID: env.missionID,
		Plan:      &models.ReportSection{SectionID: "root", Title: "hello from publisher"},
		Revision:  1,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// The event arrives via pg_notify → listener → manager.
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypePlanUpdated, msg["type"])
	assert.Equal(t, env.missionID, msg["mission_id"])
	plan, ok := msg["plan"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hello from publisher", plan["title"])
	// _msg_id and db_event_id are added by persistAndNotify after INSERT
	assert.NotNil(t, msg["_msg_id"])
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_TransientEventDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishThoughtPadUpdated(ctx, env.missionID, ThoughtPadUpdatedPayload{
		Type:      EventTypeThoughtPadUpdated,
		MissionID: env.missionID,
		Thoughts: []models.ThoughtEntry{
			{ID: "t-1", Timestamp: time.Now().UTC(), Text: "check the 2024 meta-analysis", SourceAgent: "ReflectionAgent"},
		},
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeThoughtPadUpdated, msg["type"])
	assert.NotNil(t, msg["_msg_id"], "transient events still carry a message id")

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted")
}

func TestIntegration_MissionStatusDualChannel(t *testing.T) {
	// status_changed goes to both the mission channel (persistent) and the
	// global missions channel (transient).
	env := setupStreamingTest(t)
	ctx := context.Background()

	missionConn := env.subscribeAndWait(t)

	// Second client on the global channel.
	globalConn := env.connectWS(t)
	msg := readJSONTimeout(t, globalConn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: GlobalMissionsChannel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, globalConn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, globalConn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])
	require.Eventually(t, func() bool {
		return env.listener.IsListening(GlobalMissionsChannel)
	}, 2*time.Second, 10*time.Millisecond)

	err := env.publisher.PublishMissionStatus(ctx, env.missionID, MissionStatusPayload{
		Type:      EventTypeMissionStatus,
		MissionID: env.missionID,
		Status:    models.StatusRunning,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	missionMsg := readJSONTimeout(t, missionConn, 5*time.Second)
	assert.Equal(t, EventTypeMissionStatus, missionMsg["type"])
	assert.Equal(t, "running", missionMsg["status"])
	assert.NotNil(t, missionMsg["db_event_id"], "mission-channel copy is persistent")

	globalMsg := readJSONTimeout(t, globalConn, 5*time.Second)
	assert.Equal(t, EventTypeMissionStatus, globalMsg["type"])
	assert.Equal(t, env.missionID, globalMsg["mission_id"])
	assert.Nil(t, globalMsg["db_event_id"], "global copy is transient")
	assert.NotNil(t, globalMsg["_msg_id"])

	// Only the mission-channel copy lands in the events table.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	globalEvents, err := env.eventService.GetEventsSince(ctx, GlobalMissionsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents)
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events.
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishLogEntry(ctx, env.missionID, LogEntryPayload{
			Type:      EventTypeLogEntry,
			EntryID:   uuid.New().String(),
			MissionID: env.missionID,
			Sequence:  i,
			AgentName: "ResearchAgent",
			Action:    "web_search",
			Status:    models.RecordSuccess,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
	}

	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection).
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately.
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeLogEntry, msg["type"])
		assert.Equal(t, float64(i), msg["sequence"])
	}

	// Explicit catchup from the first event's ID returns only events 2 and 3.
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, float64(i), msg["sequence"])
	}

	// No more messages — verify with short timeout.
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}

func TestIntegration_DedupSuppressesBurstDuplicates(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Identical stats published twice back-to-back: only one row lands.
	payload := StatsUpdatedPayload{
		Type:      EventTypeStatsUpdated,
		MissionID: env.missionID,
		Stats:     models.MissionStats{Cost: 0.5, PromptTokens: 100},
		Timestamp: "2026-02-10T12:00:00Z",
	}
	require.NoError(t, env.publisher.PublishStatsUpdated(ctx, env.missionID, payload))
	require.NoError(t, env.publisher.PublishStatsUpdated(ctx, env.missionID, payload))

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 1, "burst duplicate should be suppressed")
}
