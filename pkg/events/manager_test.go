package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, _ int, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func newTestServer(t *testing.T, manager *ConnectionManager) *httptest.Server {
	t.Helper()
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
	return server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	return manager, newTestServer(t, manager)
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeClientMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeUnsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "mission:test-123"})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "mission:test-123", msg["channel"])

	time.Sleep(50 * time.Millisecond) // let subscription propagate
	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	channel := "mission:broadcast-test"
	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn2)

	time.Sleep(100 * time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "test", "data": "hello"})
	manager.Broadcast(channel, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)

	assert.Equal(t, "test", msg1["type"])
	assert.Equal(t, "hello", msg1["data"])
	assert.Equal(t, "test", msg2["type"])
	assert.Equal(t, "hello", msg2["data"])
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "ping"})

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_Register(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{
		Action:         "register",
		UserID:         "user-1",
		ConnectionType: ConnectionTypeResearch,
	})

	msg := readJSON(t, conn)
	assert.Equal(t, "registration.confirmed", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_RegisterValidation(t *testing.T) {
	tests := []struct {
		name        string
		msg         ClientMessage
		errContains string
	}{
		{
			name:        "missing user_id",
			msg:         ClientMessage{Action: "register", ConnectionType: ConnectionTypeResearch},
			errContains: "user_id is required",
		},
		{
			name:        "invalid connection_type",
			msg:         ClientMessage{Action: "register", UserID: "u1", ConnectionType: "batch"},
			errContains: "invalid connection_type",
		},
		{
			name:        "writing without session_id",
			msg:         ClientMessage{Action: "register", UserID: "u1", ConnectionType: ConnectionTypeWriting},
			errContains: "session_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, server := setupTestManager(t)
			conn := connectWS(t, server)
			readJSON(t, conn) // connection.established

			writeClientMessage(t, conn, tt.msg)

			msg := readJSON(t, conn)
			assert.Equal(t, "error", msg["type"])
			assert.Contains(t, msg["message"], tt.errContains)
		})
	}
}

func TestConnectionManager_SendToUser(t *testing.T) {
	manager, server := setupTestManager(t)

	// Two connections for user-1, one for user-2.
	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	conn3 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)
	readJSON(t, conn3)

	writeClientMessage(t, conn1, ClientMessage{Action: "register", UserID: "user-1", ConnectionType: ConnectionTypeResearch})
	writeClientMessage(t, conn2, ClientMessage{Action: "register", UserID: "user-1", ConnectionType: ConnectionTypeDocument})
	writeClientMessage(t, conn3, ClientMessage{Action: "register", UserID: "user-2", ConnectionType: ConnectionTypeResearch})
	readJSON(t, conn1) // registration.confirmed
	readJSON(t, conn2)
	readJSON(t, conn3)

	payload, _ := json.Marshal(map[string]string{"type": "direct", "to": "user-1"})
	manager.SendToUser("user-1", payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)
	assert.Equal(t, "direct", msg1["type"])
	assert.Equal(t, "direct", msg2["type"])

	// user-2's connection should receive nothing.
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn3.Read(readCtx)
	assert.Error(t, err, "user-2 should not receive user-1's message")
}

func TestConnectionManager_WritingSessionSingleton(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	writeClientMessage(t, conn1, ClientMessage{
		Action:         "register",
		UserID:         "user-1",
		ConnectionType: ConnectionTypeWriting,
		SessionID:      "sess-1",
	})
	readJSON(t, conn1) // registration.confirmed

	// Second connection registers for the same session. The first must be
	// told it was replaced and then closed.
	conn2 := connectWS(t, server)
	readJSON(t, conn2) // connection.established
	writeClientMessage(t, conn2, ClientMessage{
		Action:         "register",
		UserID:         "user-1",
		ConnectionType: ConnectionTypeWriting,
		SessionID:      "sess-1",
	})
	readJSON(t, conn2) // registration.confirmed

	msg := readJSON(t, conn1)
	assert.Equal(t, "session.replaced", msg["type"])
	assert.Equal(t, "sess-1", msg["session_id"])

	// conn1's next read should fail with a close.
	readCtx, readCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer readCancel()
	_, _, err := conn1.Read(readCtx)
	assert.Error(t, err, "replaced connection should be closed")

	// Session delivery now reaches conn2 only.
	time.Sleep(100 * time.Millisecond)
	payload, _ := json.Marshal(map[string]string{"type": "edit", "session": "sess-1"})
	manager.SendToSession("sess-1", payload)

	msg2 := readJSON(t, conn2)
	assert.Equal(t, "edit", msg2["type"])
}

func TestConnectionManager_SendToSession_NoConnection(t *testing.T) {
	manager, _ := setupTestManager(t)

	payload, _ := json.Marshal(map[string]string{"type": "edit"})
	assert.NotPanics(t, func() {
		manager.SendToSession("nonexistent-session", payload)
	})
}

func TestConnectionManager_SendToConnection(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)

	established := readJSON(t, conn)
	connID, ok := established["connection_id"].(string)
	require.True(t, ok)

	payload, _ := json.Marshal(map[string]string{"type": "targeted"})
	manager.SendToConnection(connID, payload)

	msg := readJSON(t, conn)
	assert.Equal(t, "targeted", msg["type"])

	// Unknown connection IDs are a no-op.
	assert.NotPanics(t, func() {
		manager.SendToConnection("no-such-connection", payload)
	})
}

func TestConnectionManager_StaleSweep(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Backdate lastSeen past the threshold and sweep.
	manager.mu.RLock()
	for _, c := range manager.connections {
		c.infoMu.Lock()
		c.lastSeen = time.Now().Add(-staleThreshold - time.Minute)
		c.infoMu.Unlock()
	}
	manager.mu.RUnlock()

	manager.sweepStale()

	// The closed connection's read loop unwinds and unregisters it.
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)

	readCtx, readCancel := context.WithTimeout(context.Background(), time.Second)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "stale connection should be closed")
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	// Querier returns more events than the catchup limit.
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			ID: i + 1,
			Payload: map[string]interface{}{
				"type": "test",
				"seq":  i,
			},
		}
	}

	manager := NewConnectionManager(&mockCatchupQuerier{events: manyEvents}, 5*time.Second)
	server := newTestServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	// Subscribing triggers auto-catchup: catchupLimit events then overflow.
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "mission:overflow-test"})
	readJSON(t, conn) // subscription.confirmed

	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["has_more"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_CatchupNormal(t *testing.T) {
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]interface{}{"type": "log_entry", "seq": float64(1)}},
		{ID: 11, Payload: map[string]interface{}{"type": "plan_updated", "seq": float64(2)}},
		{ID: 12, Payload: map[string]interface{}{"type": "section_updated", "seq": float64(3)}},
	}

	manager := NewConnectionManager(&mockCatchupQuerier{events: events}, 5*time.Second)
	server := newTestServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "mission:catchup-test"})
	readJSON(t, conn) // subscription.confirmed

	// Auto-catchup delivers all 3 events in order, with db_event_id injected
	// from the row ID.
	for i := 0; i < 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, float64(i+1), msg["seq"])
		assert.Equal(t, float64(i+10), msg["db_event_id"])
	}

	// Explicit catchup from a last seen position replays them again.
	lastEventID := 9
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: "mission:catchup-test", LastEventID: &lastEventID})
	for i := 0; i < 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, float64(i+1), msg["seq"])
	}

	// No overflow should follow for a small catchup.
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive overflow message for small catchup")
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// Catchup errors are logged, not fatal. The connection stays usable.
	manager := NewConnectionManager(&mockCatchupQuerier{err: fmt.Errorf("database unreachable")}, 5*time.Second)
	server := newTestServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "mission:err-test"})
	readJSON(t, conn) // subscription.confirmed

	time.Sleep(100 * time.Millisecond)

	lastEventID := 0
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: "mission:err-test", LastEventID: &lastEventID})

	time.Sleep(100 * time.Millisecond)

	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "mission:concurrent-test"
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	time.Sleep(100 * time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]interface{}{"type": "concurrent", "idx": idx})
			manager.Broadcast(channel, payload)
		}(i)
	}
	wg.Wait()

	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	manager, _ := setupTestManager(t)

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast("nonexistent-channel", payload)
	})
}

func TestConnectionManager_MultipleChannels(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "mission:ch1"})
	readJSON(t, conn) // subscription.confirmed
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "mission:ch2"})
	readJSON(t, conn) // subscription.confirmed

	time.Sleep(100 * time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "test", "channel": "ch1"})
	manager.Broadcast("mission:ch1", payload)

	msg := readJSON(t, conn)
	assert.Equal(t, "ch1", msg["channel"])

	payload2, _ := json.Marshal(map[string]string{"type": "test", "channel": "ch2"})
	manager.Broadcast("mission:ch2", payload2)

	msg2 := readJSON(t, conn)
	assert.Equal(t, "ch2", msg2["channel"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := "mission:unsub-test"
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})

	time.Sleep(100 * time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "should-not-receive"})
	manager.Broadcast(channel, payload)

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	// A client subscribed to ch1 must NOT receive ch2 broadcasts.
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: "mission:ch1"})
	readJSON(t, conn1) // subscription.confirmed
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: "mission:ch2"})
	readJSON(t, conn2) // subscription.confirmed

	time.Sleep(100 * time.Millisecond)

	payload1, _ := json.Marshal(map[string]string{"type": "test", "target": "ch1"})
	manager.Broadcast("mission:ch1", payload1)

	msg := readJSON(t, conn1)
	assert.Equal(t, "ch1", msg["target"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive ch1 broadcast")
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: ""})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: ""})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	lastEventID := 0
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: "", LastEventID: &lastEventID})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "channel is required")

	// Connection stays alive after validation errors.
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_SetListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager)
	manager.SetListener(listener)

	manager.listenerMu.RLock()
	assert.Equal(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	regMsg, _ := json.Marshal(ClientMessage{
		Action:         "register",
		UserID:         "user-cleanup",
		ConnectionType: ConnectionTypeWriting,
		SessionID:      "sess-cleanup",
	})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, regMsg))
	_, _, err = conn.Read(ctx) // registration.confirmed
	require.NoError(t, err)

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: "mission:cleanup-test"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)

	// Registry entries are released too.
	manager.registryMu.Lock()
	_, userHeld := manager.userConns["user-cleanup"]
	_, sessHeld := manager.writingSessions["sess-cleanup"]
	manager.registryMu.Unlock()
	assert.False(t, userHeld, "user index should be released on disconnect")
	assert.False(t, sessHeld, "session slot should be released on disconnect")

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast("mission:cleanup-test", payload)
	})
}
