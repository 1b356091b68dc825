package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(SectionUpdatedPayload{
			Type:      EventTypeSectionUpdate,
			MissionID: "abc-123",
			SectionID: "sec-1",
			Title:     "Background",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeSectionUpdate)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(LogEntryPayload{
			Type:          EventTypeLogEntry,
			EntryID:       "entry-123",
			MissionID:     "abc-123",
			OutputSummary: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(WebFetchPayload{
			Type: EventTypeWebFetchStarted,
			URL:  "https://example.com",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(LogEntryPayload{
			Type:          EventTypeLogEntry,
			EntryID:       "entry-456",
			MissionID:     "mission-789",
			OutputSummary: strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeLogEntry)
		assert.Contains(t, result, "mission-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Measure the fixed overhead of the struct first, then size the
		// content to land just under the 7900-byte limit. The 20-byte
		// margin keeps the test stable if fields are added later.
		base, _ := json.Marshal(LogEntryPayload{Type: "t"})
		contentSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(LogEntryPayload{
			Type:          "t",
			OutputSummary: strings.Repeat("b", contentSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectIDsAndTruncate(t *testing.T) {
	t.Run("injects _msg_id and db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(SectionUpdatedPayload{
			Type:      EventTypeSectionUpdate,
			MissionID: "mission-1",
			SectionID: "sec-1",
			Title:     "Methods",
		})

		result, err := injectIDsAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"_msg_id":"42"`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "sec-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(LogEntryPayload{
			Type:          EventTypeLogEntry,
			EntryID:       "entry-456",
			MissionID:     "mission-789",
			OutputSummary: strings.Repeat("x", 8000),
		})

		result, err := injectIDsAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "mission-789")
	})
}

func TestInjectMsgID(t *testing.T) {
	enriched, err := injectMsgID([]byte(`{"type":"tool_call_start","mission_id":"m1"}`), "abc-123")
	require.NoError(t, err)
	assert.Contains(t, string(enriched), `"_msg_id":"abc-123"`)
	assert.Contains(t, string(enriched), `"tool_call_start"`)
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestEventPublisher_IsDuplicate(t *testing.T) {
	newPublisherAt := func(start time.Time) (*EventPublisher, *time.Time) {
		clock := start
		p := NewEventPublisher(nil)
		p.now = func() time.Time { return clock }
		return p, &clock
	}

	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	payload := []byte(`{"type":"stats_updated","mission_id":"m1"}`)

	t.Run("identical payload within window is suppressed", func(t *testing.T) {
		p, _ := newPublisherAt(base)
		assert.False(t, p.isDuplicate("mission:m1", payload))
		assert.True(t, p.isDuplicate("mission:m1", payload))
	})

	t.Run("identical payload after window passes", func(t *testing.T) {
		p, clock := newPublisherAt(base)
		assert.False(t, p.isDuplicate("mission:m1", payload))

		*clock = base.Add(dedupWindow)
		assert.False(t, p.isDuplicate("mission:m1", payload))
	})

	t.Run("same payload on different channels is not a duplicate", func(t *testing.T) {
		p, _ := newPublisherAt(base)
		assert.False(t, p.isDuplicate("mission:m1", payload))
		assert.False(t, p.isDuplicate("missions", payload))
	})

	t.Run("different payloads on same channel are not duplicates", func(t *testing.T) {
		p, _ := newPublisherAt(base)
		assert.False(t, p.isDuplicate("mission:m1", payload))
		assert.False(t, p.isDuplicate("mission:m1", []byte(`{"type":"plan_updated","mission_id":"m1"}`)))
	})

	t.Run("expired entries are evicted once map grows", func(t *testing.T) {
		p, clock := newPublisherAt(base)
		for i := 0; i < 5000; i++ {
			p.isDuplicate("mission:m1", []byte{byte(i), byte(i >> 8)})
		}

		*clock = base.Add(2 * dedupWindow)
		p.isDuplicate("mission:m1", payload)

		p.dedupMu.Lock()
		size := len(p.dedupSeen)
		p.dedupMu.Unlock()
		assert.Less(t, size, 100, "stale dedup entries should be evicted")
	})
}
