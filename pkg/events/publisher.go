package events

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// dedupWindow is the interval within which identical (channel, payload)
// pairs are suppressed. Pads and stats can fire bursts of identical
// updates; one per window is enough for any client.
const dedupWindow = 1 * time.Second

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (pads, tool progress) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel (derived from missionID) via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB

	// Duplicate suppression: (channel, payload hash) → last publish time.
	dedupMu   sync.Mutex
	dedupSeen map[string]time.Time
	now       func() time.Time // injectable for tests
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{
		db:        db,
		dedupSeen: make(map[string]time.Time),
		now:       time.Now,
	}
}

// --- Typed public methods ---

// PublishMissionStatus persists a mission status event to the mission channel
// and broadcasts a transient copy to the global missions channel.
// Both publishes are best-effort: if the persistent one fails, the transient
// one is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishMissionStatus(ctx context.Context, missionID string, payload MissionStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal MissionStatusPayload: %w", err)
	}

	// Persist to mission-specific channel
	var firstErr error
	if err := p.persistAndNotify(ctx, missionID, MissionChannel(missionID), payloadJSON); err != nil {
		slog.Warn("Failed to publish mission status to mission channel",
			"mission_id", missionID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Also broadcast to global missions channel (transient — for mission list page)
	if err := p.notifyOnly(ctx, GlobalMissionsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish mission status to global channel",
			"mission_id", missionID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishLogEntry persists and broadcasts a log_entry event.
// Entries are published in the order the context store assigns sequences.
func (p *EventPublisher) PublishLogEntry(ctx context.Context, missionID string, payload LogEntryPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal LogEntryPayload: %w", err)
	}
	return p.persistAndNotify(ctx, missionID, MissionChannel(missionID), payloadJSON)
}

// PublishStatsUpdated persists and broadcasts a stats_updated event.
func (p *EventPublisher) PublishStatsUpdated(ctx context.Context, missionID string, payload StatsUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StatsUpdatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, missionID, MissionChannel(missionID), payloadJSON)
}

// PublishPlanUpdated persists and broadcasts a plan_updated event.
func (p *EventPublisher) PublishPlanUpdated(ctx context.Context, missionID string, payload PlanUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal PlanUpdatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, missionID, MissionChannel(missionID), payloadJSON)
}

// PublishNotesUpdated persists and broadcasts a notes_updated event.
func (p *EventPublisher) PublishNotesUpdated(ctx context.Context, missionID string, payload NotesUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal NotesUpdatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, missionID, MissionChannel(missionID), payloadJSON)
}

// PublishSectionUpdated persists and broadcasts a section_updated event.
func (p *EventPublisher) PublishSectionUpdated(ctx context.Context, missionID string, payload SectionUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SectionUpdatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, missionID, MissionChannel(missionID), payloadJSON)
}

// PublishReportVersion persists and broadcasts a report_version_added event.
func (p *EventPublisher) PublishReportVersion(ctx context.Context, missionID string, payload ReportVersionPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ReportVersionPayload: %w", err)
	}
	return p.persistAndNotify(ctx, missionID, MissionChannel(missionID), payloadJSON)
}

// PublishGoalPadUpdated broadcasts a goal_pad_updated transient event (no DB persistence).
func (p *EventPublisher) PublishGoalPadUpdated(ctx context.Context, missionID string, payload GoalPadUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal GoalPadUpdatedPayload: %w", err)
	}
	return p.notifyOnly(ctx, MissionChannel(missionID), payloadJSON)
}

// PublishThoughtPadUpdated broadcasts a thought_pad_updated transient event (no DB persistence).
func (p *EventPublisher) PublishThoughtPadUpdated(ctx context.Context, missionID string, payload ThoughtPadUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ThoughtPadUpdatedPayload: %w", err)
	}
	return p.notifyOnly(ctx, MissionChannel(missionID), payloadJSON)
}

// PublishToolCall broadcasts a tool_call transient event (no DB persistence).
// Used for high-frequency tool progress — ephemeral, lost on disconnect.
func (p *EventPublisher) PublishToolCall(ctx context.Context, missionID string, payload ToolCallPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ToolCallPayload: %w", err)
	}
	return p.notifyOnly(ctx, MissionChannel(missionID), payloadJSON)
}

// PublishWebFetch broadcasts a web_fetch transient event (no DB persistence).
func (p *EventPublisher) PublishWebFetch(ctx context.Context, missionID string, payload WebFetchPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal WebFetchPayload: %w", err)
	}
	return p.notifyOnly(ctx, MissionChannel(missionID), payloadJSON)
}

// --- Internal core methods ---

// isDuplicate reports whether an identical payload was already published on
// this channel within dedupWindow, recording the publish time otherwise.
// Timestamps inside payloads naturally differ between distinct updates, so
// only true burst duplicates (same content, same instant) are suppressed.
func (p *EventPublisher) isDuplicate(channel string, payloadJSON []byte) bool {
	sum := sha256.Sum256(payloadJSON)
	key := channel + ":" + string(sum[:16])

	now := p.now()

	p.dedupMu.Lock()
	defer p.dedupMu.Unlock()

	if last, ok := p.dedupSeen[key]; ok && now.Sub(last) < dedupWindow {
		return true
	}
	p.dedupSeen[key] = now

	// Opportunistic expiry keeps the map bounded without a background goroutine.
	if len(p.dedupSeen) > 4096 {
		for k, ts := range p.dedupSeen {
			if now.Sub(ts) >= dedupWindow {
				delete(p.dedupSeen, k)
			}
		}
	}

	return false
}

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, missionID, channel string, payloadJSON []byte) error {
	if p.isDuplicate(channel, payloadJSON) {
		return nil
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (mission_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		missionID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with _msg_id and db_event_id for catchup tracking.
	notifyPayload, err := injectIDsAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting
// to DB. Deduplication hashes the payload before the _msg_id is assigned, so
// identical content within the window is suppressed regardless of id.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	if p.isDuplicate(channel, payloadJSON) {
		return nil
	}

	enriched, err := injectMsgID(payloadJSON, uuid.New().String())
	if err != nil {
		return err
	}
	notifyPayload, err := truncateIfNeeded(string(enriched))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectMsgID adds the per-message _msg_id to the JSON payload.
func injectMsgID(payloadJSON []byte, msgID string) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload for _msg_id injection: %w", err)
	}
	m["_msg_id"] = msgID
	enriched, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return enriched, nil
}

// injectIDsAndTruncate adds _msg_id and db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds PostgreSQL's
// limit. The event row id serves as both: it is unique per message and lets
// reconnecting clients catch up from their last seen position.
func injectIDsAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for id injection: %w", err)
	}
	m["_msg_id"] = strconv.FormatInt(dbEventID, 10)
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		MissionID string `json:"mission_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"mission_id": routing.MissionID,
		"truncated":  true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
