// Package contextstore is the single owner of mission state. Every mutation
// of a MissionContext goes through the Store: it persists the change, applies
// it to the in-memory copy, and emits the matching realtime event. Agents and
// the controller only ever see snapshots.
package contextstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-research/maestro/ent"
	entmission "github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/missionlogentry"
	"github.com/maestro-research/maestro/pkg/events"
	"github.com/maestro-research/maestro/pkg/models"
)

var (
	// ErrNotFound is returned when a mission id is unknown to the store.
	ErrNotFound = errors.New("mission not found")

	// ErrInvalidTransition is returned for illegal status changes.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// thoughtPadCapacity caps the thought pad; AddThought evicts oldest-first.
const thoughtPadCapacity = 30

// writeTimeout bounds each persistence write so a stalled database never
// wedges a mission goroutine indefinitely.
const writeTimeout = 10 * time.Second

// missionState pairs a live MissionContext with its mutation lock. The lock
// is per mission, so missions never block each other.
type missionState struct {
	mu           sync.Mutex
	ctx          *models.MissionContext
	planRevision int
	nextSequence int
}

// Store maintains all in-flight mission contexts, persisting through ent and
// emitting change events through the publisher.
type Store struct {
	client    *ent.Client
	publisher *events.EventPublisher
	logger    *slog.Logger

	mu       sync.RWMutex
	missions map[string]*missionState
}

// New creates a Store. Call LoadActive before serving traffic so missions
// that were running when the process died are back in memory.
func New(client *ent.Client, publisher *events.EventPublisher) *Store {
	return &Store{
		client:    client,
		publisher: publisher,
		logger:    slog.With("component", "contextstore"),
		missions:  make(map[string]*missionState),
	}
}

// CreateMissionParams are the inputs to CreateMission.
type CreateMissionParams struct {
	UserRequest      string
	ChatID           string
	UserID           string
	ToolSelection    models.ToolSelection
	DocumentGroupID  string
	MissionSettings  models.MissionSettings
	InitialQuestions []string
	FinalQuestions   []string
}

// CreateMission persists a new mission in status pending and registers it in
// memory. Returns a snapshot of the created context.
func (s *Store) CreateMission(ctx context.Context, params CreateMissionParams) (*models.MissionContext, error) {
	if params.UserRequest == "" {
		return nil, fmt.Errorf("user_request is required")
	}

	now := time.Now().UTC()
	mc := &models.MissionContext{
		MissionID:     uuid.New().String(),
		ChatID:        params.ChatID,
		UserID:        params.UserID,
		UserRequest:   params.UserRequest,
		Status:        models.StatusPending,
		Notes:         []models.Note{},
		ReportContent: map[string]string{},
		GoalPad:       []models.GoalEntry{},
		ThoughtPad:    []models.ThoughtEntry{},
		Metadata: models.MissionMetadata{
			ToolSelection:    params.ToolSelection,
			DocumentGroupID:  params.DocumentGroupID,
			MissionSettings:  params.MissionSettings,
			InitialQuestions: params.InitialQuestions,
			FinalQuestions:   params.FinalQuestions,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := s.client.Mission.Create().
		SetID(mc.MissionID).
		SetChatID(mc.ChatID).
		SetUserID(mc.UserID).
		SetUserRequest(mc.UserRequest).
		SetStatus(entmission.StatusPending).
		SetContextData(mc).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(wctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	s.mu.Lock()
	s.missions[mc.MissionID] = &missionState{ctx: mc, nextSequence: 1}
	s.mu.Unlock()

	s.publishStatus(ctx, mc.MissionID, mc.Status, "")

	return mc.Clone(), nil
}

// Get returns a deep-copy snapshot of the mission context.
func (s *Store) Get(missionID string) (*models.MissionContext, error) {
	st, err := s.state(missionID)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.ctx.Clone(), nil
}

// Status returns the mission's current lifecycle status without copying the
// full context.
func (s *Store) Status(missionID string) (models.MissionStatus, error) {
	st, err := s.state(missionID)
	if err != nil {
		return "", err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.ctx.Status, nil
}

// Withdraw stops a mission that is still queued, before any worker claims it.
// The conditional update loses gracefully when a worker claims the row first;
// the caller then retries through the lifecycle manager. Returns true when
// the withdrawal landed.
func (s *Store) Withdraw(ctx context.Context, missionID string) (bool, error) {
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	now := time.Now().UTC()
	n, err := s.client.Mission.Update().
		Where(
			entmission.IDEQ(missionID),
			entmission.StatusEQ(entmission.StatusPending),
		).
		SetStatus(entmission.StatusStopped).
		SetUpdatedAt(now).
		SetCompletedAt(now).
		Save(wctx)
	if err != nil {
		return false, fmt.Errorf("failed to withdraw mission: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	// Sync the in-memory copy, if this replica holds one, and drop it: a
	// stopped mission will never be claimed by a worker.
	if st, err := s.state(missionID); err == nil {
		st.mu.Lock()
		st.ctx.Status = models.StatusStopped
		st.ctx.UpdatedAt = now
		st.mu.Unlock()
		s.Release(missionID)
	}

	s.publishStatus(ctx, missionID, models.StatusStopped, "")
	return true, nil
}

// Has reports whether the mission is loaded in memory.
func (s *Store) Has(missionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.missions[missionID]
	return ok
}

// Release drops a terminal mission from memory. The persisted row stays; a
// later Get fails until the mission is loaded again.
func (s *Store) Release(missionID string) {
	s.mu.Lock()
	delete(s.missions, missionID)
	s.mu.Unlock()
}

// LoadActive hydrates every non-terminal mission from the database into
// memory, including its execution log. Called once at startup, before the
// worker pool begins claiming missions.
func (s *Store) LoadActive(ctx context.Context) (int, error) {
	rows, err := s.client.Mission.Query().
		Where(
			entmission.StatusNotIn(
				entmission.StatusStopped,
				entmission.StatusCompleted,
				entmission.StatusFailed,
			),
			entmission.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query active missions: %w", err)
	}

	loaded := 0
	for _, row := range rows {
		if err := s.loadMission(ctx, row); err != nil {
			s.logger.Error("Failed to load mission at startup",
				"mission_id", row.ID, "error", err)
			continue
		}
		loaded++
	}
	return loaded, nil
}

// Load hydrates a single mission from the database, replacing any in-memory
// copy. Used by workers when claiming a mission on a fresh replica.
func (s *Store) Load(ctx context.Context, missionID string) (*models.MissionContext, error) {
	row, err := s.client.Mission.Get(ctx, missionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load mission: %w", err)
	}
	if err := s.loadMission(ctx, row); err != nil {
		return nil, err
	}
	return s.Get(missionID)
}

func (s *Store) loadMission(ctx context.Context, row *ent.Mission) error {
	mc := row.ContextData
	if mc == nil {
		return fmt.Errorf("mission %s has no context data", row.ID)
	}
	// The row's status column is authoritative over the blob.
	mc.Status = models.MissionStatus(row.Status)

	entries, err := s.client.MissionLogEntry.Query().
		Where(missionlogentry.MissionIDEQ(row.ID)).
		Order(ent.Asc(missionlogentry.FieldSequence)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load execution log: %w", err)
	}

	mc.ExecutionLog = make([]models.ExecutionRecord, 0, len(entries))
	next := 1
	for _, e := range entries {
		mc.ExecutionLog = append(mc.ExecutionLog, logEntryFromRow(e))
		if e.Sequence >= next {
			next = e.Sequence + 1
		}
	}

	s.mu.Lock()
	s.missions[row.ID] = &missionState{ctx: mc, nextSequence: next}
	s.mu.Unlock()
	return nil
}

func (s *Store) state(missionID string) (*missionState, error) {
	s.mu.RLock()
	st, ok := s.missions[missionID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, missionID)
	}
	return st, nil
}

// persistContext writes the context blob and updated_at for a mission.
// Callers hold the mission lock; the in-memory mutation is applied only
// after this succeeds.
func (s *Store) persistContext(ctx context.Context, mc *models.MissionContext) error {
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	mc.UpdatedAt = time.Now().UTC()
	err := s.client.Mission.UpdateOneID(mc.MissionID).
		SetContextData(mc).
		SetUpdatedAt(mc.UpdatedAt).
		Exec(wctx)
	if err != nil {
		return fmt.Errorf("failed to persist mission context: %w", err)
	}
	return nil
}

func (s *Store) publishStatus(ctx context.Context, missionID string, status models.MissionStatus, errorInfo string) {
	err := s.publisher.PublishMissionStatus(ctx, missionID, events.MissionStatusPayload{
		Type:      events.EventTypeMissionStatus,
		MissionID: missionID,
		Status:    status,
		ErrorInfo: errorInfo,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		s.logger.Warn("Failed to publish status event",
			"mission_id", missionID, "status", status, "error", err)
	}
}

func logEntryFromRow(e *ent.MissionLogEntry) models.ExecutionRecord {
	rec := models.ExecutionRecord{
		EntryID:       e.ID,
		MissionID:     e.MissionID,
		Sequence:      e.Sequence,
		Timestamp:     e.Timestamp,
		AgentName:     e.AgentName,
		Action:        e.Action,
		InputSummary:  e.InputSummary,
		OutputSummary: e.OutputSummary,
		Status:        models.RecordStatus(e.Status),
		ErrorMessage:  e.ErrorMessage,
		FullInput:     e.FullInput,
		FullOutput:    e.FullOutput,
	}
	if len(e.ModelDetails) > 0 {
		var md models.ModelDetails
		if remarshal(e.ModelDetails, &md) == nil {
			rec.ModelDetails = &md
		}
	}
	if len(e.ToolCalls) > 0 {
		var tc []models.ToolCallRecord
		if remarshal(e.ToolCalls, &tc) == nil {
			rec.ToolCalls = tc
		}
	}
	if len(e.FileInteractions) > 0 {
		var fi []models.FileInteraction
		if remarshal(e.FileInteractions, &fi) == nil {
			rec.FileInteractions = fi
		}
	}
	return rec
}
