package services

import (
	"context"
	"fmt"
	"time"

	"github.com/maestro-research/maestro/ent"
	entmission "github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/missionlogentry"
	"github.com/maestro-research/maestro/pkg/contextstore"
	"github.com/maestro-research/maestro/pkg/lifecycle"
	"github.com/maestro-research/maestro/pkg/models"
)

// MissionService is the control plane for missions: creation, lifecycle
// commands, and read access to status, stats and the execution log. Mutation
// of mission state stays with the context store; lifecycle commands go
// through the replica-local lifecycle manager.
type MissionService struct {
	client    *ent.Client
	store     *contextstore.Store
	lifecycle *lifecycle.Manager
}

// NewMissionService creates a new MissionService.
func NewMissionService(client *ent.Client, store *contextstore.Store, lc *lifecycle.Manager) *MissionService {
	return &MissionService{client: client, store: store, lifecycle: lc}
}

// MissionList is a page of missions with pagination metadata.
type MissionList struct {
	Missions   []*ent.Mission `json:"missions"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// MissionStats is the stats view returned to clients: aggregate usage plus
// note and report-version counts.
type MissionStats struct {
	MissionID     string              `json:"mission_id"`
	Status        string              `json:"status"`
	Stats         models.MissionStats `json:"stats"`
	TotalNotes    int                 `json:"total_notes"`
	ActiveNotes   int                 `json:"active_notes"`
	ReportVersion int                 `json:"report_version,omitempty"`
}

// LogPage is a page of execution log entries.
type LogPage struct {
	Entries    []*ent.MissionLogEntry `json:"entries"`
	TotalCount int                    `json:"total_count"`
	Limit      int                    `json:"limit"`
	Offset     int                    `json:"offset"`
}

// CreateMission validates the request and persists a new pending mission.
// A queue worker picks it up on its next poll.
func (s *MissionService) CreateMission(ctx context.Context, req models.CreateMissionRequest) (*models.MissionContext, error) {
	if req.UserRequest == "" {
		return nil, NewValidationError("request", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	mc, err := s.store.CreateMission(ctx, contextstore.CreateMissionParams{
		UserRequest:     req.UserRequest,
		ChatID:          req.ChatID,
		UserID:          req.UserID,
		ToolSelection:   req.ToolSelection,
		DocumentGroupID: req.DocumentGroupID,
		MissionSettings: req.MissionSettings,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}
	return mc, nil
}

// GetMission retrieves a mission row by ID.
func (s *MissionService) GetMission(ctx context.Context, missionID string) (*ent.Mission, error) {
	row, err := s.client.Mission.Query().
		Where(
			entmission.IDEQ(missionID),
			entmission.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return row, nil
}

// GetMissionContext returns a snapshot of the mission context. In-flight
// missions come from the store; released ones fall back to the persisted
// blob.
func (s *MissionService) GetMissionContext(ctx context.Context, missionID string) (*models.MissionContext, error) {
	if mc, err := s.store.Get(missionID); err == nil {
		return mc, nil
	}

	row, err := s.GetMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	mc := row.ContextData
	if mc == nil {
		return nil, fmt.Errorf("mission %s has no context data", missionID)
	}
	mc.Status = models.MissionStatus(row.Status)
	return mc, nil
}

// ListMissions lists missions with filtering and pagination.
func (s *MissionService) ListMissions(ctx context.Context, filters models.MissionFilters) (*MissionList, error) {
	query := s.client.Mission.Query()

	if filters.Status != "" {
		query = query.Where(entmission.StatusEQ(entmission.Status(filters.Status)))
	}
	if filters.UserID != "" {
		query = query.Where(entmission.UserIDEQ(filters.UserID))
	}
	if filters.ChatID != "" {
		query = query.Where(entmission.ChatIDEQ(filters.ChatID))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(entmission.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(entmission.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(entmission.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count missions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	missions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(entmission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	return &MissionList{
		Missions:   missions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// PauseMission pauses a running mission. The worker finishes its in-flight
// agent calls and blocks at the next checkpoint.
func (s *MissionService) PauseMission(ctx context.Context, missionID string) error {
	if _, err := s.GetMission(ctx, missionID); err != nil {
		return err
	}
	if !s.lifecycle.Pause(ctx, missionID) {
		return ErrNotActive
	}
	return nil
}

// ResumeMission releases a paused mission.
func (s *MissionService) ResumeMission(ctx context.Context, missionID string) error {
	if _, err := s.GetMission(ctx, missionID); err != nil {
		return err
	}
	if !s.lifecycle.Resume(ctx, missionID) {
		return ErrNotActive
	}
	return nil
}

// StopMission stops a mission. Running and paused missions are signalled
// through the lifecycle manager; a still-queued pending mission is stopped
// by withdrawing it from the queue directly.
func (s *MissionService) StopMission(ctx context.Context, missionID string) error {
	row, err := s.GetMission(ctx, missionID)
	if err != nil {
		return err
	}

	if s.lifecycle.Stop(ctx, missionID) {
		return nil
	}

	if row.Status == entmission.StatusPending {
		return s.withdrawPending(ctx, missionID)
	}
	if models.MissionStatus(row.Status).IsTerminal() {
		return fmt.Errorf("%w: mission already %s", ErrInvalidTransition, row.Status)
	}
	// Active on another replica; replica-local control cannot reach it.
	return ErrNotActive
}

// withdrawPending flips a queued mission to stopped before any worker claims
// it. The store's conditional update loses gracefully if a worker claims the
// row first.
func (s *MissionService) withdrawPending(ctx context.Context, missionID string) error {
	ok, err := s.store.Withdraw(ctx, missionID)
	if err != nil {
		return fmt.Errorf("failed to withdraw pending mission: %w", err)
	}
	if !ok {
		// A worker claimed it in the meantime; the caller retries and the
		// stop lands through the lifecycle manager.
		return ErrNotActive
	}
	return nil
}

// GetStats returns aggregate usage and note counts for a mission.
func (s *MissionService) GetStats(ctx context.Context, missionID string) (*MissionStats, error) {
	mc, err := s.GetMissionContext(ctx, missionID)
	if err != nil {
		return nil, err
	}
	return &MissionStats{
		MissionID:     mc.MissionID,
		Status:        string(mc.Status),
		Stats:         mc.Stats,
		TotalNotes:    len(mc.Notes),
		ActiveNotes:   len(mc.ActiveNotes()),
		ReportVersion: mc.CurrentReportVersion,
	}, nil
}

// GetLogs returns a page of the mission's execution log, oldest first.
func (s *MissionService) GetLogs(ctx context.Context, missionID string, limit, offset int) (*LogPage, error) {
	if _, err := s.GetMission(ctx, missionID); err != nil {
		return nil, err
	}

	query := s.client.MissionLogEntry.Query().
		Where(missionlogentry.MissionIDEQ(missionID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count log entries: %w", err)
	}

	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := query.
		Order(ent.Asc(missionlogentry.FieldSequence)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get log entries: %w", err)
	}

	return &LogPage{
		Entries:    entries,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// SoftDeleteOldMissions soft deletes terminal missions older than the
// retention period. Used by the consistency sweeper.
func (s *MissionService) SoftDeleteOldMissions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Mission.Update().
		Where(
			entmission.CompletedAtLT(cutoff),
			entmission.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete missions: %w", err)
	}

	return count, nil
}

// RestoreMission restores a soft-deleted mission.
func (s *MissionService) RestoreMission(ctx context.Context, missionID string) error {
	restoreCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Mission.UpdateOneID(missionID).
		ClearDeletedAt().
		Exec(restoreCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore mission: %w", err)
	}

	return nil
}
