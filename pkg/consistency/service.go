// Package consistency provides the background sweep that enforces retention
// policies and repairs invariants: old missions are soft-deleted, stale
// Event rows are removed, and the one-current-report-version invariant is
// reconciled after partial failures.
package consistency

import (
	"context"
	"log/slog"
	"time"

	"github.com/maestro-research/maestro/ent"
	"github.com/maestro-research/maestro/ent/reportversion"
	"github.com/maestro-research/maestro/pkg/config"
	"github.com/maestro-research/maestro/pkg/services"
)

// Service periodically enforces retention and invariants:
//   - Soft-deletes terminal missions past the retention window
//   - Removes Event rows past their TTL (clients no longer need catchup)
//   - Repairs missions with zero or multiple current report versions
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config         *config.RetentionConfig
	client         *ent.Client
	missionService *services.MissionService
	eventService   *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new consistency service.
func NewService(
	cfg *config.RetentionConfig,
	client *ent.Client,
	missionService *services.MissionService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:         cfg,
		client:         client,
		missionService: missionService,
		eventService:   eventService,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Consistency service started",
		"mission_retention_days", s.config.MissionRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Consistency service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldMissions(ctx)
	s.cleanupStaleEvents(ctx)
	s.reconcileReportVersions(ctx)
}

func (s *Service) softDeleteOldMissions(_ context.Context) {
	count, err := s.missionService.SoftDeleteOldMissions(context.Background(), s.config.MissionRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete missions failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old missions", "count", count)
	}
}

func (s *Service) cleanupStaleEvents(_ context.Context) {
	count, err := s.eventService.CleanupStaleEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up stale events", "count", count)
	}
}

// reconcileReportVersions repairs missions whose report versions violate the
// at-most-one-current invariant. The highest version wins; every other row
// gets its flag cleared. Missions with versions but no current row get their
// newest version promoted.
func (s *Service) reconcileReportVersions(ctx context.Context) {
	repaired, err := s.repairCurrentFlags(ctx)
	if err != nil {
		slog.Error("Consistency: report version reconciliation failed", "error", err)
		return
	}
	if repaired > 0 {
		slog.Warn("Consistency: repaired report version invariants", "missions", repaired)
	}
}

func (s *Service) repairCurrentFlags(ctx context.Context) (int, error) {
	// Group current-flag counts by mission in one pass.
	var rows []struct {
		MissionID string `json:"mission_id"`
		Count     int    `json:"count"`
	}
	err := s.client.ReportVersion.Query().
		Where(reportversion.IsCurrent(true)).
		GroupBy(reportversion.FieldMissionID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, row := range rows {
		if row.Count <= 1 {
			continue
		}
		if err := s.promoteNewestVersion(ctx, row.MissionID); err != nil {
			slog.Error("Consistency: failed to repair report versions",
				"mission_id", row.MissionID, "error", err)
			continue
		}
		repaired++
	}

	// Missions that have versions but no current one.
	orphaned, err := s.missionsWithoutCurrentVersion(ctx)
	if err != nil {
		return repaired, err
	}
	for _, missionID := range orphaned {
		if err := s.promoteNewestVersion(ctx, missionID); err != nil {
			slog.Error("Consistency: failed to promote report version",
				"mission_id", missionID, "error", err)
			continue
		}
		repaired++
	}

	return repaired, nil
}

func (s *Service) missionsWithoutCurrentVersion(ctx context.Context) ([]string, error) {
	withVersions, err := s.client.ReportVersion.Query().
		Unique(true).
		Select(reportversion.FieldMissionID).
		Strings(ctx)
	if err != nil {
		return nil, err
	}

	withCurrent, err := s.client.ReportVersion.Query().
		Where(reportversion.IsCurrent(true)).
		Unique(true).
		Select(reportversion.FieldMissionID).
		Strings(ctx)
	if err != nil {
		return nil, err
	}

	currentSet := make(map[string]struct{}, len(withCurrent))
	for _, id := range withCurrent {
		currentSet[id] = struct{}{}
	}

	var orphaned []string
	for _, id := range withVersions {
		if _, ok := currentSet[id]; !ok {
			orphaned = append(orphaned, id)
		}
	}
	return orphaned, nil
}

// promoteNewestVersion makes the mission's highest version the only current
// one, in a single transaction.
func (s *Service) promoteNewestVersion(ctx context.Context, missionID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	newest, err := tx.ReportVersion.Query().
		Where(reportversion.MissionIDEQ(missionID)).
		Order(ent.Desc(reportversion.FieldVersion)).
		First(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = tx.ReportVersion.Update().
		Where(
			reportversion.MissionIDEQ(missionID),
			reportversion.IsCurrent(true),
			reportversion.IDNEQ(newest.ID),
		).
		SetIsCurrent(false).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return err
	}

	if err := tx.ReportVersion.UpdateOne(newest).
		SetIsCurrent(true).
		SetUpdatedAt(now).
		Exec(ctx); err != nil {
		return err
	}

	if err := tx.Mission.UpdateOneID(missionID).
		SetCurrentReportVersion(newest.Version).
		SetUpdatedAt(now).
		Exec(ctx); err != nil {
		return err
	}

	return tx.Commit()
}
