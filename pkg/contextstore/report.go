package contextstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-research/maestro/ent"
	"github.com/maestro-research/maestro/ent/reportversion"
	"github.com/maestro-research/maestro/pkg/events"
)

// AddReportVersion appends a new report version for the mission. The version
// number is max(existing)+1; when makeCurrent is set, the previous current
// flag is cleared in the same transaction. Returns the assigned version.
func (s *Store) AddReportVersion(ctx context.Context, missionID, title, content, revisionNotes string, makeCurrent bool) (int, error) {
	st, err := s.state(missionID)
	if err != nil {
		return 0, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(wctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	last, err := tx.ReportVersion.Query().
		Where(reportversion.MissionIDEQ(missionID)).
		Order(ent.Desc(reportversion.FieldVersion)).
		First(wctx)
	version := 1
	switch {
	case err == nil:
		version = last.Version + 1
	case !ent.IsNotFound(err):
		return 0, fmt.Errorf("failed to query report versions: %w", err)
	}

	if makeCurrent {
		_, err = tx.ReportVersion.Update().
			Where(
				reportversion.MissionIDEQ(missionID),
				reportversion.IsCurrent(true),
			).
			SetIsCurrent(false).
			SetUpdatedAt(time.Now().UTC()).
			Save(wctx)
		if err != nil {
			return 0, fmt.Errorf("failed to clear current report flag: %w", err)
		}
	}

	now := time.Now().UTC()
	create := tx.ReportVersion.Create().
		SetID(uuid.New().String()).
		SetMissionID(missionID).
		SetVersion(version).
		SetTitle(title).
		SetContent(content).
		SetIsCurrent(makeCurrent).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if revisionNotes != "" {
		create.SetRevisionNotes(revisionNotes)
	}
	if err := create.Exec(wctx); err != nil {
		return 0, fmt.Errorf("failed to create report version: %w", err)
	}

	if makeCurrent {
		if err := tx.Mission.UpdateOneID(missionID).
			SetCurrentReportVersion(version).
			SetUpdatedAt(now).
			Exec(wctx); err != nil {
			return 0, fmt.Errorf("failed to update current report version: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit report version: %w", err)
	}

	if makeCurrent {
		st.ctx.CurrentReportVersion = version
	}

	if err := s.publisher.PublishReportVersion(ctx, missionID, events.ReportVersionPayload{
		Type:      events.EventTypeReportVersion,
		MissionID: missionID,
		Version:   version,
		Title:     title,
		IsCurrent: makeCurrent,
		Timestamp: now.Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Warn("Failed to publish report version event",
			"mission_id", missionID, "version", version, "error", err)
	}

	return version, nil
}

// SetCurrentReportVersion flips the is_current flag to the given version.
func (s *Store) SetCurrentReportVersion(ctx context.Context, missionID string, version int) error {
	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(wctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	target, err := tx.ReportVersion.Query().
		Where(
			reportversion.MissionIDEQ(missionID),
			reportversion.VersionEQ(version),
		).
		Only(wctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: report version %d", ErrNotFound, version)
		}
		return fmt.Errorf("failed to query report version: %w", err)
	}

	_, err = tx.ReportVersion.Update().
		Where(
			reportversion.MissionIDEQ(missionID),
			reportversion.IsCurrent(true),
			reportversion.VersionNEQ(version),
		).
		SetIsCurrent(false).
		SetUpdatedAt(now).
		Save(wctx)
	if err != nil {
		return fmt.Errorf("failed to clear current report flag: %w", err)
	}

	if err := tx.ReportVersion.UpdateOne(target).
		SetIsCurrent(true).
		SetUpdatedAt(now).
		Exec(wctx); err != nil {
		return fmt.Errorf("failed to set current report flag: %w", err)
	}

	if err := tx.Mission.UpdateOneID(missionID).
		SetCurrentReportVersion(version).
		SetUpdatedAt(now).
		Exec(wctx); err != nil {
		return fmt.Errorf("failed to update mission report version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit current version change: %w", err)
	}

	st.ctx.CurrentReportVersion = version

	if err := s.publisher.PublishReportVersion(ctx, missionID, events.ReportVersionPayload{
		Type:      events.EventTypeReportVersion,
		MissionID: missionID,
		Version:   version,
		Title:     target.Title,
		IsCurrent: true,
		Timestamp: now.Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Warn("Failed to publish report version event",
			"mission_id", missionID, "version", version, "error", err)
	}
	return nil
}
