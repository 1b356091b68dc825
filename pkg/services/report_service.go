package services

import (
	"context"
	"fmt"

	"github.com/maestro-research/maestro/ent"
	"github.com/maestro-research/maestro/ent/reportversion"
	"github.com/maestro-research/maestro/pkg/contextstore"
)

// ReportService provides read access to versioned reports and flips the
// current-version pointer. Version writes stay with the context store.
type ReportService struct {
	client *ent.Client
	store  *contextstore.Store
}

// NewReportService creates a new ReportService.
func NewReportService(client *ent.Client, store *contextstore.Store) *ReportService {
	return &ReportService{client: client, store: store}
}

// GetCurrentReport returns the mission's current report version.
func (s *ReportService) GetCurrentReport(ctx context.Context, missionID string) (*ent.ReportVersion, error) {
	rv, err := s.client.ReportVersion.Query().
		Where(
			reportversion.MissionIDEQ(missionID),
			reportversion.IsCurrent(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get current report: %w", err)
	}
	return rv, nil
}

// GetReportVersion returns one specific report version.
func (s *ReportService) GetReportVersion(ctx context.Context, missionID string, version int) (*ent.ReportVersion, error) {
	rv, err := s.client.ReportVersion.Query().
		Where(
			reportversion.MissionIDEQ(missionID),
			reportversion.VersionEQ(version),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report version: %w", err)
	}
	return rv, nil
}

// ListReportVersions returns all versions for a mission, newest first.
func (s *ReportService) ListReportVersions(ctx context.Context, missionID string) ([]*ent.ReportVersion, error) {
	versions, err := s.client.ReportVersion.Query().
		Where(reportversion.MissionIDEQ(missionID)).
		Order(ent.Desc(reportversion.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list report versions: %w", err)
	}
	return versions, nil
}

// SetCurrentReportVersion makes the given version the current one. Missions
// already released from memory are loaded first so the write goes through
// the context store's single-owner path, then released again.
func (s *ReportService) SetCurrentReportVersion(ctx context.Context, missionID string, version int) error {
	if !s.store.Has(missionID) {
		mc, err := s.store.Load(ctx, missionID)
		if err != nil {
			return err
		}
		if mc.Status.IsTerminal() {
			defer s.store.Release(missionID)
		}
	}
	return s.store.SetCurrentReportVersion(ctx, missionID, version)
}
