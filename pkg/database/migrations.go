package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on mission requests and
// report content.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for user_request full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_missions_user_request_gin
		ON missions USING gin(to_tsvector('english', user_request))`)
	if err != nil {
		return fmt.Errorf("failed to create user_request GIN index: %w", err)
	}

	// GIN index for report content full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_report_versions_content_gin
		ON report_versions USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create report content GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. At most one report version per mission may be
// flagged current; the context store flips the flag transactionally but the
// constraint backs the invariant at the database level.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS report_versions_mission_id_current
		ON report_versions (mission_id)
		WHERE is_current`)
	if err != nil {
		return fmt.Errorf("failed to create current report version index: %w", err)
	}

	return nil
}
