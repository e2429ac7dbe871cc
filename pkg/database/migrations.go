package database

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient search over session titles, descriptions, and
// prompts.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_sessions_search_gin
		ON sessions USING gin(to_tsvector('english',
			title || ' ' || COALESCE(description, '') || ' ' || initial_prompt))`)
	if err != nil {
		return fmt.Errorf("failed to create session search GIN index: %w", err)
	}

	return nil
}

// ApplyTriggers installs the session triggers from the embedded migration
// files against the connection's current search_path. Production databases
// get these via golang-migrate; tests that create tables through Ent call
// this directly so version bumps and child_ids maintenance behave the same.
func ApplyTriggers(ctx context.Context, db *stdsql.DB) error {
	triggerSQL, err := migrationsFS.ReadFile("migrations/000002_triggers.up.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded trigger migration: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(triggerSQL)); err != nil {
		return fmt.Errorf("failed to apply triggers: %w", err)
	}
	return nil
}
