package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable claim search across the live blackboard and the cemetery.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_blackboard_records_current_claim_gin
		ON blackboard_records USING gin(to_tsvector('english', COALESCE(current_claim, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create current_claim GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_cemetery_entries_claim_gin
		ON cemetery_entries USING gin(to_tsvector('english', claim))`)
	if err != nil {
		return fmt.Errorf("failed to create cemetery claim GIN index: %w", err)
	}

	return nil
}
