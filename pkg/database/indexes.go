package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates the PostgreSQL partial unique indexes
// that Schema.Create does not apply. Production schemas get these from the
// SQL migrations; tests using Schema.Create call this explicitly.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one live mission per circle pair. This is the database-level
	// single-flight guard behind the agent-match in-flight lock.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS interviewmission_circle_pair_key
		ON interview_missions (circle_pair_key)
		WHERE status IN ('pending', 'running')`)
	if err != nil {
		return fmt.Errorf("failed to create live mission pair index: %w", err)
	}

	return nil
}
