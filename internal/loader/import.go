package loader

import (
	"context"
	"fmt"

	"github.com/hotdata/tagtrend/schema"
)

// ImportRecords writes the long table into the tag_posts store,
// replacing any existing row for the same (month, tag) pair. The
// schema must already exist (see Migrate).
func ImportRecords(ctx context.Context, backend schema.SourceBackend, connStr string, records []schema.Record) error {
	db, err := openDatabase(backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertQuery(backend))
	if err != nil {
		return fmt.Errorf("failed to prepare import statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range records {
		month := rec.Period.Format(schema.PeriodFormat)
		if _, err := stmt.ExecContext(ctx, month, rec.Tag, rec.Count); err != nil {
			return fmt.Errorf("failed to import record (%s, %q): %w", month, rec.Tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// upsertQuery returns the backend-specific insert-or-replace query.
func upsertQuery(backend schema.SourceBackend) string {
	switch backend {
	case schema.MySQLSource:
		return fmt.Sprintf(`
			INSERT INTO %s (month, tag, posts) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE posts = VALUES(posts);
		`, TableName)

	case schema.PostgreSQLSource:
		return fmt.Sprintf(`
			INSERT INTO %s (month, tag, posts) VALUES ($1, $2, $3)
			ON CONFLICT (month, tag) DO UPDATE SET posts = EXCLUDED.posts;
		`, TableName)

	default: // SQLite
		return fmt.Sprintf(`
			INSERT INTO %s (month, tag, posts) VALUES (?, ?, ?)
			ON CONFLICT (month, tag) DO UPDATE SET posts = excluded.posts;
		`, TableName)
	}
}
