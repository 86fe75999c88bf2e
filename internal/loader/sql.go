package loader

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hotdata/tagtrend/internal/contract"
	"github.com/hotdata/tagtrend/schema"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
)

// TableName is the table that holds imported tag-post records.
const TableName = "tag_posts"

// SQLRecordSource loads records from a tag_posts table over one of the
// supported database backends.
type SQLRecordSource struct {
	db      *sql.DB
	backend schema.SourceBackend
}

var _ contract.RecordSource = (*SQLRecordSource)(nil) // Compile-time check

// NewSQLRecordSource opens a connection for the given backend and
// verifies it. connStr falls back to the default SQLite path when
// empty on the sqlite backend.
func NewSQLRecordSource(backend schema.SourceBackend, connStr string) (*SQLRecordSource, error) {
	db, err := openDatabase(backend, connStr)
	if err != nil {
		return nil, err
	}
	return &SQLRecordSource{db: db, backend: backend}, nil
}

// Load reads every record, ordered by period then tag.
func (s *SQLRecordSource) Load(ctx context.Context) ([]schema.Record, error) {
	query := fmt.Sprintf("SELECT month, tag, posts FROM %s ORDER BY month, tag", TableName)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", TableName, err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.Record
	for rows.Next() {
		var periodStr string
		var rec schema.Record
		if err := rows.Scan(&periodStr, &rec.Tag, &rec.Count); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		period, err := ParsePeriod(periodStr)
		if err != nil {
			return nil, &contract.MalformedInputError{Line: len(records) + 1, Reason: "unparseable period", Err: err}
		}
		rec.Period = period
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	if len(records) == 0 {
		return nil, contract.ErrEmptyInput
	}
	return records, nil
}

// Close releases the underlying database connection.
func (s *SQLRecordSource) Close() error {
	return s.db.Close()
}

// openDatabase opens and pings a database handle for the backend.
func openDatabase(backend schema.SourceBackend, connStr string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteSource:
		dbPath := connStr
		if dbPath == "" {
			dbPath = DefaultSQLitePath()
		}
		db, err = sql.Open("sqlite3", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLSource:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLSource:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=tagtrend
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported source backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return db, nil
}
