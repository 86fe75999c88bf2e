//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestTagtrendWithMySQL imports the fixture into MySQL and runs the
// pipeline against the imported table.
func TestTagtrendWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "tagtrend",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/tagtrend?parseTime=true", host, port.Port())
	runBackendPipeline(t, "mysql", connStr)
}

// TestTagtrendWithPostgres imports the fixture into PostgreSQL and runs
// the pipeline against the imported table.
func TestTagtrendWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runBackendPipeline(t, "postgresql", connStr)
}

// TestTagtrendWithSQLite uses a file-backed store, no container needed.
func TestTagtrendWithSQLite(t *testing.T) {
	dir := t.TempDir()
	runBackendPipeline(t, "sqlite", dir+"/tagtrend.db")
}

// runBackendPipeline imports the CSV fixture, then ranks and exports
// from the database instead of the file.
func runBackendPipeline(t *testing.T, backend, connStr string) {
	t.Helper()
	dir := t.TempDir()
	input := writeFixtureCSV(t, dir)

	// Set environment variables
	_ = os.Setenv("TAGTREND_SOURCE", backend)
	_ = os.Setenv("TAGTREND_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("TAGTREND_SOURCE") }()
	defer func() { _ = os.Unsetenv("TAGTREND_DB_CONNECT") }()

	// Create the schema and copy the CSV in
	require.NoError(t, runTagtrendCommand(t, dir, "import", input))

	// Rank straight from the database
	require.NoError(t, runTagtrendCommand(t, dir, "rank"))

	// Export the wide table from the database
	require.NoError(t, runTagtrendCommand(t, dir,
		"export", "--output", "csv", "--output-file", dir+"/wide.csv"))

	// Re-import is idempotent thanks to the upsert
	require.NoError(t, runTagtrendCommand(t, dir, "import", input))
}
