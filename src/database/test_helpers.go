package database

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	schemaInitOnce sync.Once
	schemaInitErr  error
	cleanupMutex   sync.Mutex // serializes TRUNCATE between tests
)

// TestDB wraps a connection pool configured for testing
type TestDB struct {
	Pool *pgxpool.Pool
	t    *testing.T
}

// GetTestDatabaseURL returns the test database URL from the environment.
// Tests that need a database are skipped when it is not set.
func GetTestDatabaseURL() string {
	return os.Getenv("TEST_DATABASE_URL")
}

// NewTestDB creates a connection to the test database.
// It skips the test if the database is not configured or not reachable.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database test")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		t.Skipf("could not parse test database URL: %v", err)
		return nil
	}

	config.MaxConns = 5
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		t.Skipf("could not connect to test database: %v", err)
		return nil
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("test database not reachable: %v", err)
		return nil
	}

	schemaInitOnce.Do(func() {
		schemaInitErr = applySchema(ctx, pool)
	})
	if schemaInitErr != nil {
		pool.Close()
		t.Fatalf("failed to apply schema to test database: %v", schemaInitErr)
		return nil
	}

	return &TestDB{Pool: pool, t: t}
}

// applySchema loads schema.sql relative to the repository root.
func applySchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, thisFile, _, _ := runtime.Caller(0)
	schemaPath := filepath.Join(filepath.Dir(thisFile), "..", "..", "schema.sql")

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, string(content))
	return err
}

// Cleanup truncates all tables so each test starts from an empty store.
func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()

	cleanupMutex.Lock()
	defer cleanupMutex.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := tdb.Pool.Exec(ctx, "TRUNCATE admin_sessions, admin_users, resumes CASCADE")
	if err != nil {
		tdb.t.Fatalf("failed to clean test database: %v", err)
	}
}

// Close releases the pool.
func (tdb *TestDB) Close() {
	tdb.Pool.Close()
}

// WithTestDB runs fn against a clean test database, skipping when unavailable.
func WithTestDB(t *testing.T, fn func(tdb *TestDB)) {
	t.Helper()

	tdb := NewTestDB(t)
	if tdb == nil {
		return
	}
	defer tdb.Close()

	tdb.Cleanup()
	fn(tdb)
}
