package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"affiliate-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a test database instance
type TestDB struct {
	db    *sqlx.DB
	Store Store
}

var migrateOnce sync.Once
var migrateErr error

// SetupTestDB connects to the PostgreSQL instance described by the TEST_DB_* variables and applies
// the migrations once per test binary. The test is skipped when the database is unreachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := openTestDB()
	if err != nil {
		t.Skipf("skipping: test database unavailable: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	migrateOnce.Do(func() {
		migrateErr = runMigrations(db)
	})
	if migrateErr != nil {
		t.Fatalf("failed to run migrations: %v", migrateErr)
	}

	return &TestDB{
		db:    db,
		Store: Store{db: db, logger: observability.NewNopLogger()},
	}
}

func openTestDB() (*sqlx.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("TEST_DB_USER", "affiliate_user"),
		envOr("TEST_DB_PASSWORD", "affiliate_password"),
		envOr("TEST_DB_HOST", "localhost"),
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_NAME", "affiliate_db"))

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// runMigrations applies all migration files to the database
func runMigrations(db *sqlx.DB) error {
	migrationsDir := "../../migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		migrationsDir = "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migrations directory not found")
		}
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "V*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = []string{
			"pending_notifications",
			"monthly_earnings",
			"affiliate_stats",
			"link_performance",
			"source_stats",
			"device_stats",
			"daily_stats",
			"earnings_transactions",
			"balances",
			"conversions",
			"clicks",
			"referral_links",
			"affiliates",
			"users",
		}
	}

	for _, table := range tables {
		_, err := tdb.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil && !strings.Contains(err.Error(), "does not exist") {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

// GetDB returns the underlying sqlx.DB for direct access if needed
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.db
}

// MustExec executes SQL and fails the test if there's an error
func (tdb *TestDB) MustExec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	if _, err := tdb.db.Exec(query, args...); err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
}

// WithContext returns a context for testing
func (tdb *TestDB) WithContext() context.Context {
	return context.Background()
}
