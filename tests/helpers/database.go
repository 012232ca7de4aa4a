package helpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/officeflow/space-planner/planning-api/internal/repository"
)

// GetTestDatabasePool creates a database connection pool for testing
func GetTestDatabasePool(ctx context.Context) (*pgxpool.Pool, error) {
	databaseURL := buildDatabaseURL()

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// buildDatabaseURL constructs the database URL from environment variables
func buildDatabaseURL() string {
	if url := os.Getenv("TEST_DATABASE_URL"); url != "" {
		return url
	}

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}

	user := os.Getenv("POSTGRES_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("POSTGRES_PASSWORD")
	if password == "" {
		password = "postgres"
	}

	dbname := os.Getenv("POSTGRES_DB")
	if dbname == "" {
		dbname = "space_planner_test"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port, dbname)
}

// TestDatabase provides database utilities for testing
type TestDatabase struct {
	Pool  *pgxpool.Pool
	Store *repository.Store
	ctx   context.Context
}

// NewTestDatabase connects to the test database and applies the schema.
// The test is skipped when no database is reachable.
func NewTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()
	ctx := context.Background()

	pool, err := GetTestDatabasePool(ctx)
	if err != nil {
		t.Skipf("Skipping: test database unavailable: %v", err)
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("Failed to apply schema: %v", err)
	}

	return &TestDatabase{
		Pool:  pool,
		Store: repository.NewPostgresStore(pool),
		ctx:   ctx,
	}
}

// Close closes the database connection
func (db *TestDatabase) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// CleanupTables removes test data, children first to satisfy foreign keys
func (db *TestDatabase) CleanupTables(t *testing.T) {
	t.Helper()
	tables := []string{
		"solutions",
		"requirements",
		"floor_plans",
	}

	for _, table := range tables {
		_, err := db.Pool.Exec(db.ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("Warning: Failed to cleanup table %s: %v", table, err)
		}
	}
}

// CreateTestFloorPlan creates a floor plan row and returns its ID
func (db *TestDatabase) CreateTestFloorPlan(t *testing.T, name string, totalArea *float64) uuid.UUID {
	t.Helper()
	plan, err := db.Store.FloorPlans.CreateFloorPlan(db.ctx, name, nil)
	if err != nil {
		t.Fatalf("Failed to create test floor plan: %v", err)
	}

	if totalArea != nil {
		if _, err := db.Store.FloorPlans.SetTotalArea(db.ctx, plan.ID, totalArea); err != nil {
			t.Fatalf("Failed to set test floor plan area: %v", err)
		}
	}

	return plan.ID
}

// GetFloorPlanCount returns the number of floor plans in the database
func (db *TestDatabase) GetFloorPlanCount(t *testing.T) int {
	t.Helper()
	var count int
	err := db.Pool.QueryRow(db.ctx, "SELECT COUNT(*) FROM floor_plans").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to get floor plan count: %v", err)
	}
	return count
}

// GetSolutionCount returns the number of stored solutions for a floor plan
func (db *TestDatabase) GetSolutionCount(t *testing.T, floorPlanID uuid.UUID) int {
	t.Helper()
	var count int
	err := db.Pool.QueryRow(db.ctx,
		"SELECT COUNT(*) FROM solutions WHERE floor_plan_id = $1", floorPlanID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to get solution count: %v", err)
	}
	return count
}

// WaitForDatabase waits for database to be ready
func WaitForDatabase(ctx context.Context, maxAttempts int) error {
	for i := 0; i < maxAttempts; i++ {
		pool, err := GetTestDatabasePool(ctx)
		if err == nil {
			pool.Close()
			return nil
		}

		if i < maxAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
		}
	}

	return fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
