package database_test

import (
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/database"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/testutil"
)

// TestOpen verifies that a file database can be opened and reports healthy.
//
// WHY: the server refuses to start when Open fails, so a regression here takes
// the whole API down.
func TestOpen(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "open.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if err := database.HealthCheck(db); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

// TestMigrate verifies the embedded migrations create and seed the benchmark table.
//
// WHY: calculations fall back to defaults silently, so a missing seed would only
// show up as subtly different numbers.
func TestMigrate(t *testing.T) {
	t.Run("applies schema and seed data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		testutil.AssertRowCount(t, db, "benchmark", testutil.SeededBenchmarkCount)

		version, err := goose.GetDBVersion(db)
		if err != nil {
			t.Fatalf("GetDBVersion() error = %v", err)
		}
		if version != 2 {
			t.Errorf("Expected schema version 2, got %d", version)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		if err := database.Migrate(db); err != nil {
			t.Fatalf("second Migrate() error = %v", err)
		}
		testutil.AssertRowCount(t, db, "benchmark", testutil.SeededBenchmarkCount)
	})

	t.Run("enforces one value per scope", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		_, err := db.Exec(`INSERT INTO benchmark (id, state, property_type, metric, value)
			VALUES (?, '', '', 'interest_rate', 7.0)`, testutil.MakeID())
		if err == nil {
			t.Error("Expected unique constraint violation for a duplicate macro metric")
		}
	})
}
