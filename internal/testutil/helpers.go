package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/repository"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/service"
)

// SeededBenchmarkCount is the number of benchmark rows the seed migration inserts.
const SeededBenchmarkCount = 21

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db)
}

// NewTestBenchmarkService creates a BenchmarkService over db with an in-memory
// cache and no expiry.
func NewTestBenchmarkService(t *testing.T, db *sql.DB) *service.BenchmarkService {
	t.Helper()

	return service.NewBenchmarkService(
		repository.NewBenchmarkRepository(db),
		repository.NewMemoryCache(),
		0,
	)
}

// NewTestCalculationService creates a CalculationService backed by the database benchmarks.
func NewTestCalculationService(t *testing.T, db *sql.DB) *service.CalculationService {
	t.Helper()
	return service.NewCalculationService(NewTestBenchmarkService(t, db))
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
