package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/repository"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/testutil"
)

// TestBenchmarkRepository_GetCostBenchmarks verifies scope matching and precedence.
//
// WHY: a value for a specific state and property type must beat a state-wide
// value, which must beat a national one; the wrong precedence silently prices
// every purchase against the wrong market.
func TestBenchmarkRepository_GetCostBenchmarks(t *testing.T) {
	ctx := context.Background()

	t.Run("returns seeded state values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBenchmarkRepository(db)

		values, err := repo.GetCostBenchmarks(ctx, "NSW", "new-dwelling", model.CostMetrics)
		if err != nil {
			t.Fatalf("GetCostBenchmarks() error = %v", err)
		}

		want := map[string]float64{
			model.MetricCouncilRatePercent: 0.25,
			model.MetricRentalYield:        3.4,
			model.MetricCapitalGrowth:      5.5,
			model.MetricMaintenancePercent: 0.5,
		}
		for metric, v := range want {
			if values[metric] != v {
				t.Errorf("%s = %v, want %v", metric, values[metric], v)
			}
		}
		if _, ok := values[model.MetricLegalFees]; ok {
			t.Error("Expected no value for a metric that is not stored")
		}
	})

	t.Run("most specific scope wins", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBenchmarkRepository(db)

		testutil.NewBenchmark(model.MetricVacancyRate, 2.0).Build(t, db)
		testutil.NewBenchmark(model.MetricVacancyRate, 3.5).ForState("QLD").Build(t, db)
		testutil.NewBenchmark(model.MetricVacancyRate, 4.5).ForState("QLD").ForPropertyType("new-dwelling").Build(t, db)

		tests := []struct {
			name         string
			state        string
			propertyType string
			want         float64
		}{
			{"state and type", "QLD", "new-dwelling", 4.5},
			{"state only", "QLD", "established-dwelling", 3.5},
			{"national", "SA", "established-dwelling", 2.0},
			{"type beats national", "SA", "commercial", 8.0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				values, err := repo.GetCostBenchmarks(ctx, tt.state, tt.propertyType, []string{model.MetricVacancyRate})
				if err != nil {
					t.Fatalf("GetCostBenchmarks() error = %v", err)
				}
				if values[model.MetricVacancyRate] != tt.want {
					t.Errorf("vacancy = %v, want %v", values[model.MetricVacancyRate], tt.want)
				}
			})
		}
	})

	t.Run("empty metric list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBenchmarkRepository(db)

		values, err := repo.GetCostBenchmarks(ctx, "NSW", "new-dwelling", nil)
		if err != nil {
			t.Fatalf("GetCostBenchmarks() error = %v", err)
		}
		if len(values) != 0 {
			t.Errorf("Expected empty map, got %v", values)
		}
	})

	t.Run("closed database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBenchmarkRepository(db)
		db.Close()

		if _, err := repo.GetCostBenchmarks(ctx, "NSW", "new-dwelling", model.CostMetrics); err == nil {
			t.Error("Expected error from a closed database")
		}
	})
}

func TestBenchmarkRepository_GetMacroBenchmarks(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	repo := repository.NewBenchmarkRepository(db)

	testutil.NewBenchmark(model.MetricInterestRate, 9.9).ForState("NSW").Build(t, db)

	values, err := repo.GetMacroBenchmarks(ctx, model.MacroMetrics)
	if err != nil {
		t.Fatalf("GetMacroBenchmarks() error = %v", err)
	}
	if len(values) != len(model.MacroMetrics) {
		t.Errorf("Expected %d macro values, got %d", len(model.MacroMetrics), len(values))
	}
	if values[model.MetricInterestRate] != 6.5 {
		t.Errorf("interest rate = %v, want the national 6.5", values[model.MetricInterestRate])
	}
}

// TestBenchmarkRepository_UpsertBenchmarks verifies inserts and in-place updates.
//
// WHY: the import job re-runs the same file every hour; it must update rows
// rather than fail on the unique constraint or duplicate them.
func TestBenchmarkRepository_UpsertBenchmarks(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts new rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBenchmarkRepository(db)

		err := repo.UpsertBenchmarks(ctx, []model.BenchmarkRecord{
			{State: "TAS", Metric: model.MetricRentalYield, Value: 4.8, Source: "import"},
		})
		if err != nil {
			t.Fatalf("UpsertBenchmarks() error = %v", err)
		}

		testutil.AssertRowCount(t, db, "benchmark", testutil.SeededBenchmarkCount+1)

		rec, err := repo.GetBenchmark(ctx, "TAS", "", model.MetricRentalYield)
		if err != nil {
			t.Fatalf("GetBenchmark() error = %v", err)
		}
		if rec.ID == "" {
			t.Error("Expected a generated ID")
		}
		if rec.Value != 4.8 || rec.Source != "import" {
			t.Errorf("Unexpected row %+v", rec)
		}
		if time.Since(rec.UpdatedAt) > time.Hour {
			t.Errorf("Expected a recent updated_at, got %v", rec.UpdatedAt)
		}
	})

	t.Run("updates existing scope", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBenchmarkRepository(db)

		err := repo.UpsertBenchmarks(ctx, []model.BenchmarkRecord{
			{State: "NSW", Metric: model.MetricRentalYield, Value: 3.1, Source: "import"},
		})
		if err != nil {
			t.Fatalf("UpsertBenchmarks() error = %v", err)
		}

		testutil.AssertRowCount(t, db, "benchmark", testutil.SeededBenchmarkCount)

		rec, err := repo.GetBenchmark(ctx, "NSW", "", model.MetricRentalYield)
		if err != nil {
			t.Fatalf("GetBenchmark() error = %v", err)
		}
		if rec.Value != 3.1 {
			t.Errorf("value = %v, want 3.1", rec.Value)
		}
		if rec.ID != "5b0c3f0e-6d0a-4a53-9a1e-0d7f3c1a0012" {
			t.Errorf("Expected the seeded row to keep its ID, got %s", rec.ID)
		}
	})

	t.Run("keeps provided timestamp", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBenchmarkRepository(db)

		rec := testutil.NewBenchmark(model.MetricBondRate, 4.2).ForState("WA").Build(t, db)

		got, err := repo.GetBenchmark(ctx, "WA", "", model.MetricBondRate)
		if err != nil {
			t.Fatalf("GetBenchmark() error = %v", err)
		}
		if !got.UpdatedAt.Equal(rec.UpdatedAt) {
			t.Errorf("updated_at = %v, want %v", got.UpdatedAt, rec.UpdatedAt)
		}
	})
}

func TestBenchmarkRepository_GetBenchmark(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBenchmarkRepository(db)

	t.Run("seeded row", func(t *testing.T) {
		rec, err := repo.GetBenchmark(context.Background(), "", "", model.MetricInterestRate)
		if err != nil {
			t.Fatalf("GetBenchmark() error = %v", err)
		}
		if rec.Value != 6.5 || rec.Source != "seed" {
			t.Errorf("Unexpected row %+v", rec)
		}
		if rec.UpdatedAt.IsZero() {
			t.Error("Expected updated_at from the column default")
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetBenchmark(context.Background(), "ACT", "", model.MetricInterestRate)
		if !errors.Is(err, apperrors.ErrBenchmarkNotFound) {
			t.Errorf("Expected ErrBenchmarkNotFound, got %v", err)
		}
	})
}

func TestBenchmarkRepository_GetBenchmarkByID(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	repo := repository.NewBenchmarkRepository(db)

	t.Run("seeded row", func(t *testing.T) {
		rec, err := repo.GetBenchmarkByID(ctx, "5b0c3f0e-6d0a-4a53-9a1e-0d7f3c1a0012")
		if err != nil {
			t.Fatalf("GetBenchmarkByID() error = %v", err)
		}
		if rec.State != "NSW" || rec.Metric != model.MetricRentalYield || rec.Value != 3.4 {
			t.Errorf("Unexpected record %+v", rec)
		}
		if rec.Source != "seed" {
			t.Errorf("Expected source seed, got %q", rec.Source)
		}
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := repo.GetBenchmarkByID(ctx, testutil.MakeID())
		if !errors.Is(err, apperrors.ErrBenchmarkNotFound) {
			t.Errorf("Expected ErrBenchmarkNotFound, got %v", err)
		}
	})
}

// TestBenchmarkRepository_ListBenchmarks verifies filtering and ordering of stored rows.
//
// WHY: the listing is how operators check what an import actually changed, so
// a filter that silently matches nothing is as bad as a wrong value.
//
//nolint:gocyclo // Test functions naturally have high complexity due to many test cases
func TestBenchmarkRepository_ListBenchmarks(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	repo := repository.NewBenchmarkRepository(db)

	t.Run("no filters returns every row national first", func(t *testing.T) {
		records, err := repo.ListBenchmarks(ctx, model.BenchmarkFilters{})
		if err != nil {
			t.Fatalf("ListBenchmarks() error = %v", err)
		}
		if len(records) != testutil.SeededBenchmarkCount {
			t.Fatalf("Expected %d rows, got %d", testutil.SeededBenchmarkCount, len(records))
		}
		first := records[0]
		if first.State != "" || first.PropertyType != "" || first.Metric != model.MetricASXReturn {
			t.Errorf("Expected national asx_return first, got %+v", first)
		}
	})

	tests := []struct {
		name      string
		filters   model.BenchmarkFilters
		wantCount int
	}{
		{"single state", model.BenchmarkFilters{States: []string{"NSW"}}, 3},
		{"several states", model.BenchmarkFilters{States: []string{"NSW", "VIC"}}, 5},
		{"national scope only", model.BenchmarkFilters{States: []string{""}, PropertyTypes: []string{""}}, 8},
		{"property type", model.BenchmarkFilters{PropertyTypes: []string{"commercial"}}, 1},
		{"metric", model.BenchmarkFilters{Metrics: []string{model.MetricRentalYield}}, 5},
		{"source", model.BenchmarkFilters{Source: "seed"}, testutil.SeededBenchmarkCount},
		{"unknown source", model.BenchmarkFilters{Source: "import"}, 0},
		{"limit", model.BenchmarkFilters{Limit: 5}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.ListBenchmarks(ctx, tt.filters)
			if err != nil {
				t.Fatalf("ListBenchmarks() error = %v", err)
			}
			if len(records) != tt.wantCount {
				t.Errorf("Expected %d rows, got %d", tt.wantCount, len(records))
			}
		})
	}

	t.Run("custom source", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBenchmarkRepository(db)
		testutil.NewBenchmark(model.MetricInspectionFees, 750).ForState("ACT").WithSource("abs").Build(t, db)

		records, err := repo.ListBenchmarks(ctx, model.BenchmarkFilters{Source: "abs"})
		if err != nil {
			t.Fatalf("ListBenchmarks() error = %v", err)
		}
		if len(records) != 1 || records[0].State != "ACT" || records[0].Value != 750 {
			t.Errorf("Unexpected records %+v", records)
		}
	})

	t.Run("descending order", func(t *testing.T) {
		records, err := repo.ListBenchmarks(ctx, model.BenchmarkFilters{
			Metrics: []string{model.MetricRentalYield},
			SortDir: "desc",
		})
		if err != nil {
			t.Fatalf("ListBenchmarks() error = %v", err)
		}
		if len(records) == 0 || records[0].State != "WA" {
			t.Errorf("Expected WA first in descending order, got %+v", records)
		}
	})

	t.Run("updated since excludes older rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBenchmarkRepository(db)
		testutil.NewBenchmark(model.MetricLegalFees, 2500).
			WithUpdatedAt(time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)).
			Build(t, db)

		since := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
		records, err := repo.ListBenchmarks(ctx, model.BenchmarkFilters{UpdatedSince: &since})
		if err != nil {
			t.Fatalf("ListBenchmarks() error = %v", err)
		}
		if len(records) != testutil.SeededBenchmarkCount {
			t.Errorf("Expected only the %d seeded rows, got %d", testutil.SeededBenchmarkCount, len(records))
		}

		older := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
		records, err = repo.ListBenchmarks(ctx, model.BenchmarkFilters{UpdatedSince: &older})
		if err != nil {
			t.Fatalf("ListBenchmarks() error = %v", err)
		}
		if len(records) != testutil.SeededBenchmarkCount+1 {
			t.Errorf("Expected %d rows, got %d", testutil.SeededBenchmarkCount+1, len(records))
		}
	})

	t.Run("closed database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBenchmarkRepository(db)
		db.Close()

		if _, err := repo.ListBenchmarks(ctx, model.BenchmarkFilters{}); err == nil {
			t.Error("Expected error from a closed database")
		}
	})
}
