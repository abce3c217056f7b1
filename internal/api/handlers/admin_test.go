package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/testutil"
)

const adminImportYAML = `
source: admin upload
states:
  TAS:
    rental_yield: 4.9
`

func TestAdminHandler_ImportBenchmarks(t *testing.T) {
	t.Run("imports a document", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		benchmarks := testutil.NewTestBenchmarkService(t, db)
		handler := NewAdminHandler(benchmarks)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/benchmarks/import", strings.NewReader(adminImportYAML))
		w := httptest.NewRecorder()

		handler.ImportBenchmarks(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		resp := testutil.DecodeJSON[ImportResponse](t, w)
		if resp.Imported != 1 {
			t.Errorf("Expected 1 row imported, got %d", resp.Imported)
		}

		values, err := benchmarks.CostBenchmarks(req.Context(), model.StateTAS, model.PropertyNewDwelling, model.CostMetrics)
		if err != nil {
			t.Fatalf("CostBenchmarks() error = %v", err)
		}
		if values[model.MetricRentalYield] != 4.9 {
			t.Errorf("Expected imported TAS yield 4.9, got %v", values[model.MetricRentalYield])
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewAdminHandler(testutil.NewTestBenchmarkService(t, db))

		req := httptest.NewRequest(http.MethodPost, "/api/admin/benchmarks/import", strings.NewReader("macro:\n  warp_factor: 9\n"))
		w := httptest.NewRecorder()

		handler.ImportBenchmarks(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
		testutil.AssertRowCount(t, db, "benchmark", testutil.SeededBenchmarkCount)
	})

	t.Run("oversized body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewAdminHandler(testutil.NewTestBenchmarkService(t, db))

		body := "source: " + strings.Repeat("x", maxBodyBytes+1)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/benchmarks/import", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.ImportBenchmarks(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
