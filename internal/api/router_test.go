package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/middleware"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/config"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/service"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	benchmarks := testutil.NewTestBenchmarkService(t, db)
	return api.NewRouter(
		testutil.NewTestSystemService(t, db),
		service.NewCalculationService(benchmarks),
		benchmarks,
		cfg,
	)
}

// TestRouter verifies every route is mounted with the right method.
//
// WHY: handlers are unit tested directly, so a typo in a route path would
// otherwise only show up in the frontend.
func TestRouter(t *testing.T) {
	t.Setenv(middleware.APIKeyEnv, "router-test-key")
	router := newTestRouter(t)

	tests := []struct {
		name   string
		req    *http.Request
		status int
	}{
		{"health", httptest.NewRequest(http.MethodGet, "/api/system/health", nil), http.StatusOK},
		{"version", httptest.NewRequest(http.MethodGet, "/api/system/version", nil), http.StatusOK},
		{"eligibility", testutil.NewJSONRequest(t, http.MethodPost, "/api/calculate/eligibility", testutil.NewPropertyRequest()), http.StatusOK},
		{"costs", testutil.NewJSONRequest(t, http.MethodPost, "/api/calculate/costs", testutil.NewPropertyRequest()), http.StatusOK},
		{"analytics", testutil.NewJSONRequest(t, http.MethodPost, "/api/calculate/analytics", testutil.NewAnalyticsRequest()), http.StatusOK},
		{"macro benchmarks", httptest.NewRequest(http.MethodGet, "/api/benchmarks/macro", nil), http.StatusOK},
		{"benchmarks", httptest.NewRequest(http.MethodGet, "/api/benchmarks?state=VIC&propertyType=new-dwelling", nil), http.StatusOK},
		{"benchmark records", httptest.NewRequest(http.MethodGet, "/api/benchmarks/records?states=QLD", nil), http.StatusOK},
		{"benchmark record", httptest.NewRequest(http.MethodGet, "/api/benchmarks/records/5b0c3f0e-6d0a-4a53-9a1e-0d7f3c1a0016", nil), http.StatusOK},
		{"benchmark record bad ID", httptest.NewRequest(http.MethodGet, "/api/benchmarks/records/not-a-uuid", nil), http.StatusBadRequest},
		{"admin without key", httptest.NewRequest(http.MethodPost, "/api/admin/benchmarks/import", nil), http.StatusUnauthorized},
		{"wrong method", httptest.NewRequest(http.MethodGet, "/api/calculate/costs", nil), http.StatusMethodNotAllowed},
		{"unknown route", httptest.NewRequest(http.MethodGet, "/api/portfolio", nil), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, tt.req)

			if w.Code != tt.status {
				t.Errorf("Expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	router := newTestRouter(t)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/calculate/costs", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Expected allowed origin header, got %q", got)
		}
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Expected no allow-origin header, got %q", got)
		}
	})
}

// TestRouter_AdminImport verifies an authenticated import reaches calculations.
//
// WHY: the import must flush the cache the calculation endpoints read through,
// or a corrected benchmark would only show up after the TTL.
func TestRouter_AdminImport(t *testing.T) {
	const apiKey = "router-test-key"
	t.Setenv(middleware.APIKeyEnv, apiKey)
	router := newTestRouter(t)

	lookup := func() model.Benchmarks {
		req := httptest.NewRequest(http.MethodGet, "/api/benchmarks?state=TAS&propertyType=established-dwelling", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		return testutil.DecodeJSON[model.Benchmarks](t, w)
	}

	before := lookup()
	if before.CapitalGrowth == 7.7 {
		t.Fatal("Expected a different capital growth before the import")
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/benchmarks/import",
		strings.NewReader("states:\n  TAS:\n    capital_growth: 7.7\n"))
	req.Header.Set("X-API-Key", apiKey)
	req.Header.Set("X-Time-Token", middleware.GenerateTimeToken(apiKey))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if after := lookup(); after.CapitalGrowth != 7.7 {
		t.Errorf("Expected imported capital growth 7.7, got %v", after.CapitalGrowth)
	}
}
