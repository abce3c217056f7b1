package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/request"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/repository"
)

// BenchmarkBuilder provides a fluent interface for creating benchmark rows.
//
// Example usage:
//
//	// Economy-wide value
//	testutil.NewBenchmark(model.MetricInterestRate, 6.1).Build(t, db)
//
//	// State and property type specific value
//	testutil.NewBenchmark(model.MetricVacancyRate, 4).
//	    ForState("QLD").
//	    ForPropertyType("new-dwelling").
//	    Build(t, db)
type BenchmarkBuilder struct {
	ID           string
	State        string
	PropertyType string
	Metric       string
	Value        float64
	Source       string
	UpdatedAt    time.Time
}

// NewBenchmark creates a BenchmarkBuilder for an economy-wide value.
func NewBenchmark(metric string, value float64) *BenchmarkBuilder {
	return &BenchmarkBuilder{
		ID:        MakeID(),
		Metric:    metric,
		Value:     value,
		Source:    "test",
		UpdatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// ForState scopes the value to a state.
func (b *BenchmarkBuilder) ForState(state string) *BenchmarkBuilder {
	b.State = state
	return b
}

// ForPropertyType scopes the value to a property type.
func (b *BenchmarkBuilder) ForPropertyType(propertyType string) *BenchmarkBuilder {
	b.PropertyType = propertyType
	return b
}

// WithSource sets a custom source.
func (b *BenchmarkBuilder) WithSource(source string) *BenchmarkBuilder {
	b.Source = source
	return b
}

// WithUpdatedAt sets the last-updated timestamp.
func (b *BenchmarkBuilder) WithUpdatedAt(at time.Time) *BenchmarkBuilder {
	b.UpdatedAt = at
	return b
}

// Record returns the row without storing it.
func (b *BenchmarkBuilder) Record() model.BenchmarkRecord {
	return model.BenchmarkRecord{
		ID:           b.ID,
		State:        b.State,
		PropertyType: b.PropertyType,
		Metric:       b.Metric,
		Value:        b.Value,
		Source:       b.Source,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Build stores the row, replacing any existing value for the same scope.
func (b *BenchmarkBuilder) Build(t *testing.T, db *sql.DB) model.BenchmarkRecord {
	t.Helper()

	rec := b.Record()
	if err := repository.NewBenchmarkRepository(db).UpsertBenchmarks(context.Background(), []model.BenchmarkRecord{rec}); err != nil {
		t.Fatalf("Failed to create benchmark: %v", err)
	}
	return rec
}

// NewPropertyRequest returns a valid request for a $750,000 new dwelling in NSW
// bought by a foreign national with a 20% deposit.
func NewPropertyRequest() request.PropertyRequest {
	return request.PropertyRequest{
		CitizenshipStatus: string(model.CitizenshipForeignNational),
		PropertyType:      string(model.PropertyNewDwelling),
		PropertyValue:     750_000,
		State:             string(model.StateNSW),
		EntityType:        string(model.EntityIndividual),
		DepositPercent:    20,
	}
}

// NewAnalyticsRequest returns a valid analysis request for NewPropertyRequest
// rented at $650 a week and held for ten years.
func NewAnalyticsRequest() request.AnalyticsRequest {
	return request.AnalyticsRequest{
		PropertyRequest: NewPropertyRequest(),
		Investment: request.InvestmentRequest{
			WeeklyRent:          650,
			VacancyRate:         3,
			RentGrowthRate:      3,
			LoanTermYears:       30,
			LoanType:            string(model.LoanPrincipalAndInterest),
			HoldYears:           10,
			CapitalGrowthRate:   5,
			SellingCostsPercent: 2.5,
		},
	}
}
