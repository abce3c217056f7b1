package testutil

import (
	"context"
	"sync/atomic"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// MockBenchmarkProvider is a service.BenchmarkProvider that returns fixed values.
// It is safe for the concurrent lookups the calculation service performs.
type MockBenchmarkProvider struct {
	// Cost is returned from CostBenchmarks, filtered to the requested metrics.
	Cost map[string]float64
	// Macro is returned from MacroBenchmarks, filtered to the requested metrics.
	Macro map[string]float64
	// CostErr and MacroErr are returned instead of values when set.
	CostErr  error
	MacroErr error

	costCalls  atomic.Int32
	macroCalls atomic.Int32
}

// NewMockBenchmarkProvider creates a provider with no stored values.
func NewMockBenchmarkProvider() *MockBenchmarkProvider {
	return &MockBenchmarkProvider{
		Cost:  map[string]float64{},
		Macro: map[string]float64{},
	}
}

// WithCost sets a cost benchmark value.
func (m *MockBenchmarkProvider) WithCost(metric string, value float64) *MockBenchmarkProvider {
	m.Cost[metric] = value
	return m
}

// WithMacro sets a macro benchmark value.
func (m *MockBenchmarkProvider) WithMacro(metric string, value float64) *MockBenchmarkProvider {
	m.Macro[metric] = value
	return m
}

// WithError makes both lookups fail with err.
func (m *MockBenchmarkProvider) WithError(err error) *MockBenchmarkProvider {
	m.CostErr = err
	m.MacroErr = err
	return m
}

func (m *MockBenchmarkProvider) CostBenchmarks(_ context.Context, _ model.AustralianState, _ model.PropertyType, metrics []string) (map[string]float64, error) {
	m.costCalls.Add(1)
	if m.CostErr != nil {
		return nil, m.CostErr
	}
	return pick(m.Cost, metrics), nil
}

func (m *MockBenchmarkProvider) MacroBenchmarks(_ context.Context, metrics []string) (map[string]float64, error) {
	m.macroCalls.Add(1)
	if m.MacroErr != nil {
		return nil, m.MacroErr
	}
	return pick(m.Macro, metrics), nil
}

// CostCalls returns how many times CostBenchmarks was called.
func (m *MockBenchmarkProvider) CostCalls() int {
	return int(m.costCalls.Load())
}

// MacroCalls returns how many times MacroBenchmarks was called.
func (m *MockBenchmarkProvider) MacroCalls() int {
	return int(m.macroCalls.Load())
}

func pick(values map[string]float64, metrics []string) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for _, metric := range metrics {
		if v, ok := values[metric]; ok {
			out[metric] = v
		}
	}
	return out
}
