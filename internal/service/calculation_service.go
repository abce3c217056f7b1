package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/engine"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// CalculationService runs engine calculations against benchmarks from a BenchmarkProvider.
type CalculationService struct {
	provider BenchmarkProvider
}

// NewCalculationService creates a new CalculationService.
func NewCalculationService(provider BenchmarkProvider) *CalculationService {
	return &CalculationService{
		provider: provider,
	}
}

// Benchmarks looks up the cost and macro benchmarks concurrently and merges them
// with the built-in defaults. A failed lookup is logged and its metrics fall back
// to defaults, so this never fails.
func (s *CalculationService) Benchmarks(ctx context.Context, state model.AustralianState, propertyType model.PropertyType) model.Benchmarks {
	if s.provider == nil {
		return engine.DefaultMergedBenchmarks()
	}

	var cost, macro map[string]float64
	var g errgroup.Group

	g.Go(func() error {
		values, err := s.provider.CostBenchmarks(ctx, state, propertyType, model.CostMetrics)
		if err != nil {
			log.Printf("Cost benchmark lookup for %s/%s failed, using defaults: %v", state, propertyType, err)
			return nil
		}
		cost = values
		return nil
	})
	g.Go(func() error {
		values, err := s.provider.MacroBenchmarks(ctx, model.MacroMetrics)
		if err != nil {
			log.Printf("Macro benchmark lookup failed, using defaults: %v", err)
			return nil
		}
		macro = values
		return nil
	})
	_ = g.Wait()

	return engine.MergeBenchmarks(cost, macro)
}

// MacroBenchmarks returns the merged economy-wide benchmarks.
func (s *CalculationService) MacroBenchmarks(ctx context.Context) model.Benchmarks {
	if s.provider == nil {
		return engine.DefaultMergedBenchmarks()
	}
	macro, err := s.provider.MacroBenchmarks(ctx, model.MacroMetrics)
	if err != nil {
		log.Printf("Macro benchmark lookup failed, using defaults: %v", err)
		macro = nil
	}
	return engine.MergeBenchmarks(nil, macro)
}

// EvaluateEligibility classifies a buyer and property. It needs no benchmarks.
func (s *CalculationService) EvaluateEligibility(in model.EligibilityInput) model.EligibilityResult {
	return engine.Evaluate(in)
}

// ComputeCosts prices a purchase with benchmarks for its state and property type.
func (s *CalculationService) ComputeCosts(ctx context.Context, in model.CostInputs) model.CostCalculation {
	benchmarks := s.Benchmarks(ctx, in.State, in.PropertyType)
	return model.CostCalculation{
		CalculationID: uuid.New().String(),
		Breakdown:     engine.ComputeCosts(in, benchmarks),
		Benchmarks:    benchmarks,
	}
}

// Analyze runs a full investment analysis.
func (s *CalculationService) Analyze(ctx context.Context, in model.AnalysisInput) (model.AnalyticsCalculation, error) {
	benchmarks := s.Benchmarks(ctx, in.Costs.State, in.Costs.PropertyType)

	analytics, err := engine.Analyze(in, benchmarks)
	if err != nil {
		return model.AnalyticsCalculation{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToAnalyzeInvestment, err)
	}

	return model.AnalyticsCalculation{
		CalculationID: uuid.New().String(),
		Analytics:     analytics,
		Benchmarks:    benchmarks,
	}, nil
}
