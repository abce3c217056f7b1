package model

// CostCalculation is a cost breakdown together with the benchmarks it was computed with.
type CostCalculation struct {
	CalculationID string        `json:"calculationId"`
	Breakdown     CostBreakdown `json:"breakdown"`
	Benchmarks    Benchmarks    `json:"benchmarks"`
}

// AnalyticsCalculation is a full investment analysis together with the
// benchmarks it was computed with.
type AnalyticsCalculation struct {
	CalculationID string              `json:"calculationId"`
	Analytics     InvestmentAnalytics `json:"analytics"`
	Benchmarks    Benchmarks          `json:"benchmarks"`
}
