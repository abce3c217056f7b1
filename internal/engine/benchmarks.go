package engine

import (
	"math"
	"slices"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// DefaultBenchmarks are used for any metric the provider does not return.
var DefaultBenchmarks = map[string]float64{
	model.MetricInterestRate:          6.5,
	model.MetricCGTWithholdingRate:    12.5,
	model.MetricMarginalTaxRate:       37.0,
	model.MetricASXReturn:             7.2,
	model.MetricTermDepositRate:       4.0,
	model.MetricBondRate:              4.5,
	model.MetricSavingsRate:           3.0,
	model.MetricInflationRate:         2.5,
	model.MetricRentalYield:           4.0,
	model.MetricCapitalGrowth:         5.0,
	model.MetricCouncilRatePercent:    0.30,
	model.MetricInsurancePercent:      0.25,
	model.MetricMaintenancePercent:    1.0,
	model.MetricVacancyRate:           3.0,
	model.MetricPropertyManagementFee: 7.0,
	model.MetricLettingFeeWeeks:       1.0,
	model.MetricLegalFees:             2500,
	model.MetricInspectionFees:        600,
	model.MetricLoanEstablishmentFee:  600,
	model.MetricLandValueRatio:        0.5,
}

// MergeBenchmarks combines provider values with DefaultBenchmarks in a single step.
// Cost benchmarks take precedence over macro benchmarks for the same key.
// Missing, negative, NaN or infinite values fall back to the default and are
// listed in Benchmarks.Defaulted in sorted order.
func MergeBenchmarks(cost, macro map[string]float64) model.Benchmarks {
	var defaulted []string
	pick := func(metric string) float64 {
		if v, ok := cost[metric]; ok && usable(v) {
			return v
		}
		if v, ok := macro[metric]; ok && usable(v) {
			return v
		}
		defaulted = append(defaulted, metric)
		return DefaultBenchmarks[metric]
	}

	b := model.Benchmarks{
		InterestRate:          pick(model.MetricInterestRate),
		CGTWithholdingRate:    pick(model.MetricCGTWithholdingRate),
		MarginalTaxRate:       pick(model.MetricMarginalTaxRate),
		ASXReturn:             pick(model.MetricASXReturn),
		TermDepositRate:       pick(model.MetricTermDepositRate),
		BondRate:              pick(model.MetricBondRate),
		SavingsRate:           pick(model.MetricSavingsRate),
		InflationRate:         pick(model.MetricInflationRate),
		RentalYield:           pick(model.MetricRentalYield),
		CapitalGrowth:         pick(model.MetricCapitalGrowth),
		CouncilRatePercent:    pick(model.MetricCouncilRatePercent),
		InsurancePercent:      pick(model.MetricInsurancePercent),
		MaintenancePercent:    pick(model.MetricMaintenancePercent),
		VacancyRate:           pick(model.MetricVacancyRate),
		PropertyManagementFee: pick(model.MetricPropertyManagementFee),
		LettingFeeWeeks:       pick(model.MetricLettingFeeWeeks),
		LegalFees:             pick(model.MetricLegalFees),
		InspectionFees:        pick(model.MetricInspectionFees),
		LoanEstablishmentFee:  pick(model.MetricLoanEstablishmentFee),
		LandValueRatio:        pick(model.MetricLandValueRatio),
	}
	if b.LandValueRatio > 1 {
		b.LandValueRatio = 1
	}
	slices.Sort(defaulted)
	b.Defaulted = defaulted
	return b
}

// DefaultMergedBenchmarks returns benchmarks built entirely from defaults.
func DefaultMergedBenchmarks() model.Benchmarks {
	return MergeBenchmarks(nil, nil)
}

func usable(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
