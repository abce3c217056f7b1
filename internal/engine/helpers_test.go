package engine_test

import (
	"math"
	"testing"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

const centTolerance = 0.01

func boolPtr(b bool) *bool {
	return &b
}

func assertMoney(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > centTolerance {
		t.Errorf("%s = %.2f, want %.2f", name, got, want)
	}
}

func mapTotal(m map[string]float64) float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}

// sampleAnalysis is a $750,000 NSW new dwelling bought by a foreign national
// with a 20% deposit, rented at $650 a week and held for ten years.
func sampleAnalysis() model.AnalysisInput {
	return model.AnalysisInput{
		Eligibility: model.EligibilityInput{
			Citizenship:   model.CitizenshipForeignNational,
			PropertyType:  model.PropertyNewDwelling,
			PropertyValue: 750_000,
		},
		Costs: model.CostInputs{
			Citizenship:    model.CitizenshipForeignNational,
			PropertyType:   model.PropertyNewDwelling,
			PropertyValue:  750_000,
			State:          model.StateNSW,
			EntityType:     model.EntityIndividual,
			DepositPercent: 20,
		},
		Investment: model.InvestmentInputs{
			WeeklyRent:          650,
			VacancyRate:         3,
			RentGrowthRate:      3,
			LoanTermYears:       30,
			LoanType:            model.LoanPrincipalAndInterest,
			HoldYears:           10,
			CapitalGrowthRate:   5,
			SellingCostsPercent: 2.5,
		},
	}
}
