package engine

import (
	"math"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// Sensitivity scenario definitions.
var (
	VacancyScenarios        = []float64{0, 5, 10, 15, 20}
	InterestRateAdjustments = []float64{-2, -1, 0, 1, 2}
)

// GrowthScenarioSpread is the percentage-point distance of the pessimistic and
// optimistic growth scenarios from the base rate.
const GrowthScenarioSpread = 2.0

// AnalyzeSensitivity re-runs the projection with one assumption changed at a
// time and reports each outcome against the base case. initialCapital is the
// buyer's own money at settlement, used for the growth scenarios' total return.
func AnalyzeSensitivity(base CashFlowInput, initialCapital float64) (model.Sensitivity, error) {
	baseRows, err := RunProjection(base)
	if err != nil {
		return model.Sensitivity{}, err
	}
	baseNet := baseRows[0].NetCashFlow

	var out model.Sensitivity
	for _, vacancy := range VacancyScenarios {
		in := withInvestment(base, func(inv *model.InvestmentInputs) { inv.VacancyRate = vacancy })
		rows, err := RunProjection(in)
		if err != nil {
			return model.Sensitivity{}, err
		}
		out.Vacancy = append(out.Vacancy, model.VacancyScenario{
			VacancyRate:      vacancy,
			NetCashFlow:      rows[0].NetCashFlow,
			AfterTaxCashFlow: rows[0].AfterTaxCashFlow,
			DeltaFromBase:    sumMoney(rows[0].NetCashFlow, -baseNet),
		})
	}

	for _, adj := range InterestRateAdjustments {
		rate := math.Max(0, base.Investment.InterestRate+adj)
		in := withInvestment(base, func(inv *model.InvestmentInputs) { inv.InterestRate = rate })
		rows, err := RunProjection(in)
		if err != nil {
			return model.Sensitivity{}, err
		}
		out.Interest = append(out.Interest, model.InterestScenario{
			InterestRate:     roundRate(rate, 2),
			MonthlyRepayment: MonthlyRepayment(scheduleFor(in.Investment)),
			NetCashFlow:      rows[0].NetCashFlow,
			DeltaFromBase:    sumMoney(rows[0].NetCashFlow, -baseNet),
		})
	}

	growth := base.Investment.CapitalGrowthRate
	scenarios := []struct {
		name string
		rate float64
	}{
		{"pessimistic", math.Max(0, growth-GrowthScenarioSpread)},
		{"base", growth},
		{"optimistic", growth + GrowthScenarioSpread},
	}
	baseReturn := preTaxExitReturn(baseRows, base.Investment.SellingCostsPercent, initialCapital)
	for _, sc := range scenarios {
		in := withInvestment(base, func(inv *model.InvestmentInputs) { inv.CapitalGrowthRate = sc.rate })
		rows, err := RunProjection(in)
		if err != nil {
			return model.Sensitivity{}, err
		}
		last := rows[len(rows)-1]
		total := preTaxExitReturn(rows, in.Investment.SellingCostsPercent, initialCapital)
		out.Growth = append(out.Growth, model.GrowthScenario{
			Scenario:      sc.name,
			GrowthRate:    roundRate(sc.rate, 2),
			FinalValue:    last.PropertyValue,
			FinalEquity:   last.Equity,
			TotalReturn:   total,
			DeltaFromBase: sumMoney(total, -baseReturn),
		})
	}
	return out, nil
}

// withInvestment copies the input with a modified set of investment assumptions.
func withInvestment(in CashFlowInput, modify func(*model.InvestmentInputs)) CashFlowInput {
	inv := in.Investment
	modify(&inv)
	in.Investment = inv
	return in
}

// preTaxExitReturn is the gain from selling at the end of the hold period,
// before capital gains tax: sale proceeds net of selling costs and the loan,
// plus all after-tax cash flow, less the capital put in.
func preTaxExitReturn(rows []model.YearlyProjection, sellingPercent, initialCapital float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	last := rows[len(rows)-1]
	selling := roundMoney(last.PropertyValue * sellingPercent / 100)
	return sumMoney(last.Equity, -selling, last.CumulativeCashFlow, -initialCapital)
}
