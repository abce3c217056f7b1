package engine

import (
	"fmt"
	"math"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// DefaultLoanTermYears applies when the loan term is left at zero.
const DefaultLoanTermYears = 30

// comparisonAssets are the alternative investments the same capital is compared with.
var comparisonAssets = []struct {
	name string
	rate func(model.Benchmarks) float64
}{
	{"Term deposit", func(b model.Benchmarks) float64 { return b.TermDepositRate }},
	{"Government bonds", func(b model.Benchmarks) float64 { return b.BondRate }},
	{"ASX shares", func(b model.Benchmarks) float64 { return b.ASXReturn }},
	{"High-interest savings", func(b model.Benchmarks) float64 { return b.SavingsRate }},
}

// Analyze runs the complete calculation for one request: eligibility and costs
// first, then the loan and cash-flow projection, and from those the
// sensitivity tables, tax analysis, comparisons and score.
//
// The only errors are computation errors from an impossible loan schedule or
// hold period; "not eligible" is reported in the result.
func Analyze(in model.AnalysisInput, b model.Benchmarks) (model.InvestmentAnalytics, error) {
	eligibility := Evaluate(in.Eligibility)
	costs := ComputeCosts(in.Costs, b)
	inv := ResolveInvestment(in.Investment, costs, b)

	cf := CashFlowInput{
		PurchasePrice:  costs.PurchasePrice,
		PropertyType:   in.Costs.PropertyType,
		RecurringCosts: costs.RecurringAnnualCosts,
		Investment:     inv,
		InflationRate:  b.InflationRate,
	}
	rows, err := RunProjection(cf)
	if err != nil {
		return model.InvestmentAnalytics{}, fmt.Errorf("projection: %w", err)
	}

	capital := initialCapital(costs, inv)
	sensitivity, err := AnalyzeSensitivity(cf, capital)
	if err != nil {
		return model.InvestmentAnalytics{}, fmt.Errorf("sensitivity: %w", err)
	}

	tax := AnalyzeTax(TaxInput{
		Citizenship:          in.Costs.Citizenship,
		IsOrdinarilyResident: in.Costs.IsOrdinarilyResident,
		EntityType:           in.Costs.EntityType,
		Costs:                costs,
		Investment:           inv,
		Projections:          rows,
	})

	first, last := rows[0], rows[len(rows)-1]
	price := costs.PurchasePrice

	rentalYield := model.RentalYield{
		AnnualRent:     roundMoney(inv.WeeklyRent * weeksPerYear),
		EffectiveRent:  first.RentalIncome,
		BenchmarkGross: b.RentalYield,
	}
	rentalYield.Gross = percentOf(rentalYield.AnnualRent, price)
	rentalYield.Net = percentOf(sumMoney(first.RentalIncome, -first.OperatingExpenses), price)

	netProceeds := tax.CapitalGains.NetProceeds
	totalReturn := sumMoney(netProceeds, last.CumulativeCashFlow, -capital)
	roi := model.ROI{
		InitialCapital:  capital,
		TotalReturn:     totalReturn,
		TotalROI:        percentOf(totalReturn, capital),
		AnnualizedROI:   annualized(totalReturn, capital, inv.HoldYears),
		CashOnCash:      percentOf(first.AfterTaxCashFlow, capital),
		NetSaleProceeds: netProceeds,
	}

	interestPaid := make([]float64, 0, len(rows))
	for _, r := range rows {
		interestPaid = append(interestPaid, r.InterestPaid)
	}
	loan := model.LoanMetrics{
		LoanAmount:            roundMoney(inv.LoanAmount),
		LVR:                   percentOf(inv.LoanAmount, price),
		InterestRate:          inv.InterestRate,
		LoanType:              inv.LoanType,
		MonthlyRepayment:      MonthlyRepayment(scheduleFor(inv)),
		TotalInterestOverHold: sumMoney(interestPaid...),
		BalanceAtExit:         last.LoanBalance,
	}

	interestCover := math.Inf(1)
	if first.InterestPaid > 0 {
		interestCover = first.RentalIncome / first.InterestPaid
	}
	taxSavingOnRent := 0.0
	if first.RentalIncome > 0 {
		taxSavingOnRent = tax.AnnualTaxSaving / first.RentalIncome * 100
	}
	score := Score(SubScoresFor(ScoreInput{
		GrossYield:        rentalYield.Gross,
		BenchmarkYield:    b.RentalYield,
		GrowthRate:        inv.CapitalGrowthRate,
		BenchmarkGrowth:   b.CapitalGrowth,
		CashFlowOnCapital: roi.CashOnCash,
		TaxSavingOnRent:   taxSavingOnRent,
		Risk: RiskFactors{
			LVR:              loan.LVR,
			VacancyRate:      inv.VacancyRate,
			BenchmarkVacancy: b.VacancyRate,
			InterestCover:    interestCover,
			UpfrontShare:     percentOf(costs.TotalUpfrontCost, price),
			HoldYears:        inv.HoldYears,
			InterestOnly:     inv.LoanType == model.LoanInterestOnly,
		},
	}))

	return model.InvestmentAnalytics{
		Eligibility: eligibility,
		Costs:       costs,
		RentalYield: rentalYield,
		CashFlow: model.CashFlowSummary{
			AnnualNetCashFlow:      first.NetCashFlow,
			AnnualAfterTaxCashFlow: first.AfterTaxCashFlow,
			MonthlyNetCashFlow:     roundMoney(first.NetCashFlow / 12),
			TotalAfterTaxCashFlow:  last.CumulativeCashFlow,
		},
		ROI: roi,
		CapitalGrowth: model.CapitalGrowth{
			PurchasePrice:   price,
			FinalValue:      last.PropertyValue,
			TotalGrowth:     sumMoney(last.PropertyValue, -price),
			GrowthRate:      inv.CapitalGrowthRate,
			BenchmarkGrowth: b.CapitalGrowth,
		},
		Loan:           loan,
		Projections:    rows,
		Comparisons:    compareInvestments(capital, inv.HoldYears, b),
		Sensitivity:    sensitivity,
		Tax:            tax,
		Score:          score,
		Recommendation: Recommend(score),
		BreakEven:      breakEven(rows, costs.TotalUpfrontCost),
	}, nil
}

// ResolveInvestment fills the optional investment assumptions left at zero.
// The loan amount defaults to the financed part of the purchase price.
func ResolveInvestment(inv model.InvestmentInputs, costs model.CostBreakdown, b model.Benchmarks) model.InvestmentInputs {
	if inv.LoanAmount <= 0 {
		inv.LoanAmount = costs.LoanAmount
	}
	if inv.LoanTermYears == 0 {
		inv.LoanTermYears = DefaultLoanTermYears
	}
	if inv.LoanType == "" {
		inv.LoanType = model.LoanPrincipalAndInterest
	}
	if inv.InterestRate == 0 {
		inv.InterestRate = b.InterestRate
	}
	if inv.MarginalTaxRate == 0 {
		inv.MarginalTaxRate = b.MarginalTaxRate
	}
	if inv.CGTWithholdingRate == 0 {
		inv.CGTWithholdingRate = b.CGTWithholdingRate
	}
	if !inv.SelfManaged {
		if inv.PropertyManagementFee == 0 {
			inv.PropertyManagementFee = b.PropertyManagementFee
		}
		if inv.LettingFeeWeeks == 0 {
			inv.LettingFeeWeeks = b.LettingFeeWeeks
		}
	}
	return inv
}

// initialCapital is the buyer's own money at settlement: the unfinanced part of
// the price plus every upfront cost.
func initialCapital(costs model.CostBreakdown, inv model.InvestmentInputs) float64 {
	equity := math.Max(0, costs.PurchasePrice-roundMoney(inv.LoanAmount))
	return sumMoney(equity, costs.TotalUpfrontCost)
}

func compareInvestments(capital float64, years int, b model.Benchmarks) []model.ComparisonInvestment {
	out := make([]model.ComparisonInvestment, 0, len(comparisonAssets))
	for _, asset := range comparisonAssets {
		rate := asset.rate(b)
		final := roundMoney(capital * math.Pow(1+rate/100, float64(years)))
		out = append(out, model.ComparisonInvestment{
			Name:        asset.name,
			Rate:        rate,
			FinalValue:  final,
			TotalReturn: sumMoney(final, -capital),
		})
	}
	return out
}

// breakEven finds the first year with non-negative net cash flow and the first
// year in which the cumulative return covers the upfront costs.
func breakEven(rows []model.YearlyProjection, upfront float64) model.BreakEven {
	var out model.BreakEven
	for _, r := range rows {
		year := r.Year
		if out.CashFlowPositiveYear == nil && r.NetCashFlow >= 0 {
			out.CashFlowPositiveYear = &year
		}
		if out.CostRecoveryYear == nil && r.CumulativeReturn >= upfront {
			out.CostRecoveryYear = &year
		}
	}
	return out
}

func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return roundRate(part/whole*100, 2)
}

// annualized converts a total return into a compound yearly rate.
// A total loss of the capital or worse is reported as -100%.
func annualized(totalReturn, capital float64, years int) float64 {
	if capital <= 0 || years <= 0 {
		return 0
	}
	growth := 1 + totalReturn/capital
	if growth <= 0 {
		return -100
	}
	return roundRate((math.Pow(growth, 1/float64(years))-1)*100, 2)
}
