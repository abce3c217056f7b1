package engine

import (
	"fmt"
	"math"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

const weeksPerYear = 52

// CashFlowInput holds the resolved assumptions for one projection run.
// RecurringCosts are the first-year recurring costs; later years are inflated by
// InflationRate.
type CashFlowInput struct {
	PurchasePrice  float64
	PropertyType   model.PropertyType
	RecurringCosts map[string]float64
	Investment     model.InvestmentInputs
	InflationRate  float64
}

// ProjectCashFlows combines rent, costs and the loan schedule into one row per year.
//
// Net cash flow is rent less operating costs less the full loan repayment.
// When it is negative the loss is multiplied by the marginal tax rate (negative
// gearing); otherwise only the depreciation estimate produces a tax benefit.
func ProjectCashFlows(in CashFlowInput, loan []model.AmortizationRow) ([]model.YearlyProjection, error) {
	inv := in.Investment
	if len(loan) != inv.HoldYears {
		return nil, fmt.Errorf("%w: loan schedule has %d rows for a %d year hold",
			apperrors.ErrComputation, len(loan), inv.HoldYears)
	}

	baseRecurring := sumValues(in.RecurringCosts)
	price := roundMoney(in.PurchasePrice)

	rows := make([]model.YearlyProjection, 0, inv.HoldYears)
	var cumulative float64
	for i, l := range loan {
		year := i + 1
		growth := float64(year - 1)

		weeklyRent := inv.WeeklyRent * math.Pow(1+inv.RentGrowthRate/100, growth)
		rent := roundMoney(weeklyRent * weeksPerYear * (1 - inv.VacancyRate/100))

		management, letting := managementCosts(inv, rent, weeklyRent)
		recurring := baseRecurring * math.Pow(1+in.InflationRate/100, growth)
		operating := roundMoney(management + letting + recurring)

		net := sumMoney(rent, -operating, -l.Repayment)
		depreciation := roundMoney(annualDepreciation(in.PurchasePrice, in.PropertyType, inv.BuildingAge, year))
		benefit := taxBenefit(net, depreciation, inv.MarginalTaxRate)
		afterTax := sumMoney(net, benefit)
		cumulative = sumMoney(cumulative, afterTax)

		value := roundMoney(in.PurchasePrice * math.Pow(1+inv.CapitalGrowthRate/100, float64(year)))
		balance := l.ClosingBalance

		rows = append(rows, model.YearlyProjection{
			Year:               year,
			PropertyValue:      value,
			LoanBalance:        balance,
			Equity:             value - balance,
			RentalIncome:       rent,
			OperatingExpenses:  operating,
			Expenses:           sumMoney(operating, l.Interest),
			InterestPaid:       l.Interest,
			PrincipalPaid:      l.Principal,
			LoanRepayment:      l.Repayment,
			Depreciation:       depreciation,
			NetCashFlow:        net,
			TaxBenefit:         benefit,
			AfterTaxCashFlow:   afterTax,
			CumulativeCashFlow: cumulative,
			CumulativeReturn:   sumMoney(cumulative, value, -price),
		})
	}
	return rows, nil
}

func taxBenefit(net, depreciation, marginalRate float64) float64 {
	if net < 0 {
		return roundMoney(-net * marginalRate / 100)
	}
	return roundMoney(depreciation * marginalRate / 100)
}

// RunProjection amortizes the loan described by the investment inputs and
// projects the cash flows for the whole hold period.
func RunProjection(in CashFlowInput) ([]model.YearlyProjection, error) {
	loan, err := Project(scheduleFor(in.Investment))
	if err != nil {
		return nil, err
	}
	return ProjectCashFlows(in, loan)
}

func scheduleFor(inv model.InvestmentInputs) LoanSchedule {
	return LoanSchedule{
		Amount:            inv.LoanAmount,
		InterestRate:      inv.InterestRate,
		TermYears:         inv.LoanTermYears,
		Type:              inv.LoanType,
		InterestOnlyYears: inv.InterestOnlyYears,
		HoldYears:         inv.HoldYears,
	}
}
