package engine

import (
	"fmt"
	"math"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// DefaultInterestOnlyYears is used for an interest-only loan that does not state
// the length of its interest-only period.
const DefaultInterestOnlyYears = 5

// LoanSchedule describes a loan to amortize over a hold period.
type LoanSchedule struct {
	Amount            float64
	InterestRate      float64
	TermYears         int
	Type              model.LoanType
	InterestOnlyYears int
	HoldYears         int
}

// interestOnlyMonths returns the number of leading months without principal
// reduction. At least one year is always left to amortize the balance.
func (s LoanSchedule) interestOnlyMonths() int {
	if s.Type != model.LoanInterestOnly {
		return 0
	}
	years := s.InterestOnlyYears
	if years <= 0 {
		years = DefaultInterestOnlyYears
	}
	if years > s.TermYears-1 {
		years = s.TermYears - 1
	}
	return max(years, 0) * 12
}

func (s LoanSchedule) validate() error {
	if s.TermYears <= 0 {
		return fmt.Errorf("%w: loan term must be positive, got %d", apperrors.ErrComputation, s.TermYears)
	}
	if s.Amount < 0 || math.IsNaN(s.Amount) {
		return fmt.Errorf("%w: loan amount must not be negative", apperrors.ErrComputation)
	}
	if s.InterestRate < 0 || math.IsNaN(s.InterestRate) {
		return fmt.Errorf("%w: interest rate must not be negative", apperrors.ErrComputation)
	}
	if s.HoldYears < 1 || s.HoldYears > model.MaxHoldYears {
		return fmt.Errorf("%w: %d", apperrors.ErrHoldPeriodOutOfRange, s.HoldYears)
	}
	return nil
}

// Project amortizes the loan month by month and samples it at each anniversary.
//
// Principal-and-interest loans use the fixed annuity payment over the full term.
// Interest-only loans pay interest only for the interest-only period and are then
// re-amortized over the remaining months. The final scheduled month pays the
// residual balance, so a loan held to term closes at exactly zero. One row is
// emitted per hold year; years after the term have a zero balance.
func Project(s LoanSchedule) ([]model.AmortizationRow, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	months := s.TermYears * 12
	ioMonths := s.interestOnlyMonths()
	rate := s.InterestRate / 100 / 12
	balance := s.Amount
	payment := 0.0

	rows := make([]model.AmortizationRow, 0, s.HoldYears)
	for year := 1; year <= s.HoldYears; year++ {
		opening := balance
		var interest, principal float64

		for m := (year - 1) * 12; m < year*12 && m < months; m++ {
			if m == ioMonths {
				payment = annuityPayment(balance, rate, months-m)
			}
			monthInterest := balance * rate
			var monthPrincipal float64
			switch {
			case m < ioMonths:
				monthPrincipal = 0
			case m == months-1:
				monthPrincipal = balance
			default:
				monthPrincipal = math.Min(payment-monthInterest, balance)
			}
			interest += monthInterest
			principal += monthPrincipal
			balance -= monthPrincipal
		}

		interestRounded := roundMoney(interest)
		principalRounded := roundMoney(principal)
		rows = append(rows, model.AmortizationRow{
			Year:           year,
			OpeningBalance: roundMoney(opening),
			Interest:       interestRounded,
			Principal:      principalRounded,
			Repayment:      sumMoney(interestRounded, principalRounded),
			ClosingBalance: roundMoney(balance),
		})
	}
	return rows, nil
}

// MonthlyRepayment returns the repayment due in the first month of the loan.
func MonthlyRepayment(s LoanSchedule) float64 {
	if s.TermYears <= 0 || s.Amount <= 0 {
		return 0
	}
	rate := s.InterestRate / 100 / 12
	if s.interestOnlyMonths() > 0 {
		return roundMoney(s.Amount * rate)
	}
	return roundMoney(annuityPayment(s.Amount, rate, s.TermYears*12))
}

// annuityPayment is the fixed payment that repays principal over n periods.
func annuityPayment(principal, rate float64, n int) float64 {
	if n <= 0 {
		return principal
	}
	if rate == 0 {
		return principal / float64(n)
	}
	return principal * rate / (1 - math.Pow(1+rate, -float64(n)))
}
