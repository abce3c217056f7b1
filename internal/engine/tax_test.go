package engine_test

import (
	"testing"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/engine"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

func taxInputFor(t *testing.T, status model.CitizenshipStatus, entity model.EntityType, growth float64) engine.TaxInput {
	t.Helper()
	b := engine.DefaultMergedBenchmarks()
	in := sampleAnalysis()
	in.Costs.Citizenship = status
	in.Costs.EntityType = entity
	in.Investment.CapitalGrowthRate = growth

	costs := engine.ComputeCosts(in.Costs, b)
	inv := engine.ResolveInvestment(in.Investment, costs, b)
	rows, err := engine.RunProjection(engine.CashFlowInput{
		PurchasePrice:  costs.PurchasePrice,
		PropertyType:   in.Costs.PropertyType,
		RecurringCosts: costs.RecurringAnnualCosts,
		Investment:     inv,
		InflationRate:  b.InflationRate,
	})
	if err != nil {
		t.Fatalf("RunProjection() returned unexpected error: %v", err)
	}
	return engine.TaxInput{
		Citizenship: status,
		EntityType:  entity,
		Costs:       costs,
		Investment:  inv,
		Projections: rows,
	}
}

// TestAnalyzeTax_Deductions tests the annual deduction total.
//
// WHY: The deduction total and its tax saving feed the tax-efficiency score;
// the total must be the sum of the itemised deductions.
func TestAnalyzeTax_Deductions(t *testing.T) {
	in := taxInputFor(t, model.CitizenshipForeignNational, model.EntityIndividual, 5)

	got := engine.AnalyzeTax(in)
	d := got.AnnualDeductions

	sum := d.LoanInterest + d.CouncilRates + d.ManagementFees + d.LettingFees +
		d.Maintenance + d.Insurance + d.LandTaxSurcharge + d.Strata + d.Depreciation
	assertMoney(t, "deduction total", d.Total, sum)
	assertMoney(t, "loan interest", d.LoanInterest, in.Projections[0].InterestPaid)
	assertMoney(t, "land tax", d.LandTaxSurcharge, in.Costs.RecurringAnnualCosts[model.CostLandTaxSurcharge])
	assertMoney(t, "tax saving", got.AnnualTaxSaving, d.Total*in.Investment.MarginalTaxRate/100)
}

// TestAnalyzeTax_CapitalGains tests the exit tax estimate.
//
// WHY: The discount, the foreign withholding and the loss case each change the
// net proceeds a seller walks away with.
func TestAnalyzeTax_CapitalGains(t *testing.T) {
	t.Run("resident individual gets the discount", func(t *testing.T) {
		got := engine.AnalyzeTax(taxInputFor(t, model.CitizenshipAustralian, model.EntityIndividual, 5)).CapitalGains

		if got.CapitalGain <= 0 {
			t.Fatalf("Expected a capital gain, got %+v", got)
		}
		if !got.DiscountApplied {
			t.Error("Expected the CGT discount for a resident individual")
		}
		assertMoney(t, "taxable gain", got.TaxableGain, got.CapitalGain*(1-engine.CGTDiscount))
		if got.ForeignWithholding != 0 {
			t.Error("Expected no foreign withholding for a citizen")
		}
	})

	t.Run("companies get no discount", func(t *testing.T) {
		got := engine.AnalyzeTax(taxInputFor(t, model.CitizenshipAustralian, model.EntityCompany, 5)).CapitalGains

		if got.DiscountApplied {
			t.Error("Expected no CGT discount for a company")
		}
		assertMoney(t, "taxable gain", got.TaxableGain, got.CapitalGain)
	})

	t.Run("foreign seller has withholding reported separately", func(t *testing.T) {
		in := taxInputFor(t, model.CitizenshipForeignNational, model.EntityIndividual, 5)
		got := engine.AnalyzeTax(in).CapitalGains

		if got.DiscountApplied {
			t.Error("Expected no CGT discount for a foreign seller")
		}
		assertMoney(t, "withholding", got.ForeignWithholding, got.SalePrice*in.Investment.CGTWithholdingRate/100)
		assertMoney(t, "cgt", got.CGTAmount, got.TaxableGain*in.Investment.MarginalTaxRate/100)
	})

	t.Run("capital loss yields zero tax", func(t *testing.T) {
		in := taxInputFor(t, model.CitizenshipAustralian, model.EntityIndividual, 0)
		got := engine.AnalyzeTax(in).CapitalGains

		if got.CapitalLoss <= 0 {
			t.Fatalf("Expected a capital loss, got %+v", got)
		}
		if got.CapitalGain != 0 || got.TaxableGain != 0 || got.CGTAmount != 0 {
			t.Errorf("Expected zero gain and tax on a loss, got %+v", got)
		}
		last := in.Projections[len(in.Projections)-1]
		assertMoney(t, "net proceeds", got.NetProceeds, got.SalePrice-got.SellingCosts-last.LoanBalance)
	})

	t.Run("cost base includes purchase costs and improvements", func(t *testing.T) {
		in := taxInputFor(t, model.CitizenshipAustralian, model.EntityIndividual, 5)
		in.Investment.CapitalImprovements = 25_000
		got := engine.AnalyzeTax(in).CapitalGains

		assertMoney(t, "cost base", got.CostBase, in.Costs.PurchasePrice+in.Costs.TotalUpfrontCost+25_000)
	})
}
