package engine

import (
	"math"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// Depreciation policy assumptions. These are estimating heuristics, not
// statutory formulas: actual deductions require a quantity surveyor's schedule.
const (
	// DepreciationBuildingShare is the share of the price attributed to construction.
	DepreciationBuildingShare = 0.40
	// CapitalWorksRate is the yearly capital-works deduction, percent of construction cost.
	CapitalWorksRate = 2.5
	// CapitalWorksLifeYears is how long a building attracts capital-works deductions.
	CapitalWorksLifeYears = 40
	// PlantEquipmentRate is the first-year plant and equipment deduction for a new
	// dwelling, percent of the price. It tapers linearly to zero.
	PlantEquipmentRate = 1.0
	// PlantEquipmentLifeYears is the taper period for plant and equipment.
	PlantEquipmentLifeYears = 10
)

// CGTDiscount is the share of a gain excluded for eligible resident individuals.
const CGTDiscount = 0.5

// annualDepreciation estimates the non-cash deduction for a hold year.
func annualDepreciation(price float64, propertyType model.PropertyType, buildingAge, year int) float64 {
	if propertyType == model.PropertyVacantLand || price <= 0 {
		return 0
	}
	age := max(buildingAge, 0) + year - 1

	var total float64
	if age < CapitalWorksLifeYears {
		total += price * DepreciationBuildingShare * CapitalWorksRate / 100
	}
	if propertyType == model.PropertyNewDwelling && age < PlantEquipmentLifeYears {
		remaining := float64(PlantEquipmentLifeYears-age) / PlantEquipmentLifeYears
		total += price * PlantEquipmentRate / 100 * remaining
	}
	return total
}

// TaxInput carries what the tax analysis needs from the other engines.
type TaxInput struct {
	Citizenship          model.CitizenshipStatus
	IsOrdinarilyResident *bool
	EntityType           model.EntityType
	Costs                model.CostBreakdown
	Investment           model.InvestmentInputs
	Projections          []model.YearlyProjection
}

// AnalyzeTax totals the first-year deductions and estimates capital gains tax on
// a sale at the end of the hold period.
//
// A capital loss produces zero tax and is reported in CapitalLoss. Foreign
// sellers also have the withholding amount reported separately; it is a
// prepayment credited against the assessed CGT, not an additional tax.
func AnalyzeTax(in TaxInput) model.TaxAnalysis {
	inv := in.Investment
	analysis := model.TaxAnalysis{MarginalTaxRate: inv.MarginalTaxRate}
	if len(in.Projections) == 0 {
		return analysis
	}
	first := in.Projections[0]
	last := in.Projections[len(in.Projections)-1]

	management, letting := managementCosts(inv, first.RentalIncome, inv.WeeklyRent)
	recurring := in.Costs.RecurringAnnualCosts
	d := model.Deductions{
		LoanInterest:     first.InterestPaid,
		CouncilRates:     recurring[model.CostCouncilRates],
		ManagementFees:   roundMoney(management),
		LettingFees:      roundMoney(letting),
		Maintenance:      recurring[model.CostMaintenance],
		Insurance:        recurring[model.CostInsurance],
		LandTaxSurcharge: recurring[model.CostLandTaxSurcharge],
		Strata:           recurring[model.CostStrata],
		Depreciation:     first.Depreciation,
	}
	d.Total = sumMoney(d.LoanInterest, d.CouncilRates, d.ManagementFees, d.LettingFees,
		d.Maintenance, d.Insurance, d.LandTaxSurcharge, d.Strata, d.Depreciation)

	analysis.AnnualDeductions = d
	analysis.AnnualTaxSaving = roundMoney(d.Total * inv.MarginalTaxRate / 100)
	analysis.CapitalGains = capitalGains(in, last)
	return analysis
}

func capitalGains(in TaxInput, last model.YearlyProjection) model.CapitalGainsTax {
	inv := in.Investment
	status, ok := rulesFor(in.Citizenship, in.IsOrdinarilyResident)
	if !ok {
		status = citizenshipTable[model.CitizenshipForeignNational]
	}

	sale := last.PropertyValue
	selling := roundMoney(sale * inv.SellingCostsPercent / 100)
	costBase := sumMoney(in.Costs.PurchasePrice, in.Costs.TotalUpfrontCost, roundMoney(math.Max(0, inv.CapitalImprovements)))
	gain := sumMoney(sale, -selling, -costBase)

	cgt := model.CapitalGainsTax{
		SalePrice:    sale,
		SellingCosts: selling,
		CostBase:     costBase,
	}
	if gain < 0 {
		cgt.CapitalLoss = -gain
	} else {
		cgt.CapitalGain = gain
		cgt.TaxableGain = gain
		if status.CGTDiscountEligible && !status.ForeignPerson && isIndividual(in.EntityType) && inv.HoldYears >= 1 {
			cgt.DiscountApplied = true
			cgt.TaxableGain = roundMoney(gain * (1 - CGTDiscount))
		}
		cgt.CGTAmount = roundMoney(cgt.TaxableGain * inv.MarginalTaxRate / 100)
	}
	if status.ForeignPerson {
		cgt.ForeignWithholding = roundMoney(sale * inv.CGTWithholdingRate / 100)
	}
	cgt.NetProceeds = sumMoney(sale, -selling, -last.LoanBalance, -cgt.CGTAmount)
	return cgt
}

// managementCosts returns the property-management and letting fees for a year.
// Both are zero for a self-managed property.
func managementCosts(inv model.InvestmentInputs, rent, weeklyRent float64) (management, letting float64) {
	if inv.SelfManaged {
		return 0, 0
	}
	return rent * inv.PropertyManagementFee / 100, weeklyRent * inv.LettingFeeWeeks
}
