package engine

import (
	"math"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// VacancyFeeThresholdDays is the number of days a year a foreign-owned dwelling
// may sit empty before the annual vacancy fee applies.
const VacancyFeeThresholdDays = 183

// ComputeCosts builds the one-time and recurring cost breakdown of a purchase.
//
// The approval fee, duty surcharge, land-tax surcharge and vacancy fee only apply
// to foreign persons. An unrecognised citizenship status is costed as a foreign
// person and an unrecognised state contributes no duty. Commercial property skips
// the land-tax surcharge and the vacancy fee; vacant land skips insurance,
// maintenance, inspection and the vacancy fee.
func ComputeCosts(in model.CostInputs, b model.Benchmarks) model.CostBreakdown {
	value := in.PropertyValue
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	deposit := clamp(in.DepositPercent, 0, 100)

	status, ok := rulesFor(in.Citizenship, in.IsOrdinarilyResident)
	if !ok {
		status = citizenshipTable[model.CitizenshipForeignNational]
	}
	state, knownState := lookupState(in.State)

	approvalFee := 0.0
	if status.ForeignPerson {
		approvalFee = ApprovalFee(value)
	}

	duty, concession := 0.0, 0.0
	if knownState {
		duty = roundMoney(state.baseDuty(value))
		if in.IsFirstHome && status.FirstHomeEligible && isIndividual(in.EntityType) {
			concession = roundMoney(state.concession(duty, value, in.PropertyType))
		}
	}

	surcharge := 0.0
	if knownState && status.PaysDutySurcharge {
		surcharge = value * state.ForeignSurchargePercent / 100
	}

	inspection := b.InspectionFees
	if in.PropertyType == model.PropertyVacantLand {
		inspection = 0
	}
	establishment := 0.0
	if deposit < 100 {
		establishment = b.LoanEstablishmentFee
	}

	oneTime := map[string]float64{
		model.CostApprovalFee:          roundMoney(approvalFee),
		model.CostTransferDuty:         roundMoney(duty - concession),
		model.CostSurcharge:            roundMoney(surcharge),
		model.CostLegalFees:            roundMoney(b.LegalFees),
		model.CostInspectionFees:       roundMoney(inspection),
		model.CostLoanEstablishmentFee: roundMoney(establishment),
	}

	landValue := landValueOf(value, in.PropertyType, b)
	recurring := recurringCosts(in, value, landValue, approvalFee, status, state, knownState, b)

	upfront := sumValues(oneTime)
	depositAmount := roundMoney(value * deposit / 100)
	return model.CostBreakdown{
		OneTimeCosts:         oneTime,
		RecurringAnnualCosts: recurring,
		TotalUpfrontCost:     upfront,
		TotalAnnualCost:      sumValues(recurring),
		PurchasePrice:        roundMoney(value),
		DepositAmount:        depositAmount,
		LoanAmount:           roundMoney(value - depositAmount),
		TotalAcquisitionCost: sumMoney(roundMoney(value), upfront),
		LandValue:            roundMoney(landValue),
		FirstHomeConcession:  concession,
	}
}

func recurringCosts(
	in model.CostInputs,
	value, landValue, approvalFee float64,
	status citizenshipRules,
	state stateRules,
	knownState bool,
	b model.Benchmarks,
) map[string]float64 {
	council := value * b.CouncilRatePercent / 100
	insurance := value * b.InsurancePercent / 100
	maintenance := value * b.MaintenancePercent / 100
	if in.PropertyType == model.PropertyVacantLand {
		insurance, maintenance = 0, 0
	}

	landTax := 0.0
	if knownState && status.ForeignPerson && in.PropertyType.IsResidential() {
		landTax = landValue * state.LandTaxSurchargePercent / 100
	}

	vacancyFee := 0.0
	isDwelling := in.PropertyType == model.PropertyNewDwelling || in.PropertyType == model.PropertyEstablishedDwelling
	if status.ForeignPerson && isDwelling && in.ExpectedVacantDays > VacancyFeeThresholdDays {
		vacancyFee = approvalFee
	}

	return map[string]float64{
		model.CostCouncilRates:     roundMoney(council),
		model.CostInsurance:        roundMoney(insurance),
		model.CostMaintenance:      roundMoney(maintenance),
		model.CostStrata:           roundMoney(math.Max(0, in.AnnualStrata)),
		model.CostLandTaxSurcharge: roundMoney(landTax),
		model.CostVacancyFee:       roundMoney(vacancyFee),
	}
}

// landValueOf estimates the land component of a property's value.
func landValueOf(value float64, propertyType model.PropertyType, b model.Benchmarks) float64 {
	if propertyType == model.PropertyVacantLand {
		return value
	}
	return value * b.LandValueRatio
}

func isIndividual(entity model.EntityType) bool {
	return entity == "" || entity == model.EntityIndividual
}

func sumValues(m map[string]float64) float64 {
	values := make([]float64, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return sumMoney(values...)
}
