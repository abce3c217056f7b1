package engine

import (
	"math"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// Policy notes echoed into EligibilityResult.Conditions.
const (
	ConditionPriorApproval      = "Approval must be granted before contracts become unconditional"
	ConditionConstruction       = "Construction of a dwelling must commence within 4 years of approval"
	ConditionVacancyFee         = "An annual vacancy fee applies if the dwelling is not occupied or available for rent for at least 183 days a year"
	ConditionPrincipalResidence = "The dwelling must be used as your principal place of residence and cannot be rented out"
	ConditionSellOnDeparture    = "The dwelling must be sold within 3 months of it ceasing to be your principal place of residence"
	ConditionRedevelopment      = "The existing dwelling must be redeveloped to increase housing stock, with construction commencing within 4 years"
	ConditionNonResidentPR      = "Permanent residents not ordinarily resident in Australia are assessed as foreign persons"
	ConditionCommercial         = "Commercial acquisitions may also be subject to national-interest screening"
)

var knownVisas = map[model.VisaType]bool{
	model.VisaStudent:            true,
	model.VisaTemporarySkilled:   true,
	model.VisaTemporaryGraduate:  true,
	model.VisaPartnerProvisional: true,
	model.VisaBridging:           true,
	model.VisaOtherTemporary:     true,
}

var knownPropertyTypes = map[model.PropertyType]bool{
	model.PropertyNewDwelling:         true,
	model.PropertyEstablishedDwelling: true,
	model.PropertyVacantLand:          true,
	model.PropertyCommercial:          true,
}

type eligibilityRule func(in model.EligibilityInput) model.EligibilityResult

// eligibilityRules dispatches on citizenship status.
var eligibilityRules = map[model.CitizenshipStatus]eligibilityRule{
	model.CitizenshipAustralian:        evaluateCitizen,
	model.CitizenshipPermanentResident: evaluatePermanentResident,
	model.CitizenshipTemporaryResident: evaluateTemporaryResident,
	model.CitizenshipForeignNational:   evaluateForeignNational,
}

// Evaluate classifies a buyer/property combination.
//
// Invalid combinations (unknown status or property type, negative value,
// missing or unknown visa for a temporary resident) fail closed with a denial
// rather than an error. When the purchase is allowed and approval is needed,
// ApprovalFeeTier carries the application fee for the property value.
func Evaluate(in model.EligibilityInput) model.EligibilityResult {
	if !knownPropertyTypes[in.PropertyType] || in.PropertyValue < 0 ||
		math.IsNaN(in.PropertyValue) || math.IsInf(in.PropertyValue, 0) {
		return deny(model.DenialInvalidInput, "The property details are not valid")
	}
	rule, ok := eligibilityRules[in.Citizenship]
	if !ok {
		return deny(model.DenialInvalidInput, "The citizenship status is not recognised")
	}
	return rule(in)
}

func evaluateCitizen(_ model.EligibilityInput) model.EligibilityResult {
	return model.EligibilityResult{
		CanPurchase: true,
		Conditions:  []string{},
		Explanation: "Australian citizens do not need investment-review approval",
	}
}

func evaluatePermanentResident(in model.EligibilityInput) model.EligibilityResult {
	if in.IsOrdinarilyResident != nil && !*in.IsOrdinarilyResident {
		res := approve(in, "Permanent residents living overseas need approval before purchasing")
		res.Conditions = append(res.Conditions, ConditionNonResidentPR)
		return res
	}
	return model.EligibilityResult{
		CanPurchase: true,
		Conditions:  []string{},
		Explanation: "Permanent residents ordinarily resident in Australia do not need investment-review approval",
	}
}

func evaluateTemporaryResident(in model.EligibilityInput) model.EligibilityResult {
	if in.VisaType == "" {
		return deny(model.DenialMissingVisa, "A visa type is required for temporary residents")
	}
	if !knownVisas[in.VisaType] {
		return deny(model.DenialInvalidVisa, "The visa type is not recognised")
	}

	switch in.PropertyType {
	case model.PropertyEstablishedDwelling:
		if in.Purpose != model.PurposePrimaryResidence {
			return deny(model.DenialTemporaryResidentInvestment,
				"Temporary residents may only buy an established dwelling to live in")
		}
		if in.OwnsEstablishedDwelling {
			return deny(model.DenialTemporaryResidentSecondDwelling,
				"Temporary residents may only own one established dwelling")
		}
		res := approve(in, "Temporary residents may buy one established dwelling as their home, subject to approval")
		res.Conditions = append(res.Conditions, ConditionPrincipalResidence, ConditionSellOnDeparture)
		return res
	case model.PropertyVacantLand:
		res := approve(in, "Temporary residents may buy vacant land for development, subject to approval")
		res.Conditions = append(res.Conditions, ConditionConstruction)
		return res
	case model.PropertyCommercial:
		res := approve(in, "Temporary residents need approval for commercial purchases")
		res.Conditions = append(res.Conditions, ConditionCommercial)
		return res
	default:
		res := approve(in, "Temporary residents may buy new dwellings, subject to approval")
		res.Conditions = append(res.Conditions, ConditionVacancyFee)
		return res
	}
}

func evaluateForeignNational(in model.EligibilityInput) model.EligibilityResult {
	switch in.PropertyType {
	case model.PropertyEstablishedDwelling:
		if !in.IsRedevelopment {
			return deny(model.DenialForeignEstablishedDwelling,
				"Foreign nationals cannot buy established dwellings unless they will be redeveloped")
		}
		res := approve(in, "Foreign nationals may buy an established dwelling for redevelopment, subject to approval")
		res.Conditions = append(res.Conditions, ConditionRedevelopment)
		return res
	case model.PropertyVacantLand:
		res := approve(in, "Foreign nationals may buy vacant land for development, subject to approval")
		res.Conditions = append(res.Conditions, ConditionConstruction)
		return res
	case model.PropertyCommercial:
		res := approve(in, "Foreign nationals need approval for commercial purchases")
		res.Conditions = append(res.Conditions, ConditionCommercial)
		return res
	default:
		res := approve(in, "Foreign nationals may buy new dwellings, subject to approval")
		res.Conditions = append(res.Conditions, ConditionVacancyFee)
		return res
	}
}

func approve(in model.EligibilityInput, explanation string) model.EligibilityResult {
	fee := ApprovalFee(in.PropertyValue)
	return model.EligibilityResult{
		CanPurchase:      true,
		RequiresApproval: true,
		ApprovalFeeTier:  &fee,
		Conditions:       []string{ConditionPriorApproval},
		Explanation:      explanation,
	}
}

func deny(reason model.DenialReason, explanation string) model.EligibilityResult {
	return model.EligibilityResult{
		CanPurchase:     false,
		Conditions:      []string{},
		ReasonForDenial: &reason,
		Explanation:     explanation,
	}
}
