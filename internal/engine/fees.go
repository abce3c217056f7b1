package engine

import (
	"math"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// Approval fee schedule breakpoints and amounts.
const (
	feeLowValueCeiling  = 75_000
	feeLowValue         = 4_500
	feeTierOneCeiling   = 1_000_000
	feeTierOne          = 15_100
	feeTierTwoCeiling   = 2_000_000
	feeTierTwo          = 30_300
	feeTierThreeCeiling = 3_000_000
	feeTierThree        = 60_600

	// Above the third tier the fee rises by feeStepPerMillion for every further
	// million dollars or part of it, up to feeScheduleCap.
	feeStepPerMillion = 30_300
	feeScheduleCap    = 40_000_000
)

// ApprovalFee returns the investment-review application fee for a property value.
// The fee is a step function of value; it does not depend on state.
func ApprovalFee(value float64) float64 {
	switch {
	case value <= 0:
		return 0
	case value < feeLowValueCeiling:
		return feeLowValue
	case value <= feeTierOneCeiling:
		return feeTierOne
	case value <= feeTierTwoCeiling:
		return feeTierTwo
	case value <= feeTierThreeCeiling:
		return feeTierThree
	}
	capped := math.Min(value, feeScheduleCap)
	steps := math.Ceil((capped - feeTierThreeCeiling) / 1_000_000)
	return feeTierThree + steps*feeStepPerMillion
}

// citizenshipRules holds the rule switches that vary by citizenship status.
type citizenshipRules struct {
	// ForeignPerson buyers need approval and pay the approval fee.
	ForeignPerson bool
	// PaysDutySurcharge buyers pay the state's foreign duty surcharge.
	PaysDutySurcharge bool
	// FirstHomeEligible buyers may receive the first-home duty concession.
	FirstHomeEligible bool
	// CGTDiscountEligible sellers may halve a gain held for over a year.
	CGTDiscountEligible bool
	// MayBuyEstablished buyers face no established-dwelling restriction.
	MayBuyEstablished bool
}

var citizenshipTable = map[model.CitizenshipStatus]citizenshipRules{
	model.CitizenshipAustralian: {
		FirstHomeEligible:   true,
		CGTDiscountEligible: true,
		MayBuyEstablished:   true,
	},
	model.CitizenshipPermanentResident: {
		FirstHomeEligible:   true,
		CGTDiscountEligible: true,
		MayBuyEstablished:   true,
	},
	model.CitizenshipTemporaryResident: {
		ForeignPerson:     true,
		PaysDutySurcharge: true,
	},
	model.CitizenshipForeignNational: {
		ForeignPerson:     true,
		PaysDutySurcharge: true,
	},
}

// rulesFor returns the rules for a status, treating a permanent resident who is
// not ordinarily resident in Australia as a foreign person for approval purposes.
func rulesFor(status model.CitizenshipStatus, ordinarilyResident *bool) (citizenshipRules, bool) {
	rules, ok := citizenshipTable[status]
	if !ok {
		return citizenshipRules{}, false
	}
	if status == model.CitizenshipPermanentResident && ordinarilyResident != nil && !*ordinarilyResident {
		rules.ForeignPerson = true
	}
	return rules, true
}

// requiresApproval reports whether the buyer needs investment-review approval.
func requiresApproval(status model.CitizenshipStatus, ordinarilyResident *bool) bool {
	rules, ok := rulesFor(status, ordinarilyResident)
	return ok && rules.ForeignPerson
}
