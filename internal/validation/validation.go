package validation

import (
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// Allowed enum values, keyed by their JSON spelling.
var (
	ValidCitizenshipStatus = map[string]bool{
		string(model.CitizenshipAustralian):        true,
		string(model.CitizenshipPermanentResident): true,
		string(model.CitizenshipTemporaryResident): true,
		string(model.CitizenshipForeignNational):   true,
	}
	ValidPropertyType = map[string]bool{
		string(model.PropertyNewDwelling):         true,
		string(model.PropertyEstablishedDwelling): true,
		string(model.PropertyVacantLand):          true,
		string(model.PropertyCommercial):          true,
	}
	ValidVisaType = map[string]bool{
		string(model.VisaStudent):            true,
		string(model.VisaTemporarySkilled):   true,
		string(model.VisaTemporaryGraduate):  true,
		string(model.VisaPartnerProvisional): true,
		string(model.VisaBridging):           true,
		string(model.VisaOtherTemporary):     true,
	}
	ValidPurpose = map[string]bool{
		string(model.PurposePrimaryResidence): true,
		string(model.PurposeInvestment):       true,
	}
	ValidEntityType = map[string]bool{
		string(model.EntityIndividual): true,
		string(model.EntityCompany):    true,
		string(model.EntityTrust):      true,
	}
	ValidLoanType = map[string]bool{
		string(model.LoanPrincipalAndInterest): true,
		string(model.LoanInterestOnly):         true,
	}
)

// ValidState reports whether s is a state or territory code.
func ValidState(s string) bool {
	for _, state := range model.AllStates {
		if string(state) == s {
			return true
		}
	}
	return false
}
