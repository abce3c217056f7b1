package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/request"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// ValidateEligibility validates an eligibility request.
//
// Required fields:
//   - citizenshipStatus: australian, permanent-resident, temporary-resident or foreign-national
//   - propertyType: new-dwelling, established-dwelling, vacant-land or commercial
//   - propertyValue: finite and not negative
//
// visaType and purpose are optional but must be known values when present.
func ValidateEligibility(req request.PropertyRequest) error {
	errors := make(map[string]string)
	validateBuyer(req, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateCosts validates a cost breakdown request. On top of the eligibility
// rules, state is required and the deposit must be a percentage.
func ValidateCosts(req request.PropertyRequest) error {
	errors := make(map[string]string)
	validateBuyer(req, errors)
	validatePurchase(req, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateAnalytics validates a full investment analysis request.
// holdYears is required (1-50); every other investment field is optional.
func ValidateAnalytics(req request.AnalyticsRequest) error {
	errors := make(map[string]string)
	validateBuyer(req.PropertyRequest, errors)
	validatePurchase(req.PropertyRequest, errors)

	inv := req.Investment
	nonNegative(errors, "investment.weeklyRent", inv.WeeklyRent)
	percent(errors, "investment.vacancyRate", inv.VacancyRate)
	growthRate(errors, "investment.rentGrowthRate", inv.RentGrowthRate)
	percent(errors, "investment.propertyManagementFee", inv.PropertyManagementFee)
	if !finite(inv.LettingFeeWeeks) || inv.LettingFeeWeeks < 0 || inv.LettingFeeWeeks > 52 {
		errors["investment.lettingFeeWeeks"] = "lettingFeeWeeks must be between 0 and 52"
	}
	nonNegative(errors, "investment.loanAmount", inv.LoanAmount)
	if _, bad := errors["investment.loanAmount"]; !bad && inv.LoanAmount > req.PropertyValue {
		errors["investment.loanAmount"] = "loanAmount cannot exceed propertyValue"
	}
	percent(errors, "investment.interestRate", inv.InterestRate)
	if inv.LoanTermYears < 0 || inv.LoanTermYears > model.MaxHoldYears {
		errors["investment.loanTermYears"] = fmt.Sprintf("loanTermYears must be between 0 and %d", model.MaxHoldYears)
	}
	if inv.LoanType != "" && !ValidLoanType[inv.LoanType] {
		errors["investment.loanType"] = fmt.Sprintf("invalid loanType: %s", inv.LoanType)
	}
	if inv.InterestOnlyYears < 0 {
		errors["investment.interestOnlyYears"] = "interestOnlyYears cannot be negative"
	}
	if inv.HoldYears < 1 || inv.HoldYears > model.MaxHoldYears {
		errors["investment.holdYears"] = fmt.Sprintf("holdYears must be between 1 and %d", model.MaxHoldYears)
	}
	growthRate(errors, "investment.capitalGrowthRate", inv.CapitalGrowthRate)
	percent(errors, "investment.marginalTaxRate", inv.MarginalTaxRate)
	percent(errors, "investment.sellingCostsPercent", inv.SellingCostsPercent)
	percent(errors, "investment.cgtWithholdingRate", inv.CGTWithholdingRate)
	if inv.BuildingAge < 0 {
		errors["investment.buildingAge"] = "buildingAge cannot be negative"
	}
	nonNegative(errors, "investment.capitalImprovements", inv.CapitalImprovements)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateBuyer(req request.PropertyRequest, errors map[string]string) {
	if strings.TrimSpace(req.CitizenshipStatus) == "" {
		errors["citizenshipStatus"] = "citizenshipStatus is required"
	} else if !ValidCitizenshipStatus[req.CitizenshipStatus] {
		errors["citizenshipStatus"] = fmt.Sprintf("invalid citizenshipStatus: %s", req.CitizenshipStatus)
	}

	if strings.TrimSpace(req.PropertyType) == "" {
		errors["propertyType"] = "propertyType is required"
	} else if !ValidPropertyType[req.PropertyType] {
		errors["propertyType"] = fmt.Sprintf("invalid propertyType: %s", req.PropertyType)
	}

	nonNegative(errors, "propertyValue", req.PropertyValue)

	if req.VisaType != "" && !ValidVisaType[req.VisaType] {
		errors["visaType"] = fmt.Sprintf("invalid visaType: %s", req.VisaType)
	}
	if req.Purpose != "" && !ValidPurpose[req.Purpose] {
		errors["purpose"] = fmt.Sprintf("invalid purpose: %s", req.Purpose)
	}
}

func validatePurchase(req request.PropertyRequest, errors map[string]string) {
	if strings.TrimSpace(req.State) == "" {
		errors["state"] = "state is required"
	} else if !ValidState(req.State) {
		errors["state"] = fmt.Sprintf("invalid state: %s", req.State)
	}
	if req.EntityType != "" && !ValidEntityType[req.EntityType] {
		errors["entityType"] = fmt.Sprintf("invalid entityType: %s", req.EntityType)
	}
	percent(errors, "depositPercent", req.DepositPercent)
	if req.ExpectedVacantDays < 0 || req.ExpectedVacantDays > 366 {
		errors["expectedVacantDays"] = "expectedVacantDays must be between 0 and 366"
	}
	nonNegative(errors, "annualStrata", req.AnnualStrata)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonNegative(errors map[string]string, field string, v float64) {
	if !finite(v) || v < 0 {
		errors[field] = fmt.Sprintf("%s cannot be negative", fieldName(field))
	}
}

func percent(errors map[string]string, field string, v float64) {
	if !finite(v) || v < 0 || v > 100 {
		errors[field] = fmt.Sprintf("%s must be between 0 and 100", fieldName(field))
	}
}

// growthRate allows a decline but not below -100%.
func growthRate(errors map[string]string, field string, v float64) {
	if !finite(v) || v < -100 || v > 100 {
		errors[field] = fmt.Sprintf("%s must be between -100 and 100", fieldName(field))
	}
}

func fieldName(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		return field[i+1:]
	}
	return field
}
