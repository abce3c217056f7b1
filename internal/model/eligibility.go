package model

// DenialReason is a machine-readable code explaining why a purchase is not allowed.
type DenialReason string

const (
	DenialInvalidInput                    DenialReason = "invalid-input"
	DenialMissingVisa                     DenialReason = "missing-visa"
	DenialInvalidVisa                     DenialReason = "invalid-visa"
	DenialTemporaryResidentInvestment     DenialReason = "temporary-resident-investment"
	DenialTemporaryResidentSecondDwelling DenialReason = "temporary-resident-second-dwelling"
	DenialForeignEstablishedDwelling      DenialReason = "foreign-established-dwelling"
)

// EligibilityInput is the buyer/property combination to classify.
// IsOrdinarilyResident is optional; nil is treated as resident for permanent residents.
type EligibilityInput struct {
	Citizenship             CitizenshipStatus `json:"citizenshipStatus"`
	PropertyType            PropertyType      `json:"propertyType"`
	PropertyValue           float64           `json:"propertyValue"`
	VisaType                VisaType          `json:"visaType,omitempty"`
	IsOrdinarilyResident    *bool             `json:"isOrdinarilyResident,omitempty"`
	Purpose                 PurchasePurpose   `json:"purpose,omitempty"`
	OwnsEstablishedDwelling bool              `json:"ownsEstablishedDwelling"`
	IsRedevelopment         bool              `json:"isRedevelopment"`
}

// EligibilityResult is the eligibility verdict for a purchase.
// When CanPurchase is false, RequiresApproval is false, ApprovalFeeTier is nil
// and ReasonForDenial is set.
type EligibilityResult struct {
	CanPurchase      bool          `json:"canPurchase"`
	RequiresApproval bool          `json:"requiresApproval"`
	ApprovalFeeTier  *float64      `json:"approvalFeeTier"`
	Conditions       []string      `json:"conditions"`
	ReasonForDenial  *DenialReason `json:"reasonForDenial,omitempty"`
	Explanation      string        `json:"explanation"`
}
