package model

// CitizenshipStatus describes the buyer's residency position for investment-review purposes.
type CitizenshipStatus string

const (
	CitizenshipAustralian        CitizenshipStatus = "australian"
	CitizenshipPermanentResident CitizenshipStatus = "permanent-resident"
	CitizenshipTemporaryResident CitizenshipStatus = "temporary-resident"
	CitizenshipForeignNational   CitizenshipStatus = "foreign-national"
)

// PropertyType is the kind of property being acquired.
// Established dwellings carry stricter rules for foreign and temporary buyers.
type PropertyType string

const (
	PropertyNewDwelling         PropertyType = "new-dwelling"
	PropertyEstablishedDwelling PropertyType = "established-dwelling"
	PropertyVacantLand          PropertyType = "vacant-land"
	PropertyCommercial          PropertyType = "commercial"
)

// AllPropertyTypes lists every property type in a stable order.
var AllPropertyTypes = []PropertyType{PropertyNewDwelling, PropertyEstablishedDwelling, PropertyVacantLand, PropertyCommercial}

// IsResidential reports whether residential-only surcharges can apply.
func (p PropertyType) IsResidential() bool {
	return p == PropertyNewDwelling || p == PropertyEstablishedDwelling || p == PropertyVacantLand
}

// AustralianState is a state or territory code.
type AustralianState string

const (
	StateNSW AustralianState = "NSW"
	StateVIC AustralianState = "VIC"
	StateQLD AustralianState = "QLD"
	StateWA  AustralianState = "WA"
	StateSA  AustralianState = "SA"
	StateTAS AustralianState = "TAS"
	StateACT AustralianState = "ACT"
	StateNT  AustralianState = "NT"
)

// AllStates lists every state and territory in a stable order.
var AllStates = []AustralianState{StateNSW, StateVIC, StateQLD, StateWA, StateSA, StateTAS, StateACT, StateNT}

// EntityType is the legal form of the purchaser.
type EntityType string

const (
	EntityIndividual EntityType = "individual"
	EntityCompany    EntityType = "company"
	EntityTrust      EntityType = "trust"
)

// VisaType identifies the visa held by a temporary resident.
type VisaType string

const (
	VisaStudent            VisaType = "student"
	VisaTemporarySkilled   VisaType = "temporary-skilled"
	VisaTemporaryGraduate  VisaType = "temporary-graduate"
	VisaPartnerProvisional VisaType = "partner-provisional"
	VisaBridging           VisaType = "bridging"
	VisaOtherTemporary     VisaType = "other-temporary"
)

// PurchasePurpose is how the buyer intends to use the property.
type PurchasePurpose string

const (
	PurposePrimaryResidence PurchasePurpose = "primary-residence"
	PurposeInvestment       PurchasePurpose = "investment"
)

// LoanType selects the repayment structure of the loan.
type LoanType string

const (
	LoanPrincipalAndInterest LoanType = "principal-and-interest"
	LoanInterestOnly         LoanType = "interest-only"
)
