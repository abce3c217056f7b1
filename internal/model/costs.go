package model

// Keys used in CostBreakdown.OneTimeCosts.
const (
	CostApprovalFee          = "approvalFee"
	CostTransferDuty         = "transferDuty"
	CostSurcharge            = "surcharge"
	CostLegalFees            = "legalFees"
	CostInspectionFees       = "inspectionFees"
	CostLoanEstablishmentFee = "loanEstablishmentFee"
)

// Keys used in CostBreakdown.RecurringAnnualCosts.
const (
	CostCouncilRates     = "councilRates"
	CostInsurance        = "insurance"
	CostMaintenance      = "maintenance"
	CostStrata           = "strata"
	CostLandTaxSurcharge = "landTaxSurcharge"
	CostVacancyFee       = "vacancyFee"
)

// CostInputs describes the purchase being costed.
type CostInputs struct {
	Citizenship          CitizenshipStatus `json:"citizenshipStatus"`
	IsOrdinarilyResident *bool             `json:"isOrdinarilyResident,omitempty"`
	PropertyType         PropertyType      `json:"propertyType"`
	PropertyValue        float64           `json:"propertyValue"`
	State                AustralianState   `json:"state"`
	EntityType           EntityType        `json:"entityType"`
	IsFirstHome          bool              `json:"isFirstHome"`
	DepositPercent       float64           `json:"depositPercent"`
	ExpectedVacantDays   int               `json:"expectedVacantDays"`
	AnnualStrata         float64           `json:"annualStrata"`
}

// CostBreakdown holds one-time and recurring costs of a purchase.
// TotalUpfrontCost is the sum of OneTimeCosts and TotalAnnualCost is the sum of
// RecurringAnnualCosts. All amounts are non-negative and rounded to cents.
type CostBreakdown struct {
	OneTimeCosts         map[string]float64 `json:"oneTimeCosts"`
	RecurringAnnualCosts map[string]float64 `json:"recurringAnnualCosts"`
	TotalUpfrontCost     float64            `json:"totalUpfrontCost"`
	TotalAnnualCost      float64            `json:"totalAnnualCost"`
	PurchasePrice        float64            `json:"purchasePrice"`
	DepositAmount        float64            `json:"depositAmount"`
	LoanAmount           float64            `json:"loanAmount"`
	TotalAcquisitionCost float64            `json:"totalAcquisitionCost"`
	LandValue            float64            `json:"landValue"`
	FirstHomeConcession  float64            `json:"firstHomeConcession"`
}
