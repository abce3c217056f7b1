package request

// PropertyRequest describes the buyer and the property. The eligibility endpoint
// ignores the cost-only fields.
type PropertyRequest struct {
	CitizenshipStatus       string  `json:"citizenshipStatus"`
	VisaType                string  `json:"visaType,omitempty"`
	IsOrdinarilyResident    *bool   `json:"isOrdinarilyResident,omitempty"`
	Purpose                 string  `json:"purpose,omitempty"`
	OwnsEstablishedDwelling bool    `json:"ownsEstablishedDwelling"`
	IsRedevelopment         bool    `json:"isRedevelopment"`
	PropertyType            string  `json:"propertyType"`
	PropertyValue           float64 `json:"propertyValue"`
	State                   string  `json:"state"`
	EntityType              string  `json:"entityType,omitempty"`
	IsFirstHome             bool    `json:"isFirstHome"`
	DepositPercent          float64 `json:"depositPercent"`
	ExpectedVacantDays      int     `json:"expectedVacantDays"`
	AnnualStrata            float64 `json:"annualStrata"`
}

// InvestmentRequest holds the rental, loan and tax assumptions. Zero rates are
// filled from benchmarks.
type InvestmentRequest struct {
	WeeklyRent            float64 `json:"weeklyRent"`
	VacancyRate           float64 `json:"vacancyRate"`
	RentGrowthRate        float64 `json:"rentGrowthRate"`
	PropertyManagementFee float64 `json:"propertyManagementFee"`
	LettingFeeWeeks       float64 `json:"lettingFeeWeeks"`
	SelfManaged           bool    `json:"selfManaged"`
	LoanAmount            float64 `json:"loanAmount"`
	InterestRate          float64 `json:"interestRate"`
	LoanTermYears         int     `json:"loanTermYears"`
	LoanType              string  `json:"loanType,omitempty"`
	InterestOnlyYears     int     `json:"interestOnlyYears"`
	HoldYears             int     `json:"holdYears"`
	CapitalGrowthRate     float64 `json:"capitalGrowthRate"`
	MarginalTaxRate       float64 `json:"marginalTaxRate"`
	SellingCostsPercent   float64 `json:"sellingCostsPercent"`
	CGTWithholdingRate    float64 `json:"cgtWithholdingRate"`
	BuildingAge           int     `json:"buildingAge"`
	CapitalImprovements   float64 `json:"capitalImprovements"`
}

type AnalyticsRequest struct {
	PropertyRequest
	Investment InvestmentRequest `json:"investment"`
}
