package model

import "time"

// Benchmark metric names understood by the engine.
const (
	MetricInterestRate          = "interest_rate"
	MetricCGTWithholdingRate    = "cgt_withholding_rate"
	MetricMarginalTaxRate       = "marginal_tax_rate"
	MetricASXReturn             = "asx_return"
	MetricTermDepositRate       = "term_deposit_rate"
	MetricBondRate              = "bond_rate"
	MetricSavingsRate           = "savings_rate"
	MetricInflationRate         = "inflation_rate"
	MetricRentalYield           = "rental_yield"
	MetricCapitalGrowth         = "capital_growth"
	MetricCouncilRatePercent    = "council_rate_percent"
	MetricInsurancePercent      = "insurance_percent"
	MetricMaintenancePercent    = "maintenance_percent"
	MetricVacancyRate           = "vacancy_rate"
	MetricPropertyManagementFee = "property_management_fee"
	MetricLettingFeeWeeks       = "letting_fee_weeks"
	MetricLegalFees             = "legal_fees"
	MetricInspectionFees        = "inspection_fees"
	MetricLoanEstablishmentFee  = "loan_establishment_fee"
	MetricLandValueRatio        = "land_value_ratio"
)

// CostMetrics are the metrics looked up per state and property type.
var CostMetrics = []string{
	MetricCouncilRatePercent,
	MetricInsurancePercent,
	MetricMaintenancePercent,
	MetricVacancyRate,
	MetricPropertyManagementFee,
	MetricLettingFeeWeeks,
	MetricLegalFees,
	MetricInspectionFees,
	MetricLoanEstablishmentFee,
	MetricLandValueRatio,
	MetricRentalYield,
	MetricCapitalGrowth,
}

// MacroMetrics are the economy-wide metrics.
var MacroMetrics = []string{
	MetricInterestRate,
	MetricCGTWithholdingRate,
	MetricMarginalTaxRate,
	MetricASXReturn,
	MetricTermDepositRate,
	MetricBondRate,
	MetricSavingsRate,
	MetricInflationRate,
}

// Benchmarks is the merged set of reference numbers the engine runs against.
// Every field is populated: missing provider values are replaced by defaults.
type Benchmarks struct {
	InterestRate          float64 `json:"interestRate"`
	CGTWithholdingRate    float64 `json:"cgtWithholdingRate"`
	MarginalTaxRate       float64 `json:"marginalTaxRate"`
	ASXReturn             float64 `json:"asxReturn"`
	TermDepositRate       float64 `json:"termDepositRate"`
	BondRate              float64 `json:"bondRate"`
	SavingsRate           float64 `json:"savingsRate"`
	InflationRate         float64 `json:"inflationRate"`
	RentalYield           float64 `json:"rentalYield"`
	CapitalGrowth         float64 `json:"capitalGrowth"`
	CouncilRatePercent    float64 `json:"councilRatePercent"`
	InsurancePercent      float64 `json:"insurancePercent"`
	MaintenancePercent    float64 `json:"maintenancePercent"`
	VacancyRate           float64 `json:"vacancyRate"`
	PropertyManagementFee float64 `json:"propertyManagementFee"`
	LettingFeeWeeks       float64 `json:"lettingFeeWeeks"`
	LegalFees             float64 `json:"legalFees"`
	InspectionFees        float64 `json:"inspectionFees"`
	LoanEstablishmentFee  float64 `json:"loanEstablishmentFee"`
	LandValueRatio        float64 `json:"landValueRatio"`
	// Defaulted lists the metrics that fell back to built-in defaults.
	Defaulted []string `json:"defaulted,omitempty"`
}

// BenchmarkRecord is a stored benchmark value. Empty State and PropertyType mean
// the value applies to every state or property type.
type BenchmarkRecord struct {
	ID           string    `json:"id"`
	State        string    `json:"state"`
	PropertyType string    `json:"propertyType"`
	Metric       string    `json:"metric"`
	Value        float64   `json:"value"`
	Source       string    `json:"source"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ScopeNational selects rows with an empty state or property type in BenchmarkFilters.
const ScopeNational = "national"

// BenchmarkFilters narrows a listing of stored benchmark rows. Empty slices
// match everything; a ScopeNational entry is stored as "".
type BenchmarkFilters struct {
	States        []string
	PropertyTypes []string
	Metrics       []string
	Source        string
	UpdatedSince  *time.Time
	SortDir       string
	Limit         int
}
