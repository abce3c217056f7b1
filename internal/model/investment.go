package model

// MaxHoldYears bounds every year-by-year loop in the engine.
const MaxHoldYears = 50

// InvestmentInputs are the rental, loan and tax assumptions of an investment.
// Percentages are expressed as 0-100. A zero InterestRate, MarginalTaxRate or
// CGTWithholdingRate, and for managed properties a zero PropertyManagementFee or
// LettingFeeWeeks, is filled from benchmarks when the analysis runs.
type InvestmentInputs struct {
	WeeklyRent            float64  `json:"weeklyRent"`
	VacancyRate           float64  `json:"vacancyRate"`
	RentGrowthRate        float64  `json:"rentGrowthRate"`
	PropertyManagementFee float64  `json:"propertyManagementFee"`
	LettingFeeWeeks       float64  `json:"lettingFeeWeeks"`
	SelfManaged           bool     `json:"selfManaged"`
	LoanAmount            float64  `json:"loanAmount"`
	InterestRate          float64  `json:"interestRate"`
	LoanTermYears         int      `json:"loanTermYears"`
	LoanType              LoanType `json:"loanType"`
	InterestOnlyYears     int      `json:"interestOnlyYears"`
	HoldYears             int      `json:"holdYears"`
	CapitalGrowthRate     float64  `json:"capitalGrowthRate"`
	MarginalTaxRate       float64  `json:"marginalTaxRate"`
	SellingCostsPercent   float64  `json:"sellingCostsPercent"`
	CGTWithholdingRate    float64  `json:"cgtWithholdingRate"`
	BuildingAge           int      `json:"buildingAge"`
	CapitalImprovements   float64  `json:"capitalImprovements"`
}

// AnalysisInput bundles everything needed to run a full investment analysis.
type AnalysisInput struct {
	Eligibility EligibilityInput `json:"eligibility"`
	Costs       CostInputs       `json:"costs"`
	Investment  InvestmentInputs `json:"investment"`
}

// AmortizationRow is one loan year.
type AmortizationRow struct {
	Year           int     `json:"year"`
	OpeningBalance float64 `json:"openingBalance"`
	Interest       float64 `json:"interest"`
	Principal      float64 `json:"principal"`
	Repayment      float64 `json:"repayment"`
	ClosingBalance float64 `json:"closingBalance"`
}

// YearlyProjection is one row of the hold period.
// Equity is always PropertyValue - LoanBalance.
type YearlyProjection struct {
	Year               int     `json:"year"`
	PropertyValue      float64 `json:"propertyValue"`
	LoanBalance        float64 `json:"loanBalance"`
	Equity             float64 `json:"equity"`
	RentalIncome       float64 `json:"rentalIncome"`
	OperatingExpenses  float64 `json:"operatingExpenses"`
	Expenses           float64 `json:"expenses"`
	InterestPaid       float64 `json:"interestPaid"`
	PrincipalPaid      float64 `json:"principalPaid"`
	LoanRepayment      float64 `json:"loanRepayment"`
	Depreciation       float64 `json:"depreciation"`
	NetCashFlow        float64 `json:"netCashFlow"`
	TaxBenefit         float64 `json:"taxBenefit"`
	AfterTaxCashFlow   float64 `json:"afterTaxCashFlow"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
	CumulativeReturn   float64 `json:"cumulativeReturn"`
}

// RentalYield summarises income relative to price.
type RentalYield struct {
	Gross          float64 `json:"gross"`
	Net            float64 `json:"net"`
	AnnualRent     float64 `json:"annualRent"`
	EffectiveRent  float64 `json:"effectiveRent"`
	BenchmarkGross float64 `json:"benchmarkGross"`
}

// CashFlowSummary summarises the first year and the whole hold period.
type CashFlowSummary struct {
	AnnualNetCashFlow      float64 `json:"annualNetCashFlow"`
	AnnualAfterTaxCashFlow float64 `json:"annualAfterTaxCashFlow"`
	MonthlyNetCashFlow     float64 `json:"monthlyNetCashFlow"`
	TotalAfterTaxCashFlow  float64 `json:"totalAfterTaxCashFlow"`
}

// ROI holds return measures over the hold period.
type ROI struct {
	InitialCapital  float64 `json:"initialCapital"`
	TotalReturn     float64 `json:"totalReturn"`
	TotalROI        float64 `json:"totalRoi"`
	AnnualizedROI   float64 `json:"annualizedRoi"`
	CashOnCash      float64 `json:"cashOnCash"`
	NetSaleProceeds float64 `json:"netSaleProceeds"`
}

// CapitalGrowth describes the projected change in property value.
type CapitalGrowth struct {
	PurchasePrice   float64 `json:"purchasePrice"`
	FinalValue      float64 `json:"finalValue"`
	TotalGrowth     float64 `json:"totalGrowth"`
	GrowthRate      float64 `json:"growthRate"`
	BenchmarkGrowth float64 `json:"benchmarkGrowth"`
}

// LoanMetrics describes the financing.
type LoanMetrics struct {
	LoanAmount            float64  `json:"loanAmount"`
	LVR                   float64  `json:"lvr"`
	InterestRate          float64  `json:"interestRate"`
	LoanType              LoanType `json:"loanType"`
	MonthlyRepayment      float64  `json:"monthlyRepayment"`
	TotalInterestOverHold float64  `json:"totalInterestOverHold"`
	BalanceAtExit         float64  `json:"balanceAtExit"`
}

// ComparisonInvestment is the outcome of placing the same capital in an alternative asset.
type ComparisonInvestment struct {
	Name        string  `json:"name"`
	Rate        float64 `json:"rate"`
	FinalValue  float64 `json:"finalValue"`
	TotalReturn float64 `json:"totalReturn"`
}

// VacancyScenario is one row of the vacancy sensitivity table.
type VacancyScenario struct {
	VacancyRate      float64 `json:"vacancyRate"`
	NetCashFlow      float64 `json:"netCashFlow"`
	AfterTaxCashFlow float64 `json:"afterTaxCashFlow"`
	DeltaFromBase    float64 `json:"deltaFromBase"`
}

// InterestScenario is one row of the interest-rate sensitivity table.
type InterestScenario struct {
	InterestRate     float64 `json:"interestRate"`
	MonthlyRepayment float64 `json:"monthlyRepayment"`
	NetCashFlow      float64 `json:"netCashFlow"`
	DeltaFromBase    float64 `json:"deltaFromBase"`
}

// GrowthScenario is one row of the capital-growth sensitivity table.
type GrowthScenario struct {
	Scenario      string  `json:"scenario"`
	GrowthRate    float64 `json:"growthRate"`
	FinalValue    float64 `json:"finalValue"`
	FinalEquity   float64 `json:"finalEquity"`
	TotalReturn   float64 `json:"totalReturn"`
	DeltaFromBase float64 `json:"deltaFromBase"`
}

// Sensitivity holds the three sensitivity tables.
type Sensitivity struct {
	Vacancy  []VacancyScenario  `json:"vacancy"`
	Interest []InterestScenario `json:"interest"`
	Growth   []GrowthScenario   `json:"growth"`
}

// Deductions itemises annually deductible expenses for year one.
type Deductions struct {
	LoanInterest     float64 `json:"loanInterest"`
	CouncilRates     float64 `json:"councilRates"`
	ManagementFees   float64 `json:"managementFees"`
	LettingFees      float64 `json:"lettingFees"`
	Maintenance      float64 `json:"maintenance"`
	Insurance        float64 `json:"insurance"`
	LandTaxSurcharge float64 `json:"landTaxSurcharge"`
	Strata           float64 `json:"strata"`
	Depreciation     float64 `json:"depreciation"`
	Total            float64 `json:"total"`
}

// CapitalGainsTax is the estimated tax at the end of the hold period.
// CapitalLoss is set instead of a negative gain.
type CapitalGainsTax struct {
	SalePrice          float64 `json:"salePrice"`
	SellingCosts       float64 `json:"sellingCosts"`
	CostBase           float64 `json:"costBase"`
	CapitalGain        float64 `json:"capitalGain"`
	CapitalLoss        float64 `json:"capitalLoss"`
	DiscountApplied    bool    `json:"discountApplied"`
	TaxableGain        float64 `json:"taxableGain"`
	CGTAmount          float64 `json:"cgtAmount"`
	ForeignWithholding float64 `json:"foreignWithholding"`
	NetProceeds        float64 `json:"netProceeds"`
}

// TaxAnalysis combines annual deductions and the exit tax estimate.
type TaxAnalysis struct {
	AnnualDeductions Deductions      `json:"annualDeductions"`
	AnnualTaxSaving  float64         `json:"annualTaxSaving"`
	MarginalTaxRate  float64         `json:"marginalTaxRate"`
	CapitalGains     CapitalGainsTax `json:"capitalGains"`
}

// SubScores are the five independent 0-10 scores.
type SubScores struct {
	RentalYield   float64 `json:"rentalYield"`
	CapitalGrowth float64 `json:"capitalGrowth"`
	CashFlow      float64 `json:"cashFlow"`
	TaxEfficiency float64 `json:"taxEfficiency"`
	Risk          float64 `json:"risk"`
}

// Verdict is the discrete band derived from the overall score.
type Verdict string

const (
	VerdictExcellent      Verdict = "Excellent"
	VerdictGood           Verdict = "Good"
	VerdictModerate       Verdict = "Moderate"
	VerdictPoor           Verdict = "Poor"
	VerdictNotRecommended Verdict = "Not Recommended"
)

// ScoreBreakdown is the scored outcome of an analysis.
type ScoreBreakdown struct {
	SubScores SubScores `json:"subScores"`
	Overall   float64   `json:"overall"`
	Verdict   Verdict   `json:"verdict"`
}

// Recommendation is a short textual reading of the score.
type Recommendation struct {
	Verdict    Verdict  `json:"verdict"`
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// BreakEven holds the first years at which the investment turns around.
// A nil field means the milestone is not reached within the hold period.
type BreakEven struct {
	CashFlowPositiveYear *int `json:"cashFlowPositiveYear"`
	CostRecoveryYear     *int `json:"costRecoveryYear"`
}

// InvestmentAnalytics is the complete output of an investment analysis.
type InvestmentAnalytics struct {
	Eligibility    EligibilityResult      `json:"eligibility"`
	Costs          CostBreakdown          `json:"costs"`
	RentalYield    RentalYield            `json:"rentalYield"`
	CashFlow       CashFlowSummary        `json:"cashFlow"`
	ROI            ROI                    `json:"roi"`
	CapitalGrowth  CapitalGrowth          `json:"capitalGrowth"`
	Loan           LoanMetrics            `json:"loan"`
	Projections    []YearlyProjection     `json:"projections"`
	Comparisons    []ComparisonInvestment `json:"comparisons"`
	Sensitivity    Sensitivity            `json:"sensitivity"`
	Tax            TaxAnalysis            `json:"tax"`
	Score          ScoreBreakdown         `json:"score"`
	Recommendation Recommendation         `json:"recommendation"`
	BreakEven      BreakEven              `json:"breakEven"`
}
