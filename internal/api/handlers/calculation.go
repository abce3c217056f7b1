package handlers

import (
	"errors"
	"net/http"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/request"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/response"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/service"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/validation"
)

// CalculationHandler handles HTTP requests for the calculation endpoints.
// Requests are validated here; the calculation itself is delegated to the
// calculationService.
type CalculationHandler struct {
	calculationService *service.CalculationService
}

// NewCalculationHandler creates a new CalculationHandler with the provided service dependency.
func NewCalculationHandler(calculationService *service.CalculationService) *CalculationHandler {
	return &CalculationHandler{
		calculationService: calculationService,
	}
}

// Eligibility handles POST requests to classify a buyer and property.
// A purchase that is not allowed is a normal 200 response with canPurchase false.
//
// Endpoint: POST /api/calculate/eligibility
// Request Body: PropertyRequest
// Response: 200 OK with EligibilityResult
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *CalculationHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.PropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidRequestBody.Error(), err.Error())
		return
	}

	if err := validation.ValidateEligibility(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result := h.calculationService.EvaluateEligibility(eligibilityInput(req))
	response.RespondJSON(w, http.StatusOK, result)
}

// Costs handles POST requests to price a purchase.
//
// Endpoint: POST /api/calculate/costs
// Request Body: PropertyRequest (state required)
// Response: 200 OK with CostCalculation
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *CalculationHandler) Costs(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.PropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidRequestBody.Error(), err.Error())
		return
	}

	if err := validation.ValidateCosts(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result := h.calculationService.ComputeCosts(r.Context(), costInputs(req))
	response.RespondJSON(w, http.StatusOK, result)
}

// Analytics handles POST requests to run a full investment analysis.
//
// Endpoint: POST /api/calculate/analytics
// Request Body: AnalyticsRequest
// Response: 200 OK with AnalyticsCalculation
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 422 Unprocessable Entity if the inputs cannot be projected
// Error: 500 Internal Server Error if the analysis fails
func (h *CalculationHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AnalyticsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidRequestBody.Error(), err.Error())
		return
	}

	if err := validation.ValidateAnalytics(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.calculationService.Analyze(r.Context(), analysisInput(req))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperrors.ErrComputation) || errors.Is(err, apperrors.ErrHoldPeriodOutOfRange) {
			status = http.StatusUnprocessableEntity
		}
		response.RespondError(w, status, apperrors.ErrFailedToAnalyzeInvestment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// respondValidationError sends a 400 with the per-field messages as details.
func respondValidationError(w http.ResponseWriter, err error) {
	var ve *validation.Error
	if errors.As(err, &ve) {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrValidation.Error(), ve.Fields)
		return
	}
	response.RespondError(w, http.StatusBadRequest, apperrors.ErrValidation.Error(), err.Error())
}

func eligibilityInput(req request.PropertyRequest) model.EligibilityInput {
	return model.EligibilityInput{
		Citizenship:             model.CitizenshipStatus(req.CitizenshipStatus),
		PropertyType:            model.PropertyType(req.PropertyType),
		PropertyValue:           req.PropertyValue,
		VisaType:                model.VisaType(req.VisaType),
		IsOrdinarilyResident:    req.IsOrdinarilyResident,
		Purpose:                 model.PurchasePurpose(req.Purpose),
		OwnsEstablishedDwelling: req.OwnsEstablishedDwelling,
		IsRedevelopment:         req.IsRedevelopment,
	}
}

func costInputs(req request.PropertyRequest) model.CostInputs {
	return model.CostInputs{
		Citizenship:          model.CitizenshipStatus(req.CitizenshipStatus),
		IsOrdinarilyResident: req.IsOrdinarilyResident,
		PropertyType:         model.PropertyType(req.PropertyType),
		PropertyValue:        req.PropertyValue,
		State:                model.AustralianState(req.State),
		EntityType:           model.EntityType(req.EntityType),
		IsFirstHome:          req.IsFirstHome,
		DepositPercent:       req.DepositPercent,
		ExpectedVacantDays:   req.ExpectedVacantDays,
		AnnualStrata:         req.AnnualStrata,
	}
}

func analysisInput(req request.AnalyticsRequest) model.AnalysisInput {
	inv := req.Investment
	return model.AnalysisInput{
		Eligibility: eligibilityInput(req.PropertyRequest),
		Costs:       costInputs(req.PropertyRequest),
		Investment: model.InvestmentInputs{
			WeeklyRent:            inv.WeeklyRent,
			VacancyRate:           inv.VacancyRate,
			RentGrowthRate:        inv.RentGrowthRate,
			PropertyManagementFee: inv.PropertyManagementFee,
			LettingFeeWeeks:       inv.LettingFeeWeeks,
			SelfManaged:           inv.SelfManaged,
			LoanAmount:            inv.LoanAmount,
			InterestRate:          inv.InterestRate,
			LoanTermYears:         inv.LoanTermYears,
			LoanType:              model.LoanType(inv.LoanType),
			InterestOnlyYears:     inv.InterestOnlyYears,
			HoldYears:             inv.HoldYears,
			CapitalGrowthRate:     inv.CapitalGrowthRate,
			MarginalTaxRate:       inv.MarginalTaxRate,
			SellingCostsPercent:   inv.SellingCostsPercent,
			CGTWithholdingRate:    inv.CGTWithholdingRate,
			BuildingAge:           inv.BuildingAge,
			CapitalImprovements:   inv.CapitalImprovements,
		},
	}
}
