package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/request"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/response"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/service"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/validation"
)

// BenchmarkHandler serves the merged benchmark values the calculations run
// against, and the stored rows behind them.
type BenchmarkHandler struct {
	calculationService *service.CalculationService
	benchmarkService   *service.BenchmarkService
}

// NewBenchmarkHandler creates a new BenchmarkHandler.
func NewBenchmarkHandler(calculationService *service.CalculationService, benchmarkService *service.BenchmarkService) *BenchmarkHandler {
	return &BenchmarkHandler{
		calculationService: calculationService,
		benchmarkService:   benchmarkService,
	}
}

// Macro handles GET requests for the economy-wide benchmarks.
//
// Endpoint: GET /api/benchmarks/macro
// Response: 200 OK with Benchmarks (cost fields carry defaults)
func (h *BenchmarkHandler) Macro(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.calculationService.MacroBenchmarks(r.Context()))
}

// Benchmarks handles GET requests for the full benchmark set of a state and property type.
//
// Endpoint: GET /api/benchmarks?state=NSW&propertyType=new-dwelling
// Response: 200 OK with Benchmarks
// Error: 400 Bad Request if state or propertyType is missing or unknown
func (h *BenchmarkHandler) Benchmarks(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	propertyType := r.URL.Query().Get("propertyType")

	errs := make(map[string]string)
	if !validation.ValidState(state) {
		errs["state"] = "state must be a valid state or territory code"
	}
	if !validation.ValidPropertyType[propertyType] {
		errs["propertyType"] = "propertyType must be a valid property type"
	}
	if len(errs) > 0 {
		respondValidationError(w, &validation.Error{Fields: errs})
		return
	}

	benchmarks := h.calculationService.Benchmarks(r.Context(), model.AustralianState(state), model.PropertyType(propertyType))
	response.RespondJSON(w, http.StatusOK, benchmarks)
}

// Records handles GET requests listing stored benchmark rows.
//
// Endpoint: GET /api/benchmarks/records?states=NSW,national&metrics=rental_yield&limit=20
// Response: 200 OK with []BenchmarkRecord
// Error: 400 Bad Request for invalid filters, 500 if the query fails
func (h *BenchmarkHandler) Records(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters, err := request.ParseBenchmarkFilters(
		q.Get("states"),
		q.Get("propertyTypes"),
		q.Get("metrics"),
		q.Get("source"),
		q.Get("updatedSince"),
		q.Get("sortDir"),
		q.Get("limit"),
	)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid filter parameters", err.Error())
		return
	}

	records, err := h.benchmarkService.ListBenchmarks(r.Context(), *filters)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBenchmarks.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, records)
}

// Record handles GET requests for a single stored benchmark row.
//
// Endpoint: GET /api/benchmarks/records/{id}
// Response: 200 OK with BenchmarkRecord
// Error: 404 Not Found if no row has the ID, 500 if the query fails
func (h *BenchmarkHandler) Record(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.benchmarkService.GetBenchmark(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBenchmarkNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBenchmarkNotFound.Error(), id)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBenchmarks.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, record)
}
