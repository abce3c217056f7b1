package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/response"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/service"
)

// AdminHandler handles HTTP requests for operator endpoints.
// Routes using it must sit behind middleware.APIKeyMiddleware.
type AdminHandler struct {
	benchmarkService *service.BenchmarkService
}

// NewAdminHandler creates a new AdminHandler with the provided service dependency.
func NewAdminHandler(benchmarkService *service.BenchmarkService) *AdminHandler {
	return &AdminHandler{
		benchmarkService: benchmarkService,
	}
}

// ImportResponse reports how many benchmark rows an import stored.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ImportBenchmarks handles POST requests carrying a YAML benchmark document.
// The document uses the same layout as BENCHMARK_FILE.
//
// Endpoint: POST /api/admin/benchmarks/import
// Response: 200 OK with ImportResponse
// Error: 400 Bad Request for an unreadable or invalid document, 500 if storing fails
func (h *AdminHandler) ImportBenchmarks(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidRequestBody.Error(), err.Error())
		return
	}

	n, err := h.benchmarkService.ImportYAML(r.Context(), data)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidBenchmarkFile) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidBenchmarkFile.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to import benchmarks", err.Error())
		return
	}

	log.Printf("Imported %d benchmark rows via the admin API", n)
	respondJSON(w, http.StatusOK, ImportResponse{Imported: n})
}
