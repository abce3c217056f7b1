package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/handlers"
	custommiddleware "github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/middleware"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/config"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	calculationService *service.CalculationService,
	benchmarkService *service.BenchmarkService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/calculate", func(r chi.Router) {
			calculationHandler := handlers.NewCalculationHandler(calculationService)
			r.Post("/eligibility", calculationHandler.Eligibility)
			r.Post("/costs", calculationHandler.Costs)
			r.Post("/analytics", calculationHandler.Analytics)
		})

		r.Route("/benchmarks", func(r chi.Router) {
			benchmarkHandler := handlers.NewBenchmarkHandler(calculationService, benchmarkService)
			r.Get("/", benchmarkHandler.Benchmarks)
			r.Get("/macro", benchmarkHandler.Macro)
			r.Get("/records", benchmarkHandler.Records)
			r.With(custommiddleware.ValidateUUIDParam("id")).Get("/records/{id}", benchmarkHandler.Record)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(custommiddleware.APIKeyMiddleware)
			adminHandler := handlers.NewAdminHandler(benchmarkService)
			r.Post("/benchmarks/import", adminHandler.ImportBenchmarks)
		})
	})

	return r
}
