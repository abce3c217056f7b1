package apperrors

import "errors"

// Input errors represent malformed or out-of-range requests.
// The engine itself fails closed instead of returning these; they are raised by
// request validation before the engine runs.
var (
	// ErrValidation indicates that a request failed field validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRequestBody indicates that the request body could not be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrUnknownState indicates a state or territory code that is not recognised.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownPropertyType indicates a property type that is not recognised.
	ErrUnknownPropertyType = errors.New("unknown property type")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")
)

// Computation errors can only be caused by programmer error: valid, validated
// input never produces them.
var (
	// ErrComputation indicates an impossible calculation such as a non-positive loan term.
	ErrComputation = errors.New("computation error")

	// ErrHoldPeriodOutOfRange indicates a hold period outside 1..MaxHoldYears.
	ErrHoldPeriodOutOfRange = errors.New("hold period out of range")
)

// Benchmark errors are reported by the benchmark store and provider.
// They never fail a calculation; callers log them and continue with defaults.
var (
	// ErrBenchmarkNotFound indicates no stored value for a metric.
	ErrBenchmarkNotFound = errors.New("benchmark not found")

	// ErrBenchmarkLookup indicates that a benchmark query failed.
	ErrBenchmarkLookup = errors.New("failed to look up benchmarks")

	// ErrInvalidBenchmarkFile indicates a benchmark import file that cannot be parsed.
	ErrInvalidBenchmarkFile = errors.New("invalid benchmark file")

	// ErrCacheMiss indicates the benchmark cache has no entry for a key.
	ErrCacheMiss = errors.New("cache miss")
)

// Operation failure errors returned to HTTP clients.
var (
	ErrFailedToAnalyzeInvestment  = errors.New("failed to analyze investment")
	ErrFailedToRetrieveBenchmarks = errors.New("failed to retrieve benchmarks")
)
