package request

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

const (
	defaultBenchmarkLimit = 100
	maxBenchmarkLimit     = 500
)

// ParseBenchmarkFilters extracts and validates benchmark listing filters from
// query parameters. Converts raw query string parameters into a validated
// model.BenchmarkFilters struct.
//
// states, propertyTypes and metrics are comma-separated lists; the other
// parameters are single values. All parameters are optional.
//
// Validation rules:
//   - states: state or territory codes, or "national" for rows that apply everywhere
//   - propertyTypes: property types, or "national" for rows that apply to every type
//   - metrics: known benchmark metrics
//   - updatedSince: YYYY-MM-DD or RFC3339
//   - sortDir: "asc" or "desc" (defaults to "asc")
//   - limit: between 1 and 500 (defaults to 100)
//
// Returns an error if any parameter fails validation.
//
//nolint:gocyclo // Complex validation logic is intentional and clear
func ParseBenchmarkFilters(
	statesParam, propertyTypesParam, metricsParam, sourceParam,
	updatedSinceParam, sortDirParam, limitParam string,
) (*model.BenchmarkFilters, error) {
	filters := &model.BenchmarkFilters{
		Source: strings.TrimSpace(sourceParam),
	}

	for _, state := range splitParam(statesParam) {
		state = strings.ToUpper(state)
		switch {
		case strings.EqualFold(state, model.ScopeNational):
			filters.States = append(filters.States, "")
		case slices.Contains(model.AllStates, model.AustralianState(state)):
			filters.States = append(filters.States, state)
		default:
			return nil, fmt.Errorf("invalid state: %s", state)
		}
	}

	for _, pt := range splitParam(propertyTypesParam) {
		pt = strings.ToLower(pt)
		switch {
		case pt == model.ScopeNational:
			filters.PropertyTypes = append(filters.PropertyTypes, "")
		case slices.Contains(model.AllPropertyTypes, model.PropertyType(pt)):
			filters.PropertyTypes = append(filters.PropertyTypes, pt)
		default:
			return nil, fmt.Errorf("invalid property type: %s", pt)
		}
	}

	for _, metric := range splitParam(metricsParam) {
		metric = strings.ToLower(metric)
		if !slices.Contains(model.CostMetrics, metric) && !slices.Contains(model.MacroMetrics, metric) {
			return nil, fmt.Errorf("invalid metric: %s", metric)
		}
		filters.Metrics = append(filters.Metrics, metric)
	}

	if updatedSinceParam != "" {
		since, err := parseFilterTime(updatedSinceParam)
		if err != nil {
			return nil, fmt.Errorf("invalid updatedSince format: %w", err)
		}
		filters.UpdatedSince = &since
	}

	if sortDirParam != "" {
		sortDir := strings.ToLower(sortDirParam)
		if sortDir != "asc" && sortDir != "desc" {
			return nil, fmt.Errorf("invalid sortDir: must be 'asc' or 'desc'")
		}
		filters.SortDir = sortDir
	} else {
		filters.SortDir = "asc"
	}

	if limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil {
			return nil, fmt.Errorf("invalid limit: must be a number")
		}
		if limit < 1 || limit > maxBenchmarkLimit {
			return nil, fmt.Errorf("invalid limit: must be between 1 and %d", maxBenchmarkLimit)
		}
		filters.Limit = limit
	} else {
		filters.Limit = defaultBenchmarkLimit
	}

	return filters, nil
}

func splitParam(param string) []string {
	if param == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(param, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseFilterTime accepts YYYY-MM-DD, RFC3339, and RFC3339 with milliseconds.
func parseFilterTime(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z07:00"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date or datetime", str)
}
