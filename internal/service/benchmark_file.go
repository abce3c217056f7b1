package service

import (
	"fmt"
	"math"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v2"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/engine"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// BenchmarkFile is the YAML layout of a benchmark import file:
//
//	source: RBA statistical tables, March
//	macro:
//	  interest_rate: 6.2
//	states:
//	  NSW:
//	    rental_yield: 3.3
//	propertyTypes:
//	  commercial:
//	    vacancy_rate: 8
//	overrides:
//	  - state: QLD
//	    propertyType: new-dwelling
//	    metric: maintenance_percent
//	    value: 0.4
type BenchmarkFile struct {
	Source        string                        `yaml:"source"`
	Macro         map[string]float64            `yaml:"macro"`
	States        map[string]map[string]float64 `yaml:"states"`
	PropertyTypes map[string]map[string]float64 `yaml:"propertyTypes"`
	Overrides     []BenchmarkOverride           `yaml:"overrides"`
}

// BenchmarkOverride is a value for one state and property type combination.
type BenchmarkOverride struct {
	State        string  `yaml:"state"`
	PropertyType string  `yaml:"propertyType"`
	Metric       string  `yaml:"metric"`
	Value        float64 `yaml:"value"`
}

// LoadBenchmarkFile reads and validates a YAML benchmark file.
func LoadBenchmarkFile(path string) ([]model.BenchmarkRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark file: %w", err)
	}
	return ParseBenchmarkFile(data)
}

// ParseBenchmarkFile converts YAML benchmark data into rows. Every metric must be
// one the engine knows, every state and property type must be valid and every
// value must be a finite, non-negative number.
func ParseBenchmarkFile(data []byte) ([]model.BenchmarkRecord, error) {
	var file BenchmarkFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidBenchmarkFile, err)
	}

	var records []model.BenchmarkRecord
	add := func(state, propertyType, metric string, value float64) error {
		if _, ok := engine.DefaultBenchmarks[metric]; !ok {
			return fmt.Errorf("%w: unknown metric %q", apperrors.ErrInvalidBenchmarkFile, metric)
		}
		if state != "" && !isKnownState(state) {
			return fmt.Errorf("%w: %w %q", apperrors.ErrInvalidBenchmarkFile, apperrors.ErrUnknownState, state)
		}
		if propertyType != "" && !isKnownPropertyType(propertyType) {
			return fmt.Errorf("%w: %w %q", apperrors.ErrInvalidBenchmarkFile, apperrors.ErrUnknownPropertyType, propertyType)
		}
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: invalid value for %s", apperrors.ErrInvalidBenchmarkFile, metric)
		}
		records = append(records, model.BenchmarkRecord{
			State:        state,
			PropertyType: propertyType,
			Metric:       metric,
			Value:        value,
			Source:       file.Source,
		})
		return nil
	}

	for _, metric := range sortedKeys(file.Macro) {
		if err := add("", "", metric, file.Macro[metric]); err != nil {
			return nil, err
		}
	}
	for _, state := range sortedKeys(file.States) {
		for _, metric := range sortedKeys(file.States[state]) {
			if err := add(state, "", metric, file.States[state][metric]); err != nil {
				return nil, err
			}
		}
	}
	for _, pt := range sortedKeys(file.PropertyTypes) {
		for _, metric := range sortedKeys(file.PropertyTypes[pt]) {
			if err := add("", pt, metric, file.PropertyTypes[pt][metric]); err != nil {
				return nil, err
			}
		}
	}
	for _, o := range file.Overrides {
		if err := add(o.State, o.PropertyType, o.Metric, o.Value); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func isKnownState(state string) bool {
	return slices.Contains(model.AllStates, model.AustralianState(state))
}

func isKnownPropertyType(pt string) bool {
	return slices.Contains(model.AllPropertyTypes, model.PropertyType(pt))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
