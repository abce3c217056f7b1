package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/repository"
)

// BenchmarkProvider supplies benchmark reference values. The returned maps are
// partial: a metric with no known value is simply absent.
type BenchmarkProvider interface {
	CostBenchmarks(ctx context.Context, state model.AustralianState, propertyType model.PropertyType, metrics []string) (map[string]float64, error)
	MacroBenchmarks(ctx context.Context, metrics []string) (map[string]float64, error)
}

// BenchmarkStore is the persistence the BenchmarkService reads from and imports into.
type BenchmarkStore interface {
	GetCostBenchmarks(ctx context.Context, state, propertyType string, metrics []string) (map[string]float64, error)
	GetMacroBenchmarks(ctx context.Context, metrics []string) (map[string]float64, error)
	UpsertBenchmarks(ctx context.Context, records []model.BenchmarkRecord) error
	ListBenchmarks(ctx context.Context, filters model.BenchmarkFilters) ([]model.BenchmarkRecord, error)
	GetBenchmarkByID(ctx context.Context, id string) (model.BenchmarkRecord, error)
}

// BenchmarkService is the BenchmarkProvider backed by the benchmark table, with
// lookups cached for a limited time.
type BenchmarkService struct {
	store BenchmarkStore
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewBenchmarkService creates a new BenchmarkService.
func NewBenchmarkService(store BenchmarkStore, cache repository.CacheRepository, ttl time.Duration) *BenchmarkService {
	return &BenchmarkService{
		store: store,
		cache: cache,
		ttl:   ttl,
	}
}

// CostBenchmarks returns the stored values of the requested per-state metrics.
func (s *BenchmarkService) CostBenchmarks(ctx context.Context, state model.AustralianState, propertyType model.PropertyType, metrics []string) (map[string]float64, error) {
	key := fmt.Sprintf("cost:%s:%s:%s", state, propertyType, strings.Join(metrics, ","))
	return s.cached(ctx, key, func() (map[string]float64, error) {
		return s.store.GetCostBenchmarks(ctx, string(state), string(propertyType), metrics)
	})
}

// MacroBenchmarks returns the stored values of the requested economy-wide metrics.
func (s *BenchmarkService) MacroBenchmarks(ctx context.Context, metrics []string) (map[string]float64, error) {
	key := "macro:" + strings.Join(metrics, ",")
	return s.cached(ctx, key, func() (map[string]float64, error) {
		return s.store.GetMacroBenchmarks(ctx, metrics)
	})
}

// cached serves a lookup from the cache, falling through to load on a miss.
// Cache failures are logged and never fail the lookup.
func (s *BenchmarkService) cached(ctx context.Context, key string, load func() (map[string]float64, error)) (map[string]float64, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var values map[string]float64
			if jsonErr := json.Unmarshal([]byte(raw), &values); jsonErr == nil {
				return values, nil
			}
			log.Printf("Discarding unreadable cache entry %s", key)
		case !errors.Is(err, apperrors.ErrCacheMiss):
			log.Printf("Benchmark cache read failed: %v", err)
		}
	}

	values, err := load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrBenchmarkLookup, err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(values); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
				log.Printf("Benchmark cache write failed: %v", err)
			}
		}
	}
	return values, nil
}

// Import stores the given benchmark rows and invalidates cached lookups.
func (s *BenchmarkService) Import(ctx context.Context, records []model.BenchmarkRecord) error {
	if err := s.store.UpsertBenchmarks(ctx, records); err != nil {
		return fmt.Errorf("failed to store benchmarks: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Flush(ctx); err != nil {
			log.Printf("Failed to flush benchmark cache: %v", err)
		}
	}
	return nil
}

// ImportYAML parses a YAML benchmark document and imports its rows.
// It returns the number of rows imported.
func (s *BenchmarkService) ImportYAML(ctx context.Context, data []byte) (int, error) {
	records, err := ParseBenchmarkFile(data)
	if err != nil {
		return 0, err
	}
	if err := s.Import(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// ListBenchmarks returns the stored rows matching filters. Listings bypass the cache.
func (s *BenchmarkService) ListBenchmarks(ctx context.Context, filters model.BenchmarkFilters) ([]model.BenchmarkRecord, error) {
	records, err := s.store.ListBenchmarks(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrBenchmarkLookup, err)
	}
	return records, nil
}

// GetBenchmark returns a stored row by ID.
func (s *BenchmarkService) GetBenchmark(ctx context.Context, id string) (model.BenchmarkRecord, error) {
	return s.store.GetBenchmarkByID(ctx, id)
}

// ImportFile loads a YAML benchmark file and imports its rows.
// It returns the number of rows imported.
func (s *BenchmarkService) ImportFile(ctx context.Context, path string) (int, error) {
	records, err := LoadBenchmarkFile(path)
	if err != nil {
		return 0, err
	}
	if err := s.Import(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
