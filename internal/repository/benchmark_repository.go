package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/apperrors"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/model"
)

// BenchmarkRepository provides data access methods for the benchmark table.
// A row with an empty state or property type applies to every state or property
// type; the most specific row wins when several match.
type BenchmarkRepository struct {
	db *sql.DB
}

// NewBenchmarkRepository creates a new BenchmarkRepository with the provided database connection.
func NewBenchmarkRepository(db *sql.DB) *BenchmarkRepository {
	return &BenchmarkRepository{db: db}
}

// GetCostBenchmarks returns the values of the requested metrics for a state and
// property type. Metrics with no stored value are absent from the map.
func (r *BenchmarkRepository) GetCostBenchmarks(ctx context.Context, state, propertyType string, metrics []string) (map[string]float64, error) {
	if len(metrics) == 0 {
		return map[string]float64{}, nil
	}

	query := `
          SELECT metric, value, state, property_type
          FROM benchmark
          WHERE metric IN (` + placeholders(len(metrics)) + `)
            AND state IN (?, '')
            AND property_type IN (?, '')
      `
	args := make([]any, 0, len(metrics)+2)
	for _, m := range metrics {
		args = append(args, m)
	}
	args = append(args, state, propertyType)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query benchmark table: %w", err)
	}
	defer rows.Close()

	values := make(map[string]float64)
	specificity := make(map[string]int)
	for rows.Next() {
		var metric, rowState, rowType string
		var value float64
		if err := rows.Scan(&metric, &value, &rowState, &rowType); err != nil {
			return nil, fmt.Errorf("failed to scan benchmark table results: %w", err)
		}

		rank := 0
		if rowState != "" {
			rank += 2
		}
		if rowType != "" {
			rank++
		}
		if current, ok := specificity[metric]; ok && current >= rank {
			continue
		}
		specificity[metric] = rank
		values[metric] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating benchmark table: %w", err)
	}

	return values, nil
}

// GetMacroBenchmarks returns the economy-wide values of the requested metrics.
func (r *BenchmarkRepository) GetMacroBenchmarks(ctx context.Context, metrics []string) (map[string]float64, error) {
	if len(metrics) == 0 {
		return map[string]float64{}, nil
	}

	query := `
          SELECT metric, value
          FROM benchmark
          WHERE metric IN (` + placeholders(len(metrics)) + `)
            AND state = ''
            AND property_type = ''
      `
	args := make([]any, len(metrics))
	for i, m := range metrics {
		args[i] = m
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query benchmark table: %w", err)
	}
	defer rows.Close()

	values := make(map[string]float64)
	for rows.Next() {
		var metric string
		var value float64
		if err := rows.Scan(&metric, &value); err != nil {
			return nil, fmt.Errorf("failed to scan benchmark table results: %w", err)
		}
		values[metric] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating benchmark table: %w", err)
	}

	return values, nil
}

const benchmarkColumns = "id, state, property_type, metric, value, source, updated_at"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBenchmark(row rowScanner) (model.BenchmarkRecord, error) {
	var rec model.BenchmarkRecord
	var updatedAt string

	err := row.Scan(
		&rec.ID,
		&rec.State,
		&rec.PropertyType,
		&rec.Metric,
		&rec.Value,
		&rec.Source,
		&updatedAt,
	)
	if err != nil {
		return model.BenchmarkRecord{}, err
	}

	rec.UpdatedAt, err = ParseTime(updatedAt)
	if err != nil {
		return model.BenchmarkRecord{}, err
	}
	return rec, nil
}

// GetBenchmark returns the row stored for exactly this scope and metric.
func (r *BenchmarkRepository) GetBenchmark(ctx context.Context, state, propertyType, metric string) (model.BenchmarkRecord, error) {
	query := `
          SELECT ` + benchmarkColumns + `
          FROM benchmark
          WHERE state = ? AND property_type = ? AND metric = ?
      `
	rec, err := scanBenchmark(r.db.QueryRowContext(ctx, query, state, propertyType, metric))
	if errors.Is(err, sql.ErrNoRows) {
		return model.BenchmarkRecord{}, apperrors.ErrBenchmarkNotFound
	}
	if err != nil {
		return model.BenchmarkRecord{}, fmt.Errorf("failed to query benchmark: %w", err)
	}
	return rec, nil
}

// GetBenchmarkByID returns the row with the given ID.
func (r *BenchmarkRepository) GetBenchmarkByID(ctx context.Context, id string) (model.BenchmarkRecord, error) {
	query := `
          SELECT ` + benchmarkColumns + `
          FROM benchmark
          WHERE id = ?
      `
	rec, err := scanBenchmark(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.BenchmarkRecord{}, apperrors.ErrBenchmarkNotFound
	}
	if err != nil {
		return model.BenchmarkRecord{}, fmt.Errorf("failed to query benchmark: %w", err)
	}
	return rec, nil
}

// ListBenchmarks returns the stored rows matching filters, ordered by scope and
// metric. National rows sort before state rows.
func (r *BenchmarkRepository) ListBenchmarks(ctx context.Context, filters model.BenchmarkFilters) ([]model.BenchmarkRecord, error) {
	var where []string
	var args []any

	in := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		where = append(where, column+" IN ("+placeholders(len(values))+")")
		for _, v := range values {
			args = append(args, v)
		}
	}
	in("state", filters.States)
	in("property_type", filters.PropertyTypes)
	in("metric", filters.Metrics)

	if filters.Source != "" {
		where = append(where, "source = ?")
		args = append(args, filters.Source)
	}
	if filters.UpdatedSince != nil {
		// Seeded rows use the CURRENT_TIMESTAMP layout and imported rows RFC3339.
		where = append(where, "datetime(updated_at) >= datetime(?)")
		args = append(args, filters.UpdatedSince.UTC().Format(time.RFC3339))
	}

	query := "SELECT " + benchmarkColumns + " FROM benchmark"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	dir := "ASC"
	if filters.SortDir == "desc" {
		dir = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY state %[1]s, property_type %[1]s, metric %[1]s", dir)

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query benchmark table: %w", err)
	}
	defer rows.Close()

	records := []model.BenchmarkRecord{}
	for rows.Next() {
		rec, err := scanBenchmark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan benchmark table results: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating benchmark table: %w", err)
	}

	return records, nil
}

// UpsertBenchmarks inserts or replaces the given rows in a single transaction.
// Rows are matched on (state, property_type, metric); a new row gets a fresh ID.
func (r *BenchmarkRepository) UpsertBenchmarks(ctx context.Context, records []model.BenchmarkRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `
          INSERT INTO benchmark (id, state, property_type, metric, value, source, updated_at)
          VALUES (?, ?, ?, ?, ?, ?, ?)
          ON CONFLICT (state, property_type, metric) DO UPDATE SET
            value = excluded.value,
            source = excluded.source,
            updated_at = excluded.updated_at
      `)
	if err != nil {
		return fmt.Errorf("failed to prepare benchmark upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, rec := range records {
		id := rec.ID
		if id == "" {
			id = uuid.New().String()
		}
		updatedAt := rec.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = now
		}
		if _, err := stmt.ExecContext(ctx, id, rec.State, rec.PropertyType, rec.Metric,
			rec.Value, rec.Source, updatedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("failed to upsert benchmark %s: %w", rec.Metric, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit benchmarks: %w", err)
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
