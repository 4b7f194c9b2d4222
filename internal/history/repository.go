package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/fairvalue/internal/contracts"
)

// Repository persists run results for later comparison. Persistence is
// an optional extension: the console run never depends on it and a nil
// repository is a no-op.
// ⭐ SSOT: 밸류에이션 이력 저장은 여기서만
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new history repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Record is one persisted valuation row
type Record struct {
	RunAt          time.Time
	Catalog        string
	Ticker         string
	IntrinsicValue float64
	CurrentPrice   float64
	MarginOfSafety float64
	Verdict        string
	TrailingPE     *float64
}

// SaveRun persists all results of a run under one timestamp
func (r *Repository) SaveRun(ctx context.Context, runAt time.Time, catalogName string, results []*contracts.ValuationResult) error {
	if r == nil {
		return nil
	}

	query := `
		INSERT INTO valuation_history (run_at, catalog, ticker, intrinsic_value, current_price, margin_of_safety, verdict, trailing_pe)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, result := range results {
		_, err := r.pool.Exec(ctx, query,
			runAt, catalogName, result.Ticker,
			result.IntrinsicValue, result.CurrentPrice, result.MarginOfSafety,
			string(result.Verdict), result.TrailingPE,
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", result.Ticker, err)
		}
	}

	return nil
}

// Recent returns the most recent records, newest first
func (r *Repository) Recent(ctx context.Context, limit int) ([]*Record, error) {
	query := `
		SELECT run_at, catalog, ticker, intrinsic_value, current_price, margin_of_safety, verdict, trailing_pe
		FROM valuation_history
		ORDER BY run_at DESC, catalog, ticker
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.RunAt, &rec.Catalog, &rec.Ticker,
			&rec.IntrinsicValue, &rec.CurrentPrice, &rec.MarginOfSafety,
			&rec.Verdict, &rec.TrailingPE,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// EnsureSchema creates the history table when missing
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if r == nil {
		return nil
	}

	query := `
		CREATE TABLE IF NOT EXISTS valuation_history (
			id BIGSERIAL PRIMARY KEY,
			run_at TIMESTAMPTZ NOT NULL,
			catalog TEXT NOT NULL,
			ticker TEXT NOT NULL,
			intrinsic_value DOUBLE PRECISION NOT NULL,
			current_price DOUBLE PRECISION NOT NULL,
			margin_of_safety DOUBLE PRECISION NOT NULL,
			verdict TEXT NOT NULL,
			trailing_pe DOUBLE PRECISION
		)
	`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
