package pipeline

import (
	"context"
	"time"

	"github.com/wonny/fairvalue/internal/catalog"
	"github.com/wonny/fairvalue/internal/contracts"
	"github.com/wonny/fairvalue/pkg/logger"
)

// Fetcher retrieves a financial snapshot for one ticker
type Fetcher interface {
	Fetch(ctx context.Context, ticker string) (*contracts.FinancialSnapshot, error)
}

// Evaluator derives a valuation result from a snapshot
type Evaluator interface {
	Evaluate(snapshot *contracts.FinancialSnapshot) (*contracts.ValuationResult, error)
}

// Orchestrator drives the fetch → evaluate pipeline across catalogs.
// Entries are processed sequentially and independently: a failure is
// contained to its own ticker and never aborts the run.
// ⭐ SSOT: 실행 흐름 제어는 여기서만
type Orchestrator struct {
	fetcher Fetcher
	engine  Evaluator
	logger  *logger.Logger
}

// New creates a new orchestrator
func New(fetcher Fetcher, engine Evaluator, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		fetcher: fetcher,
		engine:  engine,
		logger:  log,
	}
}

// CatalogOutcome holds the per-entry outcomes for one catalog, in the
// catalog's insertion order
type CatalogOutcome struct {
	Catalog  catalog.Catalog
	Outcomes []*contracts.Outcome
}

// RunSummary aggregates a full run
type RunSummary struct {
	Catalogs   []CatalogOutcome
	StartedAt  time.Time
	FinishedAt time.Time
}

// Run processes every entry of every catalog. The returned error is
// contracts.ErrAllTickersFailed only when no entry anywhere produced a
// result; partial failure is a successful run.
func (o *Orchestrator) Run(ctx context.Context, catalogs []catalog.Catalog) (*RunSummary, error) {
	summary := &RunSummary{StartedAt: time.Now()}

	for _, cat := range catalogs {
		summary.Catalogs = append(summary.Catalogs, o.runCatalog(ctx, cat))
	}

	summary.FinishedAt = time.Now()

	o.logger.WithFields(map[string]interface{}{
		"evaluated": summary.Evaluated(),
		"skipped":   summary.Skipped(),
		"duration":  summary.FinishedAt.Sub(summary.StartedAt).String(),
	}).Info("Run completed")

	if summary.Evaluated() == 0 && summary.Total() > 0 {
		return summary, contracts.ErrAllTickersFailed
	}

	return summary, nil
}

// runCatalog processes one catalog's entries in order
func (o *Orchestrator) runCatalog(ctx context.Context, cat catalog.Catalog) CatalogOutcome {
	outcome := CatalogOutcome{Catalog: cat}

	for _, entry := range cat.Entries() {
		outcome.Outcomes = append(outcome.Outcomes, o.processEntry(ctx, entry))
	}

	return outcome
}

// processEntry walks one entry through pending → fetched → evaluated,
// or to skipped at the first failure. No backward transitions.
func (o *Orchestrator) processEntry(ctx context.Context, entry catalog.Entry) *contracts.Outcome {
	outcome := &contracts.Outcome{
		Ticker: entry.Ticker,
		Name:   entry.Name,
		Stage:  contracts.StagePending,
	}

	snapshot, err := o.fetcher.Fetch(ctx, entry.Ticker)
	if err != nil {
		outcome.Stage = contracts.StageSkipped
		outcome.Err = &contracts.FetchError{Ticker: entry.Ticker, Err: err}
		o.logger.WithField("ticker", entry.Ticker).WithError(err).Warn("Fetch failed, skipping")
		return outcome
	}
	outcome.Stage = contracts.StageFetched

	result, err := o.engine.Evaluate(snapshot)
	if err != nil {
		outcome.Stage = contracts.StageSkipped
		outcome.Err = &contracts.ComputeError{Ticker: entry.Ticker, Err: err}
		o.logger.WithField("ticker", entry.Ticker).WithError(err).Warn("Evaluation failed, skipping")
		return outcome
	}

	result.Name = entry.Name
	outcome.Result = result
	outcome.Stage = contracts.StageEvaluated

	return outcome
}

// Results returns the evaluated results in catalog order
func (c *CatalogOutcome) Results() []*contracts.ValuationResult {
	results := make([]*contracts.ValuationResult, 0, len(c.Outcomes))
	for _, o := range c.Outcomes {
		if o.Result != nil {
			results = append(results, o.Result)
		}
	}
	return results
}

// SkippedOutcomes returns the entries dropped from this catalog's table
func (c *CatalogOutcome) SkippedOutcomes() []*contracts.Outcome {
	skipped := make([]*contracts.Outcome, 0)
	for _, o := range c.Outcomes {
		if o.Skipped() {
			skipped = append(skipped, o)
		}
	}
	return skipped
}

// MarkRendered advances evaluated entries to their terminal stage
func (c *CatalogOutcome) MarkRendered() {
	for _, o := range c.Outcomes {
		if o.Stage == contracts.StageEvaluated {
			o.Stage = contracts.StageRendered
		}
	}
}

// Evaluated counts entries that produced a result
func (s *RunSummary) Evaluated() int {
	count := 0
	for _, c := range s.Catalogs {
		count += len(c.Results())
	}
	return count
}

// Skipped counts entries dropped from their tables
func (s *RunSummary) Skipped() int {
	count := 0
	for _, c := range s.Catalogs {
		count += len(c.SkippedOutcomes())
	}
	return count
}

// Total counts all catalog entries in the run
func (s *RunSummary) Total() int {
	count := 0
	for _, c := range s.Catalogs {
		count += len(c.Outcomes)
	}
	return count
}
