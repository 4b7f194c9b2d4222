package contracts

import (
	"errors"
	"fmt"
)

// Stage tracks how far a catalog entry made it through the run.
// Transitions only move forward: pending → fetched → evaluated → rendered,
// or pending/fetched → skipped on failure.
type Stage string

const (
	StagePending   Stage = "pending"
	StageFetched   Stage = "fetched"
	StageEvaluated Stage = "evaluated"
	StageRendered  Stage = "rendered"
	StageSkipped   Stage = "skipped"
)

// Outcome is the per-ticker result carrier. Exactly one of Result or Err
// is set once the entry reaches a terminal stage.
type Outcome struct {
	Ticker string
	Name   string
	Stage  Stage
	Result *ValuationResult
	Err    error
}

// Skipped reports whether the entry was dropped from its table
func (o *Outcome) Skipped() bool {
	return o.Stage == StageSkipped
}

// ErrAllTickersFailed is returned when no ticker in any catalog produced
// a result. This is the only failure that maps to a non-zero exit status.
var ErrAllTickersFailed = errors.New("all tickers failed to produce a valuation")

// FetchError marks a per-ticker data source failure (unreachable source,
// unknown symbol, missing required field)
type FetchError struct {
	Ticker string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Ticker, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ComputeError marks a per-ticker valuation failure (malformed snapshot,
// non-finite arithmetic)
type ComputeError struct {
	Ticker string
	Err    error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("evaluate %s: %v", e.Ticker, e.Err)
}

func (e *ComputeError) Unwrap() error {
	return e.Err
}
