package contracts

import "time"

// Verdict is the DCF verdict for a ticker
type Verdict string

// PEVerdict is the secondary trailing-P/E signal
type PEVerdict string

const (
	VerdictUndervalued Verdict = "Undervalued"
	// Exact equality of intrinsic value and price counts as Overvalued
	VerdictOvervalued Verdict = "Overvalued"

	PEVerdictHigh PEVerdict = "High P/E"
	PEVerdictLow  PEVerdict = "Low P/E"
)

// ValuationResult is the immutable outcome of evaluating one snapshot.
// TrailingPE and PEVerdict are set together or not at all.
type ValuationResult struct {
	Ticker         string     `json:"ticker"`
	Name           string     `json:"name"`
	IntrinsicValue float64    `json:"intrinsic_value"` // per share
	CurrentPrice   float64    `json:"current_price"`
	MarginOfSafety float64    `json:"margin_of_safety"` // percent, signed
	Verdict        Verdict    `json:"verdict"`
	TrailingPE     *float64   `json:"trailing_pe,omitempty"`
	PEVerdict      *PEVerdict `json:"pe_verdict,omitempty"`
	EvaluatedAt    time.Time  `json:"evaluated_at"`
}

// Undervalued reports whether the DCF verdict is Undervalued
func (r *ValuationResult) Undervalued() bool {
	return r.Verdict == VerdictUndervalued
}

// HasPEVerdict reports whether the secondary P/E signal is present
func (r *ValuationResult) HasPEVerdict() bool {
	return r.PEVerdict != nil
}
