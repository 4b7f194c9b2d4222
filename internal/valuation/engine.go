package valuation

import (
	"fmt"
	"math"
	"time"

	"github.com/wonny/fairvalue/internal/contracts"
	"github.com/wonny/fairvalue/pkg/config"
	"github.com/wonny/fairvalue/pkg/logger"
)

// Engine computes a simplified DCF intrinsic value per share
// ⭐ SSOT: 내재가치 계산은 여기서만
//
// The model projects trailing free cash flow forward at a fixed assumed
// growth rate, discounts each year and a terminal value back to present,
// and divides by shares outstanding. The fixed assumption is always
// authoritative: the analyst growth estimate on the snapshot is never fed
// into the projection, so a run is reproducible from its inputs alone.
type Engine struct {
	params config.ValuationConfig
	logger *logger.Logger
}

// NewEngine creates a new valuation engine with the given assumptions
func NewEngine(params config.ValuationConfig, log *logger.Logger) *Engine {
	return &Engine{
		params: params,
		logger: log,
	}
}

// Evaluate derives a ValuationResult from a snapshot. A malformed
// snapshot or non-finite arithmetic yields an error and no result —
// never a fabricated row.
func (e *Engine) Evaluate(s *contracts.FinancialSnapshot) (*contracts.ValuationResult, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	intrinsic, err := e.intrinsicValuePerShare(s)
	if err != nil {
		return nil, err
	}

	// Margin of safety divides by intrinsic value; zero intrinsic value
	// (zero trailing FCF) is an explicit failure, not +Inf in the report
	if intrinsic <= 0 {
		return nil, fmt.Errorf("intrinsic value %.4f is not positive", intrinsic)
	}

	margin := (intrinsic - s.CurrentPrice) / intrinsic * 100

	verdict := contracts.VerdictOvervalued
	if intrinsic > s.CurrentPrice {
		verdict = contracts.VerdictUndervalued
	}

	result := &contracts.ValuationResult{
		Ticker:         s.Ticker,
		IntrinsicValue: intrinsic,
		CurrentPrice:   s.CurrentPrice,
		MarginOfSafety: margin,
		Verdict:        verdict,
		EvaluatedAt:    time.Now(),
	}

	if s.TrailingPE != nil {
		pe := *s.TrailingPE
		peVerdict := contracts.PEVerdictLow
		if pe > e.params.PEThreshold {
			peVerdict = contracts.PEVerdictHigh
		}
		result.TrailingPE = &pe
		result.PEVerdict = &peVerdict
	}

	e.logger.WithFields(map[string]interface{}{
		"ticker":    s.Ticker,
		"intrinsic": intrinsic,
		"price":     s.CurrentPrice,
		"margin":    margin,
		"verdict":   string(verdict),
	}).Debug("Evaluated snapshot")

	return result, nil
}

// intrinsicValuePerShare runs the DCF: fixed-growth projection over the
// horizon, discounted year by year, plus a discounted Gordon terminal
// value, divided by shares outstanding.
func (e *Engine) intrinsicValuePerShare(s *contracts.FinancialSnapshot) (float64, error) {
	growth := e.params.GrowthRate
	discount := e.params.DiscountRate
	terminalGrowth := e.params.TerminalGrowthRate

	// Validated upstream, but a terminal growth at or above the discount
	// rate would flip the terminal value sign
	if terminalGrowth >= discount {
		return 0, fmt.Errorf("terminal growth %.4f must be below discount rate %.4f", terminalGrowth, discount)
	}

	projected := s.FreeCashFlow
	discountFactor := 1.0
	total := 0.0

	for year := 1; year <= e.params.ProjectionYears; year++ {
		projected *= 1 + growth
		discountFactor *= 1 + discount
		total += projected / discountFactor
	}

	// Terminal value at the end of the horizon, discounted with the
	// final year's factor
	terminal := projected * (1 + terminalGrowth) / (discount - terminalGrowth)
	total += terminal / discountFactor

	perShare := total / s.SharesOutstanding

	if math.IsNaN(perShare) || math.IsInf(perShare, 0) {
		return 0, fmt.Errorf("intrinsic value is not finite")
	}

	return perShare, nil
}
