package contracts

import (
	"fmt"
	"time"
)

// FinancialSnapshot represents the raw financial data fetched for one
// ticker in one run. It is produced once per ticker and never cached.
// ⭐ SSOT: Fetcher → Engine 데이터 전달은 이 타입으로만
type FinancialSnapshot struct {
	Ticker            string    `json:"ticker"`
	CurrentPrice      float64   `json:"current_price"`
	FreeCashFlow      float64   `json:"free_cash_flow"`     // trailing twelve months
	SharesOutstanding float64   `json:"shares_outstanding"`
	GrowthEstimate    *float64  `json:"growth_estimate,omitempty"` // analyst consensus, informational only
	TrailingPE        *float64  `json:"trailing_pe,omitempty"`     // nil when the provider has no value
	FetchTime         time.Time `json:"fetch_time"`
}

// Validate checks whether the snapshot can be fed into the valuation
// engine. A snapshot that fails here yields no result row at all.
func (s *FinancialSnapshot) Validate() error {
	if s.Ticker == "" {
		return fmt.Errorf("snapshot has no ticker")
	}
	if s.CurrentPrice <= 0 {
		return fmt.Errorf("non-positive current price %.4f", s.CurrentPrice)
	}
	if s.SharesOutstanding <= 0 {
		return fmt.Errorf("non-positive shares outstanding %.0f", s.SharesOutstanding)
	}
	if s.FreeCashFlow < 0 {
		return fmt.Errorf("negative free cash flow %.0f", s.FreeCashFlow)
	}
	return nil
}

// HasTrailingPE reports whether the provider returned a trailing P/E
func (s *FinancialSnapshot) HasTrailingPE() bool {
	return s.TrailingPE != nil
}
