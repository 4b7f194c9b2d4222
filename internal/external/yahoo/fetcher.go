package yahoo

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/fairvalue/internal/contracts"
)

// Fetch retrieves a full FinancialSnapshot for one ticker. Price, free
// cash flow and shares outstanding are required; the growth estimate and
// trailing P/E stay optional. One attempt per field group per run; a
// missing required field is a failure for this ticker only.
func (c *Client) Fetch(ctx context.Context, ticker string) (*contracts.FinancialSnapshot, error) {
	if ticker == "" {
		return nil, fmt.Errorf("empty ticker")
	}

	price, err := c.FetchPrice(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("price lookup: %w", err)
	}

	fundamentals, err := c.FetchFundamentals(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fundamentals lookup: %w", err)
	}

	if fundamentals.FreeCashFlow == nil {
		return nil, fmt.Errorf("free cash flow unavailable")
	}
	if fundamentals.SharesOutstanding == nil {
		return nil, fmt.Errorf("shares outstanding unavailable")
	}

	snapshot := &contracts.FinancialSnapshot{
		Ticker:            ticker,
		CurrentPrice:      price,
		FreeCashFlow:      *fundamentals.FreeCashFlow,
		SharesOutstanding: *fundamentals.SharesOutstanding,
		GrowthEstimate:    fundamentals.GrowthEstimate,
		TrailingPE:        fundamentals.TrailingPE,
		FetchTime:         time.Now(),
	}

	// P/E is optional: try the key-statistics page once, keep it absent
	// on any failure
	if snapshot.TrailingPE == nil {
		if pe, err := c.FetchTrailingPEFromPage(ctx, ticker); err == nil {
			snapshot.TrailingPE = &pe
		} else {
			c.logger.WithField("ticker", ticker).WithError(err).Debug("Trailing P/E unavailable")
		}
	}

	return snapshot, nil
}
