package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// summaryModules is the fixed module list requested from quoteSummary
const summaryModules = "financialData,defaultKeyStatistics,summaryDetail,cashflowStatementHistory"

// FetchFundamentals fetches free cash flow, shares outstanding, the
// analyst growth estimate and trailing P/E via the v10 quoteSummary API
func (c *Client) FetchFundamentals(ctx context.Context, ticker string) (*Fundamentals, error) {
	url := fmt.Sprintf("%s/%s?modules=%s", c.cfg.SummaryBaseURL, ticker, summaryModules)

	resp, err := c.httpClient.Get(ctx, url, browserHeaders())
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body failed: %w", err)
	}

	fundamentals, err := parseSummaryResponse(body)
	if err != nil {
		return nil, fmt.Errorf("parse response failed: %w", err)
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker":  ticker,
		"has_fcf": fundamentals.FreeCashFlow != nil,
		"has_pe":  fundamentals.TrailingPE != nil,
	}).Debug("Fetched fundamentals")

	return fundamentals, nil
}

// parseSummaryResponse extracts fundamentals from a quoteSummary payload.
// Free cash flow falls back to operating cash flow plus capital
// expenditures (capex is reported negative) when not reported directly.
func parseSummaryResponse(body []byte) (*Fundamentals, error) {
	var parsed summaryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	if parsed.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("API error: %s (%s)",
			parsed.QuoteSummary.Error.Description, parsed.QuoteSummary.Error.Code)
	}

	if len(parsed.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no quoteSummary result")
	}

	result := parsed.QuoteSummary.Result[0]
	f := &Fundamentals{}

	if fd := result.FinancialData; fd != nil {
		if fd.FreeCashflow != nil && fd.FreeCashflow.Raw != 0 {
			v := fd.FreeCashflow.Raw
			f.FreeCashFlow = &v
		}
		if fd.EarningsGrowth != nil {
			v := fd.EarningsGrowth.Raw
			f.GrowthEstimate = &v
		}
	}

	// FCF fallback from the latest cash flow statement
	if f.FreeCashFlow == nil {
		if fcf, ok := fallbackFreeCashFlow(result); ok {
			f.FreeCashFlow = &fcf
		}
	}

	if ks := result.DefaultKeyStatistics; ks != nil && ks.SharesOutstanding != nil {
		v := ks.SharesOutstanding.Raw
		f.SharesOutstanding = &v
	}

	if sd := result.SummaryDetail; sd != nil && sd.TrailingPE != nil && sd.TrailingPE.Raw > 0 {
		v := sd.TrailingPE.Raw
		f.TrailingPE = &v
	}

	return f, nil
}

// fallbackFreeCashFlow derives FCF from the most recent statement as
// operating cash flow + capital expenditures
func fallbackFreeCashFlow(result summaryResult) (float64, bool) {
	history := result.CashflowStatementHistory
	if history == nil || len(history.CashflowStatements) == 0 {
		return 0, false
	}

	latest := history.CashflowStatements[0]
	if latest.TotalCashFromOperatingActivities == nil || latest.CapitalExpenditures == nil {
		return 0, false
	}

	return latest.TotalCashFromOperatingActivities.Raw + latest.CapitalExpenditures.Raw, true
}
