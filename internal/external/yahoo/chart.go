package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// FetchPrice fetches the current market price for a ticker via the v8
// chart API (works without a session crumb)
func (c *Client) FetchPrice(ctx context.Context, ticker string) (float64, error) {
	url := fmt.Sprintf("%s/%s", c.cfg.ChartBaseURL, ticker)

	resp, err := c.httpClient.Get(ctx, url, browserHeaders())
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response body failed: %w", err)
	}

	price, err := parseChartResponse(body)
	if err != nil {
		return 0, fmt.Errorf("parse response failed: %w", err)
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"price":  price,
	}).Debug("Fetched price")

	return price, nil
}

// parseChartResponse extracts the regular market price from a chart
// API payload
func parseChartResponse(body []byte) (float64, error) {
	var parsed chartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("decode JSON: %w", err)
	}

	if parsed.Chart.Error != nil {
		return 0, fmt.Errorf("API error: %s (%s)", parsed.Chart.Error.Description, parsed.Chart.Error.Code)
	}

	if len(parsed.Chart.Result) == 0 {
		return 0, fmt.Errorf("no chart result")
	}

	price := parsed.Chart.Result[0].Meta.RegularMarketPrice
	if price <= 0 {
		return 0, fmt.Errorf("no valid market price in response")
	}

	return price, nil
}
