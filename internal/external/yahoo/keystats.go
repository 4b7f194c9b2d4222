package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FetchTrailingPEFromPage scrapes the quote key-statistics page for the
// trailing P/E. Used as a fallback when quoteSummary omits the value;
// a scrape miss is reported as an error and the caller keeps P/E absent.
func (c *Client) FetchTrailingPEFromPage(ctx context.Context, ticker string) (float64, error) {
	url := fmt.Sprintf("%s/%s/key-statistics/", c.cfg.QuotePageURL, ticker)

	resp, err := c.httpClient.Get(ctx, url, browserHeaders())
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("parse HTML failed: %w", err)
	}

	pe, ok := extractTrailingPE(doc)
	if !ok {
		return 0, fmt.Errorf("trailing P/E not found on page")
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"pe":     pe,
	}).Debug("Scraped trailing P/E")

	return pe, nil
}

// extractTrailingPE walks the statistics tables for a "Trailing P/E" row
func extractTrailingPE(doc *goquery.Document) (float64, bool) {
	var pe float64
	var found bool

	doc.Find("table tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		label := strings.TrimSpace(row.Find("td").First().Text())
		if !strings.Contains(strings.ToLower(label), "trailing p/e") {
			return true
		}

		value := strings.TrimSpace(row.Find("td").Last().Text())
		parsed, err := parseStatValue(value)
		if err != nil {
			return true
		}

		pe = parsed
		found = true
		return false
	})

	return pe, found
}

// parseStatValue parses a statistics cell ("28.54", "1,234.56", "--")
func parseStatValue(value string) (float64, error) {
	value = strings.ReplaceAll(value, ",", "")
	if value == "" || value == "--" || value == "N/A" {
		return 0, fmt.Errorf("value unavailable")
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", value, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("non-positive value %q", value)
	}

	return parsed, nil
}
