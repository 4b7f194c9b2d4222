package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/wonny/fairvalue/internal/contracts"
)

// Column layout for the valuation table. Fixed order: company, intrinsic
// value, price, margin of safety, DCF verdict, trailing P/E, P/E signal.
var (
	columns = []string{"TICKER", "COMPANY", "INTRINSIC", "PRICE", "MARGIN", "VERDICT", "P/E", "P/E SIGNAL"}
	widths  = []int{7, 30, 11, 10, 9, 12, 8, 10}
)

// placeholder marks an absent optional value in a table cell
const placeholder = "-"

// RenderTable writes one titled catalog table. Skipped entries are never
// rendered as rows; they are listed under the table as unavailable.
func RenderTable(w io.Writer, title string, results []*contracts.ValuationResult, skipped []*contracts.Outcome) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, doubleRule())
	fmt.Fprintf(w, "  %s — Intrinsic Value Analysis (Simplified DCF)\n", title)
	fmt.Fprintln(w, doubleRule())

	if len(results) == 0 {
		fmt.Fprintln(w, "  (no results)")
	} else {
		writeHeader(w)
		for _, r := range results {
			writeRow(w, r)
		}
	}

	if len(skipped) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Data unavailable:")
		for _, o := range skipped {
			fmt.Fprintf(w, "    • %s (%s): %v\n", o.Ticker, o.Name, o.Err)
		}
	}
}

func writeHeader(w io.Writer) {
	for i, col := range columns {
		fmt.Fprintf(w, "%-*s", widths[i], col)
		if i < len(columns)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule())
}

func writeRow(w io.Writer, r *contracts.ValuationResult) {
	cells := []string{
		r.Ticker,
		truncate(r.Name, widths[1]),
		fmt.Sprintf("$%.2f", r.IntrinsicValue),
		fmt.Sprintf("$%.2f", r.CurrentPrice),
		fmt.Sprintf("%.2f%%", r.MarginOfSafety),
		string(r.Verdict),
		formatPE(r.TrailingPE),
		formatPEVerdict(r.PEVerdict),
	}

	for i, cell := range cells {
		fmt.Fprintf(w, "%-*s", widths[i], cell)
		if i < len(cells)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)
}

func formatPE(pe *float64) string {
	if pe == nil {
		return placeholder
	}
	return fmt.Sprintf("%.2f", *pe)
}

func formatPEVerdict(v *contracts.PEVerdict) string {
	if v == nil {
		return placeholder
	}
	return string(*v)
}

// truncate shortens a display name to fit its column
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func rule() string {
	total := 0
	for i, w := range widths {
		total += w
		if i < len(widths)-1 {
			total += 2
		}
	}
	return strings.Repeat("─", total)
}

func doubleRule() string {
	return strings.Repeat("═", 80)
}
