package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/wonny/fairvalue/internal/contracts"
)

// Document is the machine-readable form of a full run
type Document struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Catalogs    []CatalogSection `json:"catalogs"`
}

// CatalogSection mirrors one console table
type CatalogSection struct {
	Name    string                       `json:"name"`
	Results []*contracts.ValuationResult `json:"results"`
	Skipped []SkippedEntry               `json:"skipped,omitempty"`
}

// SkippedEntry records a ticker dropped from its table and why
type SkippedEntry struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// NewCatalogSection builds a section from pipeline outcomes
func NewCatalogSection(name string, results []*contracts.ValuationResult, skipped []*contracts.Outcome) CatalogSection {
	section := CatalogSection{Name: name, Results: results}
	for _, o := range skipped {
		section.Skipped = append(section.Skipped, SkippedEntry{
			Ticker: o.Ticker,
			Name:   o.Name,
			Reason: o.Err.Error(),
		})
	}
	return section
}

// WriteJSON writes the document as indented JSON
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
