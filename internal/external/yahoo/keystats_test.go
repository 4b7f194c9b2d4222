package yahoo

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestExtractTrailingPE(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		want  float64
		found bool
	}{
		{
			name: "trailing pe row present",
			html: `<html><body><table>
				<tr><td>Market Cap</td><td>3.46T</td></tr>
				<tr><td>Trailing P/E</td><td>34.61</td></tr>
				<tr><td>Forward P/E</td><td>29.85</td></tr>
			</table></body></html>`,
			want:  34.61,
			found: true,
		},
		{
			name: "value with thousands separator",
			html: `<table><tr><td>Trailing P/E</td><td>1,234.56</td></tr></table>`,
			want:  1234.56,
			found: true,
		},
		{
			name:  "unavailable marker",
			html:  `<table><tr><td>Trailing P/E</td><td>--</td></tr></table>`,
			found: false,
		},
		{
			name:  "row missing",
			html:  `<table><tr><td>Forward P/E</td><td>29.85</td></tr></table>`,
			found: false,
		},
		{
			name:  "no tables",
			html:  `<html><body><p>nothing here</p></body></html>`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("parse test HTML: %v", err)
			}

			got, found := extractTrailingPE(doc)
			if found != tt.found {
				t.Fatalf("extractTrailingPE() found = %v, want %v", found, tt.found)
			}
			if tt.found && got != tt.want {
				t.Errorf("extractTrailingPE() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestParseStatValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    float64
		wantErr bool
	}{
		{"plain number", "28.54", 28.54, false},
		{"with separator", "1,234.5", 1234.5, false},
		{"dashes", "--", 0, true},
		{"not available", "N/A", 0, true},
		{"empty", "", 0, true},
		{"garbage", "abc", 0, true},
		{"negative", "-3.2", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStatValue(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseStatValue(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseStatValue(%q) = %f, want %f", tt.value, got, tt.want)
			}
		})
	}
}
