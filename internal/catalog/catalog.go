package catalog

// Catalog is a fixed, ordered list of companies to analyze. The two
// built-in catalogs are defined at startup and never mutated; table
// rows keep the insertion order defined here.
// ⭐ SSOT: 분석 대상 종목 리스트는 이 패키지에서만 정의
type Catalog struct {
	name    string
	entries []Entry
}

// Entry maps a ticker symbol to its display name
type Entry struct {
	Ticker string
	Name   string
}

// MagnificentSeven is the mega-cap tech catalog
var MagnificentSeven = Catalog{
	name: "Magnificent 7",
	entries: []Entry{
		{"AAPL", "Apple Inc."},
		{"MSFT", "Microsoft Corporation"},
		{"GOOGL", "Alphabet Inc."},
		{"AMZN", "Amazon.com, Inc."},
		{"NVDA", "NVIDIA Corporation"},
		{"TSLA", "Tesla, Inc."},
		{"META", "Meta Platforms, Inc."},
	},
}

// BlueChips is the defensive large-cap catalog
var BlueChips = Catalog{
	name: "Blue Chips",
	entries: []Entry{
		{"BRK-B", "Berkshire Hathaway Inc."},
		{"JPM", "JPMorgan Chase & Co."},
		{"V", "Visa Inc."},
		{"JNJ", "Johnson & Johnson"},
		{"PG", "The Procter & Gamble Company"},
		{"KO", "The Coca-Cola Company"},
		{"WMT", "Walmart Inc."},
		{"UNH", "UnitedHealth Group Incorporated"},
	},
}

// All returns the built-in catalogs in presentation order
func All() []Catalog {
	return []Catalog{MagnificentSeven, BlueChips}
}

// Name returns the catalog title
func (c Catalog) Name() string {
	return c.name
}

// Entries returns the catalog entries in insertion order
func (c Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of entries
func (c Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the entry for a ticker, if present
func (c Catalog) Lookup(ticker string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Ticker == ticker {
			return e, true
		}
	}
	return Entry{}, false
}

// Find returns the catalog containing the ticker, searching the built-in
// catalogs in order
func Find(ticker string) (Catalog, Entry, bool) {
	for _, c := range All() {
		if e, ok := c.Lookup(ticker); ok {
			return c, e, true
		}
	}
	return Catalog{}, Entry{}, false
}
