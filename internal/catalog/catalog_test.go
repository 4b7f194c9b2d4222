package catalog

import "testing"

func TestCatalogsAreDisjoint(t *testing.T) {
	seen := make(map[string]string)

	for _, c := range All() {
		for _, e := range c.Entries() {
			if other, dup := seen[e.Ticker]; dup {
				t.Errorf("ticker %s appears in both %q and %q", e.Ticker, other, c.Name())
			}
			seen[e.Ticker] = c.Name()
		}
	}
}

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	for _, c := range All() {
		if c.Name() == "" {
			t.Error("catalog with empty name")
		}
		if c.Len() == 0 {
			t.Errorf("catalog %q is empty", c.Name())
		}
		for _, e := range c.Entries() {
			if e.Ticker == "" {
				t.Errorf("catalog %q has an entry with empty ticker", c.Name())
			}
			if e.Name == "" {
				t.Errorf("catalog %q entry %s has empty display name", c.Name(), e.Ticker)
			}
		}
	}
}

func TestEntriesKeepInsertionOrder(t *testing.T) {
	entries := MagnificentSeven.Entries()
	if entries[0].Ticker != "AAPL" {
		t.Errorf("first entry = %s, want AAPL", entries[0].Ticker)
	}
	if entries[len(entries)-1].Ticker != "META" {
		t.Errorf("last entry = %s, want META", entries[len(entries)-1].Ticker)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		ticker string
		found  bool
	}{
		{"AAPL", true},
		{"NVDA", true},
		{"aapl", false}, // lookup is case-sensitive, symbols are uppercase
		{"ZZZZ", false},
	}

	for _, tt := range tests {
		if _, ok := MagnificentSeven.Lookup(tt.ticker); ok != tt.found {
			t.Errorf("Lookup(%q) found = %v, want %v", tt.ticker, ok, tt.found)
		}
	}
}

func TestFind(t *testing.T) {
	c, e, ok := Find("JPM")
	if !ok {
		t.Fatal("Find(JPM) not found")
	}
	if c.Name() != "Blue Chips" {
		t.Errorf("Find(JPM) catalog = %q, want Blue Chips", c.Name())
	}
	if e.Name != "JPMorgan Chase & Co." {
		t.Errorf("Find(JPM) name = %q", e.Name)
	}

	if _, _, ok := Find("ZZZZ"); ok {
		t.Error("Find(ZZZZ) found = true, want false")
	}
}
