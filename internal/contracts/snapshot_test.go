package contracts

import (
	"errors"
	"testing"
	"time"
)

func TestSnapshotValidate(t *testing.T) {
	pe := 20.0

	tests := []struct {
		name     string
		snapshot FinancialSnapshot
		wantErr  bool
	}{
		{
			name: "valid snapshot",
			snapshot: FinancialSnapshot{
				Ticker:            "AAPL",
				CurrentPrice:      100,
				FreeCashFlow:      1000,
				SharesOutstanding: 100,
				TrailingPE:        &pe,
			},
			wantErr: false,
		},
		{
			name: "valid without trailing pe",
			snapshot: FinancialSnapshot{
				Ticker:            "MSFT",
				CurrentPrice:      100,
				FreeCashFlow:      1000,
				SharesOutstanding: 100,
			},
			wantErr: false,
		},
		{
			name: "zero free cash flow is allowed",
			snapshot: FinancialSnapshot{
				Ticker:            "TSLA",
				CurrentPrice:      100,
				FreeCashFlow:      0,
				SharesOutstanding: 100,
			},
			wantErr: false,
		},
		{
			name:     "missing ticker",
			snapshot: FinancialSnapshot{CurrentPrice: 100, FreeCashFlow: 1, SharesOutstanding: 1},
			wantErr:  true,
		},
		{
			name:     "zero price",
			snapshot: FinancialSnapshot{Ticker: "X", CurrentPrice: 0, FreeCashFlow: 1, SharesOutstanding: 1},
			wantErr:  true,
		},
		{
			name:     "negative price",
			snapshot: FinancialSnapshot{Ticker: "X", CurrentPrice: -1, FreeCashFlow: 1, SharesOutstanding: 1},
			wantErr:  true,
		},
		{
			name:     "zero shares outstanding",
			snapshot: FinancialSnapshot{Ticker: "X", CurrentPrice: 100, FreeCashFlow: 1, SharesOutstanding: 0},
			wantErr:  true,
		},
		{
			name:     "negative shares outstanding",
			snapshot: FinancialSnapshot{Ticker: "X", CurrentPrice: 100, FreeCashFlow: 1, SharesOutstanding: -5},
			wantErr:  true,
		},
		{
			name:     "negative free cash flow",
			snapshot: FinancialSnapshot{Ticker: "X", CurrentPrice: 100, FreeCashFlow: -1, SharesOutstanding: 1},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snapshot.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHasTrailingPE(t *testing.T) {
	pe := 15.0
	with := FinancialSnapshot{TrailingPE: &pe}
	without := FinancialSnapshot{}

	if !with.HasTrailingPE() {
		t.Error("HasTrailingPE() = false, want true")
	}
	if without.HasTrailingPE() {
		t.Error("HasTrailingPE() = true, want false")
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")

	fe := &FetchError{Ticker: "AAPL", Err: cause}
	if !errors.Is(fe, cause) {
		t.Error("FetchError should unwrap to its cause")
	}

	ce := &ComputeError{Ticker: "AAPL", Err: cause}
	if !errors.Is(ce, cause) {
		t.Error("ComputeError should unwrap to its cause")
	}

	var target *FetchError
	if !errors.As(fe, &target) {
		t.Error("errors.As should match *FetchError")
	}
	if target.Ticker != "AAPL" {
		t.Errorf("Ticker = %s, want AAPL", target.Ticker)
	}
}

func TestOutcomeSkipped(t *testing.T) {
	done := Outcome{Ticker: "AAPL", Stage: StageEvaluated, Result: &ValuationResult{EvaluatedAt: time.Now()}}
	skipped := Outcome{Ticker: "META", Stage: StageSkipped, Err: errors.New("boom")}

	if done.Skipped() {
		t.Error("evaluated outcome reported as skipped")
	}
	if !skipped.Skipped() {
		t.Error("skipped outcome not reported as skipped")
	}
}
