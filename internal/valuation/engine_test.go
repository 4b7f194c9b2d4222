package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/fairvalue/internal/contracts"
	"github.com/wonny/fairvalue/pkg/config"
	"github.com/wonny/fairvalue/pkg/logger"
)

func defaultParams() config.ValuationConfig {
	return config.ValuationConfig{
		GrowthRate:         0.05,
		DiscountRate:       0.10,
		TerminalGrowthRate: 0.02,
		ProjectionYears:    5,
		PEThreshold:        25.0,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestEvaluateReferenceScenario(t *testing.T) {
	engine := NewEngine(defaultParams(), logger.NewNop())

	snapshot := &contracts.FinancialSnapshot{
		Ticker:            "AAPL",
		CurrentPrice:      100,
		FreeCashFlow:      1000,
		SharesOutstanding: 100,
		GrowthEstimate:    floatPtr(0.05),
		TrailingPE:        floatPtr(20),
	}

	result, err := engine.Evaluate(snapshot)
	require.NoError(t, err)

	// Five projected years of 1000 at 5% growth discounted at 10%, plus a
	// 2% Gordon terminal value, over 100 shares
	assert.InDelta(t, 144.6212, result.IntrinsicValue, 0.001)
	assert.InDelta(t, 30.854, result.MarginOfSafety, 0.01)
	assert.Equal(t, contracts.VerdictUndervalued, result.Verdict)

	require.NotNil(t, result.TrailingPE)
	assert.Equal(t, 20.0, *result.TrailingPE)
	require.NotNil(t, result.PEVerdict)
	assert.Equal(t, contracts.PEVerdictLow, *result.PEVerdict)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	engine := NewEngine(defaultParams(), logger.NewNop())

	snapshot := &contracts.FinancialSnapshot{
		Ticker:            "MSFT",
		CurrentPrice:      417.32,
		FreeCashFlow:      7.418e10,
		SharesOutstanding: 7.43e9,
		TrailingPE:        floatPtr(36.1),
	}

	first, err := engine.Evaluate(snapshot)
	require.NoError(t, err)

	second, err := engine.Evaluate(snapshot)
	require.NoError(t, err)

	// Same formula, same constants, same input: bit-for-bit equal
	assert.Equal(t, first.IntrinsicValue, second.IntrinsicValue)
	assert.Equal(t, first.MarginOfSafety, second.MarginOfSafety)
	assert.Equal(t, first.Verdict, second.Verdict)
}

func TestIntrinsicValueNonNegative(t *testing.T) {
	engine := NewEngine(defaultParams(), logger.NewNop())

	snapshots := []*contracts.FinancialSnapshot{
		{Ticker: "A", CurrentPrice: 1, FreeCashFlow: 1, SharesOutstanding: 1e9},
		{Ticker: "B", CurrentPrice: 900, FreeCashFlow: 5e10, SharesOutstanding: 1e8},
		{Ticker: "C", CurrentPrice: 0.01, FreeCashFlow: 100, SharesOutstanding: 3},
	}

	for _, s := range snapshots {
		result, err := engine.Evaluate(s)
		require.NoError(t, err, "ticker %s", s.Ticker)
		assert.GreaterOrEqual(t, result.IntrinsicValue, 0.0, "ticker %s", s.Ticker)
	}
}

func TestMarginSignMatchesVerdict(t *testing.T) {
	engine := NewEngine(defaultParams(), logger.NewNop())

	tests := []struct {
		name  string
		price float64
	}{
		{"deeply undervalued", 10},
		{"slightly undervalued", 140},
		{"slightly overvalued", 150},
		{"deeply overvalued", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Evaluate(&contracts.FinancialSnapshot{
				Ticker:            "X",
				CurrentPrice:      tt.price,
				FreeCashFlow:      1000,
				SharesOutstanding: 100,
			})
			require.NoError(t, err)

			if result.MarginOfSafety > 0 {
				assert.Equal(t, contracts.VerdictUndervalued, result.Verdict)
			} else {
				assert.Equal(t, contracts.VerdictOvervalued, result.Verdict)
			}
		})
	}
}

func TestExactTieIsOvervalued(t *testing.T) {
	engine := NewEngine(defaultParams(), logger.NewNop())

	base := &contracts.FinancialSnapshot{
		Ticker:            "TIE",
		CurrentPrice:      100,
		FreeCashFlow:      1000,
		SharesOutstanding: 100,
	}
	first, err := engine.Evaluate(base)
	require.NoError(t, err)

	// Feed the computed intrinsic value back as the market price so the
	// two are equal to the last bit
	tied := *base
	tied.CurrentPrice = first.IntrinsicValue

	result, err := engine.Evaluate(&tied)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.MarginOfSafety)
	assert.Equal(t, contracts.VerdictOvervalued, result.Verdict)
}

func TestPEVerdictPresence(t *testing.T) {
	engine := NewEngine(defaultParams(), logger.NewNop())

	tests := []struct {
		name        string
		trailingPE  *float64
		wantVerdict *contracts.PEVerdict
	}{
		{"absent pe yields no verdict", nil, nil},
		{"low pe", floatPtr(12.0), peVerdictPtr(contracts.PEVerdictLow)},
		{"threshold is not high", floatPtr(25.0), peVerdictPtr(contracts.PEVerdictLow)},
		{"above threshold is high", floatPtr(25.01), peVerdictPtr(contracts.PEVerdictHigh)},
		{"very high pe", floatPtr(80.0), peVerdictPtr(contracts.PEVerdictHigh)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Evaluate(&contracts.FinancialSnapshot{
				Ticker:            "X",
				CurrentPrice:      100,
				FreeCashFlow:      1000,
				SharesOutstanding: 100,
				TrailingPE:        tt.trailingPE,
			})
			require.NoError(t, err)

			if tt.wantVerdict == nil {
				assert.Nil(t, result.PEVerdict)
				assert.Nil(t, result.TrailingPE)
			} else {
				require.NotNil(t, result.PEVerdict)
				assert.Equal(t, *tt.wantVerdict, *result.PEVerdict)
				require.NotNil(t, result.TrailingPE)
				assert.Equal(t, *tt.trailingPE, *result.TrailingPE)
			}
		})
	}
}

func TestGrowthEstimateIsNotAuthoritative(t *testing.T) {
	engine := NewEngine(defaultParams(), logger.NewNop())

	plain := &contracts.FinancialSnapshot{
		Ticker: "X", CurrentPrice: 100, FreeCashFlow: 1000, SharesOutstanding: 100,
	}
	withEstimate := &contracts.FinancialSnapshot{
		Ticker: "X", CurrentPrice: 100, FreeCashFlow: 1000, SharesOutstanding: 100,
		GrowthEstimate: floatPtr(0.50),
	}

	a, err := engine.Evaluate(plain)
	require.NoError(t, err)
	b, err := engine.Evaluate(withEstimate)
	require.NoError(t, err)

	// The fetched estimate is informational; the fixed assumption drives
	// the projection
	assert.Equal(t, a.IntrinsicValue, b.IntrinsicValue)
}

func TestEvaluateFailures(t *testing.T) {
	engine := NewEngine(defaultParams(), logger.NewNop())

	tests := []struct {
		name     string
		snapshot contracts.FinancialSnapshot
	}{
		{"zero shares outstanding", contracts.FinancialSnapshot{Ticker: "X", CurrentPrice: 100, FreeCashFlow: 1000, SharesOutstanding: 0}},
		{"negative shares outstanding", contracts.FinancialSnapshot{Ticker: "X", CurrentPrice: 100, FreeCashFlow: 1000, SharesOutstanding: -1}},
		{"zero price", contracts.FinancialSnapshot{Ticker: "X", CurrentPrice: 0, FreeCashFlow: 1000, SharesOutstanding: 100}},
		{"negative price", contracts.FinancialSnapshot{Ticker: "X", CurrentPrice: -5, FreeCashFlow: 1000, SharesOutstanding: 100}},
		{"negative fcf", contracts.FinancialSnapshot{Ticker: "X", CurrentPrice: 100, FreeCashFlow: -1000, SharesOutstanding: 100}},
		{"zero fcf yields zero intrinsic value", contracts.FinancialSnapshot{Ticker: "X", CurrentPrice: 100, FreeCashFlow: 0, SharesOutstanding: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Evaluate(&tt.snapshot)
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestEvaluateRejectsDegenerateAssumptions(t *testing.T) {
	params := defaultParams()
	params.TerminalGrowthRate = 0.10 // equal to discount rate
	engine := NewEngine(params, logger.NewNop())

	_, err := engine.Evaluate(&contracts.FinancialSnapshot{
		Ticker: "X", CurrentPrice: 100, FreeCashFlow: 1000, SharesOutstanding: 100,
	})
	assert.Error(t, err)
}

func peVerdictPtr(v contracts.PEVerdict) *contracts.PEVerdict { return &v }
