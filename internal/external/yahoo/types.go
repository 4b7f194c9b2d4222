package yahoo

// rawValue is Yahoo's number wrapper ({"raw": 1.23, "fmt": "1.23"})
type rawValue struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

// chartResponse is the v8 chart API envelope (price lookup)
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				ExchangeName       string  `json:"exchangeName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"previousClose"`
			} `json:"meta"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

// summaryResponse is the v10 quoteSummary API envelope (fundamentals)
type summaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *apiError       `json:"error"`
	} `json:"quoteSummary"`
}

type summaryResult struct {
	FinancialData *struct {
		FreeCashflow       *rawValue `json:"freeCashflow"`
		OperatingCashflow  *rawValue `json:"operatingCashflow"`
		EarningsGrowth     *rawValue `json:"earningsGrowth"`
		CurrentPrice       *rawValue `json:"currentPrice"`
	} `json:"financialData"`

	DefaultKeyStatistics *struct {
		SharesOutstanding *rawValue `json:"sharesOutstanding"`
		TrailingEps       *rawValue `json:"trailingEps"`
	} `json:"defaultKeyStatistics"`

	SummaryDetail *struct {
		TrailingPE *rawValue `json:"trailingPE"`
	} `json:"summaryDetail"`

	CashflowStatementHistory *struct {
		CashflowStatements []struct {
			TotalCashFromOperatingActivities *rawValue `json:"totalCashFromOperatingActivities"`
			CapitalExpenditures              *rawValue `json:"capitalExpenditures"`
		} `json:"cashflowStatements"`
	} `json:"cashflowStatementHistory"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Fundamentals holds the fundamental fields extracted from quoteSummary.
// Every field is optional at this layer; the fetcher decides which ones
// are required for a snapshot.
type Fundamentals struct {
	FreeCashFlow      *float64
	SharesOutstanding *float64
	GrowthEstimate    *float64
	TrailingPE        *float64
}
