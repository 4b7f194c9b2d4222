package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/fairvalue/internal/catalog"
	"github.com/wonny/fairvalue/internal/external/yahoo"
	"github.com/wonny/fairvalue/internal/valuation"
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote [ticker]",
	Short: "단일 종목 내재가치 조회",
	Long: `지정한 티커 하나에 대해 데이터를 가져와 내재가치를 계산합니다.
카탈로그에 없는 티커도 조회할 수 있습니다.

Example:
  go run ./cmd/fairvalue quote AAPL
  go run ./cmd/fairvalue quote KO -v`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	ticker := args[0]

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := yahoo.NewClient(cfg.Yahoo, log)
	engine := valuation.NewEngine(cfg.Valuation, log)

	name := ticker
	if _, entry, ok := catalog.Find(ticker); ok {
		name = entry.Name
	}

	snapshot, err := client.Fetch(ctx, ticker)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", ticker, err)
	}

	result, err := engine.Evaluate(snapshot)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", ticker, err)
	}

	fmt.Println()
	PrintDoubleSeparator()
	fmt.Printf("  %s (%s)\n", name, ticker)
	PrintSeparator()
	PrintKeyValue("Intrinsic Value", fmt.Sprintf("$%.2f", result.IntrinsicValue), 16)
	PrintKeyValue("Current Price", fmt.Sprintf("$%.2f", result.CurrentPrice), 16)
	PrintKeyValue("Margin of Safety", fmt.Sprintf("%.2f%%", result.MarginOfSafety), 16)
	PrintKeyValue("Verdict", string(result.Verdict), 16)
	if result.TrailingPE != nil {
		PrintKeyValue("Trailing P/E", fmt.Sprintf("%.2f", *result.TrailingPE), 16)
		PrintKeyValue("P/E Signal", string(*result.PEVerdict), 16)
	} else {
		PrintKeyValue("Trailing P/E", "-", 16)
	}
	if snapshot.GrowthEstimate != nil {
		PrintKeyValue("Analyst Growth", fmt.Sprintf("%.1f%% (informational)", *snapshot.GrowthEstimate*100), 16)
	}
	PrintSeparator()

	return nil
}
