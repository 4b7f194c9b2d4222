package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/fairvalue/internal/history"
	"github.com/wonny/fairvalue/pkg/database"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "저장된 실행 이력 조회",
	Long: `데이터베이스에 저장된 과거 실행 결과를 조회합니다.

DATABASE_URL이 설정된 경우에만 사용할 수 있습니다. 이력 저장은 선택
기능이며 분석 실행 자체에는 영향을 주지 않습니다.

Example:
  go run ./cmd/fairvalue history recent
  go run ./cmd/fairvalue history recent --limit 50`,
}

// historyRecentCmd represents the recent subcommand
var historyRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "최근 실행 결과",
	RunE:  runHistoryRecent,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyRecentCmd)

	historyRecentCmd.Flags().IntVar(&historyLimit, "limit", 30, "maximum rows to show")
}

func runHistoryRecent(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	if !cfg.HistoryEnabled() {
		PrintWarning("DATABASE_URL is not set; run history is disabled")
		return fmt.Errorf("history requires DATABASE_URL")
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := history.NewRepository(db.Pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	records, err := repo.Recent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if len(records) == 0 {
		PrintInfo("No history recorded yet")
		return nil
	}

	fmt.Println()
	PrintDoubleSeparator()
	fmt.Printf("  Recent valuations (%d rows)\n", len(records))
	PrintSeparator()
	for _, rec := range records {
		pe := "-"
		if rec.TrailingPE != nil {
			pe = fmt.Sprintf("%.2f", *rec.TrailingPE)
		}
		fmt.Printf("  %s  %-13s  %-6s  iv=$%.2f  px=$%.2f  margin=%.2f%%  %-11s  pe=%s\n",
			rec.RunAt.Format("2006-01-02 15:04"), rec.Catalog, rec.Ticker,
			rec.IntrinsicValue, rec.CurrentPrice, rec.MarginOfSafety, rec.Verdict, pe)
	}
	fmt.Println()

	log.WithField("rows", len(records)).Debug("History query completed")
	return nil
}
