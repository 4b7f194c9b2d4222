package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/fairvalue/internal/catalog"
	"github.com/wonny/fairvalue/internal/external/yahoo"
	"github.com/wonny/fairvalue/internal/history"
	"github.com/wonny/fairvalue/internal/pipeline"
	"github.com/wonny/fairvalue/internal/report"
	"github.com/wonny/fairvalue/internal/valuation"
	"github.com/wonny/fairvalue/pkg/config"
	"github.com/wonny/fairvalue/pkg/database"
	"github.com/wonny/fairvalue/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "전체 카탈로그 분석 실행",
	Long: `두 카탈로그의 모든 종목에 대해 데이터를 가져와 내재가치를 계산하고
카탈로그별 테이블을 출력합니다.

개별 종목 실패는 해당 행만 건너뛰며, 모든 종목이 실패한 경우에만
종료 코드가 0이 아닙니다.

Example:
  go run ./cmd/fairvalue analyze
  go run ./cmd/fairvalue analyze --json
  go run ./cmd/fairvalue analyze -v`,
	RunE: runAnalyze,
}

var analyzeJSON bool

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "machine-readable JSON output")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	orch := buildOrchestrator(cfg, log)

	repo, db := openHistory(ctx, cfg, log)
	if db != nil {
		defer db.Close()
	}

	summary, err := orch.Run(ctx, catalog.All())
	if err != nil {
		// Every ticker in every catalog failed; this is the one case that
		// maps to a non-zero exit status
		PrintError("Analysis produced no results")
		return err
	}

	if analyzeJSON {
		if err := renderJSON(summary); err != nil {
			return err
		}
	} else {
		renderTables(summary)
	}

	persistRun(ctx, repo, summary, log)

	if !analyzeJSON {
		fmt.Println()
		if summary.Skipped() > 0 {
			PrintWarning(fmt.Sprintf("%d of %d tickers skipped", summary.Skipped(), summary.Total()))
		}
		fmt.Println("Disclaimer: simplified model for educational purposes, not financial advice.")
	}

	return nil
}

// buildOrchestrator wires the fetch → evaluate pipeline
func buildOrchestrator(cfg *config.Config, log *logger.Logger) *pipeline.Orchestrator {
	client := yahoo.NewClient(cfg.Yahoo, log)
	engine := valuation.NewEngine(cfg.Valuation, log)
	return pipeline.New(client, engine, log)
}

// openHistory connects the optional history repository. A missing or
// unreachable database only disables persistence.
func openHistory(ctx context.Context, cfg *config.Config, log *logger.Logger) (*history.Repository, *database.DB) {
	if !cfg.HistoryEnabled() {
		return nil, nil
	}

	db, err := database.New(cfg)
	if err != nil {
		log.WithError(err).Warn("History database unavailable, persistence disabled")
		return nil, nil
	}

	repo := history.NewRepository(db.Pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.WithError(err).Warn("History schema setup failed, persistence disabled")
		db.Close()
		return nil, nil
	}

	return repo, db
}

func renderTables(summary *pipeline.RunSummary) {
	for i := range summary.Catalogs {
		co := &summary.Catalogs[i]
		report.RenderTable(os.Stdout, co.Catalog.Name(), co.Results(), co.SkippedOutcomes())
		co.MarkRendered()
	}
}

func renderJSON(summary *pipeline.RunSummary) error {
	doc := report.Document{GeneratedAt: time.Now()}
	for i := range summary.Catalogs {
		co := &summary.Catalogs[i]
		doc.Catalogs = append(doc.Catalogs,
			report.NewCatalogSection(co.Catalog.Name(), co.Results(), co.SkippedOutcomes()))
		co.MarkRendered()
	}
	return report.WriteJSON(os.Stdout, doc)
}

func persistRun(ctx context.Context, repo *history.Repository, summary *pipeline.RunSummary, log *logger.Logger) {
	if repo == nil {
		return
	}
	for i := range summary.Catalogs {
		co := &summary.Catalogs[i]
		if err := repo.SaveRun(ctx, summary.StartedAt, co.Catalog.Name(), co.Results()); err != nil {
			log.WithError(err).Warn("Failed to persist run history")
		}
	}
}
