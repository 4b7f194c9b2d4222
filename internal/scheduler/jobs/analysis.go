package jobs

import (
	"context"
	"fmt"
	"os"

	"github.com/wonny/fairvalue/internal/catalog"
	"github.com/wonny/fairvalue/internal/history"
	"github.com/wonny/fairvalue/internal/pipeline"
	"github.com/wonny/fairvalue/internal/report"
	"github.com/wonny/fairvalue/pkg/logger"
)

// AnalysisJob runs the full catalog analysis once a day after US market
// close and prints the same tables a manual run would
// ⭐ SSOT: 일일 분석 스케줄은 이 Job에서만
type AnalysisJob struct {
	orchestrator *pipeline.Orchestrator
	repo         *history.Repository // nil when persistence is not configured
	logger       *logger.Logger
}

// NewAnalysisJob creates a new daily analysis job
func NewAnalysisJob(orch *pipeline.Orchestrator, repo *history.Repository, log *logger.Logger) *AnalysisJob {
	return &AnalysisJob{
		orchestrator: orch,
		repo:         repo,
		logger:       log,
	}
}

// Name returns the job name
func (j *AnalysisJob) Name() string {
	return "daily_analysis"
}

// Schedule returns the cron schedule (22:30 UTC, after US close)
func (j *AnalysisJob) Schedule() string {
	return "0 30 22 * * *"
}

// Run executes the analysis
func (j *AnalysisJob) Run(ctx context.Context) error {
	summary, err := j.orchestrator.Run(ctx, catalog.All())
	if err != nil {
		return fmt.Errorf("scheduled analysis: %w", err)
	}

	for i := range summary.Catalogs {
		co := &summary.Catalogs[i]
		report.RenderTable(os.Stdout, co.Catalog.Name(), co.Results(), co.SkippedOutcomes())
		co.MarkRendered()

		if j.repo != nil {
			if err := j.repo.SaveRun(ctx, summary.StartedAt, co.Catalog.Name(), co.Results()); err != nil {
				// Persistence is best-effort; the printed report already
				// succeeded
				j.logger.WithError(err).Warn("Failed to persist run history")
			}
		}
	}

	return nil
}
