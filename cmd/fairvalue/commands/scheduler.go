package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/fairvalue/internal/scheduler"
	"github.com/wonny/fairvalue/internal/scheduler/jobs"
	"github.com/wonny/fairvalue/pkg/database"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "스케줄러 관리",
	Long: `스케줄러를 시작하거나 작업을 관리합니다.

분석 자체는 스케줄을 전혀 인식하지 않습니다. 스케줄러는 매일 정해진
시각에 수동 실행과 동일한 분석을 호출하는 래퍼일 뿐입니다.

Subcommands:
  start   - 스케줄러 시작
  list    - 등록된 작업 목록
  run     - 특정 작업 즉시 실행
  status  - 작업 실행 상태 조회

Example:
  go run ./cmd/fairvalue scheduler start
  go run ./cmd/fairvalue scheduler run daily_analysis`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "스케줄러 시작",
		Long: `스케줄러를 시작하고 등록된 작업을 스케줄합니다.

등록되는 작업:
- daily_analysis: 매일 22:30 UTC (미국장 마감 후 전체 카탈로그 분석)

스케줄러는 Ctrl+C로 종료할 수 있습니다.`,
		RunE: runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "등록된 작업 목록",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "특정 작업 즉시 실행",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}

	schedulerStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "작업 실행 상태 조회",
		RunE:  showStatus,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
	schedulerCmd.AddCommand(schedulerStatusCmd)
}

// initScheduler wires the scheduler with the daily analysis job
func initScheduler() (*scheduler.Scheduler, *database.DB, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	orch := buildOrchestrator(cfg, log)
	repo, db := openHistory(context.Background(), cfg, log)

	sched := scheduler.New(log)
	if err := sched.AddJob(jobs.NewAnalysisJob(orch, repo, log)); err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, fmt.Errorf("register job: %w", err)
	}

	return sched, db, nil
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== fairvalue Scheduler ===")
	fmt.Println()

	sched, db, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	if db != nil {
		defer db.Close()
	}

	sched.Start()

	PrintSuccess("Scheduler started")
	fmt.Println("\nRegistered jobs:")
	PrintList(sched.GetAllJobs())
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down scheduler...")
	sched.Stop()

	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	sched, db, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	if db != nil {
		defer db.Close()
	}

	fmt.Println("Registered jobs:")
	PrintList(sched.GetAllJobs())

	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	sched, db, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	if db != nil {
		defer db.Close()
	}

	fmt.Printf("Running job: %s\n", jobName)
	if err := sched.RunJob(jobName); err != nil {
		return fmt.Errorf("run job: %w", err)
	}

	// RunJob is asynchronous; wait for the single run to finish before
	// the process exits
	waitForRuns(sched, jobName)
	return nil
}

// waitForRuns blocks until the job has at least one recorded result
func waitForRuns(sched *scheduler.Scheduler, jobName string) {
	for {
		stats := sched.GetJobStats()
		if stat, ok := stats[jobName]; ok && stat.Runs > 0 {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func showStatus(cmd *cobra.Command, args []string) error {
	sched, db, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	if db != nil {
		defer db.Close()
	}

	stats := sched.GetJobStats()
	if len(stats) == 0 {
		PrintInfo("No jobs registered")
		return nil
	}

	for name, stat := range stats {
		fmt.Println()
		PrintSeparator()
		fmt.Printf("  %s\n", name)
		PrintKeyValue("Runs", fmt.Sprintf("%d", stat.Runs), 12)
		PrintKeyValue("Success Rate", fmt.Sprintf("%.0f%%", stat.SuccessRate*100), 12)
		if stat.LastResult != nil {
			PrintKeyValue("Last Run", stat.LastResult.StartTime.Format("2006-01-02 15:04:05"), 12)
			PrintKeyValue("Last Status", statusLabel(stat.LastResult.Success), 12)
		}
	}
	fmt.Println()

	return nil
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "failed"
}
