package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/fairvalue/pkg/config"
	"github.com/wonny/fairvalue/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fairvalue",
	Short: "fairvalue - 간이 DCF 기반 내재가치 스크리너",
	Long: `fairvalue CLI

Yahoo Finance 데이터를 가져와 간이 DCF 모델로 내재가치를 계산하고
시장가와 비교합니다. 두 개의 고정 카탈로그(Magnificent 7, Blue Chips)를
테이블로 출력합니다.

Usage:
  go run ./cmd/fairvalue [command]

Examples:
  go run ./cmd/fairvalue analyze
  go run ./cmd/fairvalue quote AAPL
  go run ./cmd/fairvalue catalog list
  go run ./cmd/fairvalue scheduler start`,
	// Bare invocation runs the full analysis
	RunE:         runAnalyze,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads configuration and applies global flags
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, logger.New(cfg), nil
}
