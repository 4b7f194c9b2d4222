package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/fairvalue/internal/catalog"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "카탈로그 관리",
	Long: `내장 카탈로그를 조회합니다.

카탈로그는 프로세스 시작 시 고정되는 읽기 전용 목록입니다.

Example:
  go run ./cmd/fairvalue catalog list`,
}

// catalogListCmd represents the list subcommand
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "내장 카탈로그 목록",
	RunE:  runCatalogList,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	for _, c := range catalog.All() {
		fmt.Println()
		PrintDoubleSeparator()
		fmt.Printf("  %s (%d companies)\n", c.Name(), c.Len())
		PrintSeparator()

		items := make([]string, 0, c.Len())
		for _, e := range c.Entries() {
			items = append(items, fmt.Sprintf("%-7s %s", e.Ticker, e.Name))
		}
		PrintList(items)
	}
	fmt.Println()

	return nil
}
