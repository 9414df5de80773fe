package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagServer  string
	flagDB      string
	flagCompany string
)

var rootCmd = &cobra.Command{
	Use:   "finanx",
	Short: "Multi-company chart of accounts and financial reporting",
	Long:  "A double-entry bookkeeping backend: per-company chart of accounts with hierarchy, a posted-entry journal, and standard financial reports (trial balance, account ledger, income statement, balance sheet).",
}

func init() {
	godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagServer, "server", envOr("FINANX_SERVER", "http://localhost:8900"), "Server address")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", envOr("FINANX_DB", "finanx.db"), "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&flagCompany, "company", envOr("FINANX_COMPANY", "default"), "Company (tenant) ID")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Execute() error {
	return rootCmd.Execute()
}
