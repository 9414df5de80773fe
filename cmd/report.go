package cmd

import (
	"context"
	"fmt"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/client"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run financial reports",
}

var (
	reportAsOf  string
	reportStart string
	reportEnd   string
)

var trialBalanceCmd = &cobra.Command{
	Use:   "trial-balance",
	Short: "Trial balance: every account split into debit/credit columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)
		tb, err := c.TrialBalance(context.Background(), reportAsOf)
		if err != nil {
			return err
		}

		fmt.Printf("%-40s %14s %14s\n", "ACCOUNT", "DEBIT", "CREDIT")
		for _, row := range tb.Accounts {
			fmt.Printf("%-40s %14s %14s\n", row.Name, row.DebitBalance.StringFixed(2), row.CreditBalance.StringFixed(2))
		}
		fmt.Printf("%-40s %14s %14s\n", "TOTAL", tb.Totals.TotalDebits.StringFixed(2), tb.Totals.TotalCredits.StringFixed(2))
		if tb.Totals.IsBalanced {
			fmt.Println("\nBalanced.")
		} else {
			fmt.Println("\nOUT OF BALANCE: total debits do not equal total credits.")
		}
		return nil
	},
}

var ledgerCmd = &cobra.Command{
	Use:   "ledger [account-id]",
	Short: "Account ledger with running balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)
		al, err := c.AccountLedger(context.Background(), args[0], reportStart, reportEnd)
		if err != nil {
			return err
		}

		fmt.Printf("Ledger: %s\n", al.Account.FullPath)
		fmt.Printf("Opening balance: %s\n\n", al.OpeningBalance.StringFixed(2))
		fmt.Printf("%-12s %-10s %-30s %12s %12s %14s\n", "DATE", "ENTRY", "DESCRIPTION", "DEBIT", "CREDIT", "BALANCE")
		for _, l := range al.Lines {
			desc := l.Description
			if len(desc) > 28 {
				desc = desc[:28] + ".."
			}
			fmt.Printf("%-12s %-10s %-30s %12s %12s %14s\n",
				l.Date.Format(ledger.DateLayout), l.EntryNumber, desc,
				l.Debit.StringFixed(2), l.Credit.StringFixed(2), l.RunningBalance.StringFixed(2))
		}
		fmt.Printf("\nClosing balance: %s\n", al.ClosingBalance.StringFixed(2))
		return nil
	},
}

var incomeCmd = &cobra.Command{
	Use:   "income-statement",
	Short: "Income statement for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)
		is, err := c.IncomeStatement(context.Background(), reportStart, reportEnd)
		if err != nil {
			return err
		}

		printSection := func(title string, sec ledger.ReportSection) {
			fmt.Printf("%s\n", title)
			for _, a := range sec.Accounts {
				fmt.Printf("  %-38s %14s\n", a.Name, a.Amount.StringFixed(2))
			}
			fmt.Printf("  %-38s %14s\n\n", "Total", sec.Total.StringFixed(2))
		}
		printSection("Revenue", is.Revenue)
		printSection("Cost of Goods Sold", is.CostOfGoodsSold)
		fmt.Printf("%-40s %14s\n\n", "Gross Profit", is.GrossProfit.StringFixed(2))
		printSection("Expenses", is.Expenses)
		fmt.Printf("%-40s %14s\n", "Net Income", is.NetIncome.StringFixed(2))
		return nil
	},
}

var balanceSheetCmd = &cobra.Command{
	Use:   "balance-sheet",
	Short: "Balance sheet as of a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)
		bs, err := c.BalanceSheet(context.Background(), reportAsOf)
		if err != nil {
			return err
		}

		printSection := func(title string, accounts []ledger.ReportAccount, total string) {
			fmt.Printf("%s\n", title)
			for _, a := range accounts {
				fmt.Printf("  %-38s %14s\n", a.Name, a.Amount.StringFixed(2))
			}
			fmt.Printf("  %-38s %14s\n\n", "Total", total)
		}
		printSection("Assets", bs.Assets.Accounts, bs.Assets.Total.StringFixed(2))
		printSection("Liabilities", bs.Liabilities.Accounts, bs.Liabilities.Total.StringFixed(2))
		fmt.Printf("Equity\n")
		for _, a := range bs.Equity.Accounts {
			fmt.Printf("  %-38s %14s\n", a.Name, a.Amount.StringFixed(2))
		}
		fmt.Printf("  %-38s %14s\n", "Net Income", bs.Equity.NetIncome.StringFixed(2))
		fmt.Printf("  %-38s %14s\n\n", "Total", bs.Equity.TotalIncludingNetIncome.StringFixed(2))

		fmt.Printf("%-40s %14s\n", "Total Assets", bs.Totals.TotalAssets.StringFixed(2))
		fmt.Printf("%-40s %14s\n", "Total Liabilities & Equity", bs.Totals.TotalLiabilitiesAndEquity.StringFixed(2))
		if !bs.Totals.IsBalanced {
			fmt.Println("\nOUT OF BALANCE: Assets != Liabilities + Equity.")
		}
		return nil
	},
}

func init() {
	trialBalanceCmd.Flags().StringVar(&reportAsOf, "as-of", "", "Point in time (YYYY-MM-DD); default: current balances")
	balanceSheetCmd.Flags().StringVar(&reportAsOf, "as-of", "", "Cutoff date (YYYY-MM-DD); default: now")
	ledgerCmd.Flags().StringVar(&reportStart, "start", "", "Window start (YYYY-MM-DD)")
	ledgerCmd.Flags().StringVar(&reportEnd, "end", "", "Window end (YYYY-MM-DD)")
	incomeCmd.Flags().StringVar(&reportStart, "start", "", "Window start (YYYY-MM-DD)")
	incomeCmd.Flags().StringVar(&reportEnd, "end", "", "Window end (YYYY-MM-DD)")

	reportCmd.AddCommand(trialBalanceCmd)
	reportCmd.AddCommand(ledgerCmd)
	reportCmd.AddCommand(incomeCmd)
	reportCmd.AddCommand(balanceSheetCmd)
	rootCmd.AddCommand(reportCmd)
}
