package cmd

import (
	"context"
	"fmt"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/client"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Post journal entries",
}

var (
	entryDate   string
	entryDesc   string
	entryDebit  string
	entryCredit string
	entryAmount string
)

// entry post creates the simple two-line case: one debit, one credit.
var entryPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a balanced two-line journal entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(entryAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", entryAmount, err)
		}

		c := client.New(flagServer, flagCompany)
		entry, err := c.PostEntry(context.Background(), entryDate, entryDesc, []client.EntryLine{
			{AccountID: entryDebit, Debit: amount},
			{AccountID: entryCredit, Credit: amount},
		})
		if err != nil {
			return err
		}

		fmt.Printf("Posted %s on %s: %s (%s)\n",
			entry.EntryNumber, entry.EntryDate.Format(ledger.DateLayout), entry.Description, amount.StringFixed(2))
		return nil
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show the account types catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)
		catalog, err := c.AccountTypes(context.Background())
		if err != nil {
			return err
		}

		for _, g := range catalog.Groups {
			fmt.Printf("%s\n", ledger.GroupLabel(g))
			for _, ti := range catalog.Grouped[g] {
				fmt.Printf("  %-26s %-7s %v\n", ti.Type, ti.NormalBalance, ti.DetailTypes)
			}
		}
		return nil
	},
}

func init() {
	entryPostCmd.Flags().StringVar(&entryDate, "date", "", "Entry date (YYYY-MM-DD)")
	entryPostCmd.Flags().StringVar(&entryDesc, "description", "", "Entry description")
	entryPostCmd.Flags().StringVar(&entryDebit, "debit", "", "Account ID to debit")
	entryPostCmd.Flags().StringVar(&entryCredit, "credit", "", "Account ID to credit")
	entryPostCmd.Flags().StringVar(&entryAmount, "amount", "", "Amount")
	entryPostCmd.MarkFlagRequired("date")
	entryPostCmd.MarkFlagRequired("description")
	entryPostCmd.MarkFlagRequired("debit")
	entryPostCmd.MarkFlagRequired("credit")
	entryPostCmd.MarkFlagRequired("amount")

	entryCmd.AddCommand(entryPostCmd)
	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(typesCmd)
}
