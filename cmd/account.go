package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/client"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the chart of accounts",
}

// account create
var (
	acctCreateName   string
	acctCreateNumber string
	acctCreateType   string
	acctCreateDetail string
	acctCreateDesc   string
	acctCreateParent string
)

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)

		created, err := c.CreateAccount(context.Background(), client.CreateAccountParams{
			Name:          acctCreateName,
			AccountNumber: acctCreateNumber,
			AccountType:   acctCreateType,
			DetailType:    acctCreateDetail,
			Description:   acctCreateDesc,
			ParentID:      acctCreateParent,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Account created: %s\n", created.FullPath)
		fmt.Printf("  ID:     %s\n", created.ID)
		fmt.Printf("  Type:   %s / %s (%s-normal)\n", ledger.TypeLabel(created.Type), created.DetailType, strings.ToLower(string(created.NormalBalance)))
		return nil
	},
}

// account list
var acctListType string

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)

		accounts, err := c.ListAccounts(context.Background(), acctListType)
		if err != nil {
			return err
		}

		if len(accounts) == 0 {
			fmt.Println("No accounts found. Run 'finanx seed' to create the starter chart.")
			return nil
		}

		fmt.Printf("%-6s %-40s %-22s %6s %12s\n", "NUM", "ACCOUNT", "TYPE", "SUBS", "BALANCE")
		for _, a := range accounts {
			indent := strings.Repeat("  ", a.Depth)
			name := indent + a.Name
			if len(name) > 38 {
				name = name[:38] + ".."
			}
			fmt.Printf("%-6s %-40s %-22s %6d %12s\n",
				a.AccountNumber, name, ledger.TypeLabel(a.Type), a.SubAccountsCount, a.CurrentBalance.StringFixed(2))
		}
		return nil
	},
}

// account tree
var accountTreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the chart of accounts as a tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)

		tree, err := c.AccountTree(context.Background(), acctListType)
		if err != nil {
			return err
		}

		for _, group := range tree.Groups {
			fmt.Printf("%s\n", group.Label)
			for _, root := range group.Accounts {
				printTreeNode(root, 1)
			}
		}
		return nil
	},
}

func printTreeNode(n *ledger.TreeNode, depth int) {
	fmt.Printf("%s%s  [%s]  %s\n",
		strings.Repeat("  ", depth), n.Name, n.AccountNumber, n.CurrentBalance.StringFixed(2))
	for _, child := range n.SubAccounts {
		printTreeNode(child, depth+1)
	}
}

// account delete
var accountDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an account (leaf, zero balance, non-system only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)
		if err := c.DeleteAccount(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Account deleted.")
		return nil
	},
}

// account rename
var acctRenameName string

var accountRenameCmd = &cobra.Command{
	Use:   "rename [id]",
	Short: "Rename an account (updates all descendant paths)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)
		acct, err := c.RenameAccount(context.Background(), args[0], acctRenameName)
		if err != nil {
			return err
		}
		fmt.Printf("Renamed: %s\n", acct.FullPath)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default chart of accounts for the company",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer, flagCompany)
		seeded, err := c.SeedDefaults(context.Background())
		if err != nil {
			return err
		}
		if len(seeded) == 0 {
			fmt.Println("Company already has accounts; nothing seeded.")
			return nil
		}
		fmt.Printf("Seeded %d accounts.\n", len(seeded))
		return nil
	},
}

func init() {
	accountCreateCmd.Flags().StringVar(&acctCreateName, "name", "", "Account name")
	accountCreateCmd.Flags().StringVar(&acctCreateNumber, "number", "", "Account number")
	accountCreateCmd.Flags().StringVar(&acctCreateType, "type", "", "Account type (see 'finanx types')")
	accountCreateCmd.Flags().StringVar(&acctCreateDetail, "detail", "", "Detail type")
	accountCreateCmd.Flags().StringVar(&acctCreateDesc, "description", "", "Description")
	accountCreateCmd.Flags().StringVar(&acctCreateParent, "parent", "", "Parent account ID (sub-account)")
	accountCreateCmd.MarkFlagRequired("name")
	accountCreateCmd.MarkFlagRequired("type")
	accountCreateCmd.MarkFlagRequired("detail")

	accountListCmd.Flags().StringVar(&acctListType, "type", "", "Filter by account type")
	accountTreeCmd.Flags().StringVar(&acctListType, "type", "", "Filter by account type")

	accountRenameCmd.Flags().StringVar(&acctRenameName, "name", "", "New account name")
	accountRenameCmd.MarkFlagRequired("name")

	accountCmd.AddCommand(accountCreateCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountTreeCmd)
	accountCmd.AddCommand(accountRenameCmd)
	accountCmd.AddCommand(accountDeleteCmd)

	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(seedCmd)
}
