package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/client"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	tea "github.com/charmbracelet/bubbletea"
)

type balanceSheetLoadedMsg struct {
	bs  *ledger.BalanceSheet
	err error
}

type balanceSheetModel struct {
	bs      *ledger.BalanceSheet
	loading bool
	err     error
	width   int
}

func (m *balanceSheetModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		bs, err := c.BalanceSheet(context.Background(), "")
		return balanceSheetLoadedMsg{bs: bs, err: err}
	}
}

func (m balanceSheetModel) update(msg tea.Msg) (balanceSheetModel, tea.Cmd) {
	switch msg := msg.(type) {
	case balanceSheetLoadedMsg:
		m.loading = false
		m.bs = msg.bs
		m.err = msg.err
	}
	return m, nil
}

func (m *balanceSheetModel) view() string {
	if m.loading {
		return "Loading balance sheet..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if m.bs == nil {
		return dimStyle.Render("No data available.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("BALANCE SHEET"))
	b.WriteString("\n")

	section := func(title string, accounts []ledger.ReportAccount) {
		b.WriteString(groupStyle.Render("  " + title))
		b.WriteString("\n")
		for _, a := range accounts {
			fmt.Fprintf(&b, "    %-38s %14s\n", a.Name, a.Amount.StringFixed(2))
		}
	}

	section("Assets", m.bs.Assets.Accounts)
	fmt.Fprintf(&b, "    %-38s %14s\n", "Total Assets", m.bs.Assets.Total.StringFixed(2))

	section("Liabilities", m.bs.Liabilities.Accounts)
	fmt.Fprintf(&b, "    %-38s %14s\n", "Total Liabilities", m.bs.Liabilities.Total.StringFixed(2))

	section("Equity", m.bs.Equity.Accounts)
	fmt.Fprintf(&b, "    %-38s %14s\n", "Net Income", m.bs.Equity.NetIncome.StringFixed(2))
	fmt.Fprintf(&b, "    %-38s %14s\n\n", "Total Equity", m.bs.Equity.TotalIncludingNetIncome.StringFixed(2))

	b.WriteString(totalStyle.Render(fmt.Sprintf("  %-40s %14s", "Total Assets", m.bs.Totals.TotalAssets.StringFixed(2))))
	b.WriteString("\n")
	b.WriteString(totalStyle.Render(fmt.Sprintf("  %-40s %14s", "Total Liabilities & Equity", m.bs.Totals.TotalLiabilitiesAndEquity.StringFixed(2))))
	b.WriteString("\n\n")
	if m.bs.Totals.IsBalanced {
		b.WriteString(balancedStyle.Render("  Assets = Liabilities + Equity"))
	} else {
		b.WriteString(unbalancedStyle.Render("  OUT OF BALANCE"))
	}
	return b.String()
}
