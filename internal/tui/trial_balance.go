package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/client"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	tea "github.com/charmbracelet/bubbletea"
)

type trialBalanceLoadedMsg struct {
	tb  *ledger.TrialBalance
	err error
}

type trialBalanceModel struct {
	tb      *ledger.TrialBalance
	loading bool
	err     error
	width   int
}

func (m *trialBalanceModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		tb, err := c.TrialBalance(context.Background(), "")
		return trialBalanceLoadedMsg{tb: tb, err: err}
	}
}

func (m trialBalanceModel) update(msg tea.Msg) (trialBalanceModel, tea.Cmd) {
	switch msg := msg.(type) {
	case trialBalanceLoadedMsg:
		m.loading = false
		m.tb = msg.tb
		m.err = msg.err
	}
	return m, nil
}

func (m *trialBalanceModel) view() string {
	if m.loading {
		return "Loading trial balance..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if m.tb == nil {
		return dimStyle.Render("No data available.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("TRIAL BALANCE"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-40s %14s %14s", "ACCOUNT", "DEBIT", "CREDIT")))
	b.WriteString("\n")

	for _, row := range m.tb.Accounts {
		fmt.Fprintf(&b, "  %-40s %14s %14s\n",
			row.Name, row.DebitBalance.StringFixed(2), row.CreditBalance.StringFixed(2))
	}

	b.WriteString(totalStyle.Render(fmt.Sprintf("  %-40s %14s %14s",
		"TOTAL", m.tb.Totals.TotalDebits.StringFixed(2), m.tb.Totals.TotalCredits.StringFixed(2))))
	b.WriteString("\n\n")
	if m.tb.Totals.IsBalanced {
		b.WriteString(balancedStyle.Render("  Balanced"))
	} else {
		b.WriteString(unbalancedStyle.Render("  OUT OF BALANCE"))
	}
	return b.String()
}
