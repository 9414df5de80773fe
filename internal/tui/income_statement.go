package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/client"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	tea "github.com/charmbracelet/bubbletea"
)

type incomeLoadedMsg struct {
	is  *ledger.IncomeStatement
	err error
}

type incomeModel struct {
	is      *ledger.IncomeStatement
	loading bool
	err     error
	width   int
}

func (m *incomeModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		is, err := c.IncomeStatement(context.Background(), "", "")
		return incomeLoadedMsg{is: is, err: err}
	}
}

func (m incomeModel) update(msg tea.Msg) (incomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case incomeLoadedMsg:
		m.loading = false
		m.is = msg.is
		m.err = msg.err
	}
	return m, nil
}

func (m *incomeModel) view() string {
	if m.loading {
		return "Loading income statement..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if m.is == nil {
		return dimStyle.Render("No data available.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("INCOME STATEMENT"))
	b.WriteString("\n")

	section := func(title string, sec ledger.ReportSection) {
		b.WriteString(groupStyle.Render("  " + title))
		b.WriteString("\n")
		for _, a := range sec.Accounts {
			fmt.Fprintf(&b, "    %-38s %14s\n", a.Name, a.Amount.StringFixed(2))
		}
		fmt.Fprintf(&b, "    %-38s %14s\n", "Total", sec.Total.StringFixed(2))
	}

	section("Revenue", m.is.Revenue)
	section("Cost of Goods Sold", m.is.CostOfGoodsSold)
	b.WriteString(totalStyle.Render(fmt.Sprintf("  %-40s %14s", "Gross Profit", m.is.GrossProfit.StringFixed(2))))
	b.WriteString("\n")
	section("Expenses", m.is.Expenses)
	b.WriteString(totalStyle.Render(fmt.Sprintf("  %-40s %14s", "Net Income", m.is.NetIncome.StringFixed(2))))
	return b.String()
}
