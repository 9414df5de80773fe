package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/client"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type chartLoadedMsg struct {
	tree *ledger.ChartTree
	err  error
}

type chartModel struct {
	tree    *ledger.ChartTree
	loading bool
	spin    spinner.Model
	err     error
	width   int
}

func (m *chartModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			tree, err := c.AccountTree(context.Background(), "")
			return chartLoadedMsg{tree: tree, err: err}
		},
	)
}

func (m chartModel) update(msg tea.Msg) (chartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case chartLoadedMsg:
		m.loading = false
		m.tree = msg.tree
		m.err = msg.err
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *chartModel) view() string {
	if m.loading {
		return m.spin.View() + " Loading chart of accounts..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if m.tree == nil || len(m.tree.Groups) == 0 {
		return dimStyle.Render("No accounts. Seed the company first.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("CHART OF ACCOUNTS"))
	b.WriteString("\n")
	for _, group := range m.tree.Groups {
		b.WriteString(groupStyle.Render(group.Label) + "\n")
		for _, root := range group.Accounts {
			writeTreeNode(&b, root, 1)
		}
	}
	return b.String()
}

func writeTreeNode(b *strings.Builder, n *ledger.TreeNode, depth int) {
	num := n.AccountNumber
	if num == "" {
		num = "-"
	}
	fmt.Fprintf(b, "%s%-6s %-40s %14s\n",
		strings.Repeat("  ", depth), num, n.Name, n.CurrentBalance.StringFixed(2))
	for _, child := range n.SubAccounts {
		writeTreeNode(b, child, depth+1)
	}
}
