package tui

import (
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/client"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeChart mode = iota
	modeTrialBalance
	modeIncomeStatement
	modeBalanceSheet
)

var tabModes = []mode{modeChart, modeTrialBalance, modeIncomeStatement, modeBalanceSheet}

func tabLabel(m mode) string {
	switch m {
	case modeChart:
		return "Chart of Accounts"
	case modeTrialBalance:
		return "Trial Balance"
	case modeIncomeStatement:
		return "Income Statement"
	case modeBalanceSheet:
		return "Balance Sheet"
	default:
		return ""
	}
}

type App struct {
	client        *client.Client
	mode          mode
	tabIndex      int
	width, height int

	chart        chartModel
	trialBalance trialBalanceModel
	income       incomeModel
	balanceSheet balanceSheetModel
}

func NewApp(c *client.Client) *App {
	return &App{client: c, mode: modeChart}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.chart.init(a.client),
		a.trialBalance.init(a.client),
		a.income.init(a.client),
		a.balanceSheet.init(a.client),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.chart.width = msg.Width
		a.trialBalance.width = msg.Width
		a.income.width = msg.Width
		a.balanceSheet.width = msg.Width
		return a, nil

	case chartLoadedMsg:
		var cmd tea.Cmd
		a.chart, cmd = a.chart.update(msg)
		return a, cmd
	case spinner.TickMsg:
		var cmd tea.Cmd
		a.chart, cmd = a.chart.update(msg)
		return a, cmd
	case trialBalanceLoadedMsg:
		var cmd tea.Cmd
		a.trialBalance, cmd = a.trialBalance.update(msg)
		return a, cmd
	case incomeLoadedMsg:
		var cmd tea.Cmd
		a.income, cmd = a.income.update(msg)
		return a, cmd
	case balanceSheetLoadedMsg:
		var cmd tea.Cmd
		a.balanceSheet, cmd = a.balanceSheet.update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, keys.Tab):
			a.tabIndex = (a.tabIndex + 1) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			return a, nil

		case key.Matches(msg, keys.ShiftTab):
			a.tabIndex = (a.tabIndex - 1 + len(tabModes)) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			return a, nil

		case key.Matches(msg, keys.Refresh):
			return a, a.refreshTab()
		}
	}

	return a, nil
}

func (a *App) refreshTab() tea.Cmd {
	switch a.mode {
	case modeChart:
		return a.chart.init(a.client)
	case modeTrialBalance:
		return a.trialBalance.init(a.client)
	case modeIncomeStatement:
		return a.income.init(a.client)
	case modeBalanceSheet:
		return a.balanceSheet.init(a.client)
	}
	return nil
}

func (a *App) View() string {
	tabs := ""
	for i, m := range tabModes {
		label := tabLabel(m)
		if i == a.tabIndex {
			tabs += activeTabStyle.Render(label)
		} else {
			tabs += inactiveTabStyle.Render(label)
		}
		if i < len(tabModes)-1 {
			tabs += " "
		}
	}

	var content string
	switch a.mode {
	case modeChart:
		content = a.chart.view()
	case modeTrialBalance:
		content = a.trialBalance.view()
	case modeIncomeStatement:
		content = a.income.view()
	case modeBalanceSheet:
		content = a.balanceSheet.view()
	}

	helpText := dimStyle.Render("tab:switch  r:refresh  q:quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		"",
		content,
		"",
		helpText,
	)
}
