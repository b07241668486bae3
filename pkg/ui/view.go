package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	tierStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12"))

	labelStyle = lipgloss.NewStyle().
			Faint(true)

	headerCellStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Faint(true).Padding(1, 1, 0, 1)
)

func (m Model) View() string {
	if !m.engine.IsConfigured() {
		return titleStyle.Render("viewscale") + "\n\n  Waiting for the first resize event..."
	}

	s, _ := m.engine.Scaler()

	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("viewscale"),
		tierStyle.Render(s.Tier().String()),
	))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %dx%d\n",
		labelStyle.Render("viewport"), m.width, m.height))
	b.WriteString(fmt.Sprintf("  %s %.4f\n",
		labelStyle.Render("factor  "), s.Factor()))
	b.WriteString(fmt.Sprintf("  %s %.4f\n",
		labelStyle.Render("h-factor"), s.HeightFactor()))
	b.WriteString(fmt.Sprintf("  %s %v\n\n",
		labelStyle.Render("ref     "), s.Config.ReferenceWidth))

	b.WriteString(m.tokenTable())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("resize the terminal to change tiers • q: quit"))

	return b.String()
}

func (m Model) tokenTable() string {
	s, ok := m.engine.Scaler()
	if !ok {
		return ""
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}

			return cellStyle
		}).
		Headers("TOKEN", "BASE", "RESOLVED")

	for _, tok := range m.tokens {
		tbl.Row(
			tok.Name,
			fmt.Sprintf("%g", tok.Base),
			fmt.Sprintf("%.2f", s.Token(tok)),
		)
	}

	return tbl.Render()
}
