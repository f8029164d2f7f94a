package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("10")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Width(10)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("238"))

	focusedInputStyle = inputStyle.
				BorderForeground(lipgloss.Color("10"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238"))

	focusedButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("231")).
				BorderForeground(lipgloss.Color("10"))

	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(1, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	dollars := inputStyle
	if m.focus == focusDollars {
		dollars = focusedInputStyle
	}
	cents := inputStyle
	if m.focus == focusCents {
		cents = focusedInputStyle
	}
	button := buttonStyle
	if m.focus == focusReset {
		button = focusedButtonStyle
	}

	amount := lipgloss.JoinHorizontal(lipgloss.Bottom,
		labelStyle.Render("Amount"),
		"$ ", dollars.Render(m.dollars.input.View()),
		" . ", cents.Render(m.cents.input.View()),
	)
	total := labelStyle.Render("Total") + totalStyle.Render("$ "+m.total.value)

	footer := footerKeyStyle.Render("[tab]") + footerStyle.Render(" focus  ") +
		footerKeyStyle.Render("[ctrl+r]") + footerStyle.Render(" reset  ") +
		footerKeyStyle.Render("[esc]") + footerStyle.Render(" quit  ") +
		footerStyle.Render(fmt.Sprintf("Every: %v", m.interval))

	content := headerStyle.Render(" Money Printer ") + "\n\n" +
		amount + "\n\n" +
		total + "\n\n" +
		button.Render("Reset total") + "\n\n" +
		footer

	return containerStyle.Render(content)
}
