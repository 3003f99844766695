package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// gameOverView shows the final score and how to continue.
func (m Model) gameOverView() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9"))

	scoreStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229"))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 4).
		Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Final Score: %d", m.gameState.Score)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Level reached: %d", m.gameState.Level))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.GameOverHelp())))

	box := boxStyle.Render(b.String())
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return box
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
}
