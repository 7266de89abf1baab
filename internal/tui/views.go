package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/squeeze/internal/domain"
	"github.com/mmcdole/squeeze/internal/tui/styles"
)

// Project links shown in the expanded help
const (
	DocumentationURL = "https://github.com/mmcdole/squeeze#readme"
	RepositoryURL    = "https://github.com/mmcdole/squeeze"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	layout := m.currentPanelLayout()

	var b strings.Builder
	b.WriteString(m.Header.View())
	b.WriteString(strings.Repeat("\n", panelGap+1))
	b.WriteString(lipgloss.NewStyle().MarginLeft(layout.x).Render(m.Panel.View()))
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderFooter renders the status line and key help
func (m Model) renderFooter() string {
	lines := []string{m.renderStatus(), m.Help.View(helpKeys{})}
	if m.Help.ShowAll {
		lines = append(lines, m.renderLinks())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	text := m.StatusMsg
	if text == "" && m.locked {
		text = m.Locale.Translate(domain.MsgReadOnly)
	}
	text = styles.Truncate(text, m.Width)

	switch {
	case m.StatusIsErr:
		return styles.ErrorStyle.Render(text)
	case m.StatusMsg != "":
		return styles.SuccessStyle.Render(text)
	default:
		return styles.DimStyle.Render(text)
	}
}

func (m Model) renderLinks() string {
	t := m.Locale.Translate
	return styles.DimStyle.Render(t(domain.MsgDocumentation)+": ") + styles.AccentStyle.Render(DocumentationURL) +
		"  " + styles.DimStyle.Render(t(domain.MsgGithub)+": ") + styles.AccentStyle.Render(RepositoryURL)
}
