package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	LeftPane     string
	RightPane    string
	Overlay      string
	StatusLine   string
	Footer       string
	Notification string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	dimmedStyle  = panelStyle.Faint(true)
	overlayStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("11")).Padding(1, 4)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	pane := panelStyle
	if data.Overlay != "" {
		pane = dimmedStyle
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		pane.Width(PanelWidth).Render(data.LeftPane),
		pane.Width(PanelWidth).Render(data.RightPane),
	)

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	sections := []string{headerStyle.Render(data.Header)}
	if data.Overlay != "" {
		modal := overlayStyle.Render(data.Overlay)
		sections = append(sections, lipgloss.PlaceHorizontal(lipgloss.Width(row), lipgloss.Center, modal))
	}
	sections = append(sections, row, status)
	if data.Notification != "" {
		sections = append(sections, data.Notification)
	}
	if data.Footer != "" {
		sections = append(sections, footerStyle.Render(data.Footer))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
