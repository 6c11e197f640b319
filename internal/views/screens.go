package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const PanelWidth = 44

const (
	PickerSplitX = 9
	PickerEndX   = 16
)

type PickerPanelData struct {
	Minute  int
	Second  int
	Focused string
	Window  int
}

type RunningPanelData struct {
	Visible      bool
	Timer        string
	Paused       bool
	ProgressView string
	ProgressPct  int
}

type PresetPanelData struct {
	Labels []string
	Keys   []string
	Active int
}

type HistoryPanelData struct {
	TableView string
	Total     int
	Expired   int
	Canceled  int
	Elapsed   string
	Err       string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Markdown string
}

var (
	wheelSelected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	wheelFocused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	wheelDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bigTimer      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pausedTimer   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

func RenderPickerPanel(data PickerPanelData) string {
	window := data.Window
	if window <= 0 {
		window = 2
	}
	minutes := wheelColumn(data.Minute, window, data.Focused == "minute")
	seconds := wheelColumn(data.Second, window, data.Focused == "second")

	var b strings.Builder
	b.WriteString("picker:\n")
	b.WriteString(" min    sec\n")
	for i := range minutes {
		b.WriteString(fmt.Sprintf("  %s  :  %s\n", minutes[i], seconds[i]))
	}
	b.WriteString("actions: [↑/↓]scroll [←/→]axis [enter]start")
	return b.String()
}

func wheelColumn(selected, window int, focused bool) []string {
	out := make([]string, 0, 2*window+1)
	for v := selected - window; v <= selected+window; v++ {
		if v < 0 || v > 59 {
			out = append(out, "  ")
			continue
		}
		cell := fmt.Sprintf("%02d", v)
		switch {
		case v == selected && focused:
			out = append(out, wheelFocused.Render(cell))
		case v == selected:
			out = append(out, wheelSelected.Render(cell))
		default:
			out = append(out, wheelDim.Render(cell))
		}
	}
	return out
}

func RenderRunningPanel(data RunningPanelData) string {
	if !data.Visible {
		return ""
	}
	var b strings.Builder
	style := bigTimer
	toggle := "[space]pause"
	if data.Paused {
		style = pausedTimer
		toggle = "[space]continue"
	}
	b.WriteString(style.Render(data.Timer) + "\n")
	if data.Paused {
		b.WriteString("paused\n")
	}
	b.WriteString(fmt.Sprintf("%s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("actions: [c]cancel %s [r]reset", toggle))
	return b.String()
}

func RenderPresetPanel(data PresetPanelData) string {
	var b strings.Builder
	b.WriteString("hotkeys:\n")
	for i, label := range data.Labels {
		k := ""
		if i < len(data.Keys) {
			k = data.Keys[i]
		}
		cell := fmt.Sprintf("[%s]%-5s", k, label)
		if i == data.Active {
			cell = wheelSelected.Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%6 == 0 || i == len(data.Labels)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderHistoryPanel(data HistoryPanelData) string {
	var b strings.Builder
	b.WriteString("history:\n")
	if data.Err != "" {
		b.WriteString("error: " + data.Err)
		return b.String()
	}
	b.WriteString(fmt.Sprintf("sessions: %d (expired %d, canceled %d) | time: %s\n", data.Total, data.Expired, data.Canceled, data.Elapsed))
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	if data.Markdown != "" {
		b.WriteString(data.Markdown + "\n")
	}
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}
