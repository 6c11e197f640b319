package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/intervald/internal/views"
)

var presetKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

type keyMap struct {
	Down       key.Binding
	Up         key.Binding
	SwitchAxis key.Binding
	Start      key.Binding
	Toggle     key.Binding
	Reset      key.Binding
	Cancel     key.Binding
	History    key.Binding
	Palette    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next value")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous value")),
		SwitchAxis: key.NewBinding(key.WithKeys("left", "right", "tab"), key.WithHelp("←/→", "minute/second")),
		Start:      key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "start")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/continue")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Cancel:     key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "cancel")),
		History:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "history")),
		Palette:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Toggle, k.Cancel, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.SwitchAxis},
		{k.Start, k.Toggle, k.Reset, k.Cancel},
		{k.History, k.Palette, k.Help, k.Quit},
	}
}

const helpMarkdown = `**intervald** times sports intervals.

Pick minutes and seconds with the wheels or a hotkey, then press *enter*.
Drag a wheel with the mouse: drag up for the next value, down for the previous.

Commands: ` + "`start [m:ss]`, `set m:ss`, `preset N`, `pause`, `resume`, `reset`, `cancel`, `history [N]`"

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, group := range m.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			plain = append(plain, fmt.Sprintf("- %s: %s", h.Key, h.Desc))
		}
	}
	plain = append(plain, fmt.Sprintf("- %s: hotkeys", strings.Join(presetKeys[:len(m.Presets)], " ")))
	return views.RenderHelpPanel(views.HelpPanelData{
		Markdown: views.RenderMarkdown(helpMarkdown),
		Bindings: plain,
	})
}

func (m Model) renderShortHelp() string {
	return m.helpModel.View(m.keys)
}
