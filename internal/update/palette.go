package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/intervald/internal/commands"
	"github.com/sandeepkv93/intervald/internal/views"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Start: func(a commands.StartArgs) (commands.Result, error) {
			if a.Duration != nil {
				m.Picker.ApplyPreset(*a.Duration)
				m.ActivePreset = -1
			}
			d := m.Picker.Duration()
			m.startDuration(d)
			return commands.Result{Message: fmt.Sprintf("started %s", d)}, nil
		},
		Set: func(a commands.SetArgs) (commands.Result, error) {
			m.Picker.ApplyPreset(a.Duration)
			m.ActivePreset = -1
			return commands.Result{Message: fmt.Sprintf("selected %s", a.Duration)}, nil
		},
		Preset: func(a commands.PresetArgs) (commands.Result, error) {
			if !m.applyPresetIndex(a.Index - 1) {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("preset must be between 1 and %d", len(m.Presets)),
				}
			}
			return commands.Result{Message: fmt.Sprintf("selected %s", m.Presets[a.Index-1].Label())}, nil
		},
		Pause: func() (commands.Result, error) {
			return engineResult(m.Engine.Pause(), "paused", "nothing is running")
		},
		Resume: func() (commands.Result, error) {
			return engineResult(m.Engine.Resume(), "continuing", "nothing is paused")
		},
		Reset: func() (commands.Result, error) {
			return engineResult(m.Engine.Reset(), "reset", "no countdown to reset")
		},
		Cancel: func() (commands.Result, error) {
			return engineResult(m.Engine.Cancel(), "canceled", "no countdown to cancel")
		},
		History: func(a commands.HistoryArgs) (commands.Result, error) {
			if m.repo == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "history is disabled"}
			}
			m.History.Visible = true
			m.History.Limit = a.Limit
			follow = m.loadHistoryCmd()
			return commands.Result{Message: fmt.Sprintf("showing last %d sessions", a.Limit)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command failed", err.Error(), "error")
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	return m, follow
}

func engineResult(ok bool, done, noop string) (commands.Result, error) {
	if !ok {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: noop}
	}
	return commands.Result{Message: done}, nil
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return views.RenderCommandPalette(true, m.commandInput.View())
}
