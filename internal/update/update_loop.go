package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/intervald/internal/model"
	"github.com/sandeepkv93/intervald/internal/views"
)

type alertStopper interface {
	Stop()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForViewCmd(m.bridge.C()),
		waitForEngineEventCmd(m.Engine.Events()),
		m.loadHistoryCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.MouseMsg:
		return m.handlePickerMouse(typed), nil
	case RunningViewMsg:
		m.Running = RunningView{Visible: true, Formatted: typed.Formatted, Paused: typed.Paused}
		return m, waitForViewCmd(m.bridge.C())
	case HideRunningViewMsg:
		m.Running = RunningView{}
		return m, waitForViewCmd(m.bridge.C())
	case EngineEventMsg:
		cmd := m.applyEngineEvent(typed.Event)
		return m, tea.Batch(cmd, waitForEngineEventCmd(m.Engine.Events()))
	case SessionRecordedMsg:
		if typed.Err != nil {
			m.log.Error().Err(typed.Err).Str("session", typed.Session.ID).Msg("session not recorded")
			m.Status = StatusBar{Text: fmt.Sprintf("history: %v", typed.Err), IsError: true}
			return m, nil
		}
		m.log.Info().
			Str("session", typed.Session.ID).
			Str("outcome", string(typed.Session.Outcome)).
			Int("elapsed", typed.Session.ElapsedSeconds).
			Msg("session recorded")
		return m, m.loadHistoryCmd()
	case HistoryLoadedMsg:
		m.applyHistory(typed)
		m.historyTable.SetRows(historyRows(m.History.Sessions))
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Palette.Active {
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		return m.handlePaletteKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.HelpVisible = !m.HelpVisible
		m.helpModel.ShowAll = m.HelpVisible
		return m, nil
	case key.Matches(msg, m.keys.Palette):
		return m.openPalette(), nil
	case key.Matches(msg, m.keys.History):
		if m.repo == nil {
			m.Status = StatusBar{Text: "history is disabled", IsError: true}
			return m, nil
		}
		m.History.Visible = !m.History.Visible
		if m.History.Visible {
			return m, m.loadHistoryCmd()
		}
		return m, nil
	}

	if m.Running.Visible {
		switch {
		case key.Matches(msg, m.keys.Toggle):
			m.Engine.TogglePause()
		case key.Matches(msg, m.keys.Reset):
			m.Engine.Reset()
		case key.Matches(msg, m.keys.Cancel):
			m.Engine.Cancel()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.scrollFocused(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollFocused(1)
	case key.Matches(msg, m.keys.SwitchAxis):
		m.Picker.FocusNext()
	case key.Matches(msg, m.keys.Start):
		m.startSelected()
	default:
		if i := presetIndexForKey(msg.String()); i >= 0 {
			m.applyPresetIndex(i)
		}
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	m.Engine.Close()
	if s, ok := m.alert.(alertStopper); ok {
		s.Stop()
	}
	m.log.Info().Msg("quitting")
	return m, tea.Quit
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := m.renderPickerView() + "\n\n" + m.renderPresetView()
	rightPane := strings.TrimSpace(strings.Join([]string{
		m.renderHistoryIfVisible(),
		m.renderCommandPalette(),
		m.renderHelpIfVisible(),
	}, "\n\n"))
	if rightPane == "" {
		rightPane = fmt.Sprintf("selected: %s\npress enter to start", m.Picker.Duration())
	}

	st := m.Engine.State()
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("intervald | %s | selected %s", st.Status, m.Picker.Duration()),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		Overlay:      m.renderRunningView(),
		StatusLine:   status,
		Notification: m.renderNotificationsView(),
		Footer:       m.renderShortHelp(),
	})
}

func (m Model) renderRunningView() string {
	if !m.Running.Visible {
		return ""
	}
	p := m.Engine.State().Progress()
	return views.RenderRunningPanel(views.RunningPanelData{
		Visible:      true,
		Timer:        m.Running.Formatted,
		Paused:       m.Running.Paused,
		ProgressView: m.runProgress.ViewAs(p),
		ProgressPct:  int(p * 100),
	})
}

func (m Model) renderPresetView() string {
	return views.RenderPresetPanel(views.PresetPanelData{
		Labels: model.PresetLabels(m.Presets),
		Keys:   presetKeys,
		Active: m.ActivePreset,
	})
}

func (m Model) renderHistoryIfVisible() string {
	if !m.History.Visible {
		return ""
	}
	s := m.History.Summary
	return views.RenderHistoryPanel(views.HistoryPanelData{
		TableView: m.historyTable.View(),
		Total:     s.Total,
		Expired:   s.Expired,
		Canceled:  s.Canceled,
		Elapsed:   formatTotal(s.ElapsedSeconds),
		Err:       m.History.Err,
	})
}
