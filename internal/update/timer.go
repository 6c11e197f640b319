package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/intervald/internal/engine"
	"github.com/sandeepkv93/intervald/internal/model"
	"github.com/sandeepkv93/intervald/internal/storage"
)

const storageTimeout = 3 * time.Second

func (m *Model) startSelected() {
	m.startDuration(m.Picker.Duration())
}

func (m *Model) startDuration(d model.Duration) {
	m.drag = dragState{}
	m.Engine.Start(d)
}

func (m *Model) applyEngineEvent(ev engine.Event) tea.Cmd {
	var cmd tea.Cmd
	switch ev.Type {
	case engine.EventStarted:
		m.sessionStarted = ev.At
		m.Status = StatusBar{Text: fmt.Sprintf("started %s", ev.State.Original)}
	case engine.EventPaused:
		m.Status = StatusBar{Text: fmt.Sprintf("paused at %s", ev.State.Formatted())}
	case engine.EventResumed:
		m.Status = StatusBar{Text: fmt.Sprintf("continuing from %s", ev.State.Formatted())}
	case engine.EventReset:
		m.Status = StatusBar{Text: fmt.Sprintf("reset to %s (paused)", ev.State.Original)}
	case engine.EventCanceled:
		m.Status = StatusBar{Text: fmt.Sprintf("canceled after %s", model.FormatClock(ev.Elapsed))}
		cmd = m.recordSessionCmd(ev, storage.OutcomeCanceled)
	case engine.EventExpired:
		m.Status = StatusBar{Text: fmt.Sprintf("%s interval done", ev.State.Original)}
		m.notify("Interval done", fmt.Sprintf("%s interval finished", ev.State.Original), "alert")
		cmd = m.recordSessionCmd(ev, storage.OutcomeExpired)
	}
	m.syncRunningView()
	return cmd
}

func (m *Model) syncRunningView() {
	st := m.Engine.State()
	m.Running = RunningView{
		Visible:   st.Status.Active(),
		Formatted: st.Formatted(),
		Paused:    st.Status == model.StatusPaused,
	}
}

func (m Model) recordSessionCmd(ev engine.Event, outcome storage.Outcome) tea.Cmd {
	if m.repo == nil {
		return nil
	}
	total := ev.State.Original.TotalSeconds()
	elapsed := ev.Elapsed
	if elapsed < 0 {
		elapsed = 0
	}
	started := m.sessionStarted
	if started.IsZero() || started.After(ev.At) {
		started = ev.At.Add(-time.Duration(elapsed) * time.Second)
	}
	session := storage.Session{
		ID:              storage.NewSessionID(),
		DurationSeconds: total,
		ElapsedSeconds:  elapsed,
		Outcome:         outcome,
		StartedAt:       started,
		EndedAt:         ev.At,
	}
	repo := m.repo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		err := repo.CreateSession(ctx, session)
		return SessionRecordedMsg{Session: session, Err: err}
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	repo := m.repo
	limit := m.History.Limit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		sessions, err := repo.ListSessions(ctx, storage.SessionListFilter{Limit: limit})
		if err != nil {
			return HistoryLoadedMsg{Err: fmt.Errorf("load history: %w", err)}
		}
		summary, err := repo.Summarize(ctx, storage.SessionListFilter{})
		if err != nil {
			return HistoryLoadedMsg{Sessions: sessions, Err: fmt.Errorf("summarize history: %w", err)}
		}
		return HistoryLoadedMsg{Sessions: sessions, Summary: summary}
	}
}

func (m *Model) applyHistory(msg HistoryLoadedMsg) {
	if msg.Err != nil {
		m.History.Err = msg.Err.Error()
		m.log.Error().Err(msg.Err).Msg("history load failed")
		return
	}
	m.History.Err = ""
	m.History.Sessions = msg.Sessions
	m.History.Summary = msg.Summary
}
