package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/intervald/internal/clock"
	"github.com/sandeepkv93/intervald/internal/engine"
	"github.com/sandeepkv93/intervald/internal/model"
	"github.com/sandeepkv93/intervald/internal/selector"
	"github.com/sandeepkv93/intervald/internal/storage"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type RunningView struct {
	Visible   bool
	Formatted string
	Paused    bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type HistoryState struct {
	Visible  bool
	Limit    int
	Sessions []storage.Session
	Summary  storage.SessionSummary
	Err      string
}

type dragState struct {
	gesture *selector.Gesture
}

type Model struct {
	Picker        *selector.Selector
	Engine        *engine.Engine
	Running       RunningView
	Presets       []model.Duration
	ActivePreset  int
	History       HistoryState
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Quitting      bool
	LastError     error

	keys            keyMap
	bridge          *viewBridge
	alert           engine.AlertSink
	repo            storage.Repository
	notifier        DesktopNotifier
	desktopEnabled  bool
	log             zerolog.Logger
	dragThreshold   float64
	dragUnitsPerRow float64
	drag            dragState
	sessionStarted  time.Time

	commandInput textinput.Model
	runProgress  progress.Model
	historyTable table.Model
	helpModel    help.Model
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Deps struct {
	Clock    clock.Clock
	Alert    engine.AlertSink
	Repo     storage.Repository
	Notifier DesktopNotifier
	Logger   zerolog.Logger
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type RunningViewMsg struct {
	Formatted string
	Paused    bool
}

type HideRunningViewMsg struct{}

type EngineEventMsg struct {
	Event engine.Event
}

type SessionRecordedMsg struct {
	Session storage.Session
	Err     error
}

type HistoryLoadedMsg struct {
	Sessions []storage.Session
	Summary  storage.SessionSummary
	Err      error
}

func NewModel() Model {
	return NewModelWithConfig(Deps{}, DefaultRuntimeConfig())
}

func NewModelWithConfig(deps Deps, cfg RuntimeConfig) Model {
	log := deps.Logger
	bridge := newViewBridge(cfg.EventBuffer)
	opts := []engine.Option{
		engine.WithLogger(log.With().Str("component", "engine").Logger()),
		engine.WithTickInterval(cfg.TickInterval),
		engine.WithEventBuffer(cfg.EventBuffer),
	}
	if deps.Clock != nil {
		opts = append(opts, engine.WithClock(deps.Clock))
	}

	presets := cfg.Presets
	if len(presets) == 0 {
		presets = model.DefaultPresets
	}
	if len(presets) > len(presetKeys) {
		presets = presets[:len(presetKeys)]
	}

	m := Model{
		Picker:          selector.New(),
		Engine:          engine.New(bridge, deps.Alert, opts...),
		Presets:         presets,
		ActivePreset:    -1,
		History:         HistoryState{Limit: 10},
		keys:            defaultKeyMap(),
		bridge:          bridge,
		alert:           deps.Alert,
		repo:            deps.Repo,
		notifier:        deps.Notifier,
		desktopEnabled:  cfg.DesktopNotifications,
		log:             log,
		dragThreshold:   cfg.DragThreshold,
		dragUnitsPerRow: cfg.DragUnitsPerRow,
	}
	if m.notifier == nil {
		m.notifier = NoopDesktopNotifier{}
	}
	if m.dragUnitsPerRow <= 0 {
		m.dragUnitsPerRow = 1
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 64
	m.commandInput.Width = 36

	m.runProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(28))

	cols := []table.Column{
		{Title: "Ended", Width: 16},
		{Title: "Length", Width: 7},
		{Title: "Ran", Width: 6},
		{Title: "Outcome", Width: 9},
	}
	m.historyTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(8))

	m.helpModel = help.New()
}
