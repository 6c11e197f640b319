package update

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/intervald/internal/engine"
)

// viewBridge turns engine display calls into tea messages. It never blocks:
// the engine calls it with its lock held. When full, the oldest message is
// dropped so the latest view state is always delivered.
type viewBridge struct {
	out     chan tea.Msg
	dropped uint64
}

func newViewBridge(buffer int) *viewBridge {
	if buffer <= 0 {
		buffer = 1
	}
	return &viewBridge{out: make(chan tea.Msg, buffer)}
}

var _ engine.Display = (*viewBridge)(nil)

func (b *viewBridge) ShowRunningView(formatted string, paused bool) {
	b.send(RunningViewMsg{Formatted: formatted, Paused: paused})
}

func (b *viewBridge) HideRunningView() {
	b.send(HideRunningViewMsg{})
}

func (b *viewBridge) C() <-chan tea.Msg {
	return b.out
}

func (b *viewBridge) Dropped() uint64 {
	return atomic.LoadUint64(&b.dropped)
}

func (b *viewBridge) send(msg tea.Msg) {
	for {
		select {
		case b.out <- msg:
			return
		default:
		}
		select {
		case <-b.out:
			atomic.AddUint64(&b.dropped, 1)
		default:
		}
	}
}

func waitForViewCmd(ch <-chan tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return <-ch
	}
}

func waitForEngineEventCmd(ch <-chan engine.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return EngineEventMsg{Event: ev}
	}
}
