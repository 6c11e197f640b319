package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/intervald/internal/selector"
	"github.com/sandeepkv93/intervald/internal/views"
)

const (
	pickerRowOffset = 4
	pickerWindow    = 2
	pickerRows      = 2*pickerWindow + 1
)

func (m *Model) scrollFocused(delta int) {
	v := m.Picker.ScrollBy(m.Picker.Focused, delta)
	m.ActivePreset = -1
	m.Status = StatusBar{Text: fmt.Sprintf("%s %02d", m.Picker.Focused, v)}
}

func (m *Model) applyPresetIndex(i int) bool {
	if i < 0 || i >= len(m.Presets) {
		return false
	}
	m.Picker.ApplyPreset(m.Presets[i])
	m.ActivePreset = i
	m.Status = StatusBar{Text: fmt.Sprintf("selected %s", m.Presets[i].Label())}
	return true
}

func presetIndexForKey(k string) int {
	for i, pk := range presetKeys {
		if pk == k {
			return i
		}
	}
	return -1
}

func axisAt(x int) selector.Axis {
	if x < views.PickerSplitX {
		return selector.AxisMinute
	}
	return selector.AxisSecond
}

func overWheels(x, y int) bool {
	return x >= 0 && x < views.PickerEndX && y >= pickerRowOffset && y < pickerRowOffset+pickerRows
}

func (m Model) handlePickerMouse(msg tea.MouseMsg) Model {
	if m.Running.Visible {
		return m
	}
	pressed := msg.Action == tea.MouseActionPress
	if pressed && !overWheels(msg.X, msg.Y) {
		return m
	}
	pos := float64(msg.Y) * m.dragUnitsPerRow
	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		m.Picker.Focused = axisAt(msg.X)
		m.scrollFocused(-1)
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		m.Picker.Focused = axisAt(msg.X)
		m.scrollFocused(1)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		axis := axisAt(msg.X)
		m.Picker.Focused = axis
		g := selector.NewGesture(m.Picker, axis, m.dragThreshold)
		g.Begin(pos)
		m.drag = dragState{gesture: g}
	case msg.Action == tea.MouseActionMotion:
		if m.drag.gesture == nil || !m.drag.gesture.Active() {
			return m
		}
		if delta := m.drag.gesture.Move(pos); delta != 0 {
			m.ActivePreset = -1
			axis := m.drag.gesture.Axis()
			m.Status = StatusBar{Text: fmt.Sprintf("%s %02d", axis, m.Picker.Value(axis))}
		}
	case msg.Action == tea.MouseActionRelease:
		if m.drag.gesture != nil {
			m.drag.gesture.End()
		}
		m.drag = dragState{}
	}
	return m
}

func (m Model) renderPickerView() string {
	return views.RenderPickerPanel(views.PickerPanelData{
		Minute:  m.Picker.Value(selector.AxisMinute),
		Second:  m.Picker.Value(selector.AxisSecond),
		Focused: string(m.Picker.Focused),
		Window:  pickerWindow,
	})
}
