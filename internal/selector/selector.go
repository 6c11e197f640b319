package selector

import (
	"fmt"

	"github.com/sandeepkv93/intervald/internal/model"
)

type Axis string

const (
	AxisMinute Axis = "minute"
	AxisSecond Axis = "second"
)

func ParseAxis(raw string) (Axis, error) {
	switch raw {
	case "minute", "minutes", "m":
		return AxisMinute, nil
	case "second", "seconds", "s":
		return AxisSecond, nil
	default:
		return "", fmt.Errorf("selector: unknown axis %q", raw)
	}
}

func (a Axis) Other() Axis {
	if a == AxisMinute {
		return AxisSecond
	}
	return AxisMinute
}

type Selector struct {
	minute  int
	second  int
	Focused Axis
}

func New() *Selector {
	return &Selector{Focused: AxisMinute}
}

func (s *Selector) Value(axis Axis) int {
	if axis == AxisSecond {
		return s.second
	}
	return s.minute
}

func (s *Selector) Set(axis Axis, index int) {
	index = model.ClampIndex(index)
	if axis == AxisSecond {
		s.second = index
		return
	}
	s.minute = index
}

func (s *Selector) SetBoth(minute, second int) {
	s.minute = model.ClampIndex(minute)
	s.second = model.ClampIndex(second)
}

func (s *Selector) ApplyPreset(p model.Duration) {
	s.SetBoth(p.Minutes, p.Seconds)
}

func (s *Selector) ScrollBy(axis Axis, delta int) int {
	s.Set(axis, s.Value(axis)+delta)
	return s.Value(axis)
}

func (s *Selector) Duration() model.Duration {
	return model.Duration{Minutes: s.minute, Seconds: s.second}
}

func (s *Selector) FocusNext() {
	s.Focused = s.Focused.Other()
}
