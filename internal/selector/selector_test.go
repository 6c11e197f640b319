package selector

import (
	"testing"

	"github.com/sandeepkv93/intervald/internal/model"
	"github.com/stretchr/testify/require"
)

func TestScrollByPinsAtBounds(t *testing.T) {
	s := New()
	require.Equal(t, 0, s.ScrollBy(AxisMinute, -1))

	s.Set(AxisSecond, 59)
	require.Equal(t, 59, s.ScrollBy(AxisSecond, 1))

	s.Set(AxisSecond, 58)
	require.Equal(t, 59, s.ScrollBy(AxisSecond, 1))
	require.Equal(t, 58, s.ScrollBy(AxisSecond, -1))
}

func TestSetClampsOutOfRange(t *testing.T) {
	s := New()
	s.Set(AxisMinute, 120)
	s.Set(AxisSecond, -7)
	require.Equal(t, model.Duration{Minutes: 59, Seconds: 0}, s.Duration())
}

func TestApplyPresetIsAtomicAndIgnoresPriorState(t *testing.T) {
	s := New()
	s.SetBoth(42, 17)
	s.ApplyPreset(model.Duration{Minutes: 7, Seconds: 30})
	require.Equal(t, 7, s.Value(AxisMinute))
	require.Equal(t, 30, s.Value(AxisSecond))
}

func TestFocusToggles(t *testing.T) {
	s := New()
	require.Equal(t, AxisMinute, s.Focused)
	s.FocusNext()
	require.Equal(t, AxisSecond, s.Focused)
	s.FocusNext()
	require.Equal(t, AxisMinute, s.Focused)
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("seconds")
	require.NoError(t, err)
	require.Equal(t, AxisSecond, a)
	_, err = ParseAxis("hours")
	require.Error(t, err)
}
