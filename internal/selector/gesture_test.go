package selector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrag(t *testing.T) {
	cases := []struct {
		name      string
		baseline  float64
		pointer   float64
		wantDelta int
		wantNext  float64
	}{
		{"below threshold", 100, 85, 0, 100},
		{"exactly threshold", 100, 80, 0, 100},
		{"drag up", 100, 79, 1, 79},
		{"drag down", 100, 121, -1, 121},
		{"large jump still one step", 100, 0, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			delta, next := Drag(tc.baseline, tc.pointer, DefaultDragThreshold)
			require.Equal(t, tc.wantDelta, delta)
			require.Equal(t, tc.wantNext, next)
		})
	}
}

func TestGestureContinuousDragEmitsSteadySteps(t *testing.T) {
	s := New()
	s.Set(AxisSecond, 10)
	g := NewGesture(s, AxisSecond, 0)
	g.Begin(200)

	steps := 0
	for y := 199.0; y >= 100; y-- {
		if g.Move(y) != 0 {
			steps++
		}
	}
	// every 21 units of travel past the baseline yields one step
	require.Equal(t, 4, steps)
	require.Equal(t, 14, s.Value(AxisSecond))

	g.End()
	require.Equal(t, 0, g.Move(0))
	require.Equal(t, 14, s.Value(AxisSecond))
}

func TestGestureDragDownPinsAtZero(t *testing.T) {
	s := New()
	g := NewGesture(s, AxisMinute, 5)
	g.Begin(0)
	for _, y := range []float64{6, 12, 18, 24} {
		require.Equal(t, -1, g.Move(y))
	}
	require.Equal(t, 0, s.Value(AxisMinute))
}
