package model

import (
	"errors"
	"testing"
)

func TestDurationTotalSecondsAndFormat(t *testing.T) {
	cases := []struct {
		d     Duration
		total int
		clock string
		label string
	}{
		{Duration{}, 0, "00:00", "0:00"},
		{Duration{Minutes: 1, Seconds: 5}, 65, "01:05", "1:05"},
		{Duration{Minutes: 7, Seconds: 30}, 450, "07:30", "7:30"},
		{Duration{Minutes: 59, Seconds: 59}, 3599, "59:59", "59:59"},
	}
	for _, tc := range cases {
		if got := tc.d.TotalSeconds(); got != tc.total {
			t.Fatalf("%+v total = %d, want %d", tc.d, got, tc.total)
		}
		if got := tc.d.String(); got != tc.clock {
			t.Fatalf("%+v string = %q, want %q", tc.d, got, tc.clock)
		}
		if got := tc.d.Label(); got != tc.label {
			t.Fatalf("%+v label = %q, want %q", tc.d, got, tc.label)
		}
		if back := DurationFromSeconds(tc.total); back != tc.d {
			t.Fatalf("round trip %d = %+v, want %+v", tc.total, back, tc.d)
		}
	}
}

func TestNewDurationClamps(t *testing.T) {
	d := NewDuration(-3, 99)
	if d.Minutes != 0 || d.Seconds != 59 {
		t.Fatalf("unexpected clamp: %+v", d)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("clamped duration should validate: %v", err)
	}
	if err := (Duration{Minutes: 60}).Validate(); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestFormatClockNegative(t *testing.T) {
	if got := FormatClock(-4); got != "00:00" {
		t.Fatalf("unexpected negative format: %q", got)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want Duration
	}{
		{"7:30", Duration{Minutes: 7, Seconds: 30}},
		{" 0:03 ", Duration{Seconds: 3}},
		{"90", Duration{Minutes: 1, Seconds: 30}},
		{"1m30s", Duration{Minutes: 1, Seconds: 30}},
		{"10m", Duration{Minutes: 10}},
	}
	for _, tc := range cases {
		got, err := ParseDuration(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseDurationRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1:75", "60:00", "-5", "3600", "1.5s", "x:10"} {
		if _, err := ParseDuration(in); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("parse %q: expected ErrInvalidDuration, got %v", in, err)
		}
	}
}

func TestParsePresets(t *testing.T) {
	got, err := ParsePresets([]string{"1:00", "7:30"})
	if err != nil {
		t.Fatalf("parse presets: %v", err)
	}
	if len(got) != 2 || got[1] != (Duration{Minutes: 7, Seconds: 30}) {
		t.Fatalf("unexpected presets: %+v", got)
	}
	if _, err := ParsePresets([]string{"1:00", "bogus"}); err == nil {
		t.Fatal("expected error for bogus preset")
	}
	labels := PresetLabels(DefaultPresets)
	if len(labels) != 12 || labels[0] != "1:00" || labels[11] != "10:00" {
		t.Fatalf("unexpected default labels: %v", labels)
	}
}

func TestTimerStateProgress(t *testing.T) {
	s := TimerState{Status: StatusRunning, RemainingSeconds: 30, Original: Duration{Minutes: 1}}
	if got := s.Progress(); got != 0.5 {
		t.Fatalf("progress = %v, want 0.5", got)
	}
	if s.Formatted() != "00:30" {
		t.Fatalf("unexpected formatted: %q", s.Formatted())
	}
	zero := TimerState{Status: StatusExpired}
	if zero.Progress() != 1 {
		t.Fatalf("expired zero-length progress = %v", zero.Progress())
	}
	if !StatusPaused.Active() || StatusExpired.Active() || !StatusCanceled.Terminal() {
		t.Fatal("unexpected status predicates")
	}
}
