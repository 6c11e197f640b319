package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinIndex = 0
	MaxIndex = 59
)

var ErrInvalidDuration = errors.New("model: invalid duration")

type Duration struct {
	Minutes int
	Seconds int
}

func NewDuration(minutes, seconds int) Duration {
	return Duration{Minutes: ClampIndex(minutes), Seconds: ClampIndex(seconds)}
}

func DurationFromSeconds(total int) Duration {
	if total < 0 {
		total = 0
	}
	if limit := MaxIndex*60 + MaxIndex; total > limit {
		total = limit
	}
	return Duration{Minutes: total / 60, Seconds: total % 60}
}

func (d Duration) TotalSeconds() int {
	return d.Minutes*60 + d.Seconds
}

func (d Duration) Std() time.Duration {
	return time.Duration(d.TotalSeconds()) * time.Second
}

func (d Duration) IsZero() bool {
	return d.TotalSeconds() == 0
}

func (d Duration) Validate() error {
	if d.Minutes < MinIndex || d.Minutes > MaxIndex {
		return fmt.Errorf("%w: minutes %d out of range", ErrInvalidDuration, d.Minutes)
	}
	if d.Seconds < MinIndex || d.Seconds > MaxIndex {
		return fmt.Errorf("%w: seconds %d out of range", ErrInvalidDuration, d.Seconds)
	}
	return nil
}

func (d Duration) String() string {
	return FormatClock(d.TotalSeconds())
}

func (d Duration) Label() string {
	return fmt.Sprintf("%d:%02d", d.Minutes, d.Seconds)
}

func FormatClock(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSec/60, totalSec%60)
}

func ClampIndex(v int) int {
	if v < MinIndex {
		return MinIndex
	}
	if v > MaxIndex {
		return MaxIndex
	}
	return v
}

func ParseDuration(raw string) (Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Duration{}, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	if minPart, secPart, ok := strings.Cut(s, ":"); ok {
		minutes, err := strconv.Atoi(strings.TrimSpace(minPart))
		if err != nil {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
		}
		seconds, err := strconv.Atoi(strings.TrimSpace(secPart))
		if err != nil {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
		}
		d := Duration{Minutes: minutes, Seconds: seconds}
		if err := d.Validate(); err != nil {
			return Duration{}, err
		}
		return d, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		return fromTotal(n, raw)
	}

	std, err := time.ParseDuration(s)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	if std%time.Second != 0 {
		return Duration{}, fmt.Errorf("%w: %q has sub-second precision", ErrInvalidDuration, raw)
	}
	return fromTotal(int(std/time.Second), raw)
}

func fromTotal(n int, raw string) (Duration, error) {
	if n < 0 || n > MaxIndex*60+MaxIndex {
		return Duration{}, fmt.Errorf("%w: %q out of range", ErrInvalidDuration, raw)
	}
	return DurationFromSeconds(n), nil
}
