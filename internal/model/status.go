package model

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusExpired
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	case StatusExpired:
		return "Expired"
	case StatusCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

func (s Status) Active() bool {
	return s == StatusRunning || s == StatusPaused
}

func (s Status) Terminal() bool {
	return s == StatusExpired || s == StatusCanceled
}

type TimerState struct {
	Status           Status
	RemainingSeconds int
	Original         Duration
}

func (s TimerState) Formatted() string {
	return FormatClock(s.RemainingSeconds)
}

func (s TimerState) Progress() float64 {
	total := s.Original.TotalSeconds()
	if total <= 0 {
		if s.Status == StatusExpired {
			return 1
		}
		return 0
	}
	p := float64(total-s.RemainingSeconds) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
