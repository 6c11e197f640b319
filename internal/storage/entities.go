package storage

import "time"

type Outcome string

const (
	OutcomeExpired  Outcome = "expired"
	OutcomeCanceled Outcome = "canceled"
)

func (o Outcome) IsValid() bool {
	return o == OutcomeExpired || o == OutcomeCanceled
}

type Session struct {
	ID              string
	DurationSeconds int
	ElapsedSeconds  int
	Outcome         Outcome
	StartedAt       time.Time
	EndedAt         time.Time
}

type SessionListFilter struct {
	Outcome Outcome
	Since   *time.Time
	Limit   int
	Offset  int
}

type SessionSummary struct {
	Total          int
	Expired        int
	Canceled       int
	ElapsedSeconds int
}
