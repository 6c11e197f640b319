package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("storage: not found")
	ErrInvalidSession = errors.New("storage: invalid session")
)

type Repository interface {
	CreateSession(ctx context.Context, in Session) error
	GetSession(ctx context.Context, id string) (Session, error)
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context, filter SessionListFilter) ([]Session, error)
	Summarize(ctx context.Context, filter SessionListFilter) (SessionSummary, error)
}
