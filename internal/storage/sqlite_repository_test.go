package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "intervald-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func parseRFC3339(t *testing.T, value string) time.Time {
	t.Helper()
	out, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return out
}

func TestSessionCRUD(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	started := parseRFC3339(t, "2026-02-09T12:00:00Z")

	in := Session{
		ID:              "session-1",
		DurationSeconds: 450,
		ElapsedSeconds:  120,
		Outcome:         OutcomeCanceled,
		StartedAt:       started,
		EndedAt:         started.Add(2 * time.Minute),
	}
	if err := repo.CreateSession(ctx, in); err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, err := repo.GetSession(ctx, in.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.ElapsedSeconds != 120 || got.Outcome != OutcomeCanceled || !got.EndedAt.Equal(in.EndedAt) {
		t.Fatalf("unexpected session: %#v", got)
	}

	if err := repo.DeleteSession(ctx, in.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := repo.GetSession(ctx, in.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if err := repo.DeleteSession(ctx, in.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
	}
}

func TestCreateSessionAssignsID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	started := parseRFC3339(t, "2026-02-09T12:00:00Z")
	if err := repo.CreateSession(ctx, Session{DurationSeconds: 60, ElapsedSeconds: 60, Outcome: OutcomeExpired, StartedAt: started, EndedAt: started.Add(time.Minute)}); err != nil {
		t.Fatalf("create session: %v", err)
	}
	items, err := repo.ListSessions(ctx, SessionListFilter{})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(items) != 1 || items[0].ID == "" {
		t.Fatalf("expected generated id, got %#v", items)
	}
}

func TestCreateSessionValidates(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	started := parseRFC3339(t, "2026-02-09T12:00:00Z")
	cases := []Session{
		{Outcome: "paused", DurationSeconds: 10, StartedAt: started, EndedAt: started},
		{Outcome: OutcomeExpired, DurationSeconds: 4000, StartedAt: started, EndedAt: started},
		{Outcome: OutcomeExpired, DurationSeconds: 10, ElapsedSeconds: -1, StartedAt: started, EndedAt: started},
		{Outcome: OutcomeExpired, DurationSeconds: 10, StartedAt: started, EndedAt: started.Add(-time.Second)},
		{Outcome: OutcomeExpired, DurationSeconds: 10},
	}
	for i, in := range cases {
		if err := repo.CreateSession(ctx, in); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("case %d: expected ErrInvalidSession, got %v", i, err)
		}
	}
}

func TestCreateSessionAllowsElapsedPastDuration(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	started := parseRFC3339(t, "2026-02-09T12:00:00Z")
	in := Session{DurationSeconds: 60, ElapsedSeconds: 75, Outcome: OutcomeCanceled, StartedAt: started, EndedAt: started.Add(75 * time.Second)}
	if err := repo.CreateSession(ctx, in); err != nil {
		t.Fatalf("create session run across a reset: %v", err)
	}
}

func TestListSessionsFilterOrderAndSummary(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	base := parseRFC3339(t, "2026-02-09T12:00:00Z")

	seed := []Session{
		{ID: "s1", DurationSeconds: 60, ElapsedSeconds: 60, Outcome: OutcomeExpired, StartedAt: base, EndedAt: base.Add(time.Minute)},
		{ID: "s2", DurationSeconds: 90, ElapsedSeconds: 30, Outcome: OutcomeCanceled, StartedAt: base.Add(2 * time.Minute), EndedAt: base.Add(2*time.Minute + 30*time.Second)},
		{ID: "s3", DurationSeconds: 180, ElapsedSeconds: 180, Outcome: OutcomeExpired, StartedAt: base.Add(5 * time.Minute), EndedAt: base.Add(8*time.Minute + 500*time.Millisecond)},
	}
	for _, s := range seed {
		if err := repo.CreateSession(ctx, s); err != nil {
			t.Fatalf("seed %s: %v", s.ID, err)
		}
	}

	all, err := repo.ListSessions(ctx, SessionListFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 || all[0].ID != "s3" || all[2].ID != "s1" {
		t.Fatalf("unexpected order: %#v", all)
	}

	expired, err := repo.ListSessions(ctx, SessionListFilter{Outcome: OutcomeExpired, Limit: 1})
	if err != nil {
		t.Fatalf("list expired: %v", err)
	}
	if len(expired) != 1 || expired[0].ID != "s3" {
		t.Fatalf("unexpected expired page: %#v", expired)
	}

	offset, err := repo.ListSessions(ctx, SessionListFilter{Offset: 2})
	if err != nil {
		t.Fatalf("list offset: %v", err)
	}
	if len(offset) != 1 || offset[0].ID != "s1" {
		t.Fatalf("unexpected offset page: %#v", offset)
	}

	since := base.Add(2 * time.Minute)
	sum, err := repo.Summarize(ctx, SessionListFilter{Since: &since})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.Total != 2 || sum.Expired != 1 || sum.Canceled != 1 || sum.ElapsedSeconds != 210 {
		t.Fatalf("unexpected summary: %#v", sum)
	}
}
