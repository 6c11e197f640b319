package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Fixed-width so stored timestamps sort lexically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func NewSessionID() string {
	return uuid.NewString()
}

func (r *SQLiteRepository) CreateSession(ctx context.Context, in Session) error {
	if err := validateSession(in); err != nil {
		return err
	}
	if in.ID == "" {
		in.ID = NewSessionID()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, duration_seconds, elapsed_seconds, outcome, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.ID, in.DurationSeconds, in.ElapsedSeconds, string(in.Outcome), mustTime(in.StartedAt), mustTime(in.EndedAt),
	)
	return err
}

func (r *SQLiteRepository) GetSession(ctx context.Context, id string) (Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, duration_seconds, elapsed_seconds, outcome, started_at, ended_at
		FROM sessions WHERE id = ?`, id)
	item, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) DeleteSession(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListSessions(ctx context.Context, filter SessionListFilter) ([]Session, error) {
	args := make([]any, 0, 4)
	query := `SELECT id, duration_seconds, elapsed_seconds, outcome, started_at, ended_at FROM sessions` +
		whereClause(&args, filter) +
		` ORDER BY ended_at DESC` +
		applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Session, 0)
	for rows.Next() {
		item, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) Summarize(ctx context.Context, filter SessionListFilter) (SessionSummary, error) {
	args := make([]any, 0, 2)
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = 'expired' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'canceled' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(elapsed_seconds), 0)
		FROM sessions` + whereClause(&args, filter)

	var out SessionSummary
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&out.Total, &out.Expired, &out.Canceled, &out.ElapsedSeconds); err != nil {
		return SessionSummary{}, err
	}
	return out, nil
}

func validateSession(in Session) error {
	if !in.Outcome.IsValid() {
		return fmt.Errorf("%w: outcome %q", ErrInvalidSession, in.Outcome)
	}
	if in.DurationSeconds < 0 || in.DurationSeconds > 3599 {
		return fmt.Errorf("%w: duration %d", ErrInvalidSession, in.DurationSeconds)
	}
	if in.ElapsedSeconds < 0 {
		return fmt.Errorf("%w: elapsed %d", ErrInvalidSession, in.ElapsedSeconds)
	}
	if in.StartedAt.IsZero() || in.EndedAt.Before(in.StartedAt) {
		return fmt.Errorf("%w: bad time range", ErrInvalidSession)
	}
	return nil
}

func whereClause(args *[]any, filter SessionListFilter) string {
	clauses := make([]string, 0, 2)
	if filter.Outcome != "" {
		clauses = append(clauses, "outcome = ?")
		*args = append(*args, string(filter.Outcome))
	}
	if filter.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		*args = append(*args, mustTime(*filter.Since))
	}
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		if limit <= 0 {
			sql += " LIMIT -1"
		}
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(s scanner) (Session, error) {
	var out Session
	var outcome string
	var started string
	var ended string
	if err := s.Scan(&out.ID, &out.DurationSeconds, &out.ElapsedSeconds, &outcome, &started, &ended); err != nil {
		return Session{}, err
	}
	startedAt, err := parseRequiredTime(started)
	if err != nil {
		return Session{}, err
	}
	endedAt, err := parseRequiredTime(ended)
	if err != nil {
		return Session{}, err
	}
	out.Outcome = Outcome(outcome)
	out.StartedAt = startedAt
	out.EndedAt = endedAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
