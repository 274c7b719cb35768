package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
)

type fakeQuerier struct {
	QueryFn func(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	lastCtx context.Context
}

func (f *fakeQuerier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	f.lastCtx = ctx
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return nil, errors.New("no rows configured")
}

func TestSQLDB_AppliesTimeout(t *testing.T) {
	q := &fakeQuerier{}
	db := &sqlDB{db: q, timeout: time.Minute}

	_, err := db.QueryContext(context.Background(), "SELECT 1")
	if err == nil {
		t.Fatalf("expected error")
	}

	deadline, ok := q.lastCtx.Deadline()
	if !ok {
		t.Fatalf("expected query context to carry a deadline")
	}
	if time.Until(deadline) > time.Minute {
		t.Fatalf("deadline too far: %v", deadline)
	}
	if q.lastCtx.Err() == nil {
		t.Fatalf("expected context to be released after a failed query")
	}
}

func TestSQLDB_ZeroTimeoutKeepsContext(t *testing.T) {
	q := &fakeQuerier{}
	db := &sqlDB{db: q}

	_, _ = db.QueryContext(context.Background(), "SELECT 1")

	if _, ok := q.lastCtx.Deadline(); ok {
		t.Fatalf("expected no deadline with zero timeout")
	}
	if q.lastCtx.Err() != nil {
		t.Fatalf("caller context must not be cancelled")
	}
}

func TestSQLDB_WrapsQueryError(t *testing.T) {
	boom := errors.New("connection refused")
	q := &fakeQuerier{
		QueryFn: func(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
			return nil, boom
		},
	}
	db := &sqlDB{db: q, timeout: time.Second}

	if _, err := db.QueryContext(context.Background(), "SELECT 1"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}
