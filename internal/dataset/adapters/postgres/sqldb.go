package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// boundedRows releases the read deadline together with the result set.
type boundedRows struct {
	*sql.Rows
	cancel context.CancelFunc
}

func (r *boundedRows) Close() error {
	defer r.cancel()
	return r.Rows.Close()
}

type sqlDB struct {
	db      querier
	timeout time.Duration
}

// NewSQLDB wraps db so that every read runs under timeout, counted until the
// rows are closed. A zero timeout leaves the caller's context as is.
func NewSQLDB(db *sql.DB, timeout time.Duration) DB {
	return &sqlDB{db: db, timeout: timeout}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	cancel := context.CancelFunc(func() {})
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("query case records: %w", err)
	}
	return &boundedRows{Rows: rows, cancel: cancel}, nil
}
