package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the repositories need. It is also
// satisfied by pgxmock's pool interface, which is what the tests inject.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Sentinel errors returned by all repositories. Callers match with errors.Is.
var (
	// ErrNotFound means no record matched the filter for this owner.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a write violated a uniqueness constraint, e.g. the
	// one-summary-per-day unique index or a duplicate user email.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable means the store could not be reached; safe to retry.
	ErrUnavailable = errors.New("store unavailable")
)

// mapError converts pgx/pgconn errors to repository sentinels. Context
// cancellation passes through unmapped.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505": // unique_violation
			return fmt.Errorf("%s: %w", op, ErrConflict)
		case strings.HasPrefix(pgErr.Code, "08"): // connection exceptions
			return fmt.Errorf("%s: %w", op, ErrUnavailable)
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	}

	return fmt.Errorf("%s: %w", op, err)
}
