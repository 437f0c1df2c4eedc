package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// txQuerier routes repository calls through one shared transaction and
// tallies affected rows for the unit of work's Complete result.
type txQuerier struct {
	tx       pgx.Tx
	affected *int64
}

func (q txQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tag, err := q.tx.Exec(ctx, sql, args...)
	if err == nil {
		*q.affected += tag.RowsAffected()
	}
	return tag, err
}

func (q txQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return q.tx.Query(ctx, sql, args...)
}

func (q txQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	row := q.tx.QueryRow(ctx, sql, args...)
	if isMutation(sql) {
		return trackedRow{row: row, affected: q.affected}
	}
	return row
}

// isMutation reports whether the statement changes rows. Reads routed
// through QueryRow must not count toward the affected-rows tally.
func isMutation(sql string) bool {
	s := strings.ToUpper(strings.TrimSpace(sql))
	return strings.HasPrefix(s, "INSERT") || strings.HasPrefix(s, "UPDATE") || strings.HasPrefix(s, "DELETE")
}

// trackedRow counts one affected row per successful scan. INSERT ...
// RETURNING goes through QueryRow, so Exec's tally alone would miss it.
type trackedRow struct {
	row      pgx.Row
	affected *int64
}

func (r trackedRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if err == nil {
		*r.affected++
	}
	return err
}

// PgxUnitOfWork binds transaction-scoped currency and history repositories
// to one pgx transaction. Atomicity is entirely the database transaction's;
// the unit of work adds no consistency mechanism of its own.
type PgxUnitOfWork struct {
	tx         pgx.Tx
	affected   int64
	done       bool
	currencies portsrepo.CurrencyRepositoryFacade
	history    portsrepo.ExchangeHistoryRepositoryFacade
}

// Ensure implementation matches interface
var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

// Currencies returns the transaction-bound currency repository.
func (u *PgxUnitOfWork) Currencies() portsrepo.CurrencyRepositoryFacade {
	return u.currencies
}

// History returns the transaction-bound exchange history repository.
func (u *PgxUnitOfWork) History() portsrepo.ExchangeHistoryRepositoryFacade {
	return u.history
}

// Complete commits all staged changes and returns the count of affected rows.
func (u *PgxUnitOfWork) Complete(ctx context.Context) (int64, error) {
	if u.done {
		return 0, errors.New("unit of work already completed")
	}
	if err := u.tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit unit of work: %w", err)
	}
	u.done = true
	return u.affected, nil
}

// Dispose rolls back the transaction unless Complete already committed it.
// Must be invoked exactly once; deferring it right after Begin covers all
// exit paths.
func (u *PgxUnitOfWork) Dispose(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback unit of work: %w", err)
	}
	return nil
}

// PgxUnitOfWorkFactory opens units of work over a shared connection pool.
type PgxUnitOfWorkFactory struct {
	BaseRepository
}

// NewPgxUnitOfWorkFactory creates a unit-of-work factory over the pool.
func NewPgxUnitOfWorkFactory(pool *pgxpool.Pool) portsrepo.UnitOfWorkFactory {
	return &PgxUnitOfWorkFactory{BaseRepository: BaseRepository{Pool: pool}}
}

// Begin opens one transaction and returns a unit of work bound to it.
func (f *PgxUnitOfWorkFactory) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	tx, err := f.BaseRepository.Begin(ctx)
	if err != nil {
		return nil, err
	}

	uow := &PgxUnitOfWork{tx: tx}
	q := txQuerier{tx: tx, affected: &uow.affected}
	uow.currencies = &PgxCurrencyRepository{db: q}
	uow.history = &PgxExchangeHistoryRepository{db: q}
	return uow, nil
}
