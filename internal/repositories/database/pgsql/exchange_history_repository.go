package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/fxdesk/currency_exchange_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExchangeHistoryRepository struct {
	db Querier
}

// newPgxExchangeHistoryRepository creates a new repository for exchange history data.
func newPgxExchangeHistoryRepository(pool *pgxpool.Pool) portsrepo.ExchangeHistoryRepositoryFacade {
	return &PgxExchangeHistoryRepository{db: pool}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeHistoryRepositoryFacade = (*PgxExchangeHistoryRepository)(nil)

// InsertExchangeHistory persists a new immutable history row. The store
// assigns the ID, which is written back into the given model.
func (r *PgxExchangeHistoryRepository) InsertExchangeHistory(ctx context.Context, entry *models.ExchangeHistory) error {
	query := `
		INSERT INTO exchange_history (from_currency_id, to_currency_id, rate, amount, result_amount, exchanged_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING history_id;
	`
	err := r.db.QueryRow(ctx, query,
		entry.FromCurrencyID,
		entry.ToCurrencyID,
		entry.Rate,
		entry.Amount,
		entry.ResultAmount,
		entry.ExchangedAt,
		entry.CreatedBy,
	).Scan(&entry.HistoryID)

	if err != nil {
		return fmt.Errorf("failed to insert exchange history: %w", err)
	}
	return nil
}

// QueryExchangeHistory retrieves history rows matching the filter, newest first.
// Filtering is direct field equality/range checks; a currency name matches
// either side of the exchange.
func (r *PgxExchangeHistoryRepository) QueryExchangeHistory(ctx context.Context, filter portsrepo.ExchangeHistoryFilter) ([]models.ExchangeHistory, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT h.history_id, h.from_currency_id, h.to_currency_id, h.rate, h.amount, h.result_amount, h.exchanged_at, h.created_by
		FROM exchange_history h
	`)

	var conditions []string
	var args []any

	if filter.CurrencyName != "" {
		args = append(args, filter.CurrencyName)
		placeholder := "$" + strconv.Itoa(len(args))
		conditions = append(conditions, `(h.from_currency_id IN (SELECT currency_id FROM currencies WHERE name = `+placeholder+`)
			OR h.to_currency_id IN (SELECT currency_id FROM currencies WHERE name = `+placeholder+`))`)
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conditions = append(conditions, "h.exchanged_at >= $"+strconv.Itoa(len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conditions = append(conditions, "h.exchanged_at <= $"+strconv.Itoa(len(args)))
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	sb.WriteString(" ORDER BY h.exchanged_at DESC, h.history_id DESC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange history: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeHistory, error) {
		var entry models.ExchangeHistory
		err := row.Scan(
			&entry.HistoryID,
			&entry.FromCurrencyID,
			&entry.ToCurrencyID,
			&entry.Rate,
			&entry.Amount,
			&entry.ResultAmount,
			&entry.ExchangedAt,
			&entry.CreatedBy,
		)
		return entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange history: %w", err)
	}

	return entries, nil
}
