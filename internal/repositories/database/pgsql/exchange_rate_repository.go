package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/fxdesk/currency_exchange_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExchangeRateRepository struct {
	db Querier
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{db: pool}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate persists a new dated rate. The store assigns the ID,
// which is written back into the given model.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate *models.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (from_currency, to_currency, rate, date_effective, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING exchange_rate_id;
	`
	err := r.db.QueryRow(ctx, query,
		rate.FromCurrency,
		rate.ToCurrency,
		rate.Rate,
		rate.DateEffective,
		rate.CreatedAt,
		rate.CreatedBy,
		rate.LastUpdatedAt,
		rate.LastUpdatedBy,
	).Scan(&rate.ExchangeRateID)

	if err != nil {
		return fmt.Errorf("failed to save exchange rate %s/%s: %w", rate.FromCurrency, rate.ToCurrency, err)
	}
	return nil
}

// FindLatestRate retrieves the most recently effective rate for a currency pair.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, fromCurrency, toCurrency string) (*models.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, from_currency, to_currency, rate, date_effective, created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE from_currency = $1 AND to_currency = $2
		ORDER BY date_effective DESC, exchange_rate_id DESC
		LIMIT 1;
	`
	var rate models.ExchangeRate
	err := r.db.QueryRow(ctx, query, fromCurrency, toCurrency).Scan(
		&rate.ExchangeRateID,
		&rate.FromCurrency,
		&rate.ToCurrency,
		&rate.Rate,
		&rate.DateEffective,
		&rate.CreatedAt,
		&rate.CreatedBy,
		&rate.LastUpdatedAt,
		&rate.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate for %s/%s: %w", fromCurrency, toCurrency, err)
	}

	return &rate, nil
}

// ListLatestRates retrieves the most recently effective rate per currency pair.
func (r *PgxExchangeRateRepository) ListLatestRates(ctx context.Context) ([]models.ExchangeRate, error) {
	query := `
		SELECT DISTINCT ON (from_currency, to_currency)
			exchange_rate_id, from_currency, to_currency, rate, date_effective, created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		ORDER BY from_currency, to_currency, date_effective DESC, exchange_rate_id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var rate models.ExchangeRate
		err := row.Scan(
			&rate.ExchangeRateID,
			&rate.FromCurrency,
			&rate.ToCurrency,
			&rate.Rate,
			&rate.DateEffective,
			&rate.CreatedAt,
			&rate.CreatedBy,
			&rate.LastUpdatedAt,
			&rate.LastUpdatedBy,
		)
		return rate, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}

	return rates, nil
}
