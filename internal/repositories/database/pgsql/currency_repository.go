package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/fxdesk/currency_exchange_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	db Querier
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{db: pool}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const currencyColumns = `currency_id, name, symbol, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var currency models.Currency
	err := row.Scan(
		&currency.CurrencyID,
		&currency.Name,
		&currency.Symbol,
		&currency.IsActive,
		&currency.CreatedAt,
		&currency.CreatedBy,
		&currency.LastUpdatedAt,
		&currency.LastUpdatedBy,
	)
	return currency, err
}

// InsertCurrency persists a new currency. The store assigns the ID, which
// is written back into the given model.
func (r *PgxCurrencyRepository) InsertCurrency(ctx context.Context, currency *models.Currency) error {
	query := `
		INSERT INTO currencies (name, symbol, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING currency_id;
	`
	err := r.db.QueryRow(ctx, query,
		currency.Name,
		currency.Symbol,
		currency.IsActive,
		currency.CreatedAt,
		currency.CreatedBy,
		currency.LastUpdatedAt,
		currency.LastUpdatedBy,
	).Scan(&currency.CurrencyID)

	if err != nil {
		return fmt.Errorf("failed to insert currency %q: %w", currency.Name, err)
	}
	return nil
}

// UpdateCurrency updates the mutable fields of an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency models.Currency) error {
	query := `
		UPDATE currencies
		SET name = $2, symbol = $3, last_updated_at = $4, last_updated_by = $5
		WHERE currency_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		currency.CurrencyID,
		currency.Name,
		currency.Symbol,
		currency.LastUpdatedAt,
		currency.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency %d: %w", currency.CurrencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetCurrencyActive toggles the active flag of an existing currency.
func (r *PgxCurrencyRepository) SetCurrencyActive(ctx context.Context, currencyID int64, active bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE currencies
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE currency_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, currencyID, active, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set active flag on currency %d: %w", currencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCurrencyByName retrieves a currency by exact, case-sensitive name match.
func (r *PgxCurrencyRepository) FindCurrencyByName(ctx context.Context, name string) (*models.Currency, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE name = $1
		LIMIT 1;
	`
	currency, err := scanCurrency(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by name %q: %w", name, err)
	}
	return &currency, nil
}

// FindCurrencyByID retrieves a currency by its store-assigned identifier.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*models.Currency, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE currency_id = $1;
	`
	currency, err := scanCurrency(r.db.QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}
	return &currency, nil
}

// ListActiveCurrencies retrieves all currencies whose active flag is set.
func (r *PgxCurrencyRepository) ListActiveCurrencies(ctx context.Context) ([]models.Currency, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE is_active;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active currencies: %w", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return currencies, nil
}
