package repositories

import (
	"context"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/models"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByName retrieves a currency by exact, case-sensitive name match.
	FindCurrencyByName(ctx context.Context, name string) (*models.Currency, error)

	// FindCurrencyByID retrieves a currency by its store-assigned identifier.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*models.Currency, error)

	// ListActiveCurrencies retrieves all currencies whose active flag is set.
	ListActiveCurrencies(ctx context.Context) ([]models.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// InsertCurrency persists a new currency and populates its store-assigned ID.
	InsertCurrency(ctx context.Context, currency *models.Currency) error

	// UpdateCurrency updates the mutable fields of an existing currency.
	UpdateCurrency(ctx context.Context, currency models.Currency) error

	// SetCurrencyActive toggles the active flag of an existing currency.
	SetCurrencyActive(ctx context.Context, currencyID int64, active bool, updatedBy string, updatedAt time.Time) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
