package services

import (
	"context"

	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/models"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByName retrieves a currency by exact name match.
	GetCurrencyByName(ctx context.Context, name string) (*models.Currency, error)

	// ListActiveCurrencies retrieves all active currencies.
	ListActiveCurrencies(ctx context.Context) ([]models.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// AddCurrency creates a new currency, or reactivates an existing one
	// carrying the same name.
	AddCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*models.Currency, error)

	// UpdateCurrency updates the name and symbol of an existing currency.
	UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest, updaterUserID string) (*models.Currency, error)

	// DeactivateCurrency soft-deletes a currency by clearing its active flag.
	DeactivateCurrency(ctx context.Context, currencyID int64, updaterUserID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
