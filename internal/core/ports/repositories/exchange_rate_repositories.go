package repositories

import (
	"context"

	"github.com/fxdesk/currency_exchange_app/internal/models"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindLatestRate retrieves the most recently effective rate for a currency pair.
	FindLatestRate(ctx context.Context, fromCurrency, toCurrency string) (*models.ExchangeRate, error)

	// ListLatestRates retrieves the most recently effective rate per currency pair.
	ListLatestRates(ctx context.Context) ([]models.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new dated rate and populates its store-assigned ID.
	SaveExchangeRate(ctx context.Context, rate *models.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
