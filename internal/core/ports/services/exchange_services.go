package services

import (
	"context"

	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/models"
)

// ExchangeSvcFacade performs the exchange operation: validate the request,
// compute the result amount, and persist one history row atomically.
type ExchangeSvcFacade interface {
	Exchange(ctx context.Context, req dto.ExchangeRequest, creatorUserID string) (*models.ExchangeHistory, error)
}

// ExchangeHistorySvcFacade exposes read access to recorded exchanges.
// History rows are immutable; no write operations are exposed here.
type ExchangeHistorySvcFacade interface {
	QueryHistory(ctx context.Context, query dto.ExchangeHistoryQuery) ([]models.ExchangeHistory, error)
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetLatestRate retrieves the most recent rate for a currency pair.
	GetLatestRate(ctx context.Context, fromCurrency, toCurrency string) (*models.ExchangeRate, error)

	// ListRates retrieves the latest rate per currency pair.
	ListRates(ctx context.Context) ([]models.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate records a manually supplied dated rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*models.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
