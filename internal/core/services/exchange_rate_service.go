package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/models"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for manually maintained
// exchange rates. Rates are never fetched from an external market feed.
type ExchangeRateService struct {
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService *CurrencyService
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService *CurrencyService) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

// CreateExchangeRate records a manually supplied dated rate.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*models.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrency == req.ToCurrency {
		return nil, fmt.Errorf("%w: from and to currencies cannot be the same", apperrors.ErrValidation)
	}

	// Both currencies must be known before a rate can be recorded.
	if _, err := s.currencyService.GetCurrencyByName(ctx, req.FromCurrency); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'from' currency %q not found", apperrors.ErrValidation, req.FromCurrency)
		}
		return nil, fmt.Errorf("failed to validate 'from' currency %q: %w", req.FromCurrency, err)
	}
	if _, err := s.currencyService.GetCurrencyByName(ctx, req.ToCurrency); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'to' currency %q not found", apperrors.ErrValidation, req.ToCurrency)
		}
		return nil, fmt.Errorf("failed to validate 'to' currency %q: %w", req.ToCurrency, err)
	}

	now := time.Now().UTC()
	rate := models.ExchangeRate{
		FromCurrency:  req.FromCurrency,
		ToCurrency:    req.ToCurrency,
		Rate:          req.Rate,
		DateEffective: req.DateEffective,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, &rate); err != nil {
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	return &rate, nil
}

// GetLatestRate retrieves the most recent effective rate for a currency pair.
func (s *ExchangeRateService) GetLatestRate(ctx context.Context, fromCurrency, toCurrency string) (*models.ExchangeRate, error) {
	rate, err := s.rateRepo.FindLatestRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// ListRates retrieves the latest rate per currency pair.
func (s *ExchangeRateService) ListRates(ctx context.Context) ([]models.ExchangeRate, error) {
	rates, err := s.rateRepo.ListLatestRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []models.ExchangeRate{}, nil
	}
	return rates, nil
}
