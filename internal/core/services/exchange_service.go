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

// ExchangeService orchestrates the exchange operation: validate the
// request, compute the result amount, and persist one immutable history
// row through a unit of work. Single-shot; there is no state machine.
type ExchangeService struct {
	uowFactory portsrepo.UnitOfWorkFactory
	rateRepo   portsrepo.ExchangeRateReader
}

// NewExchangeService creates a new ExchangeService.
func NewExchangeService(uowFactory portsrepo.UnitOfWorkFactory, rateRepo portsrepo.ExchangeRateReader) *ExchangeService {
	return &ExchangeService{
		uowFactory: uowFactory,
		rateRepo:   rateRepo,
	}
}

// Exchange validates the request, computes result = amount * rate, and
// records the exchange. All validation happens before anything is staged;
// a failed validation performs no writes.
func (s *ExchangeService) Exchange(ctx context.Context, req dto.ExchangeRequest, creatorUserID string) (*models.ExchangeHistory, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrency == req.ToCurrency {
		return nil, fmt.Errorf("%w: from and to currencies cannot be the same", apperrors.ErrValidation)
	}

	uow, err := s.uowFactory.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open unit of work: %w", err)
	}
	defer uow.Dispose(ctx)

	from, err := s.requireActiveCurrency(ctx, uow, req.FromCurrency, "from")
	if err != nil {
		return nil, err
	}
	to, err := s.requireActiveCurrency(ctx, uow, req.ToCurrency, "to")
	if err != nil {
		return nil, err
	}

	rate, err := s.resolveRate(ctx, req)
	if err != nil {
		return nil, err
	}

	entry := models.ExchangeHistory{
		FromCurrencyID: from.CurrencyID,
		ToCurrencyID:   to.CurrencyID,
		Rate:           rate,
		Amount:         req.Amount,
		ResultAmount:   req.Amount.Mul(rate),
		ExchangedAt:    time.Now().UTC(),
		CreatedBy:      creatorUserID,
	}

	if err := uow.History().InsertExchangeHistory(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to record exchange: %w", err)
	}
	if _, err := uow.Complete(ctx); err != nil {
		return nil, err
	}

	return &entry, nil
}

// requireActiveCurrency resolves a currency by name within the unit of
// work and rejects missing or inactive ones as validation errors.
func (s *ExchangeService) requireActiveCurrency(ctx context.Context, uow portsrepo.UnitOfWork, name, side string) (*models.Currency, error) {
	currency, err := uow.Currencies().FindCurrencyByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s' currency %q not found", apperrors.ErrValidation, side, name)
		}
		return nil, fmt.Errorf("failed to validate '%s' currency %q: %w", side, name, err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: '%s' currency %q is not active", apperrors.ErrValidation, side, name)
	}
	return currency, nil
}

// resolveRate uses the externally supplied rate when present, otherwise
// falls back to the latest manually recorded rate for the pair.
func (s *ExchangeService) resolveRate(ctx context.Context, req dto.ExchangeRequest) (decimal.Decimal, error) {
	if !req.Rate.IsZero() {
		if req.Rate.LessThan(decimal.Zero) {
			return decimal.Zero, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
		}
		return req.Rate, nil
	}

	stored, err := s.rateRepo.FindLatestRate(ctx, req.FromCurrency, req.ToCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no rate supplied and no stored rate for %s/%s", apperrors.ErrValidation, req.FromCurrency, req.ToCurrency)
		}
		return decimal.Zero, fmt.Errorf("failed to resolve rate for %s/%s: %w", req.FromCurrency, req.ToCurrency, err)
	}
	if stored.Rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: stored rate for %s/%s is not positive", apperrors.ErrValidation, req.FromCurrency, req.ToCurrency)
	}
	return stored.Rate, nil
}
