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
)

// CurrencyService provides business operations over the currency store.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyReader
	uowFactory   portsrepo.UnitOfWorkFactory
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyReader, uowFactory portsrepo.UnitOfWorkFactory) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		uowFactory:   uowFactory,
	}
}

// AddCurrency creates a new currency, or reactivates an existing one
// matched by exact name. On reactivation the incoming record's other
// fields are discarded.
//
// Two concurrent adds with the same name can both miss the lookup and
// create duplicate rows; there is no unique constraint or lock guarding
// the name.
func (s *CurrencyService) AddCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*models.Currency, error) {
	uow, err := s.uowFactory.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open unit of work: %w", err)
	}
	defer uow.Dispose(ctx)

	now := time.Now().UTC()

	existing, err := uow.Currencies().FindCurrencyByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up currency %q: %w", req.Name, err)
	}

	if existing != nil {
		// Reactivation path: only the active flag changes.
		if err := uow.Currencies().SetCurrencyActive(ctx, existing.CurrencyID, true, creatorUserID, now); err != nil {
			return nil, fmt.Errorf("failed to reactivate currency %q: %w", req.Name, err)
		}
		if _, err := uow.Complete(ctx); err != nil {
			return nil, err
		}
		existing.IsActive = true
		existing.LastUpdatedAt = now
		existing.LastUpdatedBy = creatorUserID
		return existing, nil
	}

	currency := models.Currency{
		Name:     req.Name,
		Symbol:   req.Symbol,
		IsActive: true,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// CurrencyID is left at its zero value; the store assigns it on insert.
	if err := uow.Currencies().InsertCurrency(ctx, &currency); err != nil {
		return nil, fmt.Errorf("failed to create currency %q: %w", req.Name, err)
	}
	if _, err := uow.Complete(ctx); err != nil {
		return nil, err
	}

	return &currency, nil
}

// UpdateCurrency updates the name and symbol of an existing currency.
func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest, updaterUserID string) (*models.Currency, error) {
	uow, err := s.uowFactory.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open unit of work: %w", err)
	}
	defer uow.Dispose(ctx)

	currency, err := uow.Currencies().FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	currency.Name = req.Name
	currency.Symbol = req.Symbol
	currency.LastUpdatedAt = now
	currency.LastUpdatedBy = updaterUserID

	if err := uow.Currencies().UpdateCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency %d: %w", currencyID, err)
	}
	if _, err := uow.Complete(ctx); err != nil {
		return nil, err
	}

	return currency, nil
}

// DeactivateCurrency soft-deletes a currency by clearing its active flag.
// The row itself is never removed.
func (s *CurrencyService) DeactivateCurrency(ctx context.Context, currencyID int64, updaterUserID string) error {
	uow, err := s.uowFactory.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to open unit of work: %w", err)
	}
	defer uow.Dispose(ctx)

	if err := uow.Currencies().SetCurrencyActive(ctx, currencyID, false, updaterUserID, time.Now().UTC()); err != nil {
		return err
	}
	if _, err := uow.Complete(ctx); err != nil {
		return err
	}
	return nil
}

// GetCurrencyByName retrieves a currency by exact name match.
func (s *CurrencyService) GetCurrencyByName(ctx context.Context, name string) (*models.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get currency by name in service: %w", err)
	}
	return currency, nil
}

// ListActiveCurrencies retrieves all currencies whose active flag is set.
func (s *CurrencyService) ListActiveCurrencies(ctx context.Context) ([]models.Currency, error) {
	currencies, err := s.currencyRepo.ListActiveCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []models.Currency{}, nil
	}
	return currencies, nil
}
