package services_test

import (
	"context"
	"time"

	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/fxdesk/currency_exchange_app/internal/models"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByName(ctx context.Context, name string) (*models.Currency, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*models.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListActiveCurrencies(ctx context.Context) ([]models.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) InsertCurrency(ctx context.Context, currency *models.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency models.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SetCurrencyActive(ctx context.Context, currencyID int64, active bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, currencyID, active, updatedBy, updatedAt)
	return args.Error(0)
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

// --- Mock ExchangeHistoryRepository ---
type MockExchangeHistoryRepository struct {
	mock.Mock
}

func (m *MockExchangeHistoryRepository) InsertExchangeHistory(ctx context.Context, entry *models.ExchangeHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockExchangeHistoryRepository) QueryExchangeHistory(ctx context.Context, filter portsrepo.ExchangeHistoryFilter) ([]models.ExchangeHistory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExchangeHistory), args.Error(1)
}

var _ portsrepo.ExchangeHistoryRepositoryFacade = (*MockExchangeHistoryRepository)(nil)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindLatestRate(ctx context.Context, fromCurrency, toCurrency string) (*models.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrency, toCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListLatestRates(ctx context.Context) ([]models.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate *models.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

// --- Mock UnitOfWork ---

// MockUnitOfWork hands out the mock repositories it was built with;
// only Complete and Dispose are expectation-driven.
type MockUnitOfWork struct {
	mock.Mock
	CurrencyRepo *MockCurrencyRepository
	HistoryRepo  *MockExchangeHistoryRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		CurrencyRepo: new(MockCurrencyRepository),
		HistoryRepo:  new(MockExchangeHistoryRepository),
	}
}

func (m *MockUnitOfWork) Currencies() portsrepo.CurrencyRepositoryFacade {
	return m.CurrencyRepo
}

func (m *MockUnitOfWork) History() portsrepo.ExchangeHistoryRepositoryFacade {
	return m.HistoryRepo
}

func (m *MockUnitOfWork) Complete(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnitOfWork) Dispose(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portsrepo.UnitOfWork = (*MockUnitOfWork)(nil)

// --- Mock UnitOfWorkFactory ---
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(portsrepo.UnitOfWork), args.Error(1)
}

var _ portsrepo.UnitOfWorkFactory = (*MockUnitOfWorkFactory)(nil)
