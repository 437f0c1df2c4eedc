package services

import (
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/fxdesk/currency_exchange_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	currencyService := NewCurrencyService(repos.CurrencyRepo, repos.UnitOfWorks)
	container.Currency = currencyService
	container.ExchangeHistory = NewExchangeHistoryService(repos.HistoryRepo)
	container.ExchangeRate = NewExchangeRateService(repos.RateRepo, currencyService)
	container.Exchange = NewExchangeService(repos.UnitOfWorks, repos.RateRepo)

	return container
}

// Interface implementation checks
var (
	_ portssvc.CurrencySvcFacade        = (*CurrencyService)(nil)
	_ portssvc.ExchangeSvcFacade        = (*ExchangeService)(nil)
	_ portssvc.ExchangeHistorySvcFacade = (*ExchangeHistoryService)(nil)
	_ portssvc.ExchangeRateSvcFacade    = (*ExchangeRateService)(nil)
)
