package repositories

// RepositoryProvider aggregates the repository implementations handed to
// the service layer.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
	HistoryRepo  ExchangeHistoryRepositoryFacade
	RateRepo     ExchangeRateRepositoryFacade
	UnitOfWorks  UnitOfWorkFactory
}
