package pgsql

import (
	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories and the
// unit-of-work factory over one shared connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	historyRepo := newPgxExchangeHistoryRepository(dbPool)
	rateRepo := newPgxExchangeRateRepository(dbPool)
	uowFactory := NewPgxUnitOfWorkFactory(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo: currencyRepo,
		HistoryRepo:  historyRepo,
		RateRepo:     rateRepo,
		UnitOfWorks:  uowFactory,
	}
}
