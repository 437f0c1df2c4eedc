package repositories

import "context"

// UnitOfWork binds the currency and exchange history repositories to one
// shared database transaction. All writes staged through the returned
// repositories commit together on Complete or not at all.
type UnitOfWork interface {
	// Currencies returns the transaction-bound currency repository.
	Currencies() CurrencyRepositoryFacade

	// History returns the transaction-bound exchange history repository.
	History() ExchangeHistoryRepositoryFacade

	// Complete commits all staged changes atomically and returns the
	// number of rows affected within the transaction.
	Complete(ctx context.Context) (int64, error)

	// Dispose rolls back the transaction if Complete was not called and
	// releases the underlying connection. Safe to defer unconditionally.
	Dispose(ctx context.Context) error
}

// UnitOfWorkFactory opens one unit of work per request. Units of work are
// never shared across concurrent requests.
type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
