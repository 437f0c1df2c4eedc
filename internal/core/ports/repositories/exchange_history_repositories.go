package repositories

import (
	"context"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/models"
)

// ExchangeHistoryFilter carries the supported history query parameters.
// Zero values mean "no constraint".
type ExchangeHistoryFilter struct {
	CurrencyName string // Matches either side of the exchange
	From         time.Time
	To           time.Time
	Limit        int
	Offset       int
}

// ExchangeHistoryWriter defines write operations for exchange history data.
// There are no update or delete operations; history rows are immutable.
type ExchangeHistoryWriter interface {
	// InsertExchangeHistory persists a new history row and populates its store-assigned ID.
	InsertExchangeHistory(ctx context.Context, entry *models.ExchangeHistory) error
}

// ExchangeHistoryReader defines read operations for exchange history data
type ExchangeHistoryReader interface {
	// QueryExchangeHistory retrieves history rows matching the filter, newest first.
	QueryExchangeHistory(ctx context.Context, filter ExchangeHistoryFilter) ([]models.ExchangeHistory, error)
}

// ExchangeHistoryRepositoryFacade combines all history-related repository interfaces
type ExchangeHistoryRepositoryFacade interface {
	ExchangeHistoryReader
	ExchangeHistoryWriter
}
