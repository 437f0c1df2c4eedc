package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeHistory is an immutable audit record of one completed exchange.
// Rows are created exactly once per exchange and never mutated.
type ExchangeHistory struct {
	HistoryID      int64           `json:"historyID"` // Primary Key, store-assigned
	FromCurrencyID int64           `json:"fromCurrencyID"`
	ToCurrencyID   int64           `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"` // Rate at time of transaction
	Amount         decimal.Decimal `json:"amount"`
	ResultAmount   decimal.Decimal `json:"resultAmount"`
	ExchangedAt    time.Time       `json:"exchangedAt"`
	CreatedBy      string          `json:"createdBy"`
}
