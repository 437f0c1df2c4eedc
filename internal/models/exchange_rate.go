package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores a manually maintained conversion rate between two
// currencies, effective from a specific date.
type ExchangeRate struct {
	ExchangeRateID int64           `json:"exchangeRateID"` // Primary Key, store-assigned
	FromCurrency   string          `json:"fromCurrency"`   // Currency name
	ToCurrency     string          `json:"toCurrency"`     // Currency name
	Rate           decimal.Decimal `json:"rate"`
	DateEffective  time.Time       `json:"dateEffective"`
	AuditFields
}
