package models

// Currency represents a supported currency.
// Currencies are never physically deleted; a "delete" clears IsActive.
type Currency struct {
	CurrencyID int64  `json:"currencyID"` // Primary Key, store-assigned
	Name       string `json:"name"`       // Lookup key by convention (e.g., "US Dollar")
	Symbol     string `json:"symbol"`     // e.g., "$"
	IsActive   bool   `json:"isActive"`
	AuditFields
}
