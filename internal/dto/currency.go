package dto

import (
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/models"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
// If a currency with the same name already exists, the create is treated
// as a reactivation and the other fields are ignored.
type CreateCurrencyRequest struct {
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
}

// UpdateCurrencyRequest defines the mutable fields of an existing currency.
type UpdateCurrencyRequest struct {
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID    int64     `json:"currencyID"`
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a models.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *models.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:    curr.CurrencyID,
		Name:          curr.Name,
		Symbol:        curr.Symbol,
		IsActive:      curr.IsActive,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of models.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []models.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
