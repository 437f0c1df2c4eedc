package dto

import (
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/models"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for recording a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrency  string          `json:"fromCurrency" binding:"required"`
	ToCurrency    string          `json:"toCurrency" binding:"required"`
	Rate          decimal.Decimal `json:"rate" binding:"required,decimalgtzero"`
	DateEffective time.Time       `json:"dateEffective" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID int64           `json:"exchangeRateID"`
	FromCurrency   string          `json:"fromCurrency"`
	ToCurrency     string          `json:"toCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	DateEffective  time.Time       `json:"dateEffective"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ToExchangeRateResponse converts a models.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *models.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		FromCurrency:   rate.FromCurrency,
		ToCurrency:     rate.ToCurrency,
		Rate:           rate.Rate,
		DateEffective:  rate.DateEffective,
		CreatedAt:      rate.CreatedAt,
		CreatedBy:      rate.CreatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of models.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []models.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToExchangeRateResponse(&rate)
	}
	return responses
}
