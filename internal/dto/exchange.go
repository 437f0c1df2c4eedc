package dto

import (
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/models"
	"github.com/shopspring/decimal"
)

// ExchangeRequest defines the data needed to perform an exchange.
// Rate is optional; when omitted the latest stored rate for the pair is
// used.
type ExchangeRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required"`
	ToCurrency   string          `json:"toCurrency" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required,decimalgtzero"`
	Rate         decimal.Decimal `json:"rate" binding:"omitempty,decimalgtzero"`
}

// ExchangeHistoryResponse defines the data returned for one recorded exchange.
type ExchangeHistoryResponse struct {
	HistoryID      int64           `json:"historyID"`
	FromCurrencyID int64           `json:"fromCurrencyID"`
	ToCurrencyID   int64           `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`
	Amount         decimal.Decimal `json:"amount"`
	ResultAmount   decimal.Decimal `json:"resultAmount"`
	ExchangedAt    time.Time       `json:"exchangedAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ExchangeHistoryQuery carries the supported history filter parameters.
// All fields are optional; zero values mean "no constraint".
type ExchangeHistoryQuery struct {
	CurrencyName string    `form:"currency"`
	From         time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To           time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit        int       `form:"limit,default=50" binding:"omitempty,gt=0,lte=500"`
	Offset       int       `form:"offset" binding:"omitempty,gte=0"`
}

// ToExchangeHistoryResponse converts a models.ExchangeHistory to its DTO.
func ToExchangeHistoryResponse(h *models.ExchangeHistory) ExchangeHistoryResponse {
	return ExchangeHistoryResponse{
		HistoryID:      h.HistoryID,
		FromCurrencyID: h.FromCurrencyID,
		ToCurrencyID:   h.ToCurrencyID,
		Rate:           h.Rate,
		Amount:         h.Amount,
		ResultAmount:   h.ResultAmount,
		ExchangedAt:    h.ExchangedAt,
		CreatedBy:      h.CreatedBy,
	}
}

// ToListExchangeHistoryResponse converts a slice of history rows to DTOs.
func ToListExchangeHistoryResponse(entries []models.ExchangeHistory) []ExchangeHistoryResponse {
	res := make([]ExchangeHistoryResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToExchangeHistoryResponse(&entry)
	}
	return res
}
