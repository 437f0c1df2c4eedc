package services

import (
	"context"
	"fmt"

	portsrepo "github.com/fxdesk/currency_exchange_app/internal/core/ports/repositories"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/models"
)

// ExchangeHistoryService exposes read access to recorded exchanges.
// Writing history happens only through the exchange operation's unit of
// work; the records are immutable.
type ExchangeHistoryService struct {
	historyRepo portsrepo.ExchangeHistoryReader
}

// NewExchangeHistoryService creates a new ExchangeHistoryService.
func NewExchangeHistoryService(historyRepo portsrepo.ExchangeHistoryReader) *ExchangeHistoryService {
	return &ExchangeHistoryService{historyRepo: historyRepo}
}

// QueryHistory returns history rows matching the supplied filter, newest first.
func (s *ExchangeHistoryService) QueryHistory(ctx context.Context, query dto.ExchangeHistoryQuery) ([]models.ExchangeHistory, error) {
	filter := portsrepo.ExchangeHistoryFilter{
		CurrencyName: query.CurrencyName,
		From:         query.From,
		To:           query.To,
		Limit:        query.Limit,
		Offset:       query.Offset,
	}

	entries, err := s.historyRepo.QueryExchangeHistory(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange history in service: %w", err)
	}
	if entries == nil {
		return []models.ExchangeHistory{}, nil
	}
	return entries, nil
}
