package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	portssvc "github.com/fxdesk/currency_exchange_app/internal/core/ports/services"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeHandler handles HTTP requests for exchanges, history and rates.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
	historyService  portssvc.ExchangeHistorySvcFacade
	rateService     portssvc.ExchangeRateSvcFacade
}

// newExchangeHandler creates a new exchangeHandler.
func newExchangeHandler(es portssvc.ExchangeSvcFacade, hs portssvc.ExchangeHistorySvcFacade, rs portssvc.ExchangeRateSvcFacade) *exchangeHandler {
	return &exchangeHandler{
		exchangeService: es,
		historyService:  hs,
		rateService:     rs,
	}
}

// RegisterExchangeRoutes registers routes related to exchanges.
func RegisterExchangeRoutes(rg *gin.RouterGroup, es portssvc.ExchangeSvcFacade, hs portssvc.ExchangeHistorySvcFacade, rs portssvc.ExchangeRateSvcFacade) {
	h := newExchangeHandler(es, hs, rs)

	exchange := rg.Group("/exchange")
	{
		exchange.POST("", h.performExchange)
		exchange.GET("/history", h.queryHistory)
		exchange.GET("/rates", h.listRates)
		exchange.POST("/rates", h.createRate)
	}
}

// performExchange godoc
// @Summary Perform a currency exchange
// @Description Validates the request, computes result = amount * rate, and records one immutable history row
// @Tags exchange
// @Accept  json
// @Produce  json
// @Param   exchange body dto.ExchangeRequest true "Exchange details; rate is optional and defaults to the latest stored pair rate"
// @Success 201 {object} dto.ExchangeHistoryResponse
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to perform exchange"
// @Security BearerAuth
// @Router /exchange [post]
func (h *exchangeHandler) performExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Exchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received exchange request",
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency),
		slog.String("amount", req.Amount.String()),
	)

	entry, err := h.exchangeService.Exchange(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Exchange rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to perform exchange", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to perform exchange"})
		}
		return
	}

	logger.Info("Exchange recorded", slog.Int64("history_id", entry.HistoryID), slog.String("result_amount", entry.ResultAmount.String()))
	c.JSON(http.StatusCreated, dto.ToExchangeHistoryResponse(entry))
}

// queryHistory godoc
// @Summary Query exchange history
// @Description Retrieves recorded exchanges filtered by currency and date range, newest first
// @Tags exchange
// @Produce  json
// @Param   currency query string false "Currency name matching either side"
// @Param   from query string false "Lower bound (RFC3339)"
// @Param   to query string false "Upper bound (RFC3339)"
// @Param   limit query int false "Max rows (default 50, max 500)"
// @Param   offset query int false "Rows to skip"
// @Success 200 {array} dto.ExchangeHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to query history"
// @Security BearerAuth
// @Router /exchange/history [get]
func (h *exchangeHandler) queryHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ExchangeHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for history", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.historyService.QueryHistory(c.Request.Context(), query)
	if err != nil {
		logger.Error("Failed to query exchange history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeHistoryResponse(entries))
}

// listRates godoc
// @Summary List current exchange rates
// @Description Retrieves the latest manually recorded rate per currency pair
// @Tags exchange
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Security BearerAuth
// @Router /exchange/rates [get]
func (h *exchangeHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// createRate godoc
// @Summary Record an exchange rate
// @Description Stores a manually supplied dated rate for a currency pair
// @Tags exchange
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record rate"
// @Security BearerAuth
// @Router /exchange/rates [post]
func (h *exchangeHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record rate"})
		}
		return
	}

	logger.Info("Exchange rate recorded", slog.String("from", rate.FromCurrency), slog.String("to", rate.ToCurrency))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}
