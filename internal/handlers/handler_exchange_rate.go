package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/ARLocke322/Payment-Router/internal/middleware"
	"github.com/gin-gonic/gin"
)

// systemUser is recorded as creator when auth is disabled.
const systemUser = "system"

var exchangeRateRequiredFields = []string{"from_currency", "to_currency", "rate", "date_effective"}

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates. Writes
// pass through writeGuard, which is empty when auth is disabled.
func registerExchangeRateRoutes(rg *gin.RouterGroup, ers portssvc.ExchangeRateSvcFacade, writeGuard ...gin.HandlerFunc) {
	h := newExchangeRateHandler(ers)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", append(writeGuard, h.createExchangeRate)...)
		rates.GET("/:fromCurrency/:toCurrency", h.getExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Store an exchange rate
// @Description Stores a rate for a currency pair and date; stored rates take precedence over the reference table
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   exchangeRate body dto.CreateExchangeRateRequest true "Exchange rate details"
// @Success 201 {object} ExchangeRateEnvelope
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, exchangeRateRequiredFields)
		return
	}

	creator := middleware.CallerOrDefault(c, systemUser)
	logger = logger.With(slog.String("creator_user_id", creator))
	logger.Info("Received request to create exchange rate",
		slog.String("from", req.FromCurrencyCode), slog.String("to", req.ToCurrencyCode))

	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creator)
	if err != nil {
		respondError(c, logger, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created", slog.String("exchange_rate_id", rate.ExchangeRateID))
	respondOK(c, http.StatusCreated, "exchange_rate", dto.ToExchangeRateResponse(rate))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Resolves the rate for a pair from stored rates, then the reference table, pivoting through USD
// @Tags exchange-rates
// @Produce  json
// @Param   fromCurrency path string true "From currency code"
// @Param   toCurrency path string true "To currency code"
// @Success 200 {object} ExchangeRateEnvelope
// @Failure 400 {object} ErrorResponse "Invalid currency code"
// @Failure 422 {object} ErrorResponse "Exchange rate unavailable"
// @Failure 500 {object} ErrorResponse "Failed to retrieve exchange rate"
// @Router /exchange-rates/{fromCurrency}/{toCurrency} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to := c.Param("fromCurrency"), c.Param("toCurrency")
	logger = logger.With(slog.String("from", from), slog.String("to", to))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	respondOK(c, http.StatusOK, "exchange_rate", dto.ToExchangeRateResponse(rate))
}

// ExchangeRateEnvelope documents the exchange rate response body.
type ExchangeRateEnvelope struct {
	Success      bool                     `json:"success" example:"true"`
	ExchangeRate dto.ExchangeRateResponse `json:"exchange_rate"`
}
