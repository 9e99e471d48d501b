package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/ARLocke322/Payment-Router/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
	}
}

// listCurrencies godoc
// @Summary List active currencies
// @Description Retrieves every currency that can be quoted
// @Tags currencies
// @Produce  json
// @Success 200 {object} CurrencyListEnvelope
// @Failure 500 {object} ErrorResponse "Failed to fetch currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to fetch currencies")
		return
	}

	logger.Debug("Currencies listed", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, CurrencyListEnvelope{
		Success: true,
		Data:    dto.ToListCurrencyResponse(currencies),
		Count:   len(currencies),
	})
}

// CurrencyListEnvelope documents the currency list response body.
type CurrencyListEnvelope struct {
	Success bool                   `json:"success" example:"true"`
	Data    []dto.CurrencyResponse `json:"data"`
	Count   int                    `json:"count"`
}
