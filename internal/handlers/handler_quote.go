package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/ARLocke322/Payment-Router/internal/middleware"
	"github.com/gin-gonic/gin"
)

var quoteRequiredFields = []string{"source_currency", "target_currency", "source_amount"}

// quoteHandler handles HTTP requests related to quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
	clock        func() time.Time
}

// newQuoteHandler creates a new quoteHandler.
func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs, clock: time.Now}
}

// registerQuoteRoutes registers routes related to quotes.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("/:quoteID", h.getQuote)
	}
}

// createQuote godoc
// @Summary Quote a transfer
// @Description Ranks every payment method able to carry the transfer and returns a quote valid for a limited time
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.CreateQuoteRequest true "Transfer to quote"
// @Success 200 {object} QuoteEnvelope
// @Failure 400 {object} ErrorResponse "Invalid input or currency"
// @Failure 422 {object} ErrorResponse "No route or exchange rate available"
// @Failure 500 {object} ErrorResponse "Failed to generate quote"
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, quoteRequiredFields)
		return
	}

	logger.Info("Received request to create quote",
		slog.String("source_currency", req.SourceCurrency),
		slog.String("target_currency", req.TargetCurrency),
		slog.String("source_amount", req.SourceAmount.String()))

	quote, err := h.quoteService.GenerateQuote(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to generate quote")
		return
	}

	logger.Info("Quote created", slog.String("quote_id", quote.QuoteID), slog.Int("routes", len(quote.Routes)))
	respondOK(c, http.StatusOK, "quote", dto.ToQuoteResponse(quote, h.clock()))
}

// getQuote godoc
// @Summary Get a quote
// @Description Returns a quote with its ranked routes; status reads expired once the quote's window has closed
// @Tags quotes
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Success 200 {object} QuoteEnvelope
// @Failure 404 {object} ErrorResponse "Quote not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve quote"
// @Router /quotes/{quoteID} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")
	logger = logger.With(slog.String("quote_id", quoteID))

	quote, err := h.quoteService.GetQuote(c.Request.Context(), quoteID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve quote")
		return
	}

	respondOK(c, http.StatusOK, "quote", dto.ToQuoteResponse(quote, h.clock()))
}

// QuoteEnvelope documents the quote response body.
type QuoteEnvelope struct {
	Success bool              `json:"success" example:"true"`
	Quote   dto.QuoteResponse `json:"quote"`
}
