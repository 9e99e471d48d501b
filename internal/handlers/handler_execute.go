package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/ARLocke322/Payment-Router/internal/middleware"
	"github.com/gin-gonic/gin"
)

var executeRequiredFields = []string{"quote_id", "payment_method_id"}

// executionHandler handles HTTP requests that execute quotes and read their transactions.
type executionHandler struct {
	executionService portssvc.ExecutionSvcFacade
}

// newExecutionHandler creates a new executionHandler.
func newExecutionHandler(es portssvc.ExecutionSvcFacade) *executionHandler {
	return &executionHandler{executionService: es}
}

// registerExecutionRoutes registers the execute and transaction routes.
func registerExecutionRoutes(rg *gin.RouterGroup, executionService portssvc.ExecutionSvcFacade) {
	h := newExecutionHandler(executionService)

	rg.POST("/execute", h.executePayment)
	rg.GET("/transactions/:transactionID", h.getTransaction)
}

// executePayment godoc
// @Summary Execute a quote
// @Description Consumes the quote and submits the payment on the rail behind the selected method. A rail rejection is reported with status failed and HTTP 200.
// @Tags execution
// @Accept  json
// @Produce  json
// @Param   execution body dto.ExecutePaymentRequest true "Quote and payment method"
// @Success 200 {object} ExecutionEnvelope
// @Failure 400 {object} ErrorResponse "Invalid input or method not in quote"
// @Failure 409 {object} ErrorResponse "Quote not found, expired, or already used"
// @Failure 500 {object} ErrorResponse "Failed to execute payment"
// @Failure 504 {object} ErrorResponse "Payment rail timed out"
// @Router /execute [post]
func (h *executionHandler) executePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExecutePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, executeRequiredFields)
		return
	}

	logger = logger.With(slog.String("quote_id", req.QuoteID), slog.String("payment_method_id", req.PaymentMethodID))
	logger.Info("Received request to execute payment")

	result, err := h.executionService.ExecutePayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to execute payment")
		return
	}

	logger.Info("Payment execution answered",
		slog.String("transaction_id", result.TransactionID),
		slog.String("status", result.Status))
	respondOK(c, http.StatusOK, "transaction", dto.ToExecutionResponse(result))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Returns an executed transaction with its selected route
// @Tags execution
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} TransactionEnvelope
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve transaction"
// @Router /transactions/{transactionID} [get]
func (h *executionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))

	txn, err := h.executionService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	respondOK(c, http.StatusOK, "transaction", dto.ToTransactionResponse(txn))
}

// ExecutionEnvelope documents the execute response body.
type ExecutionEnvelope struct {
	Success     bool                  `json:"success" example:"true"`
	Transaction dto.ExecutionResponse `json:"transaction"`
}

// TransactionEnvelope documents the transaction response body.
type TransactionEnvelope struct {
	Success     bool                    `json:"success" example:"true"`
	Transaction dto.TransactionResponse `json:"transaction"`
}
