package handlers

import (
	"net/http"

	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/ARLocke322/Payment-Router/internal/middleware"
	"github.com/gin-gonic/gin"
)

type paymentMethodHandler struct {
	paymentMethodService portssvc.PaymentMethodSvcFacade
}

func registerPaymentMethodRoutes(rg *gin.RouterGroup, paymentMethodService portssvc.PaymentMethodSvcFacade) {
	h := &paymentMethodHandler{paymentMethodService: paymentMethodService}
	rg.GET("/payment-methods", h.listPaymentMethods)
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Description Retrieves the active payment method catalog with limits, fees and supported currencies
// @Tags payment-methods
// @Produce  json
// @Success 200 {object} PaymentMethodListEnvelope
// @Failure 500 {object} ErrorResponse "Failed to fetch payment methods"
// @Router /payment-methods [get]
func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	methods, err := h.paymentMethodService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to fetch payment methods")
		return
	}

	c.JSON(http.StatusOK, PaymentMethodListEnvelope{
		Success: true,
		Data:    dto.ToListPaymentMethodResponse(methods),
		Count:   len(methods),
	})
}

// PaymentMethodListEnvelope documents the payment method list response body.
type PaymentMethodListEnvelope struct {
	Success bool                        `json:"success" example:"true"`
	Data    []dto.PaymentMethodResponse `json:"data"`
	Count   int                         `json:"count"`
}
