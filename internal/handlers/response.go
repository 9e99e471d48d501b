package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success  bool     `json:"success" example:"false"`
	Error    string   `json:"error"`
	Required []string `json:"required,omitempty"`
	Details  []string `json:"details,omitempty"`
}

func respondOK(c *gin.Context, status int, key string, payload any) {
	c.JSON(status, gin.H{"success": true, key: payload})
}

func respondFailure(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Success: false, Error: msg})
}

// respondError maps a service error onto its status. Client errors carry the
// error text; server errors only carry fallback, the detail goes to the log.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.HTTPStatus(err)
	if apperrors.IsClientError(err) {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
		respondFailure(c, status, err.Error())
		return
	}

	logger.Error(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	switch {
	case errors.Is(err, apperrors.ErrIntegrity):
		respondFailure(c, status, "Internal server error")
	case errors.Is(err, apperrors.ErrRailTimeout):
		respondFailure(c, status, "Payment rail did not respond in time; the transaction remains pending")
	default:
		respondFailure(c, status, fallback)
	}
}

// respondBindError answers a request whose body failed to bind. Missing
// fields are listed in the required key.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, required []string) {
	logger.Warn("Failed to bind request body", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondFailure(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "Missing required fields", Required: required})
			return
		}
	}
	for _, fe := range verrs {
		if fe.Tag() == "positive_decimal" && fe.Field() == "source_amount" {
			respondFailure(c, http.StatusBadRequest, "Amount must be greater than zero")
			return
		}
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "Invalid request", Details: dto.ValidationMessages(err)})
}
