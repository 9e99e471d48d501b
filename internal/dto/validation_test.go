package dto_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindQuote(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req dto.CreateQuoteRequest
	return c.ShouldBindJSON(&req)
}

func TestExecutePaymentRequest_QuoteIDFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		body     string
		messages []string
	}{
		{"uuid", `{"quote_id":"6f1c2b0e-4a8d-4f5e-9b7a-2d3c4e5f6a7b","payment_method_id":"swift-wire"}`, nil},
		{"not a uuid", `{"quote_id":"abc","payment_method_id":"swift-wire"}`, []string{"quote_id must be a UUID"}},
		{"missing", `{"payment_method_id":"swift-wire"}`, []string{"quote_id is required"}},
	}

	require.NoError(t, dto.RegisterValidators())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")
			var req dto.ExecutePaymentRequest
			err := c.ShouldBindJSON(&req)
			if tt.messages == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.messages, dto.ValidationMessages(err))
		})
	}
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, dto.RegisterValidators())

	tests := []struct {
		name     string
		body     string
		messages []string
	}{
		{"valid", `{"source_currency":"USD","target_currency":"EUR","source_amount":"1000"}`, nil},
		{"numeric amount", `{"source_currency":"USD","target_currency":"EUR","source_amount":12.5}`, nil},
		{"zero amount", `{"source_currency":"USD","target_currency":"EUR","source_amount":"0"}`, []string{"source_amount must be greater than zero"}},
		{"missing fields", `{"source_amount":"10"}`, []string{"source_currency is required", "target_currency is required"}},
		{"bad code", `{"source_currency":"US","target_currency":"EUR","source_amount":"1"}`, []string{"source_currency must be a 3 to 5 character alphanumeric code"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindQuote(t, tt.body)
			if tt.messages == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.messages, dto.ValidationMessages(err))
		})
	}
}
