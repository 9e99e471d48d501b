package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/ARLocke322/Payment-Router/internal/handlers"
	"github.com/ARLocke322/Payment-Router/internal/middleware"
	"github.com/ARLocke322/Payment-Router/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret"
	testQuoteID   = "6f1c2b0e-4a8d-4f5e-9b7a-2d3c4e5f6a7b"
)

var executeBody = `{"quote_id":"` + testQuoteID + `","payment_method_id":"swift-wire"}`

type HandlersTestSuite struct {
	suite.Suite
	router          *gin.Engine
	quoteSvc        *MockQuoteService
	executionSvc    *MockExecutionService
	currencySvc     *MockCurrencyService
	paymentMethod   *MockPaymentMethodService
	exchangeRateSvc *MockExchangeRateService
	healthSvc       *MockHealthService
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.quoteSvc = new(MockQuoteService)
	suite.executionSvc = new(MockExecutionService)
	suite.currencySvc = new(MockCurrencyService)
	suite.paymentMethod = new(MockPaymentMethodService)
	suite.exchangeRateSvc = new(MockExchangeRateService)
	suite.healthSvc = new(MockHealthService)

	container := &portssvc.ServiceContainer{
		Currency:      suite.currencySvc,
		PaymentMethod: suite.paymentMethod,
		ExchangeRate:  suite.exchangeRateSvc,
		Quote:         suite.quoteSvc,
		Execution:     suite.executionSvc,
		Health:        suite.healthSvc,
	}
	cfg := &config.Config{IsProduction: true, AuthEnabled: true, JWTSecret: testJWTSecret, CORSAllowedOrigins: []string{"*"}}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(io.Discard, nil))))
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *HandlersTestSuite) do(method, path, body string, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decoded), w.Body.String())
	}
	return w, decoded
}

func (suite *HandlersTestSuite) token(subject string) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	suite.Require().NoError(err)
	return "Bearer " + signed
}

func sampleQuote() *domain.Quote {
	created := time.Now().UTC()
	return &domain.Quote{
		QuoteID:        "q-1",
		SourceCurrency: "USD",
		TargetCurrency: "EUR",
		SourceAmount:   decimal.NewFromInt(1000),
		ExchangeRate:   decimal.RequireFromString("0.85"),
		TargetAmount:   decimal.NewFromInt(850),
		Status:         domain.QuoteActive,
		CreatedAt:      created,
		ExpiresAt:      created.Add(domain.DefaultQuoteTTL),
		Routes: []domain.QuoteRoute{{
			QuoteRouteID: "qr-1", QuoteID: "q-1", PaymentMethodID: "swift-wire", MethodName: "SWIFT Wire Transfer",
			MethodType: domain.PaymentMethodWire, EstimatedCost: decimal.NewFromInt(10), TotalCost: decimal.NewFromInt(1010),
			EstimatedTimeHours: decimal.NewFromInt(24), Score: decimal.RequireFromString("74.5"), Rank: 1,
		}},
	}
}

// --- Quotes ---

func (suite *HandlersTestSuite) TestCreateQuote_Success() {
	suite.quoteSvc.On("GenerateQuote", mock.Anything, mock.MatchedBy(func(r dto.CreateQuoteRequest) bool {
		return r.SourceCurrency == "USD" && r.TargetCurrency == "EUR" && r.SourceAmount.Equal(decimal.NewFromInt(1000))
	})).Return(sampleQuote(), nil).Once()

	w, body := suite.do(http.MethodPost, "/api/v1/quotes", `{"source_currency":"USD","target_currency":"EUR","source_amount":1000}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(true, body["success"])
	quote := body["quote"].(map[string]any)
	suite.Equal("q-1", quote["quote_id"])
	suite.Equal("active", quote["status"])
	routes := quote["routes"].([]any)
	suite.Require().Len(routes, 1)
	suite.Equal("74.5", routes[0].(map[string]any)["score"])
	suite.NotEmpty(w.Header().Get(middleware.RequestIDHeader))
	suite.quoteSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateQuote_MissingFields() {
	w, body := suite.do(http.MethodPost, "/api/v1/quotes", `{"source_amount":"10"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(false, body["success"])
	suite.Equal("Missing required fields", body["error"])
	suite.Equal([]any{"source_currency", "target_currency", "source_amount"}, body["required"])
	suite.quoteSvc.AssertNotCalled(suite.T(), "GenerateQuote", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateQuote_ZeroAmount() {
	w, body := suite.do(http.MethodPost, "/api/v1/quotes", `{"source_currency":"USD","target_currency":"EUR","source_amount":0}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Amount must be greater than zero", body["error"])
}

func (suite *HandlersTestSuite) TestCreateQuote_MalformedJSON() {
	w, body := suite.do(http.MethodPost, "/api/v1/quotes", `{"source_currency":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(body["error"], "Invalid request format")
}

func (suite *HandlersTestSuite) TestCreateQuote_ServiceErrors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid currency", fmt.Errorf("%w: XXX", apperrors.ErrInvalidCurrency), http.StatusBadRequest},
		{"no route", fmt.Errorf("%w: none", apperrors.ErrNoRouteAvailable), http.StatusUnprocessableEntity},
		{"rate unavailable", apperrors.ErrRateUnavailable, http.StatusUnprocessableEntity},
		{"storage failure", fmt.Errorf("failed to save quote: %w", io.ErrUnexpectedEOF), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.quoteSvc.On("GenerateQuote", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w, body := suite.do(http.MethodPost, "/api/v1/quotes", `{"source_currency":"USD","target_currency":"EUR","source_amount":"100"}`)

			suite.Equal(tt.status, w.Code)
			suite.Equal(false, body["success"])
			if tt.status == http.StatusInternalServerError {
				suite.Equal("Failed to generate quote", body["error"])
			}
		})
	}
}

func (suite *HandlersTestSuite) TestGetQuote() {
	suite.quoteSvc.On("GetQuote", mock.Anything, "q-1").Return(sampleQuote(), nil).Once()
	suite.quoteSvc.On("GetQuote", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("quote missing not found")).Once()

	w, body := suite.do(http.MethodGet, "/api/v1/quotes/q-1", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("q-1", body["quote"].(map[string]any)["quote_id"])

	w, _ = suite.do(http.MethodGet, "/api/v1/quotes/missing", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Execution ---

func (suite *HandlersTestSuite) TestExecutePayment_Success() {
	ref := "SWIFT_ABC"
	req := dto.ExecutePaymentRequest{QuoteID: testQuoteID, PaymentMethodID: "swift-wire"}
	suite.executionSvc.On("ExecutePayment", mock.Anything, req).Return(&domain.ExecutionResult{
		TransactionID: "t-1", QuoteID: "q-1", PaymentMethodID: "swift-wire", Status: "processing",
		SourceAmount: decimal.NewFromInt(1000), RailFee: decimal.NewFromInt(31), RailFeeCurrency: "USD",
		ProviderReference: &ref, Message: "SWIFT wire transfer initiated successfully",
	}, nil).Once()

	w, body := suite.do(http.MethodPost, "/api/v1/execute", executeBody)

	suite.Equal(http.StatusOK, w.Code)
	txn := body["transaction"].(map[string]any)
	suite.Equal("t-1", txn["transaction_id"])
	suite.Equal("processing", txn["status"])
	suite.Equal("SWIFT_ABC", txn["provider_reference"])
	suite.Equal("31", txn["rail_fee"])
}

func (suite *HandlersTestSuite) TestExecutePayment_RailRejectionIsOK() {
	suite.executionSvc.On("ExecutePayment", mock.Anything, mock.Anything).Return(&domain.ExecutionResult{
		TransactionID: "t-2", Status: "failed", Message: "Correspondent bank temporarily unavailable",
	}, nil).Once()

	w, body := suite.do(http.MethodPost, "/api/v1/execute", executeBody)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(true, body["success"])
	txn := body["transaction"].(map[string]any)
	suite.Equal("failed", txn["status"])
	suite.Nil(txn["provider_reference"])
}

func (suite *HandlersTestSuite) TestExecutePayment_MissingFields() {
	w, body := suite.do(http.MethodPost, "/api/v1/execute", `{"quote_id":"`+testQuoteID+`"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]any{"quote_id", "payment_method_id"}, body["required"])
}

func (suite *HandlersTestSuite) TestExecutePayment_MalformedQuoteID() {
	w, body := suite.do(http.MethodPost, "/api/v1/execute", `{"quote_id":"abc","payment_method_id":"swift-wire"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid request", body["error"])
	suite.Equal([]any{"quote_id must be a UUID"}, body["details"])
	suite.executionSvc.AssertNotCalled(suite.T(), "ExecutePayment", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestExecutePayment_Errors() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"quote not usable", fmt.Errorf("%w: q-1", apperrors.ErrQuoteNotUsable), http.StatusConflict, "quote not found, expired, or already used: q-1"},
		{"route not quoted", fmt.Errorf("%w: btc", apperrors.ErrRouteNotFound), http.StatusBadRequest, "selected payment method not available for this quote: btc"},
		{"integrity", fmt.Errorf("%w: payment method \"Carrier Pigeon\" cannot be executed", apperrors.ErrIntegrity), http.StatusInternalServerError, "Internal server error"},
		{"timeout", fmt.Errorf("%w: CorrespondentRail after 10s", apperrors.ErrRailTimeout), http.StatusGatewayTimeout, "Payment rail did not respond in time; the transaction remains pending"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.executionSvc.On("ExecutePayment", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w, body := suite.do(http.MethodPost, "/api/v1/execute", executeBody)

			suite.Equal(tt.status, w.Code)
			suite.Equal(tt.message, body["error"])
		})
	}
}

func (suite *HandlersTestSuite) TestGetTransaction() {
	suite.executionSvc.On("GetTransaction", mock.Anything, "t-1").Return(&domain.Transaction{
		TransactionID: "t-1", QuoteID: "q-1", Status: domain.TransactionProcessing,
		Route: &domain.Route{PaymentMethodID: "swift-wire", IsSelected: true},
	}, nil).Once()

	w, body := suite.do(http.MethodGet, "/api/v1/transactions/t-1", "")

	suite.Equal(http.StatusOK, w.Code)
	txn := body["transaction"].(map[string]any)
	suite.Equal("processing", txn["status"])
	suite.Equal("swift-wire", txn["route"].(map[string]any)["payment_method_id"])
}

// --- Catalog ---

func (suite *HandlersTestSuite) TestListCurrencies() {
	suite.currencySvc.On("ListCurrencies", mock.Anything).Return([]domain.Currency{
		{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2, IsActive: true},
		{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2, IsActive: true},
	}, nil).Once()

	w, body := suite.do(http.MethodGet, "/api/v1/currencies", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(float64(2), body["count"])
	suite.Len(body["data"], 2)
}

func (suite *HandlersTestSuite) TestListPaymentMethods() {
	suite.paymentMethod.On("ListPaymentMethods", mock.Anything).Return([]domain.PaymentMethod{
		{PaymentMethodID: "sepa-instant", Name: "SEPA Instant", Type: domain.PaymentMethodRegional, IsActive: true},
	}, nil).Once()

	w, body := suite.do(http.MethodGet, "/api/v1/payment-methods", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(float64(1), body["count"])
}

// --- Exchange rates ---

func (suite *HandlersTestSuite) TestGetExchangeRate() {
	suite.exchangeRateSvc.On("GetExchangeRate", mock.Anything, "USD", "EUR").Return(&domain.ExchangeRate{
		FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.85"),
	}, nil).Once()
	suite.exchangeRateSvc.On("GetExchangeRate", mock.Anything, "XYZ", "USD").Return(nil, apperrors.ErrRateUnavailable).Once()

	w, body := suite.do(http.MethodGet, "/api/v1/exchange-rates/USD/EUR", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("0.85", body["exchange_rate"].(map[string]any)["rate"])

	w, _ = suite.do(http.MethodGet, "/api/v1/exchange-rates/XYZ/USD", "")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_RequiresToken() {
	w, body := suite.do(http.MethodPost, "/api/v1/exchange-rates", `{"from_currency":"USD","to_currency":"EUR","rate":"0.9","date_effective":"2025-01-15T00:00:00Z"}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Authorization header required", body["error"])
	suite.exchangeRateSvc.AssertNotCalled(suite.T(), "CreateExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_Success() {
	suite.exchangeRateSvc.On("CreateExchangeRate", mock.Anything, mock.MatchedBy(func(r dto.CreateExchangeRateRequest) bool {
		return r.FromCurrencyCode == "USD" && r.Rate.Equal(decimal.RequireFromString("0.9"))
	}), "ops-user").Return(&domain.ExchangeRate{
		ExchangeRateID: "r-1", FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.9"),
	}, nil).Once()

	w, body := suite.do(http.MethodPost, "/api/v1/exchange-rates",
		`{"from_currency":"USD","to_currency":"EUR","rate":"0.9","date_effective":"2025-01-15T00:00:00Z"}`,
		"Authorization", suite.token("ops-user"))

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("r-1", body["exchange_rate"].(map[string]any)["id"])
	suite.exchangeRateSvc.AssertExpectations(suite.T())
}

// --- Health ---

func (suite *HandlersTestSuite) TestHealth() {
	suite.healthSvc.On("Check", mock.Anything).Return(portssvc.HealthStatus{Status: "healthy", Database: "connected", Version: "1.0.0"}).Once()

	w, body := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("connected", body["database"])
	suite.Equal("1.0.0", body["version"])
	suite.NotEmpty(body["timestamp"])
}

func (suite *HandlersTestSuite) TestHealth_Unhealthy() {
	suite.healthSvc.On("Check", mock.Anything).Return(portssvc.HealthStatus{Status: "unhealthy", Database: "disconnected"}).Once()

	w, body := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("disconnected", body["database"])
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
