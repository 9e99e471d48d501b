package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/core/domain"
	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/ARLocke322/Payment-Router/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NormalisesCode() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2, IsActive: true}
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, " eur ")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.NewNotFoundError("currency XXX not found")).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestGetActiveCurrency() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD", IsActive: true}, nil).Once()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "JPY").Return(&domain.Currency{CurrencyCode: "JPY", IsActive: false}, nil).Once()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "ABC").Return(nil, apperrors.NewNotFoundError("currency ABC not found")).Once()

	usd, err := suite.service.GetActiveCurrency(ctx, "usd")
	suite.Require().NoError(err)
	suite.Equal("USD", usd.CurrencyCode)

	_, err = suite.service.GetActiveCurrency(ctx, "JPY")
	suite.ErrorIs(err, apperrors.ErrInvalidCurrency)

	_, err = suite.service.GetActiveCurrency(ctx, "abc")
	suite.ErrorIs(err, apperrors.ErrInvalidCurrency)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestGetActiveCurrency_RepositoryError() {
	ctx := context.Background()
	dbErr := errors.New("connection reset")
	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(nil, dbErr).Once()

	_, err := suite.service.GetActiveCurrency(ctx, "USD")

	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrInvalidCurrency)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_ActiveOnly() {
	ctx := context.Background()
	expected := []domain.Currency{{CurrencyCode: "EUR", IsActive: true}, {CurrencyCode: "USD", IsActive: true}}
	suite.mockRepo.On("ListCurrencies", ctx, true).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx, true).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
