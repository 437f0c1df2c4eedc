package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	portssvc "github.com/fxdesk/currency_exchange_app/internal/core/ports/services"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/handlers"
	"github.com/fxdesk/currency_exchange_app/internal/middleware"
	"github.com/fxdesk/currency_exchange_app/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByName(ctx context.Context, name string) (*models.Currency, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListActiveCurrencies(ctx context.Context) ([]models.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Currency), args.Error(1)
}

func (m *MockCurrencyService) AddCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*models.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Currency), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest, updaterUserID string) (*models.Currency, error) {
	args := m.Called(ctx, currencyID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Currency), args.Error(1)
}

func (m *MockCurrencyService) DeactivateCurrency(ctx context.Context, currencyID int64, updaterUserID string) error {
	args := m.Called(ctx, currencyID, updaterUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCurrencyService *MockCurrencyService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *CurrencyHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cex-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockCurrencyService = new(MockCurrencyService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCurrencyRoutes(v1, suite.mockCurrencyService)
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_Success() {
	userID := "admin"
	reqBody := dto.CreateCurrencyRequest{Name: "US Dollar", Symbol: "$"}
	created := &models.Currency{CurrencyID: 1, Name: "US Dollar", Symbol: "$", IsActive: true}

	suite.mockCurrencyService.On("AddCurrency", mock.Anything, reqBody, userID).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.CurrencyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(created.CurrencyID, responseBody.CurrencyID)
	suite.Equal(created.Name, responseBody.Name)
	suite.True(responseBody.IsActive)

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_MissingFields() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies", bytes.NewReader([]byte(`{"name":"US Dollar"}`)))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "AddCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_NoToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies", bytes.NewReader([]byte(`{"name":"US Dollar","symbol":"$"}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "AddCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByName_Success() {
	expected := &models.Currency{CurrencyID: 2, Name: "Euro", Symbol: "€", IsActive: true}

	suite.mockCurrencyService.On("GetCurrencyByName", mock.Anything, "Euro").Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/Euro", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.CurrencyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(expected.Name, responseBody.Name)
	suite.Equal(expected.Symbol, responseBody.Symbol)

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByName_NotFound() {
	suite.mockCurrencyService.On("GetCurrencyByName", mock.Anything, "Doubloon").Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies/Doubloon", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Success() {
	expected := []models.Currency{
		{CurrencyID: 1, Name: "US Dollar", Symbol: "$", IsActive: true},
		{CurrencyID: 2, Name: "Euro", Symbol: "€", IsActive: true},
	}

	suite.mockCurrencyService.On("ListActiveCurrencies", mock.Anything).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody []dto.CurrencyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Len(responseBody, 2)

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestUpdateCurrency_Success() {
	userID := "admin"
	currencyID := int64(3)
	reqBody := dto.UpdateCurrencyRequest{Name: "Pound Sterling", Symbol: "£"}
	updated := &models.Currency{CurrencyID: currencyID, Name: "Pound Sterling", Symbol: "£", IsActive: true}

	suite.mockCurrencyService.On("UpdateCurrency", mock.Anything, currencyID, reqBody, userID).Return(updated, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/currencies/%d", currencyID), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.CurrencyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(updated.Name, responseBody.Name)

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestUpdateCurrency_NonIntegerID() {
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/currencies/abc", bytes.NewReader([]byte(`{"name":"X","symbol":"Y"}`)))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "UpdateCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestUpdateCurrency_NotFound() {
	reqBody := dto.UpdateCurrencyRequest{Name: "Ghost", Symbol: "?"}

	suite.mockCurrencyService.On("UpdateCurrency", mock.Anything, int64(99), reqBody, "admin").Return(nil, apperrors.ErrNotFound).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/currencies/99", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestDeactivateCurrency_Success() {
	suite.mockCurrencyService.On("DeactivateCurrency", mock.Anything, int64(4), "admin").Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/currencies/4", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestDeactivateCurrency_NotFound() {
	suite.mockCurrencyService.On("DeactivateCurrency", mock.Anything, int64(404), "admin").Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/currencies/404", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func TestCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
