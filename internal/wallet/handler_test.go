package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID int64, req CreateWalletRequest) (*Wallet, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Wallet), args.Error(1)
}

func (m *MockService) List(ctx context.Context, userID int64) ([]Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Wallet), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, walletID, userID int64) error {
	return m.Called(ctx, walletID, userID).Error(0)
}

func (m *MockService) Reconcile(ctx context.Context, walletID, userID int64) (*Reconciliation, error) {
	args := m.Called(ctx, walletID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reconciliation), args.Error(1)
}

func setupRouter(svc Service, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetUserID(c, userID)
		c.Next()
	})
	r.POST("/api/wallets", h.CreateWallet)
	r.GET("/api/wallets", h.ListWallets)
	r.DELETE("/api/wallets/:id", h.DeleteWallet)
	r.POST("/api/wallets/:id/reconcile", h.ReconcileWallet)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateWallet(t *testing.T) {
	svc := new(MockService)
	svc.On("Create", mock.Anything, int64(7), CreateWalletRequest{Name: "Cash"}).
		Return(&Wallet{ID: 1, UserID: 7, Name: "Cash"}, nil)

	w := perform(setupRouter(svc, 7), http.MethodPost, "/api/wallets", `{"name":"Cash"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Cash", body["name"])
	assert.Equal(t, float64(7), body["userId"])
}

func TestHandler_CreateWallet_MissingName(t *testing.T) {
	svc := new(MockService)

	w := perform(setupRouter(svc, 7), http.MethodPost, "/api/wallets", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Wallet name is required.")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_ListWallets(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything, int64(7)).Return([]Wallet{{ID: 1, UserID: 7, Name: "Cash"}}, nil)

	w := perform(setupRouter(svc, 7), http.MethodGet, "/api/wallets", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 1)
}

func TestHandler_DeleteWallet(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "deleted",
			path: "/api/wallets/3",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, int64(3), int64(7)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Wallet deleted successfully.",
		},
		{
			name: "not found or foreign",
			path: "/api/wallets/3",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, int64(3), int64(7)).Return(ErrWalletNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Wallet not found or user not authorized.",
		},
		{
			name:           "bad id",
			path:           "/api/wallets/abc",
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid wallet id.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			w := perform(setupRouter(svc, 7), http.MethodDelete, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMsg, body["message"])
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_ReconcileWallet(t *testing.T) {
	svc := new(MockService)
	svc.On("Reconcile", mock.Anything, int64(3), int64(7)).Return(&Reconciliation{WalletID: 3}, nil)

	w := perform(setupRouter(svc, 7), http.MethodPost, "/api/wallets/3/reconcile", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"walletId":3`)
}

func TestHandler_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(new(MockService))
	r := gin.New()
	r.GET("/api/wallets", h.ListWallets)

	w := perform(r, http.MethodGet, "/api/wallets", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
