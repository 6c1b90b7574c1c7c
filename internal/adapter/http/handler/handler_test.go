package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"margin-ledger-engine/internal/adapter/http/dto"
	"margin-ledger-engine/internal/adapter/http/middleware"
	"margin-ledger-engine/internal/core/domain"
	"margin-ledger-engine/internal/core/ports"
	"margin-ledger-engine/internal/core/ports/mocks"
	"margin-ledger-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func postJSON(t *testing.T, h gin.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h(c)
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// --- Order Handler Tests ---

func TestConfirm_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrder)

	txn := &domain.Transaction{
		ID:            uuid.New(),
		StoreID:       "store-1",
		OrderID:       "order-1",
		Kind:          domain.KindMarginEarned,
		Amount:        dec("100.00"),
		BalanceBefore: dec("0.00"),
		BalanceAfter:  dec("100.00"),
		CreatedAt:     time.Now().UTC(),
	}
	mockOrder.EXPECT().ConfirmOrder(gomock.Any(), ports.ConfirmOrderRequest{
		StoreID:     "store-1",
		OrderID:     "order-1",
		OrderNumber: "1001",
		LineItems: []domain.LineItem{
			{ProductIdentity: "SKU-1", ProductName: "Widget", Quantity: 2},
		},
	}).Return(&ports.PostingResult{
		Transaction:  txn,
		AmountPosted: dec("100.00"),
		NewBalance:   dec("100.00"),
	}, nil)

	w := postJSON(t, h.Confirm, "/api/v1/orders/confirm", dto.ConfirmOrderRequest{
		StoreID:     "store-1",
		OrderID:     "order-1",
		OrderNumber: "1001",
		LineItems: []dto.LineItem{
			{ProductID: "SKU-1", ProductName: "Widget", Quantity: 2},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "100.00", data["amount_posted"])
	assert.Equal(t, "100.00", data["new_balance"])
	assert.NotNil(t, data["transaction"])
}

func TestConfirm_SetsStoreIDForAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrder)

	mockOrder.EXPECT().ConfirmOrder(gomock.Any(), gomock.Any()).Return(&ports.PostingResult{
		Transaction:  &domain.Transaction{ID: uuid.New(), StoreID: "store-9"},
		AmountPosted: decimal.Zero,
		NewBalance:   decimal.Zero,
	}, nil)

	body, err := json.Marshal(dto.ConfirmOrderRequest{
		StoreID: "store-9",
		OrderID: "order-9",
		LineItems: []dto.LineItem{
			{ProductID: "SKU-1", Quantity: 1},
		},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/orders/confirm", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Confirm(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "store-9", c.GetString(middleware.CtxStoreID))
}

func TestConfirm_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrder)

	// Empty body => binding error, service never called.
	w := postJSON(t, h.Confirm, "/api/v1/orders/confirm", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirm_RejectsUnsafeIdentifiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrder)

	w := postJSON(t, h.Confirm, "/api/v1/orders/confirm", map[string]interface{}{
		"store_id": "store 1; drop",
		"order_id": "order-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirm_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrder)

	mockOrder.EXPECT().ConfirmOrder(gomock.Any(), gomock.Any()).
		Return(nil, apperror.StorageError(errors.New("db down")))

	w := postJSON(t, h.Confirm, "/api/v1/orders/confirm", dto.ConfirmOrderRequest{
		StoreID: "store-1",
		OrderID: "order-1",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_001", resp["error_code"])
	assert.Equal(t, true, resp["retryable"])
}

func TestMarkRTO_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrder)

	mockOrder.EXPECT().MarkOrderRTO(gomock.Any(), ports.MarkRtoRequest{
		StoreID:  "store-1",
		SellerID: "seller-1",
		OrderID:  "order-1",
	}).Return(&ports.PostingResult{
		Transaction: &domain.Transaction{
			ID:      uuid.New(),
			StoreID: "store-1",
			Kind:    domain.KindRtoPenalty,
			Amount:  dec("-75.00"),
		},
		AmountPosted: dec("-75.00"),
		NewBalance:   dec("25.00"),
	}, nil)

	w := postJSON(t, h.MarkRTO, "/api/v1/orders/rto", dto.MarkRtoRequest{
		StoreID:  "store-1",
		SellerID: "seller-1",
		OrderID:  "order-1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "-75.00", data["amount_posted"])
	assert.Equal(t, "25.00", data["new_balance"])
}

func TestMarkRTO_MissingSeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrder)

	w := postJSON(t, h.MarkRTO, "/api/v1/orders/rto", map[string]interface{}{
		"store_id": "store-1",
		"order_id": "order-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkRTO_NoPenaltyConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrder)

	mockOrder.EXPECT().MarkOrderRTO(gomock.Any(), gomock.Any()).Return(&ports.PostingResult{
		Transaction: &domain.Transaction{
			ID:     uuid.New(),
			Kind:   domain.KindRtoPenalty,
			Amount: decimal.Zero,
		},
		AmountPosted: decimal.Zero,
		NewBalance:   dec("40.00"),
	}, nil)

	w := postJSON(t, h.MarkRTO, "/api/v1/orders/rto", dto.MarkRtoRequest{
		StoreID:  "store-1",
		SellerID: "seller-1",
		OrderID:  "order-1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "0.00", data["amount_posted"])
	txn := data["transaction"].(map[string]interface{})
	assert.Equal(t, "0.00", txn["amount"])
}

func TestComputeMargin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	h := NewOrderHandler(mockOrder)

	mockOrder.EXPECT().ComputeOrderMargin(gomock.Any(), gomock.Any()).Return(&domain.OrderMargin{
		StoreID:      "store-1",
		OrderID:      "order-1",
		MarginAmount: dec("40.00"),
		Breakdown: []domain.LineMargin{
			{ProductIdentity: "SKU-1", Quantity: 2, MarginPerUnit: dec("20.00"), LineMargin: dec("40.00"), Matched: true, MatchedBy: domain.MatchByProductID},
		},
		ComputedAt: time.Now().UTC(),
	}, nil)

	w := postJSON(t, h.ComputeMargin, "/api/v1/orders/margin", dto.ComputeMarginRequest{
		StoreID: "store-1",
		OrderID: "order-1",
		LineItems: []dto.LineItem{
			{ProductID: "SKU-1", Quantity: 2},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "40.00", data["margin_amount"])
	breakdown := data["breakdown"].([]interface{})
	require.Len(t, breakdown, 1)
	line := breakdown[0].(map[string]interface{})
	assert.Equal(t, true, line["matched"])
	assert.Equal(t, "product_id", line["matched_by"])
}

// --- Wallet Handler Tests ---

func walletGet(t *testing.T, h gin.HandlerFunc, storeID, query string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/wallets/"+storeID+query, nil)
	c.Params = gin.Params{{Key: "storeId", Value: storeID}}
	h(c)
	return w
}

func TestGetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(mockLedger, 0, 0)

	mockLedger.EXPECT().GetBalance(gomock.Any(), "store-1").Return(dec("123.45"), nil)

	w := walletGet(t, h.GetBalance, "store-1", "/balance")
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "123.45", data["balance"])
	assert.Equal(t, "store-1", data["store_id"])
}

func TestGetBalance_UnknownStoreIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(mockLedger, 0, 0)

	mockLedger.EXPECT().GetBalance(gomock.Any(), "ghost").Return(decimal.Zero, nil)

	w := walletGet(t, h.GetBalance, "ghost", "/balance")
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "0.00", data["balance"])
}

func TestListTransactions_DefaultsAndClamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(mockLedger, 0, 0)

	mockLedger.EXPECT().GetHistory(gomock.Any(), ports.TransactionListParams{
		StoreID:  "store-1",
		Page:     1,
		PageSize: maxPageSize,
	}).Return([]domain.Transaction{}, int64(0), nil)

	// page_size above the cap gets clamped
	w := walletGet(t, h.ListTransactions, "store-1", "/transactions?page_size=500")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListTransactions_ConfiguredPageSizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(mockLedger, 10, 50)

	// No page_size in the query: the configured default applies.
	mockLedger.EXPECT().GetHistory(gomock.Any(), ports.TransactionListParams{
		StoreID:  "store-1",
		Page:     1,
		PageSize: 10,
	}).Return([]domain.Transaction{}, int64(0), nil)

	w := walletGet(t, h.ListTransactions, "store-1", "/transactions")
	assert.Equal(t, http.StatusOK, w.Code)

	// Oversized page_size clamps to the configured maximum.
	mockLedger.EXPECT().GetHistory(gomock.Any(), ports.TransactionListParams{
		StoreID:  "store-1",
		Page:     1,
		PageSize: 50,
	}).Return([]domain.Transaction{}, int64(0), nil)

	w = walletGet(t, h.ListTransactions, "store-1", "/transactions?page_size=500")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListTransactions_KindFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(mockLedger, 0, 0)

	kind := domain.KindRtoPenalty
	mockLedger.EXPECT().GetHistory(gomock.Any(), ports.TransactionListParams{
		StoreID:  "store-1",
		Kind:     &kind,
		Page:     1,
		PageSize: defaultPageSize,
	}).Return([]domain.Transaction{
		{ID: uuid.New(), StoreID: "store-1", Kind: domain.KindRtoPenalty, Amount: dec("-75.00")},
	}, int64(1), nil)

	w := walletGet(t, h.ListTransactions, "store-1", "/transactions?kind=rto_penalty")
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1), data["total_pages"])
}

func TestListTransactions_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(mockLedger, 0, 0)

	w := walletGet(t, h.ListTransactions, "store-1", "/transactions?kind=bonus")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSummary_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(mockLedger, 0, 0)

	mockLedger.EXPECT().GetSummary(gomock.Any(), "store-1").Return(&ports.WalletSummary{
		StoreID:           "store-1",
		Balance:           dec("25.00"),
		TotalTransactions: 2,
		MarginCount:       1,
		RtoCount:          1,
		TotalMarginEarned: dec("100.00"),
		TotalRtoPenalty:   dec("-75.00"),
	}, nil)

	w := walletGet(t, h.GetSummary, "store-1", "/summary")
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "25.00", data["balance"])
	assert.Equal(t, "100.00", data["total_margin_earned"])
	assert.Equal(t, "-75.00", data["total_rto_penalty"])
}

// --- Health Handler Tests ---

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Ping(_ context.Context) error { return f.err }
func (f fakeChecker) Name() string                 { return f.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(fakeChecker{name: "postgresql"}, fakeChecker{name: "redis"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(
		fakeChecker{name: "postgresql"},
		fakeChecker{name: "redis", err: errors.New("connection refused")},
	))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}
