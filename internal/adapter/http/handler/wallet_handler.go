package handler

import (
	"strconv"

	"margin-ledger-engine/internal/adapter/http/dto"
	"margin-ledger-engine/internal/core/domain"
	"margin-ledger-engine/internal/core/ports"
	"margin-ledger-engine/pkg/apperror"
	"margin-ledger-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// WalletHandler handles wallet read endpoints.
type WalletHandler struct {
	ledgerSvc   ports.LedgerService
	pageSize    int
	maxPageSize int
}

// NewWalletHandler creates a new WalletHandler. pageSize and maxPageSize
// tune history pagination; non-positive values select the defaults.
func NewWalletHandler(ledgerSvc ports.LedgerService, pageSize, maxPage int) *WalletHandler {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if maxPage <= 0 {
		maxPage = maxPageSize
	}
	return &WalletHandler{ledgerSvc: ledgerSvc, pageSize: pageSize, maxPageSize: maxPage}
}

// GetBalance handles GET /api/v1/wallets/:storeId/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	storeID := c.Param("storeId")

	balance, err := h.ledgerSvc.GetBalance(c.Request.Context(), storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		StoreID: storeID,
		Balance: balance.StringFixed(2),
	})
}

// ListTransactions handles GET /api/v1/wallets/:storeId/transactions.
// Query params: kind (optional filter), page, page_size.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	storeID := c.Param("storeId")

	params := ports.TransactionListParams{
		StoreID:  storeID,
		Page:     parsePositiveInt(c.Query("page"), 1),
		PageSize: parsePositiveInt(c.Query("page_size"), h.pageSize),
	}
	if params.PageSize > h.maxPageSize {
		params.PageSize = h.maxPageSize
	}
	if kindStr := c.Query("kind"); kindStr != "" {
		kind := domain.TransactionKind(kindStr)
		if !kind.IsValid() {
			response.Error(c, apperror.ErrUnknownKind(kindStr))
			return
		}
		params.Kind = &kind
	}

	txns, total, err := h.ledgerSvc.GetHistory(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}

	totalPages := int(total) / params.PageSize
	if int(total)%params.PageSize != 0 {
		totalPages++
	}

	response.OK(c, dto.TransactionListResponse{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	})
}

// GetSummary handles GET /api/v1/wallets/:storeId/summary.
func (h *WalletHandler) GetSummary(c *gin.Context) {
	storeID := c.Param("storeId")

	summary, err := h.ledgerSvc.GetSummary(c.Request.Context(), storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SummaryResponse{
		StoreID:           summary.StoreID,
		Balance:           summary.Balance.StringFixed(2),
		TotalTransactions: summary.TotalTransactions,
		MarginCount:       summary.MarginCount,
		RtoCount:          summary.RtoCount,
		TotalMarginEarned: summary.TotalMarginEarned.StringFixed(2),
		TotalRtoPenalty:   summary.TotalRtoPenalty.StringFixed(2),
	})
}

func parsePositiveInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
