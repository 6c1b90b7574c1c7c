package handler

import (
	"time"

	"margin-ledger-engine/internal/adapter/http/dto"
	"margin-ledger-engine/internal/adapter/http/middleware"
	"margin-ledger-engine/internal/core/domain"
	"margin-ledger-engine/internal/core/ports"
	"margin-ledger-engine/pkg/apperror"
	"margin-ledger-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order lifecycle endpoints: confirmation, RTO and
// margin recomputation.
type OrderHandler struct {
	orderSvc ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc ports.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// Confirm handles POST /api/v1/orders/confirm.
func (h *OrderHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	c.Set(middleware.CtxStoreID, req.StoreID)

	result, err := h.orderSvc.ConfirmOrder(c.Request.Context(), ports.ConfirmOrderRequest{
		StoreID:     req.StoreID,
		OrderID:     req.OrderID,
		OrderNumber: req.OrderNumber,
		LineItems:   toLineItems(req.LineItems),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPostingResponse(result))
}

// MarkRTO handles POST /api/v1/orders/rto.
func (h *OrderHandler) MarkRTO(c *gin.Context) {
	var req dto.MarkRtoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	c.Set(middleware.CtxStoreID, req.StoreID)

	result, err := h.orderSvc.MarkOrderRTO(c.Request.Context(), ports.MarkRtoRequest{
		StoreID:     req.StoreID,
		SellerID:    req.SellerID,
		OrderID:     req.OrderID,
		OrderNumber: req.OrderNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPostingResponse(result))
}

// ComputeMargin handles POST /api/v1/orders/margin. It recomputes and
// stores the order's margin breakdown without posting to the ledger.
func (h *OrderHandler) ComputeMargin(c *gin.Context) {
	var req dto.ComputeMarginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	c.Set(middleware.CtxStoreID, req.StoreID)

	om, err := h.orderSvc.ComputeOrderMargin(c.Request.Context(), ports.ConfirmOrderRequest{
		StoreID:     req.StoreID,
		OrderID:     req.OrderID,
		OrderNumber: req.OrderNumber,
		LineItems:   toLineItems(req.LineItems),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toOrderMarginResponse(om))
}

func toLineItems(items []dto.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.LineItem{
			ProductIdentity: item.ProductID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
		})
	}
	return out
}

func toTransactionResponse(txn *domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            txn.ID.String(),
		StoreID:       txn.StoreID,
		OrderID:       txn.OrderID,
		OrderNumber:   txn.OrderNumber,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount.StringFixed(2),
		BalanceBefore: txn.BalanceBefore.StringFixed(2),
		BalanceAfter:  txn.BalanceAfter.StringFixed(2),
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt.Format(time.RFC3339),
	}
}

func toPostingResponse(result *ports.PostingResult) dto.PostingResponse {
	resp := dto.PostingResponse{
		AmountPosted: result.AmountPosted.StringFixed(2),
		NewBalance:   result.NewBalance.StringFixed(2),
	}
	if result.Transaction != nil {
		txn := toTransactionResponse(result.Transaction)
		resp.Transaction = &txn
	}
	return resp
}

func toOrderMarginResponse(om *domain.OrderMargin) dto.OrderMarginResponse {
	breakdown := make([]dto.LineMarginResponse, 0, len(om.Breakdown))
	for _, line := range om.Breakdown {
		breakdown = append(breakdown, dto.LineMarginResponse{
			ProductID:     line.ProductIdentity,
			ProductName:   line.ProductName,
			Quantity:      line.Quantity,
			MarginPerUnit: line.MarginPerUnit.StringFixed(2),
			LineMargin:    line.LineMargin.StringFixed(2),
			Matched:       line.Matched,
			MatchedBy:     string(line.MatchedBy),
		})
	}
	return dto.OrderMarginResponse{
		StoreID:      om.StoreID,
		OrderID:      om.OrderID,
		OrderNumber:  om.OrderNumber,
		MarginAmount: om.MarginAmount.StringFixed(2),
		Breakdown:    breakdown,
		ComputedAt:   om.ComputedAt.Format(time.RFC3339),
	}
}
