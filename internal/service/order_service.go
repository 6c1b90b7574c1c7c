package service

import (
	"context"
	"fmt"

	"margin-ledger-engine/internal/core/domain"
	"margin-ledger-engine/internal/core/ports"
	"margin-ledger-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// OrderServiceImpl implements ports.OrderService: the order-lifecycle
// workflows that turn confirmations and returns into ledger postings.
type OrderServiceImpl struct {
	ledger ports.LedgerService
	margin ports.MarginService
	rto    ports.RtoService
	log    zerolog.Logger
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(
	ledger ports.LedgerService,
	margin ports.MarginService,
	rto ports.RtoService,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		ledger: ledger,
		margin: margin,
		rto:    rto,
		log:    log,
	}
}

// ConfirmOrder computes the order's margin and credits it to the store
// wallet. A replayed confirmation reports the originally posted amount but
// the store's current balance, which may have moved since.
func (s *OrderServiceImpl) ConfirmOrder(ctx context.Context, req ports.ConfirmOrderRequest) (*ports.PostingResult, error) {
	if req.StoreID == "" {
		return nil, apperror.ErrMissingIdentifier("store_id")
	}
	if req.OrderID == "" {
		return nil, apperror.ErrMissingIdentifier("order_id")
	}

	om, err := s.margin.ComputeAndStore(ctx, req.StoreID, req.OrderID, req.OrderNumber, req.LineItems)
	if err != nil {
		return nil, err
	}

	// An order whose lines all miss the catalog still posts a zero-amount
	// entry so the confirmation is recorded and idempotent.
	txn, err := s.ledger.Post(ctx, ports.PostRequest{
		StoreID:     req.StoreID,
		OrderID:     req.OrderID,
		OrderNumber: req.OrderNumber,
		Kind:        domain.KindMarginEarned,
		Amount:      om.MarginAmount,
		Description: fmt.Sprintf("margin for order %s", displayOrder(req.OrderNumber, req.OrderID)),
	})
	if err != nil {
		return nil, err
	}

	return s.buildResult(ctx, req.StoreID, txn)
}

// MarkOrderRTO debits the configured return penalty from the store wallet.
// An unconfigured (seller, store) pair posts a zero-amount penalty: the
// return is recorded without charging the store.
func (s *OrderServiceImpl) MarkOrderRTO(ctx context.Context, req ports.MarkRtoRequest) (*ports.PostingResult, error) {
	if req.StoreID == "" {
		return nil, apperror.ErrMissingIdentifier("store_id")
	}
	if req.SellerID == "" {
		return nil, apperror.ErrMissingIdentifier("seller_id")
	}
	if req.OrderID == "" {
		return nil, apperror.ErrMissingIdentifier("order_id")
	}

	penalty, err := s.rto.ResolvePenalty(ctx, req.SellerID, req.StoreID)
	if err != nil {
		return nil, err
	}

	txn, err := s.ledger.Post(ctx, ports.PostRequest{
		StoreID:     req.StoreID,
		OrderID:     req.OrderID,
		OrderNumber: req.OrderNumber,
		Kind:        domain.KindRtoPenalty,
		Amount:      penalty.Neg(),
		Description: fmt.Sprintf("rto penalty for order %s", displayOrder(req.OrderNumber, req.OrderID)),
	})
	if err != nil {
		return nil, err
	}

	return s.buildResult(ctx, req.StoreID, txn)
}

// ComputeOrderMargin recomputes and stores the order's margin breakdown
// without posting anything. Used to preview or refresh a computation after
// a catalog change.
func (s *OrderServiceImpl) ComputeOrderMargin(ctx context.Context, req ports.ConfirmOrderRequest) (*domain.OrderMargin, error) {
	if req.StoreID == "" {
		return nil, apperror.ErrMissingIdentifier("store_id")
	}
	if req.OrderID == "" {
		return nil, apperror.ErrMissingIdentifier("order_id")
	}
	return s.margin.ComputeAndStore(ctx, req.StoreID, req.OrderID, req.OrderNumber, req.LineItems)
}

func (s *OrderServiceImpl) buildResult(ctx context.Context, storeID string, txn *domain.Transaction) (*ports.PostingResult, error) {
	balance, err := s.ledger.GetBalance(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &ports.PostingResult{
		Transaction:  txn,
		AmountPosted: txn.Amount,
		NewBalance:   balance,
	}, nil
}

func displayOrder(orderNumber, orderID string) string {
	if orderNumber != "" {
		return orderNumber
	}
	return orderID
}
