package ports

import (
	"context"
	"time"

	"margin-ledger-engine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// PostingCache is the Redis fast path in front of the authoritative
// database idempotency check. Best effort: a cache failure never fails a
// posting.
type PostingCache interface {
	// Get returns the cached transaction JSON or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// PostRequest holds validated input for a ledger posting.
type PostRequest struct {
	StoreID     string
	OrderID     string
	OrderNumber string
	Kind        domain.TransactionKind
	Amount      decimal.Decimal
	Description string
}

// LedgerService is the single writer of wallet balances. Post is idempotent
// on (store, order, kind) and serialized per store.
type LedgerService interface {
	Post(ctx context.Context, req PostRequest) (*domain.Transaction, error)
	// GetBalance returns zero for unknown stores without creating a wallet.
	GetBalance(ctx context.Context, storeID string) (decimal.Decimal, error)
	GetHistory(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetSummary(ctx context.Context, storeID string) (*WalletSummary, error)
}

// MarginService resolves line items against the margin catalog and maintains
// the per-order margin cache.
type MarginService interface {
	// Resolve computes the per-line margin breakdown. Unmatched items
	// contribute zero margin; catalog read failures fail the whole call.
	Resolve(ctx context.Context, storeID string, items []domain.LineItem) ([]domain.LineMargin, error)
	// ComputeAndStore resolves, sums and upserts the order margin.
	ComputeAndStore(ctx context.Context, storeID, orderID, orderNumber string, items []domain.LineItem) (*domain.OrderMargin, error)
}

// RtoService resolves return-to-origin penalties.
type RtoService interface {
	// ResolvePenalty returns zero when no active rate is configured.
	ResolvePenalty(ctx context.Context, sellerID, storeID string) (decimal.Decimal, error)
}

// ConfirmOrderRequest holds validated input for order confirmation.
type ConfirmOrderRequest struct {
	StoreID     string
	OrderID     string
	OrderNumber string
	LineItems   []domain.LineItem
}

// MarkRtoRequest holds validated input for marking an order returned.
type MarkRtoRequest struct {
	StoreID     string
	SellerID    string
	OrderID     string
	OrderNumber string
}

// PostingResult is returned by the order workflow operations.
// On an idempotent replay AmountPosted is the originally posted amount and
// NewBalance is the store's current balance.
type PostingResult struct {
	Transaction  *domain.Transaction
	AmountPosted decimal.Decimal
	NewBalance   decimal.Decimal
}

// OrderService orchestrates margin computation, penalty resolution and
// ledger posting for order lifecycle events.
type OrderService interface {
	ConfirmOrder(ctx context.Context, req ConfirmOrderRequest) (*PostingResult, error)
	MarkOrderRTO(ctx context.Context, req MarkRtoRequest) (*PostingResult, error)
	ComputeOrderMargin(ctx context.Context, req ConfirmOrderRequest) (*domain.OrderMargin, error)
}

// AuditService defines async audit logging.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
