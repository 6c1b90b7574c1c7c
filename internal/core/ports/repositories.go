package ports

import (
	"context"
	"errors"

	"margin-ledger-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrDuplicatePosting is returned by TransactionRepository.Create when the
// (store_id, order_id, kind) uniqueness constraint is violated. The poster
// treats it as the success path and returns the already-posted transaction.
var ErrDuplicatePosting = errors.New("duplicate posting")

// WalletRepository defines persistence operations for store wallets.
// Methods accepting pgx.Tx run inside the posting transaction where the
// wallet row is pessimistically locked.
type WalletRepository interface {
	// GetByStoreID is a non-locking read. Returns nil, nil for unknown stores.
	GetByStoreID(ctx context.Context, storeID string) (*domain.Wallet, error)
	// EnsureExists lazily creates the wallet with a zero balance. Safe to call
	// concurrently; an existing wallet is left untouched.
	EnsureExists(ctx context.Context, tx pgx.Tx, storeID string) error
	// GetByStoreIDForUpdate locks the wallet row for the duration of tx.
	GetByStoreIDForUpdate(ctx context.Context, tx pgx.Tx, storeID string) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, storeID string, balance decimal.Decimal) error
}

// TransactionRepository defines persistence operations for ledger entries.
type TransactionRepository interface {
	// Create appends a transaction. Returns ErrDuplicatePosting if an entry
	// with the same (store_id, order_id, kind) already exists.
	Create(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error
	// GetByOrderAndKind returns nil, nil when no matching entry exists.
	GetByOrderAndKind(ctx context.Context, storeID, orderID string, kind domain.TransactionKind) (*domain.Transaction, error)
	// ListByStore returns entries newest-first plus the unpaginated total.
	ListByStore(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetSummary(ctx context.Context, storeID string) (*WalletSummary, error)
}

// TransactionListParams holds filter + pagination for listing ledger entries.
type TransactionListParams struct {
	StoreID  string
	Kind     *domain.TransactionKind
	Page     int
	PageSize int
}

// WalletSummary aggregates a store's ledger by kind.
type WalletSummary struct {
	StoreID           string          `json:"store_id"`
	Balance           decimal.Decimal `json:"balance"`
	TotalTransactions int64           `json:"total_transactions"`
	MarginCount       int64           `json:"margin_count"`
	RtoCount          int64           `json:"rto_count"`
	TotalMarginEarned decimal.Decimal `json:"total_margin_earned"`
	TotalRtoPenalty   decimal.Decimal `json:"total_rto_penalty"` // signed (<= 0)
}

// OrderMarginRepository defines persistence for computed order margins.
type OrderMarginRepository interface {
	// Upsert replaces any prior computation for the same (store_id, order_id).
	Upsert(ctx context.Context, om *domain.OrderMargin) error
	// GetByOrder returns nil, nil when the order has no stored computation.
	GetByOrder(ctx context.Context, storeID, orderID string) (*domain.OrderMargin, error)
}

// MarginCatalogRepository is the read-only view of the product-margin catalog
// maintained by the product-push collaborator.
type MarginCatalogRepository interface {
	// GetByProductIdentity returns nil, nil when the product is not listed.
	GetByProductIdentity(ctx context.Context, storeID, productIdentity string) (*domain.MarginCatalogEntry, error)
	// GetByNormalizedName returns nil, nil when no product carries the name.
	GetByNormalizedName(ctx context.Context, storeID, normalizedName string) (*domain.MarginCatalogEntry, error)
}

// RtoRateRepository is the read-only view of the per-seller-per-store
// penalty rate table.
type RtoRateRepository interface {
	// GetActive returns nil, nil when no active rate is configured.
	GetActive(ctx context.Context, sellerID, storeID string) (*domain.RtoRate, error)
}

// AuditRepository defines persistence for audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
