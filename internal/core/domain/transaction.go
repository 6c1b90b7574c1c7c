package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of ledger movement.
type TransactionKind string

const (
	KindMarginEarned TransactionKind = "margin_earned"
	KindRtoPenalty   TransactionKind = "rto_penalty"
	// KindAdjustment is reserved for manual compensating entries. No workflow
	// in this service produces it, but the poster accepts it so history never
	// has to be rewritten when a posted margin turns out to be wrong.
	KindAdjustment TransactionKind = "adjustment"
)

// IsValid reports whether the kind is one the ledger accepts.
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindMarginEarned, KindRtoPenalty, KindAdjustment:
		return true
	}
	return false
}

// Transaction is an immutable ledger entry for a single store.
// At most one transaction exists per (store_id, order_id, kind); the
// balance_before/balance_after pair chains entries into the store's single
// total order of posts.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	StoreID       string          `json:"store_id"`
	OrderID       string          `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BuildPostingKey constructs the idempotency key for a posting attempt.
func BuildPostingKey(storeID, orderID string, kind TransactionKind) string {
	return storeID + ":" + orderID + ":" + string(kind)
}
