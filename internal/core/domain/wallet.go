package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds the running balance for a single store.
// The balance is only ever mutated by the ledger poster and always equals
// the sum of all posted transaction amounts for the store.
type Wallet struct {
	StoreID   string          `json:"store_id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
