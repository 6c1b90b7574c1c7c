package domain

import "github.com/shopspring/decimal"

// RtoRate is the return-to-origin penalty configured for a (seller, store)
// pair. Owned by the rate-administration collaborator; read-only here.
// An absent or inactive rate means the store incurs no penalty.
type RtoRate struct {
	SellerID      string          `json:"seller_id"`
	StoreID       string          `json:"store_id"`
	PenaltyAmount decimal.Decimal `json:"penalty_amount"`
	Active        bool            `json:"active"`
}
