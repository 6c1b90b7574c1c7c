package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a normalized order line as supplied by the order workflow.
// Normalization (product identity extraction, quantity parsing) happens
// upstream; the engine only clamps obviously bad quantities.
type LineItem struct {
	ProductIdentity string `json:"product_identity"`
	ProductName     string `json:"product_name"`
	Quantity        int64  `json:"quantity"`
}

// NormalizedName returns the lower-cased, trimmed product name used for
// fallback catalog matching.
func (li LineItem) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(li.ProductName))
}

// EffectiveQuantity clamps the quantity to zero or above.
func (li LineItem) EffectiveQuantity() int64 {
	if li.Quantity < 0 {
		return 0
	}
	return li.Quantity
}

// MatchSource records which catalog key matched a line item.
type MatchSource string

const (
	MatchByProductID   MatchSource = "product_id"
	MatchByProductName MatchSource = "product_name"
	MatchNone          MatchSource = ""
)

// LineMargin is the resolved margin for one order line. Unmatched lines are
// kept with a zero margin so the breakdown stays auditable.
type LineMargin struct {
	ProductIdentity string          `json:"product_identity"`
	ProductName     string          `json:"product_name"`
	Quantity        int64           `json:"quantity"`
	MarginPerUnit   decimal.Decimal `json:"margin_per_unit"`
	LineMargin      decimal.Decimal `json:"line_margin"`
	Matched         bool            `json:"matched"`
	MatchedBy       MatchSource     `json:"matched_by,omitempty"`
}

// OrderMargin is the cached margin computation for one (store, order) pair.
// It is a derived artifact: recomputation replaces it wholesale and never
// touches the ledger.
type OrderMargin struct {
	StoreID      string          `json:"store_id"`
	OrderID      string          `json:"order_id"`
	OrderNumber  string          `json:"order_number"`
	MarginAmount decimal.Decimal `json:"margin_amount"`
	Breakdown    []LineMargin    `json:"breakdown"`
	ComputedAt   time.Time       `json:"computed_at"`
}

// MarginCatalogEntry maps a store's product to its per-unit margin.
// Owned by the product-push collaborator; read-only here.
type MarginCatalogEntry struct {
	StoreID         string          `json:"store_id"`
	ProductIdentity string          `json:"product_identity"`
	ProductName     string          `json:"product_name"`
	NormalizedName  string          `json:"normalized_name"`
	MarginPerUnit   decimal.Decimal `json:"margin_per_unit"`
}
