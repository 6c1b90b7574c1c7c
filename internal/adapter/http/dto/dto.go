package dto

// LineItem is one normalized order line in a confirmation request.
// ProductName is a catalog matching key and must pass through unescaped.
type LineItem struct {
	ProductID   string `json:"product_id" binding:"omitempty,max=100"`
	ProductName string `json:"product_name" binding:"omitempty,max=255" sanitize:"trim"`
	Quantity    int64  `json:"quantity"`
}

// ConfirmOrderRequest is the request body for order confirmation.
type ConfirmOrderRequest struct {
	StoreID     string     `json:"store_id" binding:"required,safe_id,max=100"`
	OrderID     string     `json:"order_id" binding:"required,safe_id,max=100"`
	OrderNumber string     `json:"order_number" binding:"omitempty,max=100"`
	LineItems   []LineItem `json:"line_items" binding:"dive"`
}

// MarkRtoRequest is the request body for marking an order returned.
type MarkRtoRequest struct {
	StoreID     string `json:"store_id" binding:"required,safe_id,max=100"`
	SellerID    string `json:"seller_id" binding:"required,safe_id,max=100"`
	OrderID     string `json:"order_id" binding:"required,safe_id,max=100"`
	OrderNumber string `json:"order_number" binding:"omitempty,max=100"`
}

// ComputeMarginRequest is the request body for recomputing an order margin
// without posting. Shape matches ConfirmOrderRequest.
type ComputeMarginRequest = ConfirmOrderRequest

// TransactionResponse is one ledger entry in API responses.
type TransactionResponse struct {
	ID            string `json:"id"`
	StoreID       string `json:"store_id"`
	OrderID       string `json:"order_id"`
	OrderNumber   string `json:"order_number,omitempty"`
	Kind          string `json:"kind"`
	Amount        string `json:"amount"`
	BalanceBefore string `json:"balance_before"`
	BalanceAfter  string `json:"balance_after"`
	Description   string `json:"description,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// PostingResponse is the response body for confirm/rto operations. Every
// confirm/rto produces a ledger entry, including zero-amount ones, so
// Transaction is always set on success.
type PostingResponse struct {
	Transaction  *TransactionResponse `json:"transaction"`
	AmountPosted string               `json:"amount_posted"`
	NewBalance   string               `json:"new_balance"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	StoreID string `json:"store_id"`
	Balance string `json:"balance"`
}

// TransactionListResponse wraps a paginated ledger history.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// SummaryResponse aggregates a store's ledger by kind.
type SummaryResponse struct {
	StoreID           string `json:"store_id"`
	Balance           string `json:"balance"`
	TotalTransactions int64  `json:"total_transactions"`
	MarginCount       int64  `json:"margin_count"`
	RtoCount          int64  `json:"rto_count"`
	TotalMarginEarned string `json:"total_margin_earned"`
	TotalRtoPenalty   string `json:"total_rto_penalty"`
}

// LineMarginResponse is one resolved line in a margin breakdown.
type LineMarginResponse struct {
	ProductID     string `json:"product_id,omitempty"`
	ProductName   string `json:"product_name,omitempty"`
	Quantity      int64  `json:"quantity"`
	MarginPerUnit string `json:"margin_per_unit"`
	LineMargin    string `json:"line_margin"`
	Matched       bool   `json:"matched"`
	MatchedBy     string `json:"matched_by,omitempty"`
}

// OrderMarginResponse is the stored margin computation for one order.
type OrderMarginResponse struct {
	StoreID      string               `json:"store_id"`
	OrderID      string               `json:"order_id"`
	OrderNumber  string               `json:"order_number,omitempty"`
	MarginAmount string               `json:"margin_amount"`
	Breakdown    []LineMarginResponse `json:"breakdown"`
	ComputedAt   string               `json:"computed_at"`
}
