package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"margin-ledger-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// OrderMarginRepo implements ports.OrderMarginRepository. Order margins are a
// derived cache, so writes are plain upserts outside the posting transaction.
type OrderMarginRepo struct {
	pool Pool
}

// NewOrderMarginRepo creates a new OrderMarginRepo.
func NewOrderMarginRepo(pool Pool) *OrderMarginRepo {
	return &OrderMarginRepo{pool: pool}
}

// Upsert creates or replaces the computation for (store_id, order_id).
func (r *OrderMarginRepo) Upsert(ctx context.Context, om *domain.OrderMargin) error {
	breakdown, err := json.Marshal(om.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}

	query := `INSERT INTO order_margins (store_id, order_id, order_number, margin_amount, breakdown, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (store_id, order_id) DO UPDATE SET
			order_number = EXCLUDED.order_number,
			margin_amount = EXCLUDED.margin_amount,
			breakdown = EXCLUDED.breakdown,
			computed_at = EXCLUDED.computed_at`

	_, err = r.pool.Exec(ctx, query,
		om.StoreID, om.OrderID, om.OrderNumber, om.MarginAmount, breakdown, om.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert order margin: %w", err)
	}
	return nil
}

// GetByOrder fetches the stored computation. Returns nil, nil when the order
// has never been computed.
func (r *OrderMarginRepo) GetByOrder(ctx context.Context, storeID, orderID string) (*domain.OrderMargin, error) {
	query := `SELECT store_id, order_id, order_number, margin_amount, breakdown, computed_at
		FROM order_margins WHERE store_id = $1 AND order_id = $2`

	om := &domain.OrderMargin{}
	var breakdown []byte
	err := r.pool.QueryRow(ctx, query, storeID, orderID).Scan(
		&om.StoreID, &om.OrderID, &om.OrderNumber, &om.MarginAmount, &breakdown, &om.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order margin: %w", err)
	}
	if err := json.Unmarshal(breakdown, &om.Breakdown); err != nil {
		return nil, fmt.Errorf("unmarshal breakdown: %w", err)
	}
	return om, nil
}
